// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package policy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tungdo8842/django-polls/models"
)

var now = time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)

func questionAt(id string, offset time.Duration) models.Question {
	return models.Question{ID: id, QuestionText: "Question " + id, PubDate: now.Add(offset)}
}

func TestWasPublishedRecently(t *testing.T) {
	tests := []struct {
		name   string
		offset time.Duration
		want   bool
	}{
		{"published now", 0, true},
		{"one second ago", -time.Second, true},
		{"one second inside the window", -(23*time.Hour + 59*time.Minute + 59*time.Second), true},
		{"exactly one day ago", -24 * time.Hour, false},
		{"one day and a minute ago", -(24*time.Hour + time.Minute), false},
		{"thirty days ago", -30 * 24 * time.Hour, false},
		{"one nanosecond in the future", time.Nanosecond, false},
		{"thirty days in the future", 30 * 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WasPublishedRecently(questionAt("q", tt.offset), now)
			if got != tt.want {
				t.Errorf("WasPublishedRecently() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWasPublishedRecently_TimezoneIndependent(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	q := models.Question{PubDate: now.Add(-time.Hour).In(tokyo)}

	if !WasPublishedRecently(q, now) {
		t.Error("expected question published an hour ago in another zone to be recent")
	}
}

func TestIsVisible(t *testing.T) {
	if !IsVisible(questionAt("past", -time.Hour), now) {
		t.Error("past question should be visible")
	}
	if !IsVisible(questionAt("now", 0), now) {
		t.Error("question published exactly now should be visible")
	}
	if IsVisible(questionAt("future", time.Second), now) {
		t.Error("future question should not be visible")
	}
}

func TestListVisible(t *testing.T) {
	day := 24 * time.Hour

	tests := []struct {
		name    string
		input   []models.Question
		wantIDs []string
	}{
		{
			name:    "no questions",
			input:   nil,
			wantIDs: []string{},
		},
		{
			name:    "past question",
			input:   []models.Question{questionAt("past", -30*day)},
			wantIDs: []string{"past"},
		},
		{
			name:    "future question",
			input:   []models.Question{questionAt("future", 30*day)},
			wantIDs: []string{},
		},
		{
			name: "future question and past question",
			input: []models.Question{
				questionAt("past", -30*day),
				questionAt("future", 30*day),
			},
			wantIDs: []string{"past"},
		},
		{
			name: "two past questions",
			input: []models.Question{
				questionAt("older", -30*day),
				questionAt("newer", -10*day),
			},
			wantIDs: []string{"newer", "older"},
		},
		{
			name: "mixed input is sorted newest first",
			input: []models.Question{
				questionAt("b", -2*time.Hour),
				questionAt("f1", time.Minute),
				questionAt("c", -3*day),
				questionAt("a", 0),
				questionAt("f2", 5*day),
			},
			wantIDs: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ListVisible(tt.input, now)
			if got == nil {
				t.Fatal("ListVisible() returned nil, want empty slice")
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("ListVisible() returned %d questions, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestListVisible_DoesNotMutateInput(t *testing.T) {
	input := []models.Question{
		questionAt("older", -48*time.Hour),
		questionAt("newer", -time.Hour),
	}

	ListVisible(input, now)

	if input[0].ID != "older" || input[1].ID != "newer" {
		t.Error("ListVisible() reordered its input")
	}
}

type fakeSource map[string]models.Question

func (f fakeSource) QuestionByID(ctx context.Context, id string) (models.Question, error) {
	q, ok := f[id]
	if !ok {
		return models.Question{}, ErrNotFound
	}
	return q, nil
}

type brokenSource struct{ err error }

func (b brokenSource) QuestionByID(ctx context.Context, id string) (models.Question, error) {
	return models.Question{}, b.err
}

func TestGetVisible(t *testing.T) {
	src := fakeSource{
		"past":   questionAt("past", -5*24*time.Hour),
		"future": questionAt("future", 5*24*time.Hour),
	}
	ctx := context.Background()

	q, err := GetVisible(ctx, src, "past", now)
	if err != nil {
		t.Fatalf("GetVisible(past) error = %v", err)
	}
	if q.QuestionText != "Question past" {
		t.Errorf("expected question text to be intact, got %q", q.QuestionText)
	}

	if _, err := GetVisible(ctx, src, "future", now); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetVisible(future) error = %v, want ErrNotFound", err)
	}

	if _, err := GetVisible(ctx, src, "missing", now); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetVisible(missing) error = %v, want ErrNotFound", err)
	}
}

func TestGetVisible_PropagatesStorageErrors(t *testing.T) {
	boom := errors.New("connection reset")

	_, err := GetVisible(context.Background(), brokenSource{err: boom}, "any", now)
	if !errors.Is(err, boom) {
		t.Errorf("GetVisible() error = %v, want wrapped %v", err, boom)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("storage failure must not be reported as not found")
	}
}
