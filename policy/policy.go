// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package policy

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/tungdo8842/django-polls/models"
)

// RecentWindow is how far back a question still counts as recently published.
const RecentWindow = 24 * time.Hour

// ErrNotFound is returned for missing questions and for questions that are
// not yet published.
var ErrNotFound = errors.New("question not found")

// QuestionSource loads a single question. Implementations return ErrNotFound
// when no question has the given id.
type QuestionSource interface {
	QuestionByID(ctx context.Context, id string) (models.Question, error)
}

// WasPublishedRecently reports whether q was published within the last day.
func WasPublishedRecently(q models.Question, now time.Time) bool {
	return q.PubDate.After(now.Add(-RecentWindow)) && !q.PubDate.After(now)
}

// IsVisible reports whether q may be shown publicly at now.
func IsVisible(q models.Question, now time.Time) bool {
	return !q.PubDate.After(now)
}

// NewestFirst orders questions by pub_date, most recent first.
func NewestFirst(a, b models.Question) int {
	return b.PubDate.Compare(a.PubDate)
}

// ListVisible returns the visible questions of all, newest first.
// The input slice is left untouched.
func ListVisible(all []models.Question, now time.Time) []models.Question {
	visible := make([]models.Question, 0, len(all))
	for _, q := range all {
		if IsVisible(q, now) {
			visible = append(visible, q)
		}
	}
	slices.SortStableFunc(visible, NewestFirst)
	return visible
}

// GetVisible loads the question with the given id and hides it unless it is
// visible at now.
func GetVisible(ctx context.Context, src QuestionSource, id string, now time.Time) (models.Question, error) {
	q, err := src.QuestionByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return models.Question{}, ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("load question %s: %w", id, err)
	}

	if !IsVisible(q, now) {
		return models.Question{}, ErrNotFound
	}
	return q, nil
}
