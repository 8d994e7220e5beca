// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Day is the fixed length of a fixture day offset.
const Day = 24 * time.Hour

// Fixtures is the YAML seed file layout:
//
//	questions:
//	  - question_text: "What's up?"
//	    days: -1
//	    choices: ["Not much", "The sky"]
//	  - question_text: "Coming soon"
//	    pub_date: 2030-01-01T00:00:00Z
type Fixtures struct {
	Questions []QuestionFixture `yaml:"questions"`
}

// QuestionFixture sets pub_date either absolutely or as a day offset from the
// load time. Setting both is an error; setting neither means "now". A day is
// always 24 hours, regardless of daylight saving changes in now's zone.
type QuestionFixture struct {
	QuestionText string     `yaml:"question_text"`
	PubDate      *time.Time `yaml:"pub_date"`
	Days         *int       `yaml:"days"`
	Choices      []string   `yaml:"choices"`
}

// ParseFixtures decodes and validates a fixture document.
func ParseFixtures(data []byte) (Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixtures{}, fmt.Errorf("parse fixtures: %w", err)
	}

	for i, q := range f.Questions {
		if q.QuestionText == "" {
			return Fixtures{}, fmt.Errorf("fixture %d: question_text is required", i)
		}
		if q.PubDate != nil && q.Days != nil {
			return Fixtures{}, fmt.Errorf("fixture %d: set pub_date or days, not both", i)
		}
		for _, c := range q.Choices {
			if c == "" {
				return Fixtures{}, fmt.Errorf("fixture %d: empty choice", i)
			}
		}
	}

	return f, nil
}

func (q QuestionFixture) pubDate(now time.Time) time.Time {
	switch {
	case q.PubDate != nil:
		return *q.PubDate
	case q.Days != nil:
		return now.Add(time.Duration(*q.Days) * Day)
	default:
		return now
	}
}

// LoadFixtures reads a fixture file and inserts its questions and choices.
// Questions whose text is already stored are skipped, so loading the same
// file on every start leaves one copy of each. It returns the number of
// questions created.
func LoadFixtures(ctx context.Context, store *Store, path string, now time.Time) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read fixtures: %w", err)
	}

	f, err := ParseFixtures(data)
	if err != nil {
		return 0, err
	}

	existing, err := store.AllQuestions(ctx)
	if err != nil {
		return 0, err
	}
	seen := make(map[string]bool, len(existing))
	for _, q := range existing {
		seen[q.QuestionText] = true
	}

	var errs []error
	created := 0
	for _, qf := range f.Questions {
		if seen[qf.QuestionText] {
			slog.Debug("fixture already loaded", "question_text", qf.QuestionText)
			continue
		}
		seen[qf.QuestionText] = true

		q, err := store.CreateQuestion(ctx, qf.QuestionText, qf.pubDate(now))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		created++

		for _, text := range qf.Choices {
			if _, err := store.AddChoice(ctx, q.ID, text); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return created, errors.Join(errs...)
}
