// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tungdo8842/django-polls/models"
	"github.com/tungdo8842/django-polls/policy"
)

// ErrChoiceNotFound is returned when a choice does not exist or belongs to a
// different question.
var ErrChoiceNotFound = errors.New("choice not found")

// Store reads and writes questions and choices.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateQuestion inserts a question. pubDate is stored in UTC.
func (s *Store) CreateQuestion(ctx context.Context, text string, pubDate time.Time) (models.Question, error) {
	q := models.Question{
		ID:           uuid.NewString(),
		QuestionText: text,
		PubDate:      pubDate.UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO question (id, question_text, pub_date)
		VALUES ($1, $2, $3)
	`, q.ID, q.QuestionText, q.PubDate)
	if err != nil {
		return models.Question{}, fmt.Errorf("insert question: %w", err)
	}

	return q, nil
}

// QuestionByID returns policy.ErrNotFound when no question has the id.
func (s *Store) QuestionByID(ctx context.Context, id string) (models.Question, error) {
	var q models.Question
	err := s.db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1
	`, id).Scan(&q.ID, &q.QuestionText, &q.PubDate)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, policy.ErrNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("query question: %w", err)
	}

	q.PubDate = q.PubDate.UTC()
	return q, nil
}

// AllQuestions returns every stored question, published or not, in no
// particular order.
func (s *Store) AllQuestions(ctx context.Context) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
	`)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.PubDate = q.PubDate.UTC()
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	return questions, nil
}

// AddChoice attaches a new choice to an existing question.
func (s *Store) AddChoice(ctx context.Context, questionID, text string) (models.Choice, error) {
	if _, err := s.QuestionByID(ctx, questionID); err != nil {
		return models.Choice{}, err
	}

	c := models.Choice{
		ID:         uuid.NewString(),
		QuestionID: questionID,
		ChoiceText: text,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO choice (id, question_id, choice_text, votes)
		VALUES ($1, $2, $3, 0)
	`, c.ID, c.QuestionID, c.ChoiceText)
	if err != nil {
		return models.Choice{}, fmt.Errorf("insert choice: %w", err)
	}

	return c, nil
}

// ChoicesFor lists a question's choices ordered by text.
func (s *Store) ChoicesFor(ctx context.Context, questionID string) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY choice_text, id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate choices: %w", err)
	}

	return choices, nil
}

// Vote adds one vote to a choice of the given question. The increment happens
// in the database so concurrent votes are never lost.
func (s *Store) Vote(ctx context.Context, questionID, choiceID string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("update votes: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update votes: %w", err)
	}
	if n == 0 {
		return ErrChoiceNotFound
	}

	return nil
}
