// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// NoPollsMessage is shown on the index when nothing is published yet.
const NoPollsMessage = "No polls are available."

// NoChoiceMessage is returned when a vote names no valid choice.
const NoChoiceMessage = "You didn't select a choice."

// Domain types

type Question struct {
	ID           string    `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

type Choice struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

// Request types

// PubDate is optional and defaults to the time of the request.
type CreateQuestionRequest struct {
	QuestionText string     `json:"question_text"`
	PubDate      *time.Time `json:"pub_date,omitempty"`
}

type AddChoiceRequest struct {
	ChoiceText string `json:"choice_text"`
}

type VoteRequest struct {
	ChoiceID string `json:"choice_id"`
}

// Response types

type CreateQuestionResponse struct {
	QuestionID string `json:"question_id"`
	AdminKey   string `json:"admin_key"`
}

type AddChoiceResponse struct {
	ChoiceID string `json:"choice_id"`
}

// QuestionSummary is one row of the index listing.
type QuestionSummary struct {
	ID                   string    `json:"id"`
	QuestionText         string    `json:"question_text"`
	PubDate              time.Time `json:"pub_date"`
	Published            string    `json:"published"` // e.g. "3 days ago"
	WasPublishedRecently bool      `json:"was_published_recently"`
}

type IndexResponse struct {
	LatestQuestionList []QuestionSummary `json:"latest_question_list"`
	Message            string            `json:"message,omitempty"`
}

type QuestionWithChoices struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

type ResultsResponse struct {
	Question   Question `json:"question"`
	Choices    []Choice `json:"choices"`
	TotalVotes int      `json:"total_votes"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
