// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/tungdo8842/django-polls/auth"
	"github.com/tungdo8842/django-polls/cliparse"
	"github.com/tungdo8842/django-polls/db"
	"github.com/tungdo8842/django-polls/middleware"
	"github.com/tungdo8842/django-polls/models"
)

type VotingHandler struct {
	store *db.Store
	cfg   cliparse.Config
	now   func() time.Time
}

func NewVotingHandler(store *db.Store, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{store: store, cfg: cfg, now: time.Now}
}

// Vote handles POST /questions/{id}/vote
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	q, ok := loadVisible(w, r, h.store, h.now())
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ChoiceID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.NoChoiceMessage)
		return
	}

	err := h.store.Vote(r.Context(), q.ID, req.ChoiceID)
	if errors.Is(err, db.ErrChoiceNotFound) {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.NoChoiceMessage)
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "question_id", q.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	slog.Info("vote recorded",
		"question_id", q.ID,
		"choice_id", req.ChoiceID,
		"voter", auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt),
	)

	h.writeResults(w, r, q)
}

// Results handles GET /questions/{id}/results
func (h *VotingHandler) Results(w http.ResponseWriter, r *http.Request) {
	q, ok := loadVisible(w, r, h.store, h.now())
	if !ok {
		return
	}

	h.writeResults(w, r, q)
}

func (h *VotingHandler) writeResults(w http.ResponseWriter, r *http.Request, q models.Question) {
	choices, err := h.store.ChoicesFor(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", q.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	total := 0
	for _, c := range choices {
		total += c.Votes
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		Question:   q,
		Choices:    choices,
		TotalVotes: total,
	})
}
