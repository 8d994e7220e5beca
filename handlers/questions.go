// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tungdo8842/django-polls/auth"
	"github.com/tungdo8842/django-polls/cliparse"
	"github.com/tungdo8842/django-polls/db"
	"github.com/tungdo8842/django-polls/middleware"
	"github.com/tungdo8842/django-polls/models"
	"github.com/tungdo8842/django-polls/policy"
)

// IndexLimit is the number of questions shown on the index
const IndexLimit = 5

type QuestionHandler struct {
	store *db.Store
	cfg   cliparse.Config
	now   func() time.Time
}

func NewQuestionHandler(store *db.Store, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{store: store, cfg: cfg, now: time.Now}
}

// Index handles GET /questions
// Lists the latest published questions, newest first
func (h *QuestionHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	all, err := h.store.AllQuestions(r.Context())
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	visible := policy.ListVisible(all, now)
	if len(visible) > IndexLimit {
		visible = visible[:IndexLimit]
	}

	resp := models.IndexResponse{
		LatestQuestionList: make([]models.QuestionSummary, 0, len(visible)),
	}
	for _, q := range visible {
		resp.LatestQuestionList = append(resp.LatestQuestionList, summarize(q, now))
	}
	if len(resp.LatestQuestionList) == 0 {
		resp.Message = models.NoPollsMessage
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Detail handles GET /questions/{id}
// Unpublished questions are reported as missing
func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	q, ok := loadVisible(w, r, h.store, h.now())
	if !ok {
		return
	}

	choices, err := h.store.ChoicesFor(r.Context(), q.ID)
	if err != nil {
		slog.Error("failed to query choices", "error", err, "question_id", q.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionWithChoices{
		Question: q,
		Choices:  choices,
	})
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text := strings.TrimSpace(req.QuestionText)
	if text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text is required")
		return
	}

	pubDate := h.now()
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}

	q, err := h.store.CreateQuestion(r.Context(), text, pubDate)
	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", q.ID, "pub_date", q.PubDate)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		QuestionID: q.ID,
		AdminKey:   auth.GenerateAdminKey(q.ID, h.cfg.AdminKeySalt),
	})
}

// AddChoice handles POST /questions/{id}/choices
// Choices can be added before the question is published
func (h *QuestionHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(questionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.AddChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text := strings.TrimSpace(req.ChoiceText)
	if text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "choice_text is required")
		return
	}

	c, err := h.store.AddChoice(r.Context(), questionID, text)
	if errors.Is(err, policy.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to insert choice", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create choice")
		return
	}

	slog.Info("choice added", "question_id", questionID, "choice_id", c.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AddChoiceResponse{
		ChoiceID: c.ID,
	})
}

// loadVisible resolves the {id} path value to a published question, writing
// a 404 or 500 response when it cannot.
func loadVisible(w http.ResponseWriter, r *http.Request, store *db.Store, now time.Time) (models.Question, bool) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return models.Question{}, false
	}

	q, err := policy.GetVisible(r.Context(), store, questionID, now)
	if errors.Is(err, policy.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return models.Question{}, false
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return models.Question{}, false
	}

	return q, true
}

func summarize(q models.Question, now time.Time) models.QuestionSummary {
	return models.QuestionSummary{
		ID:                   q.ID,
		QuestionText:         q.QuestionText,
		PubDate:              q.PubDate,
		Published:            humanize.RelTime(q.PubDate, now, "ago", "from now"),
		WasPublishedRecently: policy.WasPublishedRecently(q, now),
	}
}
