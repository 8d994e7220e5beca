// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/tungdo8842/django-polls/cliparse"
	"github.com/tungdo8842/django-polls/db"
	"github.com/tungdo8842/django-polls/handlers"
	"github.com/tungdo8842/django-polls/middleware"
)

func NewRouter(store *db.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	questionHandler := handlers.NewQuestionHandler(store, cfg)
	votingHandler := handlers.NewVotingHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public views (published questions only)
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.Index))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(questionHandler.Detail))
	mux.HandleFunc("GET /questions/{id}/results", middleware.WithLogging(votingHandler.Results))
	mux.HandleFunc("POST /questions/{id}/vote", middleware.WithLogging(votingHandler.Vote))

	// Authoring
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.CreateQuestion))
	mux.HandleFunc("POST /questions/{id}/choices", middleware.WithLogging(questionHandler.AddChoice))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("django-polls API v1"))
	})

	return mux
}
