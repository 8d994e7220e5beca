// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the polls API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - QuestionHandler: index, detail, question and choice creation
  - VotingHandler: voting and results

	questionHandler := handlers.NewQuestionHandler(store, cfg)

Handlers read the clock once per request and pass that instant to package
policy, so a single request never sees two different "now" values.

# Visibility

	GET /questions          → Index (newest 5 published, "No polls are available." when empty)
	GET /questions/{id}     → Detail
	GET /questions/{id}/results → Results
	POST /questions/{id}/vote   → Vote

A question whose pub_date is in the future answers 404 on every public route,
exactly like an id that does not exist.

# Authoring

	POST /questions              → CreateQuestion (returns admin_key)
	POST /questions/{id}/choices → AddChoice (requires X-Admin-Key)

Choices may be added while a question is still scheduled.
*/
package handlers
