// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Public (questions with a future pub_date answer 404):

	GET  /questions               - Latest published questions
	GET  /questions/{id}          - Question and its choices
	GET  /questions/{id}/results  - Vote counts
	POST /questions/{id}/vote     - Vote for a choice

Authoring:

	POST /questions               - Create question (returns admin_key)
	POST /questions/{id}/choices  - Add choice (requires X-Admin-Key)
*/
package router
