// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Question: question_text and the pub_date it becomes public at
  - Choice: an answer to a question with its vote count

# Request Types

  - CreateQuestionRequest: question_text, optional pub_date (RFC 3339)
  - AddChoiceRequest: choice_text
  - VoteRequest: choice_id

# Response Types

  - CreateQuestionResponse: question_id, admin_key
  - AddChoiceResponse: choice_id
  - IndexResponse: latest_question_list, message
  - QuestionWithChoices: question, choices
  - ResultsResponse: question, choices, total_votes
  - ErrorResponse: error, message

# Messages

	NoPollsMessage  = "No polls are available."
	NoChoiceMessage = "You didn't select a choice."
*/
package models
