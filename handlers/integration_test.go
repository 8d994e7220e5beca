// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tungdo8842/django-polls/models"
	"github.com/tungdo8842/django-polls/testutil"
)

// TestFullPollWorkflow tests the complete end-to-end workflow:
// 1. Create a question scheduled for tomorrow
// 2. Add choices
// 3. Question is hidden from index, detail and voting
// 4. Time passes, question is published
// 5. Vote
// 6. Verify results
func TestFullPollWorkflow(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()

	clock := testNow
	now := func() time.Time { return clock }

	questionHandler := NewQuestionHandler(store, cfg)
	questionHandler.now = now
	votingHandler := NewVotingHandler(store, cfg)
	votingHandler.now = now

	// Step 1: Create a question published tomorrow
	tomorrow := testNow.Add(24 * time.Hour)
	req := testutil.MakeRequest("POST", "/questions", models.CreateQuestionRequest{
		QuestionText: "What's your favourite season?",
		PubDate:      &tomorrow,
	}, nil)
	w := httptest.NewRecorder()
	questionHandler.CreateQuestion(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Create question failed: %d - %s", w.Code, w.Body.String())
	}

	var createResp models.CreateQuestionResponse
	testutil.AssertJSON(t, w, &createResp)
	questionID := createResp.QuestionID
	t.Logf("Step 1 - Created question: %s", questionID)

	// Step 2: Add choices
	choiceIDs := map[string]string{}
	for _, label := range []string{"Spring", "Summer", "Autumn", "Winter"} {
		req := testutil.MakeRequest("POST", "/questions/"+questionID+"/choices",
			models.AddChoiceRequest{ChoiceText: label},
			map[string]string{"X-Admin-Key": createResp.AdminKey})
		req.SetPathValue("id", questionID)
		w := httptest.NewRecorder()
		questionHandler.AddChoice(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Step 2 - Add choice '%s' failed: %d - %s", label, w.Code, w.Body.String())
		}

		var resp models.AddChoiceResponse
		testutil.AssertJSON(t, w, &resp)
		choiceIDs[label] = resp.ChoiceID
	}

	// Step 3: Not yet published
	w = httptest.NewRecorder()
	questionHandler.Index(w, httptest.NewRequest("GET", "/questions", nil))
	var index models.IndexResponse
	testutil.AssertJSON(t, w, &index)
	if len(index.LatestQuestionList) != 0 || index.Message != models.NoPollsMessage {
		t.Fatalf("Step 3 - Expected empty index, got %+v", index)
	}

	req = httptest.NewRequest("GET", "/questions/"+questionID, nil)
	req.SetPathValue("id", questionID)
	w = httptest.NewRecorder()
	questionHandler.Detail(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Step 3 - Expected 404 for unpublished detail, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	votingHandler.Vote(w, voteRequest(questionID, models.VoteRequest{ChoiceID: choiceIDs["Summer"]}))
	if w.Code != http.StatusNotFound {
		t.Fatalf("Step 3 - Expected 404 for unpublished vote, got %d", w.Code)
	}

	// Step 4: Publication time arrives
	clock = tomorrow

	w = httptest.NewRecorder()
	questionHandler.Index(w, httptest.NewRequest("GET", "/questions", nil))
	index = models.IndexResponse{}
	testutil.AssertJSON(t, w, &index)
	if len(index.LatestQuestionList) != 1 || index.LatestQuestionList[0].ID != questionID {
		t.Fatalf("Step 4 - Expected question on index, got %+v", index)
	}
	if !index.LatestQuestionList[0].WasPublishedRecently {
		t.Error("Step 4 - Question published now should be recent")
	}

	// Step 5: Vote
	for _, label := range []string{"Summer", "Summer", "Winter"} {
		w := httptest.NewRecorder()
		votingHandler.Vote(w, voteRequest(questionID, models.VoteRequest{ChoiceID: choiceIDs[label]}))
		if w.Code != http.StatusOK {
			t.Fatalf("Step 5 - Vote for %s failed: %d - %s", label, w.Code, w.Body.String())
		}
	}

	// Step 6: Results
	req = httptest.NewRequest("GET", "/questions/"+questionID+"/results", nil)
	req.SetPathValue("id", questionID)
	w = httptest.NewRecorder()
	votingHandler.Results(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var results models.ResultsResponse
	testutil.AssertJSON(t, w, &results)
	if results.TotalVotes != 3 {
		t.Errorf("Step 6 - Expected 3 votes, got %d", results.TotalVotes)
	}
	for _, c := range results.Choices {
		want := map[string]int{"Summer": 2, "Winter": 1}[c.ChoiceText]
		if c.Votes != want {
			t.Errorf("Step 6 - %s: expected %d votes, got %d", c.ChoiceText, want, c.Votes)
		}
	}

	// A day later the question is still listed but no longer recent
	clock = tomorrow.Add(24 * time.Hour)
	w = httptest.NewRecorder()
	questionHandler.Index(w, httptest.NewRequest("GET", "/questions", nil))
	index = models.IndexResponse{}
	testutil.AssertJSON(t, w, &index)
	if len(index.LatestQuestionList) != 1 || index.LatestQuestionList[0].WasPublishedRecently {
		t.Errorf("Expected question listed and not recent, got %+v", index)
	}
}
