// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/campus-events/metrics"
	"github.com/danielhkuo/campus-events/models"
	"github.com/danielhkuo/campus-events/testutil"
)

// TestConcurrentVotes verifies that simultaneous submissions for the same
// option are all counted
func TestConcurrentVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewVotingHandler(db, testutil.GetTestConfig(), metrics.New())

	sessionID, opts := testutil.CreateTestSession(t, db, "Crowd favorite?", true, "A", "B")

	numVoters := 40
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			body := map[string]int64{"session_id": sessionID, "option_id": opts[0]}
			w := httptest.NewRecorder()
			h.SubmitVote(w, testutil.MakeRequest("POST", "/api/votes", body, nil))

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful submissions, got %d", numVoters, successCount.Load())
	}
	if got := testutil.GetVoteCount(t, db, opts[0]); got != int64(numVoters) {
		t.Errorf("Lost updates: expected %d votes, got %d", numVoters, got)
	}
	if got := testutil.GetVoteCount(t, db, opts[1]); got != 0 {
		t.Errorf("Expected untouched option to stay at 0, got %d", got)
	}
}

// TestConcurrentVotesWhileClosing races voters against an admin closing the
// session. Every accepted vote must be in the final count and no vote may
// land after the close is observed.
func TestConcurrentVotesWhileClosing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	votingHandler := NewVotingHandler(db, testutil.GetTestConfig(), nil)
	adminHandler := NewAdminHandler(db, testutil.GetTestConfig())

	sessionID, opts := testutil.CreateTestSession(t, db, "Race?", true, "A", "B")

	numVoters := 30
	var accepted, refused atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			body := map[string]int64{"session_id": sessionID, "option_id": opts[i%2]}
			w := httptest.NewRecorder()
			votingHandler.SubmitVote(w, testutil.MakeRequest("POST", "/api/votes", body, nil))

			switch w.Code {
			case http.StatusOK:
				accepted.Add(1)
			case http.StatusForbidden:
				refused.Add(1)
			}
		}(i)

		if i == numVoters/2 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.NewRecorder()
				adminHandler.CloseSession(w, withID(httptest.NewRequest("POST", "/api/admin/voting/1/close", nil), sessionID))
				if w.Code != http.StatusOK {
					t.Errorf("Close failed with %d", w.Code)
				}
			}()
		}
	}

	wg.Wait()

	if int(accepted.Load()+refused.Load()) != numVoters {
		t.Errorf("Expected every vote to be accepted or refused, got %d + %d", accepted.Load(), refused.Load())
	}

	total := testutil.GetVoteCount(t, db, opts[0]) + testutil.GetVoteCount(t, db, opts[1])
	if total != int64(accepted.Load()) {
		t.Errorf("Stored total %d does not match %d accepted votes", total, accepted.Load())
	}

	// Session is closed now; further votes are refused
	w := httptest.NewRecorder()
	votingHandler.SubmitVote(w, testutil.MakeRequest("POST", "/api/votes",
		models.SubmitVoteRequest{SessionID: &sessionID, OptionID: &opts[0]}, nil))
	testutil.AssertStatus(t, w, http.StatusForbidden)
}
