// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/danielhkuo/campus-events/auth"
	"github.com/danielhkuo/campus-events/models"
	"github.com/danielhkuo/campus-events/store"
	"github.com/danielhkuo/campus-events/testutil"
)

func withID(req *http.Request, id int64) *http.Request {
	req.SetPathValue("id", strconv.FormatInt(id, 10))
	return req
}

func TestLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(db, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	h.Login(w, testutil.MakeRequest("POST", "/api/admin/login",
		models.LoginRequest{Password: testutil.TestAdminPassword}, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.LoginResponse
	testutil.AssertJSON(t, w, &resp)

	if !resp.Success || resp.Token != testutil.TestAdminToken {
		t.Errorf("Unexpected login response: %+v", resp)
	}
}

func TestLogin_DerivedToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cfg.AdminToken = ""
	h := NewAdminHandler(db, cfg)

	if h.Token() != auth.DeriveAdminToken(cfg.AdminPassword) {
		t.Fatalf("Expected token derived from password, got %q", h.Token())
	}

	// Same password, same token across restarts
	if again := NewAdminHandler(db, cfg); again.Token() != h.Token() {
		t.Error("Derived token is not stable")
	}
}

func TestLogin_Failures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(db, testutil.GetTestConfig())

	testCases := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantErr    string
	}{
		{"wrong password", models.LoginRequest{Password: "guess"}, http.StatusUnauthorized, "Invalid password"},
		{"empty password", models.LoginRequest{}, http.StatusUnauthorized, "Invalid password"},
		{"token instead of password", models.LoginRequest{Password: testutil.TestAdminToken}, http.StatusUnauthorized, "Invalid password"},
		{"not JSON", "password", http.StatusBadRequest, "Invalid JSON"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Login(w, testutil.MakeRequest("POST", "/api/admin/login", tc.body, nil))

			testutil.AssertStatus(t, w, tc.wantStatus)
			testutil.AssertError(t, w, tc.wantErr)
		})
	}
}

func TestCreateEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(db, testutil.GetTestConfig())

	req := models.EventRequest{
		Title:         "Pumpkin Carving",
		Description:   "Bring a knife",
		EventDatetime: "2026-10-30T19:30",
		Location:      "Quad",
	}

	w := httptest.NewRecorder()
	h.CreateEvent(w, testutil.MakeRequest("POST", "/api/admin/events", req, testutil.AdminHeaders()))

	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreatedResponse
	testutil.AssertJSON(t, w, &created)
	if !created.Success || created.ID <= 0 {
		t.Fatalf("Unexpected create response: %+v", created)
	}

	event, err := store.NewEventStore(db).Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Failed to load created event: %v", err)
	}

	want := time.Date(2026, 10, 30, 19, 30, 0, 0, time.UTC)
	if !event.EventDatetime.Equal(want) {
		t.Errorf("Expected event_datetime %v, got %v", want, event.EventDatetime)
	}
	if event.EventType != models.DefaultEventType || event.Track != models.DefaultTrack || event.Status != models.StatusPublished {
		t.Errorf("Expected defaults to be applied, got %+v", event)
	}
}

func TestCreateEvent_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(db, testutil.GetTestConfig())

	testCases := []struct {
		name    string
		body    interface{}
		wantErr string
	}{
		{"not JSON", "nope", "Invalid JSON"},
		{"missing title", models.EventRequest{EventDatetime: "2026-10-30T19:30"}, "title and event_datetime are required"},
		{"blank title", models.EventRequest{Title: "   ", EventDatetime: "2026-10-30T19:30"}, "title and event_datetime are required"},
		{"missing datetime", models.EventRequest{Title: "Party"}, "title and event_datetime are required"},
		{"bad datetime", models.EventRequest{Title: "Party", EventDatetime: "next friday"}, "Invalid event_datetime"},
		{"bad status", models.EventRequest{Title: "Party", EventDatetime: "2026-10-30T19:30", Status: "archived"}, "status must be draft or published"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.CreateEvent(w, testutil.MakeRequest("POST", "/api/admin/events", tc.body, nil))

			testutil.AssertStatus(t, w, http.StatusBadRequest)
			testutil.AssertError(t, w, tc.wantErr)
		})
	}

	var count int
	db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&count)
	if count != 0 {
		t.Errorf("Rejected requests inserted %d events", count)
	}
}

func TestUpdateEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(db, testutil.GetTestConfig())

	id := testutil.CreateTestEvent(t, db, "Draft title", time.Now(), models.StatusDraft)

	body := models.EventRequest{
		Title:         "Final title",
		EventDatetime: "2026-11-05T18:00:00Z",
		Location:      "Gym",
		EventType:     "talk",
		Track:         "community",
		Status:        models.StatusPublished,
	}

	w := httptest.NewRecorder()
	h.UpdateEvent(w, withID(testutil.MakeRequest("PUT", "/api/admin/events/1", body, nil), id))

	testutil.AssertStatus(t, w, http.StatusOK)

	event, err := store.NewEventStore(db).Get(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if event.Title != "Final title" || event.Location != "Gym" || event.EventType != "talk" ||
		event.Track != "community" || event.Status != models.StatusPublished {
		t.Errorf("Event not updated: %+v", event)
	}
}

func TestUpdateEvent_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(db, testutil.GetTestConfig())

	body := models.EventRequest{Title: "Ghost", EventDatetime: "2026-11-05T18:00"}

	w := httptest.NewRecorder()
	h.UpdateEvent(w, withID(testutil.MakeRequest("PUT", "/api/admin/events/404", body, nil), 404))

	testutil.AssertStatus(t, w, http.StatusNotFound)
	testutil.AssertError(t, w, "Event not found")
}

func TestDeleteEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(db, testutil.GetTestConfig())

	id := testutil.CreateTestEvent(t, db, "Cancelled", time.Now(), models.StatusPublished)

	w := httptest.NewRecorder()
	h.DeleteEvent(w, withID(httptest.NewRequest("DELETE", "/api/admin/events/1", nil), id))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Second delete has nothing left to remove
	w = httptest.NewRecorder()
	h.DeleteEvent(w, withID(httptest.NewRequest("DELETE", "/api/admin/events/1", nil), id))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestCreateSession(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(db, testutil.GetTestConfig())

	body := models.CreateSessionRequest{
		Question: "Best costume?",
		Options:  []string{"Vampire", "Robot", "Ghost"},
		IsActive: true,
	}

	w := httptest.NewRecorder()
	h.CreateSession(w, testutil.MakeRequest("POST", "/api/admin/voting", body, nil))

	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreatedResponse
	testutil.AssertJSON(t, w, &created)

	res, err := store.NewVotingStore(db).GetSession(context.Background(), created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Session.IsActive || len(res.Options) != 3 || res.Options[2].OptionText != "Ghost" {
		t.Errorf("Unexpected session: %+v", res)
	}
}

func TestCreateSession_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(db, testutil.GetTestConfig())

	testCases := []struct {
		name string
		body models.CreateSessionRequest
	}{
		{"no question", models.CreateSessionRequest{Options: []string{"a", "b"}}},
		{"one option", models.CreateSessionRequest{Question: "Q", Options: []string{"a"}}},
		{"blank options", models.CreateSessionRequest{Question: "Q", Options: []string{"a", "  "}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.CreateSession(w, testutil.MakeRequest("POST", "/api/admin/voting", tc.body, nil))

			testutil.AssertStatus(t, w, http.StatusBadRequest)
			testutil.AssertError(t, w, "question and at least two options are required")
		})
	}
}

func TestOpenCloseSession(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAdminHandler(db, testutil.GetTestConfig())
	votes := store.NewVotingStore(db)

	sessionID, opts := testutil.CreateTestSession(t, db, "Q", false, "A", "B")
	testutil.SetVoteCount(t, db, opts[0], 3)

	w := httptest.NewRecorder()
	h.OpenSession(w, withID(httptest.NewRequest("POST", "/api/admin/voting/1/open", nil), sessionID))
	testutil.AssertStatus(t, w, http.StatusOK)

	res, _ := votes.GetSession(context.Background(), sessionID)
	if !res.Session.IsActive {
		t.Error("Expected session to be open")
	}

	w = httptest.NewRecorder()
	h.CloseSession(w, withID(httptest.NewRequest("POST", "/api/admin/voting/1/close", nil), sessionID))
	testutil.AssertStatus(t, w, http.StatusOK)

	res, _ = votes.GetSession(context.Background(), sessionID)
	if res.Session.IsActive {
		t.Error("Expected session to be closed")
	}
	if res.TotalVotes != 3 {
		t.Errorf("Closing must keep counts, got total %d", res.TotalVotes)
	}

	w = httptest.NewRecorder()
	h.CloseSession(w, withID(httptest.NewRequest("POST", "/api/admin/voting/77/close", nil), 77))
	testutil.AssertStatus(t, w, http.StatusNotFound)
	testutil.AssertError(t, w, "Session not found")
}
