package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pdxhunt/scavenger/internal/hunt"
)

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// seedFinished fills a session as if the player had finished all five clues.
func seedFinished(store *hunt.Store, playerID string, score int) {
	s := store.Get(playerID)
	s.Started = true
	s.TotalScore = score
	s.StartTime = time.Now()
	for id := 1; id <= 5; id++ {
		s.Completed = append(s.Completed, hunt.Completion{ClueID: id, Points: score / 5})
	}
}

func TestGameStats(t *testing.T) {
	app, r := newTestApp(t)

	mid := app.Store.Get("+15035550130")
	mid.Started = true
	mid.CurrentClue = 3
	seedFinished(app.Store, "+15035550131", 200)
	seedFinished(app.Store, "+15035550132", 120)

	w := get(t, r, "/game-stats")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var stats hunt.StatsReport
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if stats.TotalPlayers != 3 || stats.ActivePlayers != 3 || stats.CompletedGames != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AverageScore != 160 {
		t.Errorf("average = %v, want 160", stats.AverageScore)
	}
}

func TestLeaderboardEndpoint(t *testing.T) {
	app, r := newTestApp(t)

	seedFinished(app.Store, "+15035551111", 120)
	seedFinished(app.Store, "+15035552222", 200)
	partial := app.Store.Get("+15035553333")
	partial.Started = true
	partial.TotalScore = 400

	w := get(t, r, "/leaderboard")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp LeaderboardResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Count != 2 || len(resp.Leaderboard) != 2 {
		t.Fatalf("leaderboard = %+v", resp)
	}
	if resp.Leaderboard[0].Score != 200 || resp.Leaderboard[0].Player != "2222" {
		t.Errorf("top entry = %+v", resp.Leaderboard[0])
	}
	if resp.Leaderboard[1].Score != 120 {
		t.Errorf("second entry = %+v", resp.Leaderboard[1])
	}
}

func TestMessagesAndCallsEndpoints(t *testing.T) {
	app, r := newTestApp(t)

	app.History.AddMessage(MessageRecord{SID: "SM1", From: "+15035550123", Body: "ready", Direction: "inbound", Timestamp: time.Now()})
	app.History.AddCall(CallRecord{SID: "CA1", From: "+15035550123", Status: "completed", Direction: "inbound", Timestamp: time.Now()})

	var msgs MessagesResponse
	if err := json.NewDecoder(get(t, r, "/messages").Body).Decode(&msgs); err != nil {
		t.Fatalf("decoding messages: %v", err)
	}
	if msgs.Count != 1 || msgs.Messages[0].SID != "SM1" {
		t.Errorf("messages = %+v", msgs)
	}

	var calls CallsResponse
	if err := json.NewDecoder(get(t, r, "/calls").Body).Decode(&calls); err != nil {
		t.Fatalf("decoding calls: %v", err)
	}
	if calls.Count != 1 || calls.Calls[0].SID != "CA1" {
		t.Errorf("calls = %+v", calls)
	}
}

func TestHome(t *testing.T) {
	_, r := newTestApp(t)

	w := get(t, r, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var home HomeResponse
	if err := json.NewDecoder(w.Body).Decode(&home); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if home.Clues != 5 {
		t.Errorf("clues = %d, want 5", home.Clues)
	}
	if home.Scoring["no_hints"] != 40 || home.Scoring["three_hints"] != 10 {
		t.Errorf("scoring = %+v", home.Scoring)
	}
	if home.Endpoints["sms_webhook"] != "/webhook/sms" {
		t.Errorf("endpoints = %+v", home.Endpoints)
	}
}

func TestHealth(t *testing.T) {
	_, r := newTestApp(t)

	w := get(t, r, "/healthz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Status != "ok" || resp.Telephony != "disabled" {
		t.Errorf("health = %+v", resp)
	}
}
