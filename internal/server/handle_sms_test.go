package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/pdxhunt/scavenger/internal/hunt"
	"github.com/pdxhunt/scavenger/internal/telephony"
)

func testDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApp(t *testing.T) (*App, *chi.Mux) {
	t.Helper()

	logger := testDiscardLogger()
	store := hunt.NewStore()
	app := &App{
		Logger:    logger,
		Engine:    hunt.NewEngine(store, hunt.SubstringMatcher{}, hunt.PortlandClues(), logger),
		Store:     store,
		History:   NewHistory(),
		Telephony: telephony.NewClient("", "", ""),
		Validator: telephony.NewRequestValidator(""),
	}

	r := chi.NewRouter()
	addRoutes(r, app)
	return app, r
}

func postSMS(t *testing.T, r http.Handler, from, body string) *httptest.ResponseRecorder {
	t.Helper()

	form := url.Values{}
	if from != "" {
		form.Set("From", from)
	}
	form.Set("To", "+15035550100")
	form.Set("Body", body)
	form.Set("MessageSid", "SMtest")

	req := httptest.NewRequest(http.MethodPost, "/webhook/sms", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSMSWebhookStart(t *testing.T) {
	_, r := newTestApp(t)

	w := postSMS(t, r, "+15035550123", "READY")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "xml") {
		t.Errorf("content-type = %q, want xml", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<Response>") || !strings.Contains(body, "<Message>") {
		t.Errorf("reply is not messaging markup: %q", body)
	}
	if !strings.Contains(body, "Welcome to the Portland Scavenger Hunt") {
		t.Errorf("reply missing welcome text: %q", body)
	}
}

func TestSMSWebhookFullGame(t *testing.T) {
	_, r := newTestApp(t)
	player := "+15035550124"

	postSMS(t, r, player, "ready")
	var final string
	for _, clue := range hunt.PortlandClues() {
		final = postSMS(t, r, player, clue.Answers[0]).Body.String()
	}

	if !strings.Contains(final, "Final Score: 200 points") {
		t.Errorf("final reply = %q, want 200 points", final)
	}

	// A fresh status after the summary shows the game reset.
	status := postSMS(t, r, player, "status").Body.String()
	if !strings.Contains(status, "Ready to explore Portland") {
		t.Errorf("post-game status = %q, want not-started prompt", status)
	}
}

func TestSMSWebhookMalformedStillTwiML(t *testing.T) {
	_, r := newTestApp(t)

	// No From field at all.
	w := postSMS(t, r, "", "READY")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even for malformed payloads", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<Message>") {
		t.Errorf("error reply is not messaging markup: %q", body)
	}
	if !strings.Contains(body, "Sorry, I encountered an error") {
		t.Errorf("error reply missing apology: %q", body)
	}
}

func TestSMSWebhookRecordsHistory(t *testing.T) {
	app, r := newTestApp(t)

	postSMS(t, r, "+15035550125", "hello there")

	msgs := app.History.Messages()
	if len(msgs) != 1 {
		t.Fatalf("history size = %d, want 1", len(msgs))
	}
	m := msgs[0]
	if m.From != "+15035550125" || m.Body != "hello there" || m.Direction != "inbound" || m.SID != "SMtest" {
		t.Errorf("recorded message = %+v", m)
	}
}

func TestSMSWebhookHelp(t *testing.T) {
	_, r := newTestApp(t)

	body := postSMS(t, r, "+15035550126", "help").Body.String()
	if !strings.Contains(body, "Portland Scavenger Hunt Help") {
		t.Errorf("help reply = %q", body)
	}
}

func TestSMSWebhookQuit(t *testing.T) {
	_, r := newTestApp(t)
	player := "+15035550127"

	postSMS(t, r, player, "ready")
	body := postSMS(t, r, player, "quit").Body.String()
	if !strings.Contains(body, "Thanks for playing") {
		t.Errorf("quit reply = %q", body)
	}

	status := postSMS(t, r, player, "status").Body.String()
	if !strings.Contains(status, "Ready to explore Portland") {
		t.Errorf("status after quit = %q", status)
	}
}
