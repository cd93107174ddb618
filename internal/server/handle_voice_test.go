package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func postForm(t *testing.T, r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVoiceWebhook(t *testing.T) {
	app, r := newTestApp(t)

	w := postForm(t, r, "/webhook/voice", url.Values{
		"From":       {"+15035550123"},
		"To":         {"+15035550100"},
		"CallSid":    {"CAtest"},
		"CallStatus": {"ringing"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "<Say") || !strings.Contains(body, "<Hangup") {
		t.Errorf("voice reply missing verbs: %q", body)
	}
	if !strings.Contains(body, "played over text message") {
		t.Errorf("voice reply missing game description: %q", body)
	}

	calls := app.History.Calls()
	if len(calls) != 1 {
		t.Fatalf("call history size = %d, want 1", len(calls))
	}
	if calls[0].SID != "CAtest" || calls[0].Direction != "inbound" {
		t.Errorf("recorded call = %+v", calls[0])
	}
}

func TestVoiceGather(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{
			name: "speech",
			form: url.Values{"From": {"+15035550123"}, "SpeechResult": {"hello"}},
			want: "You said: hello",
		},
		{
			name: "digits",
			form: url.Values{"From": {"+15035550123"}, "Digits": {"42"}},
			want: "You pressed: 42",
		},
		{
			name: "nothing",
			form: url.Values{"From": {"+15035550123"}},
			want: "catch that. Thank you for calling!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := newTestApp(t)
			w := postForm(t, r, "/webhook/voice/gather", tt.form)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			if body := w.Body.String(); !strings.Contains(body, tt.want) {
				t.Errorf("gather reply = %q, want it to contain %q", body, tt.want)
			}
		})
	}
}
