package server

import "net/http"

// HealthResponse reports liveness plus which optional integrations are
// active. There are no external dependencies to ping; game state is
// in-memory.
type HealthResponse struct {
	Status    string `json:"status"`
	Telephony string `json:"telephony"`
}

func handleHealth(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "ok", Telephony: "disabled"}
		if app.Telephony.Configured() {
			resp.Telephony = "configured"
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
