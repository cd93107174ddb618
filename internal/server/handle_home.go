package server

import "net/http"

// HomeResponse describes the game for anyone poking at the root endpoint.
type HomeResponse struct {
	Message     string            `json:"message"`
	Description string            `json:"description"`
	Clues       int               `json:"clues"`
	Scoring     map[string]int    `json:"scoring"`
	Commands    map[string]string `json:"commands"`
	Endpoints   map[string]string `json:"endpoints"`
}

func handleHome() http.HandlerFunc {
	resp := HomeResponse{
		Message:     "Portland Scavenger Hunt",
		Description: "An SMS game that guides you through 5 iconic Portland locations. Text READY to the game number to play.",
		Clues:       5,
		Scoring: map[string]int{
			"no_hints":    40,
			"one_hint":    30,
			"two_hints":   20,
			"three_hints": 10,
			"consolation": 5,
		},
		Commands: map[string]string{
			"READY":  "start a new hunt",
			"STATUS": "show progress and the current clue",
			"HELP":   "show instructions",
			"QUIT":   "end the game",
		},
		Endpoints: map[string]string{
			"sms_webhook":   "/webhook/sms",
			"voice_webhook": "/webhook/voice",
			"send_sms":      "/send-sms",
			"get_messages":  "/messages",
			"get_calls":     "/calls",
			"game_stats":    "/game-stats",
			"leaderboard":   "/leaderboard",
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}
