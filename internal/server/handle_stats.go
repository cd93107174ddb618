package server

import (
	"net/http"

	"github.com/pdxhunt/scavenger/internal/hunt"
)

const totalClues = 5

// LeaderboardResponse wraps the ranked entries for GET /leaderboard.
type LeaderboardResponse struct {
	Leaderboard []hunt.LeaderboardEntry `json:"leaderboard"`
	Count       int                     `json:"count"`
}

func handleGameStats(store *hunt.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.Stats(totalClues))
	}
}

func handleLeaderboard(store *hunt.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := store.Leaderboard(totalClues)
		writeJSON(w, http.StatusOK, LeaderboardResponse{
			Leaderboard: entries,
			Count:       len(entries),
		})
	}
}
