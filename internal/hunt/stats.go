package hunt

import (
	"sort"
	"time"
)

// StatsReport is a point-in-time aggregate over every known session.
type StatsReport struct {
	TotalPlayers   int     `json:"total_players"`
	ActivePlayers  int     `json:"active_players"`
	CompletedGames int     `json:"completed_games"`
	AverageScore   float64 `json:"average_score"`
}

// LeaderboardEntry projects a finished session for public display. Only the
// last four digits of the phone number are exposed.
type LeaderboardEntry struct {
	Player    string    `json:"player"`
	Score     int       `json:"score"`
	StartTime time.Time `json:"start_time"`
}

const leaderboardSize = 10

// Stats aggregates session counts and the average score of sessions holding
// a full set of completion records.
func (st *Store) Stats(totalClues int) StatsReport {
	var report StatsReport
	var finishedScores int

	for _, s := range st.Snapshot() {
		report.TotalPlayers++
		if s.Started {
			report.ActivePlayers++
		}
		if len(s.Completed) == totalClues {
			report.CompletedGames++
			finishedScores += s.TotalScore
		}
	}
	if report.CompletedGames > 0 {
		report.AverageScore = float64(finishedScores) / float64(report.CompletedGames)
	}
	return report
}

// Leaderboard ranks sessions with a full set of completion records by score,
// highest first, capped at ten entries.
func (st *Store) Leaderboard(totalClues int) []LeaderboardEntry {
	entries := []LeaderboardEntry{}
	for id, s := range st.Snapshot() {
		if len(s.Completed) != totalClues {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			Player:    lastFour(id),
			Score:     s.TotalScore,
			StartTime: s.StartTime,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}
	return entries
}
