package hunt

import "time"

const maxHints = 3

// Completion records the outcome of a single clue.
type Completion struct {
	ClueID    int `json:"clue_id"`
	Points    int `json:"points_earned"`
	HintsUsed int `json:"hints_used"`
}

// Session is one player's progress, keyed by phone number in the store.
// CurrentClue is 0 before the game starts and 1-based while active.
type Session struct {
	CurrentClue  int
	TotalScore   int
	HintsUsed    int
	Started      bool
	Completed    []Completion
	StartTime    time.Time
	LastActivity time.Time
}

// begin puts the session at clue 1 with a clean slate. Restarting mid-game
// wipes any earlier progress.
func (s *Session) begin(now time.Time) {
	s.Started = true
	s.CurrentClue = 1
	s.TotalScore = 0
	s.HintsUsed = 0
	s.Completed = nil
	s.StartTime = now
	s.LastActivity = now
}

// useHint consumes one hint and returns the index of the hint to reveal.
// Reports false once all three are spent; the count never exceeds maxHints.
func (s *Session) useHint() (int, bool) {
	if s.HintsUsed >= maxHints {
		s.HintsUsed = maxHints
		return 0, false
	}
	idx := s.HintsUsed
	s.HintsUsed++
	return idx, true
}

// complete closes out the current clue: appends the completion record, adds
// the points, advances to the next clue and resets the hint counter.
func (s *Session) complete(clueID, points int) {
	s.Completed = append(s.Completed, Completion{
		ClueID:    clueID,
		Points:    points,
		HintsUsed: s.HintsUsed,
	})
	s.TotalScore += points
	s.CurrentClue++
	s.HintsUsed = 0
}

// finished reports whether the session has advanced past the given number
// of clues.
func (s *Session) finished(totalClues int) bool {
	return s.CurrentClue > totalClues
}
