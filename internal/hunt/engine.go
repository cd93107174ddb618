package hunt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const consolationPoints = 5

// pointsFor maps hints consumed on a clue to the award for solving it.
func pointsFor(hintsUsed int) int {
	switch hintsUsed {
	case 0:
		return 40
	case 1:
		return 30
	case 2:
		return 20
	default:
		return 10
	}
}

const welcomeMessage = `🎯 Welcome to the Portland Scavenger Hunt! 🌲

You'll visit 5 amazing Portland locations. Answer correctly to earn points:
• First try: 40 points
• With 1 hint: 30 points
• With 2 hints: 20 points
• With 3 hints: 10 points

Let's begin your adventure!

`

const startPrompt = "Send 'READY' to start the Portland Scavenger Hunt! 🎯"

// Engine advances players through the clue sequence, scores answers and
// composes every reply the player sees. It owns no sessions itself; all
// state lives in the store.
type Engine struct {
	store   *Store
	matcher Matcher
	clues   []Clue
	logger  *slog.Logger
}

func NewEngine(store *Store, matcher Matcher, clues []Clue, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{store: store, matcher: matcher, clues: clues, logger: logger}
}

// Start begins (or restarts) the hunt and returns the welcome text followed
// by the first clue.
func (e *Engine) Start(playerID string) string {
	sess := e.store.Get(playerID)
	sess.begin(time.Now())
	e.logger.Info("game started", "player", lastFour(playerID))
	return welcomeMessage + e.clues[0].Prompt
}

// Status reports the player's position without changing any state.
func (e *Engine) Status(playerID string) string {
	sess := e.store.Get(playerID)
	if !sess.Started {
		return "🎯 Ready to explore Portland? Send 'READY' to start the scavenger hunt!"
	}
	if sess.finished(len(e.clues)) {
		return "🏆 Game completed! Send 'READY' to play again!"
	}
	clue := e.clues[sess.CurrentClue-1]
	return fmt.Sprintf(`📊 Current Status:
• Clue: %d/%d
• Score: %d points
• Hints used this clue: %d/%d

Current clue: %s`, sess.CurrentClue, len(e.clues), sess.TotalScore, sess.HintsUsed, maxHints, clue.Prompt)
}

// Answer evaluates free text against the player's current clue. A match
// scores by hints used and advances; a miss reveals the next hint until all
// three are spent, after which the answer is revealed for 5 consolation
// points and the game moves on.
func (e *Engine) Answer(ctx context.Context, playerID, text string) string {
	sess := e.store.Get(playerID)
	if !sess.Started {
		return startPrompt
	}
	if sess.finished(len(e.clues)) {
		return e.finalScore(playerID, sess)
	}
	clue := e.clues[sess.CurrentClue-1]

	if e.matcher.Match(ctx, text, clue.Answers) {
		points := pointsFor(sess.HintsUsed)
		sess.complete(clue.ID, points)
		e.logger.Info("correct answer", "player", lastFour(playerID), "clue", clue.ID, "points", points)
		reply := fmt.Sprintf("🎉 Correct! You earned %d points!\n\n", points)
		return reply + e.afterAdvance(playerID, sess)
	}

	if idx, ok := sess.useHint(); ok {
		return fmt.Sprintf("❌ Not quite right! Here's a hint:\n\n%s\n\nTry again! 🤔", clue.Hints[idx])
	}

	// Hints exhausted: reveal the answer, award consolation points, move on.
	sess.complete(clue.ID, consolationPoints)
	e.logger.Info("clue revealed", "player", lastFour(playerID), "clue", clue.ID)
	reply := fmt.Sprintf("❌ The answer was: %s\nYou get %d consolation points! 💪\n\n", clue.Answers[0], consolationPoints)
	return reply + e.afterAdvance(playerID, sess)
}

// Quit discards the player's session without reporting any score.
func (e *Engine) Quit(playerID string) {
	e.store.Delete(playerID)
	e.logger.Info("player quit", "player", lastFour(playerID))
}

// afterAdvance composes what follows a completed clue: either the next
// prompt or the final summary.
func (e *Engine) afterAdvance(playerID string, sess *Session) string {
	if sess.finished(len(e.clues)) {
		return e.finalScore(playerID, sess)
	}
	next := e.clues[sess.CurrentClue-1]
	return fmt.Sprintf("📍 Clue %d/%d:\n\n%s", sess.CurrentClue, len(e.clues), next.Prompt)
}

// finalScore composes the end-of-game summary and resets the session to
// fresh defaults. Once this returns, the score is gone.
func (e *Engine) finalScore(playerID string, sess *Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏆 Congratulations! You've completed the Portland Scavenger Hunt!\n\nFinal Score: %d points\n\nYour Performance:\n", sess.TotalScore)
	for _, c := range sess.Completed {
		fmt.Fprintf(&b, "• Clue %d: %d points (%d hints used)\n", c.ClueID, c.Points, c.HintsUsed)
	}
	fmt.Fprintf(&b, "\nRank: %s\n\nThanks for exploring Portland! Send 'READY' to play again! 🌲", rankFor(sess.TotalScore))

	e.logger.Info("game completed", "player", lastFour(playerID), "score", sess.TotalScore)
	e.store.Reset(playerID)
	return b.String()
}

func rankFor(score int) string {
	switch {
	case score >= 180:
		return "🥇 Portland Expert!"
	case score >= 150:
		return "🥈 City Explorer!"
	case score >= 100:
		return "🥉 Tourist Guide!"
	default:
		return "🎯 Adventure Seeker!"
	}
}

// lastFour truncates a phone number for logs and the leaderboard.
func lastFour(playerID string) string {
	if len(playerID) <= 4 {
		return playerID
	}
	return playerID[len(playerID)-4:]
}
