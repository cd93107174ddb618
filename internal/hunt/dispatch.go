package hunt

import (
	"context"
	"strings"
)

const helpMessage = `🎯 Portland Scavenger Hunt Help

Commands:
• READY - Start a new hunt
• STATUS - See your progress and current clue
• QUIT - End your game
• HELP - Show this message

Answer each clue by texting the name of the location. Wrong answers earn hints, and hints cost points:
• No hints: 40 points
• 1 hint: 30 points
• 2 hints: 20 points
• 3 hints: 10 points

Good luck, explorer! 🌲`

const farewellMessage = "Thanks for playing the Portland Scavenger Hunt! Text 'READY' anytime to start a new adventure. 👋🌲"

// Dispatch maps one inbound message to exactly one engine operation.
// Commands are matched case-insensitively on the trimmed text; anything
// else is treated as an answer attempt, empty text included.
func (e *Engine) Dispatch(ctx context.Context, playerID, body string) string {
	switch strings.ToLower(strings.TrimSpace(body)) {
	case "ready", "start", "begin", "play":
		return e.Start(playerID)
	case "status", "score", "progress":
		return e.Status(playerID)
	case "help", "info", "instructions":
		return helpMessage
	case "quit", "stop", "exit":
		e.Quit(playerID)
		return farewellMessage
	default:
		return e.Answer(ctx, playerID, body)
	}
}
