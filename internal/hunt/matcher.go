package hunt

import (
	"context"
	"strings"
)

// Matcher decides whether free text names the location a clue is looking for.
// Implementations may consult an external judge, so calls take a context.
type Matcher interface {
	Match(ctx context.Context, answer string, accepted []string) bool
}

// SubstringMatcher is the deterministic default: the answer matches when any
// accepted alias appears, case-insensitively, inside the trimmed text.
type SubstringMatcher struct{}

func (SubstringMatcher) Match(_ context.Context, answer string, accepted []string) bool {
	text := strings.ToLower(strings.TrimSpace(answer))
	for _, alias := range accepted {
		if strings.Contains(text, strings.ToLower(alias)) {
			return true
		}
	}
	return false
}
