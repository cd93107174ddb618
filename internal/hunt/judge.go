package hunt

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// JudgeConfig configures the delegated OpenAI answer judge.
type JudgeConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
	// BaseURL overrides the API endpoint, used by tests.
	BaseURL string
	Logger  *slog.Logger
}

// OpenAIJudge asks a chat model whether an answer refers to one of the
// accepted locations. The model is constrained to reply CORRECT or INCORRECT;
// anything else, and any transport error or timeout, falls back to substring
// matching for that single call. The judge is one-shot: no retries.
type OpenAIJudge struct {
	client   openai.Client
	model    openai.ChatModel
	timeout  time.Duration
	fallback SubstringMatcher
	logger   *slog.Logger
}

func NewOpenAIJudge(cfg JudgeConfig) *OpenAIJudge {
	// One-shot calls only: a flaky judge falls back instead of retrying.
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey), option.WithMaxRetries(0)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &OpenAIJudge{
		client:  openai.NewClient(opts...),
		model:   openai.ChatModel(cfg.Model),
		timeout: cfg.Timeout,
		logger:  cfg.Logger,
	}
}

func (j *OpenAIJudge) Match(ctx context.Context, answer string, accepted []string) bool {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	resp, err := j.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: j.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(judgePrompt(answer, accepted)),
		},
		MaxTokens:   openai.Int(10),
		Temperature: openai.Float(0),
	})
	if err != nil {
		j.logger.Warn("answer judge unavailable, falling back to substring match", "error", err)
		return j.fallback.Match(ctx, answer, accepted)
	}
	if len(resp.Choices) == 0 {
		j.logger.Warn("answer judge returned no choices, falling back to substring match")
		return j.fallback.Match(ctx, answer, accepted)
	}

	switch verdict := strings.ToUpper(strings.TrimSpace(resp.Choices[0].Message.Content)); verdict {
	case "CORRECT":
		return true
	case "INCORRECT":
		return false
	default:
		j.logger.Warn("answer judge gave malformed verdict, falling back to substring match", "verdict", verdict)
		return j.fallback.Match(ctx, answer, accepted)
	}
}

func judgePrompt(answer string, accepted []string) string {
	return fmt.Sprintf(`You are helping with a Portland scavenger hunt. Determine if the user's answer matches any of the expected answers.

Expected answers: %s

User's answer: %q

The user's answer should be considered correct if it:
1. Contains the main name/location mentioned in the expected answers
2. Is clearly referring to the same place, even with different wording
3. Has minor spelling variations or abbreviations

Respond with only "CORRECT" or "INCORRECT".`, strings.Join(accepted, ", "), answer)
}
