package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	TwilioAccountSID  string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `env:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber string `env:"TWILIO_PHONE_NUMBER"`

	OpenAIAPIKey string        `env:"OPENAI_API_KEY"`
	OpenAIModel  string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	JudgeTimeout time.Duration `env:"JUDGE_TIMEOUT" envDefault:"10s"`

	// ValidateSignatures gates webhook signature checks. Off by default for
	// local development; without an auth token validation always fails, so
	// enabling it must be an explicit choice.
	ValidateSignatures bool `env:"VALIDATE_SIGNATURES" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// MissingTwilio lists the Twilio settings that are not set, for startup
// warnings. Empty when the provider is fully configured.
func (c *Config) MissingTwilio() []string {
	var missing []string
	if c.TwilioAccountSID == "" {
		missing = append(missing, "TWILIO_ACCOUNT_SID")
	}
	if c.TwilioAuthToken == "" {
		missing = append(missing, "TWILIO_AUTH_TOKEN")
	}
	if c.TwilioPhoneNumber == "" {
		missing = append(missing, "TWILIO_PHONE_NUMBER")
	}
	return missing
}

// JudgeEnabled reports whether the OpenAI answer judge should be used.
// Placeholder keys from an unedited env template don't count.
func (c *Config) JudgeEnabled() bool {
	return c.OpenAIAPIKey != "" && !strings.HasPrefix(c.OpenAIAPIKey, "your_")
}
