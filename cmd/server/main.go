package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/pdxhunt/scavenger/internal/config"
	"github.com/pdxhunt/scavenger/internal/hunt"
	"github.com/pdxhunt/scavenger/internal/server"
	"github.com/pdxhunt/scavenger/internal/telephony"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Telephony ---
	tel := telephony.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	if missing := cfg.MissingTwilio(); len(missing) > 0 {
		logger.Warn("twilio credentials incomplete, send and listing endpoints disabled", "missing", missing)
	} else {
		logger.Info("twilio client initialized")
	}

	// --- Game engine ---
	store := hunt.NewStore()
	var matcher hunt.Matcher = hunt.SubstringMatcher{}
	if cfg.JudgeEnabled() {
		matcher = hunt.NewOpenAIJudge(hunt.JudgeConfig{
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.OpenAIModel,
			Timeout: cfg.JudgeTimeout,
			Logger:  logger,
		})
		logger.Info("answer judging delegated to OpenAI", "model", cfg.OpenAIModel)
	} else {
		logger.Info("no OpenAI key, answers judged by substring matching")
	}
	engine := hunt.NewEngine(store, matcher, hunt.PortlandClues(), logger)

	// --- HTTP Server ---
	app := &server.App{
		Logger:             logger,
		Engine:             engine,
		Store:              store,
		History:            server.NewHistory(),
		Telephony:          tel,
		Validator:          telephony.NewRequestValidator(cfg.TwilioAuthToken),
		ValidateSignatures: cfg.ValidateSignatures,
	}
	srv := server.New(cfg.HTTPAddr, logger, app)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
