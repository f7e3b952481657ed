// Command whereeatai runs the HTTP coordination service: it loads the
// environment configuration, selects a generation provider, constructs the
// agent layer and serves the API until interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pumpkinkking/whereeatai"
	"github.com/pumpkinkking/whereeatai/config"
	"github.com/pumpkinkking/whereeatai/logging"
	"github.com/pumpkinkking/whereeatai/model"
	modelanthropic "github.com/pumpkinkking/whereeatai/model/anthropic"
	modelopenai "github.com/pumpkinkking/whereeatai/model/openai"
	"github.com/pumpkinkking/whereeatai/server"

	"github.com/anthropics/anthropic-sdk-go"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "whereeatai: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Log.Level),
		JSON:       cfg.Log.JSON,
		Dir:        cfg.Log.Dir,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	gen, err := newGenerator(cfg.Model)
	if err != nil {
		return err
	}
	info := gen.Info()
	logger.Info("service starting",
		"app", cfg.App.Name, "env", cfg.App.Env,
		"provider", info.Provider, "model", info.Name)

	app := whereeatai.New(func(o *whereeatai.Options) {
		o.Generator = gen
		o.DefaultTimeoutSeconds = cfg.Protocol.TimeoutSeconds
		o.DefaultRetryBudget = cfg.Protocol.RetryBudget
		o.Logger = logger
	})

	srv := server.New(app.Manager(), func(o *server.Options) {
		o.Name = cfg.App.Name
		o.RateLimitCalls = cfg.RateLimit.Calls
		o.RateLimitPeriod = cfg.RateLimit.Period
		o.Logger = logger
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(cfg.Server.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("listening", "addr", cfg.Server.Addr())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// newGenerator selects the provider configured by MODEL_PROVIDER. The mock
// provider needs no credentials and suits local development.
func newGenerator(cfg config.ModelConfig) (model.Generator, error) {
	switch cfg.Provider {
	case "openai":
		return modelopenai.NewGenerator(func(o *modelopenai.Options) {
			o.Model = cfg.Name
			o.Temperature = cfg.Temperature
			o.MaxTokens = cfg.MaxTokens
			o.APIKey = cfg.APIKey
			o.BaseURL = cfg.BaseURL
		}), nil
	case "anthropic":
		return modelanthropic.NewGenerator(func(o *modelanthropic.Options) {
			o.Model = anthropic.Model(cfg.Name)
			o.Temperature = cfg.Temperature
			o.MaxTokens = cfg.MaxTokens
			o.APIKey = cfg.APIKey
		}), nil
	case "mock":
		return model.NewMockGenerator(), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Provider)
	}
}
