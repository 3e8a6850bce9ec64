// path: cmd/server/main.go
// HTTP front end for the move-evolution validator. Settings come from
// EVOCHECK_* environment variables; flags override them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonklee99/PKHeX-Gengar/internal/config"
	"github.com/jonklee99/PKHeX-Gengar/internal/evolution"
	"github.com/jonklee99/PKHeX-Gengar/internal/evolution/oracles"
	"github.com/jonklee99/PKHeX-Gengar/internal/httpx"
	"github.com/jonklee99/PKHeX-Gengar/internal/logging"
	"github.com/jonklee99/PKHeX-Gengar/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	fatalIf(err, "config")
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	fatalIf(cfg.Validate(), "config")

	logger := logging.New(cfg.Logging("evocheck-server"))
	slog.SetDefault(logger)

	v, err := buildValidator(cfg)
	fatalIf(err, "validator")
	logger.Info("validator ready", "oracle", cfg.Oracle, "rules", v.Registry().Len())

	srv, err := httpx.NewServer(v, httpx.Options{
		Logger:       logger,
		Metrics:      metrics.New(),
		MaxBodyBytes: cfg.MaxBody,
		ReadTimeout:  cfg.ReadTimeout,
	})
	fatalIf(err, "http init")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Close(shutdownCtx); err != nil {
			logger.Error("shutdown", "error", err)
		}
	}()

	if err := srv.Listen(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

func buildValidator(cfg config.Config) (*evolution.Validator, error) {
	oc, err := cfg.OracleConfig()
	if err != nil {
		return nil, err
	}
	oracle, err := oracles.New(cfg.Oracle, oc)
	if err != nil {
		return nil, err
	}
	v, err := evolution.NewValidator(oracle, evolution.PreEvolutionPruner{})
	if err != nil {
		return nil, err
	}
	if cfg.RulesPath == "" {
		return v, nil
	}
	data, err := os.ReadFile(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	reg, err := evolution.LoadRules(data)
	if err != nil {
		return nil, err
	}
	return v.WithRegistry(reg), nil
}

func fatalIf(err error, label string) {
	if err != nil {
		log.Fatalf("%s: %v", label, err)
	}
}
