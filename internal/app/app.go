// Package app wires the store, quota, history, generator and orchestrator together.
package app

import (
	"context"
	"fmt"
	"log"

	"mvp_launchpad/config"
	"mvp_launchpad/internal/ai"
	"mvp_launchpad/internal/history"
	"mvp_launchpad/internal/storage"
	"mvp_launchpad/internal/usage"
	"mvp_launchpad/internal/workflow"
)

// App holds the long-lived components of one process.
type App struct {
	Store        storage.Store
	Usage        *usage.Tracker
	History      *history.Store
	Orchestrator *workflow.Orchestrator
}

// New opens the configured store and builds everything on top of it. gen may
// be nil for commands that never generate (history, usage).
func New(ctx context.Context, cfg config.Config, gen workflow.Generator) (*App, error) {
	store, err := storage.Open(ctx, storage.Options{
		Backend:       cfg.StoreBackend,
		SQLitePath:    cfg.SQLitePath,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
		RedisPrefix:   cfg.RedisPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}
	log.Printf("Info: Using %s store", cfg.StoreBackend)

	tracker := usage.NewTracker(store, cfg.DailyLimit)
	hist := history.NewStore(ctx, store)

	return &App{
		Store:        store,
		Usage:        tracker,
		History:      hist,
		Orchestrator: workflow.NewOrchestrator(gen, hist, tracker),
	}, nil
}

// NewGenerator builds the OpenAI-backed generator from cfg.
func NewGenerator(cfg config.Config) (*ai.Generator, error) {
	return ai.NewGenerator(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
}

func (a *App) Close() error {
	return a.Store.Close()
}
