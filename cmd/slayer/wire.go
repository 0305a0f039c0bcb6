package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/metaverse-slayer/internal/clients/game"
	"github.com/KirkDiggler/metaverse-slayer/internal/clients/wallet"
	"github.com/KirkDiggler/metaverse-slayer/internal/config"
	"github.com/KirkDiggler/metaverse-slayer/internal/errors"
	"github.com/KirkDiggler/metaverse-slayer/internal/orchestrators/arena"
	"github.com/KirkDiggler/metaverse-slayer/internal/orchestrators/session"
	"github.com/KirkDiggler/metaverse-slayer/internal/pkg/clock"
	"github.com/KirkDiggler/metaverse-slayer/internal/pkg/idgen"
)

// app bundles the wired services for one command run
type app struct {
	cfg      *config.Config
	sessions session.Service
	arena    arena.Service
	closers  []func()
}

// Close releases everything setup opened, last opened first
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// setup loads config, installs the logger and wires the services. Logs go to
// logOut unless SLAYER_LOG_FILE is set.
func setup(ctx context.Context, cmd *cobra.Command, logOut io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("rpc-url") {
		cfg.RPCURL = rpcURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.RequestTimeout = timeout
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	logger, logCloser, err := cfg.NewLogger(logOut)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	a := &app{cfg: cfg}
	a.closers = append(a.closers, func() { _ = logCloser.Close() })

	// Provider stays a nil interface when no wallet is configured.
	var provider wallet.Provider
	rpcProvider, err := wallet.Detect(ctx, cfg.RPCURL)
	switch {
	case err == nil:
		provider = rpcProvider
		a.closers = append(a.closers, rpcProvider.Close)
	case errors.Is(err, wallet.ErrNoProvider):
		slog.Debug("No wallet endpoint configured")
	default:
		a.Close()
		return nil, err
	}

	clk := clock.New()
	contracts, err := game.NewFactory(cfg.GameConfig(clk))
	if err != nil {
		a.Close()
		return nil, err
	}

	a.sessions, err = session.NewOrchestrator(&session.Config{
		Provider:        provider,
		ContractFactory: contracts,
		EventBus:        events.NewBus(),
		Clock:           clk,
		IDGenerator:     idgen.NewUUID("session"),
	})
	if err != nil {
		a.Close()
		return nil, err
	}
	a.closers = append(a.closers, func() { _ = a.sessions.Close() })

	a.arena, err = arena.NewOrchestrator(&arena.Config{
		Provider:        provider,
		ContractFactory: contracts,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}
