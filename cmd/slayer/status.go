package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
	"github.com/KirkDiggler/metaverse-slayer/internal/orchestrators/arena"
	"github.com/KirkDiggler/metaverse-slayer/internal/view"
)

var connect bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current session state",
	Long: `Check the wallet for an authorized account, read its character and print
which screen the game would show. With --connect, ask the wallet to authorize
an account when none is authorized yet.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&connect, "connect", false, "request wallet authorization if no account is connected")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := setup(ctx, cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	checkCtx, cancel := context.WithTimeout(ctx, a.cfg.RequestTimeout)
	defer cancel()

	current := a.sessions.CheckExistingSession(checkCtx)
	if connect && !current.Connected() {
		connectCtx, cancelConnect := context.WithTimeout(ctx, a.cfg.RequestTimeout)
		defer cancelConnect()
		current = a.sessions.RequestNewSession(connectCtx)
	}

	detailsCtx, cancelDetails := context.WithTimeout(ctx, a.cfg.RequestTimeout)
	defer cancelDetails()

	return printStatus(cmd.OutOrStdout(), current, loadDetails(detailsCtx, a.arena, current))
}

// loadDetails reads what the selected screen would show next to the session
func loadDetails(ctx context.Context, svc arena.Service, s entities.Session) view.Details {
	var d view.Details

	switch view.Select(s) {
	case view.StateNeedsCharacter:
		out, err := svc.ListCharacters(ctx, &arena.ListCharactersInput{Account: s.Account})
		if err != nil {
			slog.Warn("Failed to list characters", "account", s.Account, "error", err)
			d.Status = "character list unavailable"
			return d
		}
		d.Templates = out.Characters
	case view.StateReady:
		out, err := svc.GetBoss(ctx, &arena.GetBossInput{Account: s.Account})
		if err != nil {
			slog.Warn("Failed to read boss", "account", s.Account, "error", err)
			return d
		}
		d.Boss = out.Boss
	}

	return d
}

func printStatus(w io.Writer, s entities.Session, d view.Details) error {
	f := view.Build(s, d)

	if _, err := fmt.Fprint(w, view.Describe(f)); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nstate:     %s\n", f.State)
	fmt.Fprintf(w, "session:   %s\n", s.ID)
	if s.Connected() {
		fmt.Fprintf(w, "account:   %s\n", s.Account)
	}
	if s.HasCharacter() {
		c := s.Character
		fmt.Fprintf(w, "character: %s (HP %d/%d, attack %d)\n", c.Name, c.HP, c.MaxHP, c.AttackDamage)
	}
	if s.LastError != "" {
		fmt.Fprintf(w, "error:     %s\n", s.LastError)
	}

	return nil
}
