package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/metaverse-slayer/internal/errors"
	"github.com/KirkDiggler/metaverse-slayer/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game in the terminal",
	Long: `Open the game in the terminal. Logs are discarded unless SLAYER_LOG_FILE
is set, since they would draw over the screen.`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := setup(ctx, cmd, io.Discard)
	if err != nil {
		return err
	}
	defer a.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize terminal")
	}
	defer screen.Fini()

	app, err := tui.New(&tui.Config{
		Screen:         screen,
		Sessions:       a.sessions,
		Arena:          a.arena,
		RequestTimeout: a.cfg.RequestTimeout,
		TxTimeout:      a.cfg.TxTimeout,
	})
	if err != nil {
		return err
	}

	return app.Run(ctx)
}
