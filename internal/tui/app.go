// Package tui hosts the session view in a terminal. The event loop is the
// only writer of what is on screen; blocking wallet and contract calls run
// in goroutines and hand their results back as tcell interrupt events.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
	"github.com/KirkDiggler/metaverse-slayer/internal/errors"
	"github.com/KirkDiggler/metaverse-slayer/internal/orchestrators/arena"
	"github.com/KirkDiggler/metaverse-slayer/internal/orchestrators/session"
	"github.com/KirkDiggler/metaverse-slayer/internal/render"
	"github.com/KirkDiggler/metaverse-slayer/internal/view"
)

const (
	statusMinting   = "Minting In Progress..."
	statusAttacking = "Attacking ⚔️"
)

// Config holds the dependencies for the terminal app
type Config struct {
	Screen   tcell.Screen
	Sessions session.Service
	Arena    arena.Service
	// RequestTimeout bounds wallet prompts and contract reads
	RequestTimeout time.Duration
	// TxTimeout bounds a transaction from submission to receipt
	TxTimeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Screen == nil {
		vb.RequiredField("Screen")
	}
	if c.Sessions == nil {
		vb.RequiredField("Sessions")
	}
	if c.Arena == nil {
		vb.RequiredField("Arena")
	}
	if c.RequestTimeout <= 0 {
		vb.InvalidField("RequestTimeout", "must be positive")
	}
	if c.TxTimeout <= 0 {
		vb.InvalidField("TxTimeout", "must be positive")
	}

	return vb.Build()
}

// App is the terminal session view
type App struct {
	screen   tcell.Screen
	renderer *render.Renderer
	sessions session.Service
	arena    arena.Service

	requestTimeout time.Duration
	txTimeout      time.Duration

	// spawn runs blocking work off the event loop
	spawn func(task func())

	ctx     context.Context
	current entities.Session
	details view.Details
	// pending names the operation in flight; one at a time
	pending string
	// loaded tracks which account the templates and boss belong to
	loaded entities.Account
	quit   bool
}

// New creates the app. The screen must already be initialized.
func New(cfg *Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &App{
		screen:         cfg.Screen,
		renderer:       render.NewRenderer(cfg.Screen),
		sessions:       cfg.Sessions,
		arena:          cfg.Arena,
		requestTimeout: cfg.RequestTimeout,
		txTimeout:      cfg.TxTimeout,
		spawn:          func(task func()) { go task() },
		ctx:            context.Background(),
		current:        cfg.Sessions.Session(),
	}, nil
}

// Run checks for an existing session and then processes events until the
// user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	a.ctx = ctx

	go func() {
		<-ctx.Done()
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(func(a *App) { a.quit = true }))
	}()

	a.start()
	for !a.quit {
		a.draw()
		if !a.step() {
			break
		}
	}

	slog.Info("Session view closed", "session_id", a.current.ID)
	return nil
}

func (a *App) start() {
	a.run("check", a.requestTimeout, func(ctx context.Context) func(*App) {
		s := a.sessions.CheckExistingSession(ctx)
		return func(a *App) { a.setSession(s) }
	})
}

// step waits for one event and handles it. It returns false once the
// screen is finalized.
func (a *App) step() bool {
	ev := a.screen.PollEvent()
	if ev == nil {
		return false
	}
	a.handle(ev)
	return true
}

func (a *App) draw() {
	a.renderer.Draw(view.Build(a.current, a.details))
}

func (a *App) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventInterrupt:
		if fn, ok := ev.Data().(func(*App)); ok {
			fn(a)
		}
	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
		a.quit = true
		return
	}

	if a.current.Notice != "" {
		if ev.Key() == tcell.KeyEnter || ev.Key() == tcell.KeyEscape {
			a.setSession(a.sessions.DismissNotice())
		}
		return
	}

	if ev.Key() != tcell.KeyRune || a.pending != "" {
		return
	}

	// a screen whose templates or boss failed to load retries on any key
	if a.loadDetails() {
		return
	}

	switch view.Select(a.current) {
	case view.StateDisconnected:
		if ev.Rune() == 'c' || ev.Rune() == 'C' {
			a.connect()
		}
	case view.StateNeedsCharacter:
		if ev.Rune() >= '1' && ev.Rune() <= '9' {
			a.mint(int(ev.Rune() - '1'))
		}
	case view.StateReady:
		if ev.Rune() == 'a' || ev.Rune() == 'A' {
			a.attack()
		}
	}
}

// run starts a blocking task. The closure it returns is applied on the
// event loop.
func (a *App) run(name string, timeout time.Duration, task func(ctx context.Context) func(*App)) {
	a.pending = name
	parent := a.ctx

	a.spawn(func() {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()

		apply := task(ctx)
		done := func(a *App) {
			a.pending = ""
			apply(a)
		}
		if err := a.screen.PostEvent(tcell.NewEventInterrupt(done)); err != nil {
			slog.Warn("Dropped result of background task", "task", name, "error", err)
		}
	})
}

// setSession adopts a new snapshot and loads whatever the new screen needs
func (a *App) setSession(s entities.Session) {
	if !a.loaded.Equal(s.Account) {
		a.details = view.Details{}
		a.loaded = s.Account
	}
	a.current = s

	if a.pending != "" {
		return
	}
	a.loadDetails()
}

// loadDetails starts loading what the current screen is missing and reports
// whether it did
func (a *App) loadDetails() bool {
	switch view.Select(a.current) {
	case view.StateNeedsCharacter:
		if len(a.details.Templates) == 0 {
			a.loadTemplates()
			return true
		}
	case view.StateReady:
		if a.details.Boss == nil {
			a.loadBoss()
			return true
		}
	}
	return false
}

func (a *App) connect() {
	a.run("connect", a.requestTimeout, func(ctx context.Context) func(*App) {
		s := a.sessions.RequestNewSession(ctx)
		return func(a *App) { a.setSession(s) }
	})
}

func (a *App) loadTemplates() {
	account := a.current.Account
	a.run("templates", a.requestTimeout, func(ctx context.Context) func(*App) {
		out, err := a.arena.ListCharacters(ctx, &arena.ListCharactersInput{Account: account})
		return func(a *App) {
			if !a.current.Account.Equal(account) {
				return
			}
			if err != nil {
				slog.Error("Failed to load characters", "account", account, "error", err)
				a.details.Status = "⚠ " + err.Error()
				return
			}
			a.details.Templates = out.Characters
			a.details.Status = ""
		}
	})
}

func (a *App) loadBoss() {
	account := a.current.Account
	a.run("boss", a.requestTimeout, func(ctx context.Context) func(*App) {
		out, err := a.arena.GetBoss(ctx, &arena.GetBossInput{Account: account})
		return func(a *App) {
			if !a.current.Account.Equal(account) {
				return
			}
			if err != nil {
				slog.Error("Failed to load boss", "account", account, "error", err)
				a.details.Status = "⚠ " + err.Error()
				return
			}
			a.details.Boss = out.Boss
			a.details.Status = ""
		}
	})
}

func (a *App) mint(index int) {
	if index >= len(a.details.Templates) {
		return
	}
	account := a.current.Account
	template := a.details.Templates[index]
	a.details.Status = statusMinting

	a.run("mint", a.txTimeout, func(ctx context.Context) func(*App) {
		out, err := a.arena.MintCharacter(ctx, &arena.MintCharacterInput{
			Account: account,
			Index:   template.Index,
		})
		return func(a *App) {
			if err != nil {
				slog.Error("Failed to mint character", "account", account, "index", template.Index, "error", err)
				a.details.Status = "⚠ " + err.Error()
				return
			}
			a.details.Status = ""
			a.setSession(a.sessions.SetCharacter(out.Character))
		}
	})
}

func (a *App) attack() {
	account := a.current.Account
	character := a.current.Character
	boss := a.details.Boss
	a.details.Status = statusAttacking

	a.run("attack", a.txTimeout, func(ctx context.Context) func(*App) {
		out, err := a.arena.AttackBoss(ctx, &arena.AttackBossInput{
			Account:   account,
			Character: character,
			Boss:      boss,
		})
		return func(a *App) {
			if err != nil {
				slog.Error("Attack failed", "account", account, "error", err)
				a.details.Status = "⚠ " + err.Error()
				return
			}
			a.details.Boss = out.Boss
			a.details.Status = fmt.Sprintf("💥 %s was hit for %d!", out.Boss.Name, character.AttackDamage)
			a.setSession(a.sessions.SetCharacter(out.Character))
		}
	})
}
