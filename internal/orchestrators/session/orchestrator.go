// Package session owns the wallet session: which account is connected and
// which character it holds.
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/KirkDiggler/metaverse-slayer/internal/orchestrators/session Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/metaverse-slayer/internal/clients/game"
	"github.com/KirkDiggler/metaverse-slayer/internal/clients/wallet"
	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
	"github.com/KirkDiggler/metaverse-slayer/internal/errors"
	"github.com/KirkDiggler/metaverse-slayer/internal/pkg/clock"
	"github.com/KirkDiggler/metaverse-slayer/internal/pkg/idgen"
)

// Service defines the session operations. Wallet and contract failures are
// logged and folded into the returned session; they are never returned.
type Service interface {
	// CheckExistingSession picks up an account the wallet already authorized.
	// It never prompts the user.
	CheckExistingSession(ctx context.Context) entities.Session

	// RequestNewSession asks the wallet to authorize an account, which may
	// prompt the user
	RequestNewSession(ctx context.Context) entities.Session

	// FetchCharacter reads the character owned by an account
	FetchCharacter(ctx context.Context, input *FetchCharacterInput) (*FetchCharacterOutput, error)

	// SetCharacter replaces the character, as reported by the selection and
	// arena views
	SetCharacter(record *entities.CharacterRecord) entities.Session

	// DismissNotice clears the pending notice
	DismissNotice() entities.Session

	// Session returns the current snapshot
	Session() entities.Session

	// Close stops listening for account changes
	Close() error
}

// Config holds the dependencies for the session orchestrator
type Config struct {
	// Provider is the wallet; nil when none is available
	Provider        wallet.Provider
	ContractFactory game.Factory
	EventBus        events.EventBus
	Clock           clock.Clock
	IDGenerator     idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ContractFactory == nil {
		vb.RequiredField("ContractFactory")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	provider  wallet.Provider
	contracts game.Factory
	bus       events.EventBus
	clock     clock.Clock

	subscriptionID string

	mu      sync.Mutex
	current entities.Session
}

// NewOrchestrator creates a session orchestrator and subscribes it to
// account changes
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		provider:  cfg.Provider,
		contracts: cfg.ContractFactory,
		bus:       cfg.EventBus,
		clock:     cfg.Clock,
		current:   entities.NewSession(cfg.IDGenerator.Generate()),
	}
	o.subscriptionID = o.bus.SubscribeFunc(EventAccountConnected, 0, o.onAccountConnected)

	return o, nil
}

// CheckExistingSession picks up an already authorized account
func (o *orchestrator) CheckExistingSession(ctx context.Context) entities.Session {
	if o.provider == nil {
		slog.Info("Make sure you have a wallet", "session_id", o.Session().ID)
		return o.apply(entities.Session.DoneLoading)
	}

	accounts, err := wallet.RequestAccounts(ctx, o.provider, wallet.MethodAccounts)
	if err != nil {
		slog.Error("Failed to check for authorized accounts",
			"session_id", o.Session().ID,
			"error", err,
		)
		return o.apply(entities.Session.DoneLoading)
	}

	if len(accounts) == 0 {
		slog.Info("No authorized account found", "session_id", o.Session().ID)
		return o.apply(entities.Session.DoneLoading)
	}

	slog.Info("Found an authorized account",
		"session_id", o.Session().ID,
		"account", accounts[0],
	)
	return o.setAccount(ctx, accounts[0])
}

// RequestNewSession asks the wallet to authorize an account
func (o *orchestrator) RequestNewSession(ctx context.Context) entities.Session {
	if o.provider == nil {
		return o.apply(func(s entities.Session) entities.Session {
			return s.WithNotice(NoticeNoWallet)
		})
	}

	accounts, err := wallet.RequestAccounts(ctx, o.provider, wallet.MethodRequestAccounts)
	if err != nil {
		slog.Error("Failed to connect wallet",
			"session_id", o.Session().ID,
			"code", errors.GetCode(err).String(),
			"error", err,
		)
		return o.Session()
	}

	if len(accounts) == 0 {
		slog.Warn("Wallet authorized no accounts", "session_id", o.Session().ID)
		return o.Session()
	}

	slog.Info("Connected", "session_id", o.Session().ID, "account", accounts[0])
	return o.setAccount(ctx, accounts[0])
}

// FetchCharacter reads the account's character. A read failure counts as no
// character and is recorded on the session.
func (o *orchestrator) FetchCharacter(ctx context.Context, input *FetchCharacterInput) (*FetchCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Account.Empty() {
		return nil, errors.InvalidArgument("account is required")
	}

	slog.Info("Checking for character NFT", "account", input.Account)

	record, err := o.readCharacter(ctx, input.Account)
	if err != nil {
		slog.Error("Failed to read character",
			"account", input.Account,
			"code", errors.GetCode(err).String(),
			"error", err,
		)
	} else if record.Present() {
		slog.Info("User has character NFT", "account", input.Account, "name", record.Name)
	} else {
		slog.Info("No character NFT found", "account", input.Account)
		record = nil
	}

	output := &FetchCharacterOutput{Character: record}

	o.mu.Lock()
	if !o.current.Account.Equal(input.Account) {
		output.Stale = true
		output.Session = o.current
		o.mu.Unlock()

		slog.Warn("Discarding character read for previous account",
			"account", input.Account,
			"current_account", output.Session.Account,
		)
		return output, nil
	}
	o.current = o.current.WithCharacter(record).WithError(err).DoneLoading()
	output.Session = o.current
	o.mu.Unlock()

	return output, nil
}

// SetCharacter replaces the character record
func (o *orchestrator) SetCharacter(record *entities.CharacterRecord) entities.Session {
	return o.apply(func(s entities.Session) entities.Session {
		return s.WithCharacter(record)
	})
}

// DismissNotice clears the pending notice
func (o *orchestrator) DismissNotice() entities.Session {
	return o.apply(entities.Session.ClearNotice)
}

// Session returns the current snapshot
func (o *orchestrator) Session() entities.Session {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Close unsubscribes from account changes
func (o *orchestrator) Close() error {
	if err := o.bus.Unsubscribe(o.subscriptionID); err != nil {
		return errors.Wrap(err, "failed to unsubscribe from account changes")
	}
	return nil
}

func (o *orchestrator) apply(transition func(entities.Session) entities.Session) entities.Session {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.current = transition(o.current)
	return o.current
}

// setAccount stores the account and, when it differs from the current one,
// publishes the change. Subscribers run before setAccount returns.
func (o *orchestrator) setAccount(ctx context.Context, account entities.Account) entities.Session {
	o.mu.Lock()
	changed := !o.current.Account.Equal(account)
	o.current = o.current.WithAccount(account, o.clock.Now())
	if !changed {
		o.current = o.current.DoneLoading()
	}
	o.mu.Unlock()

	if !changed {
		return o.Session()
	}

	if err := o.bus.Publish(ctx, events.NewGameEvent(EventAccountConnected, account, nil)); err != nil {
		slog.Error("Failed to publish account change", "account", account, "error", err)
		return o.apply(entities.Session.DoneLoading)
	}

	return o.Session()
}

func (o *orchestrator) onAccountConnected(ctx context.Context, event events.Event) error {
	account, ok := event.Source().(entities.Account)
	if !ok {
		slog.Warn("Ignoring account event without an account source", "type", event.Type())
		return nil
	}

	if _, err := o.FetchCharacter(ctx, &FetchCharacterInput{Account: account}); err != nil {
		slog.Error("Failed to fetch character", "account", account, "error", err)
	}
	return nil
}

func (o *orchestrator) readCharacter(ctx context.Context, account entities.Account) (*entities.CharacterRecord, error) {
	if o.provider == nil {
		return nil, errors.Wrap(wallet.ErrNoProvider, "cannot read character")
	}

	signer, err := o.provider.Signer(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive signer")
	}

	contract, err := o.contracts.Connect(signer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect game contract")
	}

	record, err := contract.CheckIfUserHasNFT(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check for character")
	}

	return record, nil
}
