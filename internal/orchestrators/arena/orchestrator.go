// Package arena runs the contract side of character selection and combat
package arena

//go:generate mockgen -destination=mock/mock_service.go -package=arenamock github.com/KirkDiggler/metaverse-slayer/internal/orchestrators/arena Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/metaverse-slayer/internal/clients/game"
	"github.com/KirkDiggler/metaverse-slayer/internal/clients/wallet"
	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
	"github.com/KirkDiggler/metaverse-slayer/internal/errors"
)

// Service defines the character selection and arena operations
type Service interface {
	// ListCharacters returns the templates a player can mint
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)

	// MintCharacter mints a template and returns the minted character
	MintCharacter(ctx context.Context, input *MintCharacterInput) (*MintCharacterOutput, error)

	// GetBoss returns the current boss
	GetBoss(ctx context.Context, input *GetBossInput) (*GetBossOutput, error)

	// AttackBoss attacks once and returns the boss and character afterwards
	AttackBoss(ctx context.Context, input *AttackBossInput) (*AttackBossOutput, error)
}

// Config holds the dependencies for the arena orchestrator
type Config struct {
	// Provider is the wallet; nil when none is available
	Provider        wallet.Provider
	ContractFactory game.Factory
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ContractFactory == nil {
		vb.RequiredField("ContractFactory")
	}

	return vb.Build()
}

type orchestrator struct {
	provider  wallet.Provider
	contracts game.Factory
}

// NewOrchestrator creates a new arena orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		provider:  cfg.Provider,
		contracts: cfg.ContractFactory,
	}, nil
}

// ListCharacters returns the mintable character templates
func (o *orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("account", string(input.Account), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	contract, err := o.connect(input.Account)
	if err != nil {
		return nil, err
	}

	characters, err := contract.GetAllDefaultCharacters(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	slog.Debug("Loaded character templates", "count", len(characters))

	return &ListCharactersOutput{Characters: characters}, nil
}

// MintCharacter mints the template, waits for it to be mined, then reads the
// minted character back
func (o *orchestrator) MintCharacter(ctx context.Context, input *MintCharacterInput) (*MintCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("account", string(input.Account), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	contract, err := o.connect(input.Account)
	if err != nil {
		return nil, err
	}

	slog.Info("Minting character", "account", input.Account, "index", input.Index)

	receipt, err := contract.MintCharacterNFT(ctx, input.Index)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to mint character %d", input.Index)
	}

	character, err := contract.CheckIfUserHasNFT(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read minted character")
	}
	if !character.Present() {
		return nil, errors.Internal("minted character not found").
			WithMeta("tx", receipt.TxHash.Hex())
	}

	slog.Info("Character minted",
		"account", input.Account,
		"name", character.Name,
		"tx", receipt.TxHash.Hex(),
	)

	return &MintCharacterOutput{
		Character: character,
		TxHash:    receipt.TxHash.Hex(),
	}, nil
}

// GetBoss returns the arena boss
func (o *orchestrator) GetBoss(ctx context.Context, input *GetBossInput) (*GetBossOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("account", string(input.Account), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	contract, err := o.connect(input.Account)
	if err != nil {
		return nil, err
	}

	boss, err := contract.GetBigBoss(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get boss")
	}

	return &GetBossOutput{Boss: boss}, nil
}

// AttackBoss attacks the boss and re-reads both sides
func (o *orchestrator) AttackBoss(ctx context.Context, input *AttackBossInput) (*AttackBossOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("account", string(input.Account), vb)
	if !input.Character.Present() {
		vb.RequiredField("character")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if !input.Character.Alive() {
		return nil, errors.FailedPreconditionf("%s has no HP left", input.Character.Name)
	}
	if input.Boss != nil && !input.Boss.Alive() {
		return nil, errors.FailedPreconditionf("%s is already defeated", input.Boss.Name)
	}

	contract, err := o.connect(input.Account)
	if err != nil {
		return nil, err
	}

	slog.Info("Attacking boss", "account", input.Account, "character", input.Character.Name)

	receipt, err := contract.AttackBoss(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to attack boss")
	}

	boss, err := contract.GetBigBoss(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read boss after attack")
	}

	character, err := contract.CheckIfUserHasNFT(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read character after attack")
	}

	slog.Info("Attack complete",
		"account", input.Account,
		"boss_hp", boss.HP,
		"player_hp", character.HP,
		"tx", receipt.TxHash.Hex(),
	)

	return &AttackBossOutput{
		Boss:      boss,
		Character: character,
		TxHash:    receipt.TxHash.Hex(),
	}, nil
}

func (o *orchestrator) connect(account entities.Account) (game.Client, error) {
	if o.provider == nil {
		return nil, errors.Wrap(wallet.ErrNoProvider, "cannot reach the game contract")
	}

	signer, err := o.provider.Signer(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive signer")
	}

	contract, err := o.contracts.Connect(signer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect game contract")
	}

	return contract, nil
}
