// Package game is the binding for the Metaverse Slayer game contract
package game

//go:generate mockgen -destination=mock/mock_client.go -package=gamemock github.com/KirkDiggler/metaverse-slayer/internal/clients/game Client,Factory

import (
	"context"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/KirkDiggler/metaverse-slayer/internal/clients/wallet"
	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
	"github.com/KirkDiggler/metaverse-slayer/internal/errors"
	"github.com/KirkDiggler/metaverse-slayer/internal/pkg/clock"
)

// DefaultReceiptPollInterval is how often pending transactions are checked
const DefaultReceiptPollInterval = 2 * time.Second

// Client defines the game contract operations
type Client interface {
	// CheckIfUserHasNFT returns the caller's character. The contract returns
	// a zero-valued record when the caller has none; use Present to tell.
	CheckIfUserHasNFT(ctx context.Context) (*entities.CharacterRecord, error)

	// GetAllDefaultCharacters lists the character templates players mint from
	GetAllDefaultCharacters(ctx context.Context) ([]entities.CharacterRecord, error)

	// GetBigBoss returns the arena boss
	GetBigBoss(ctx context.Context) (*entities.Boss, error)

	// MintCharacterNFT mints the template at index and waits until mined
	MintCharacterNFT(ctx context.Context, index uint64) (*types.Receipt, error)

	// AttackBoss attacks the boss with the caller's character and waits until mined
	AttackBoss(ctx context.Context) (*types.Receipt, error)
}

// Factory binds the contract for a signer
type Factory interface {
	Connect(signer wallet.Signer) (Client, error)
}

// Config holds the configuration for the contract factory
type Config struct {
	ContractAddress     string
	Clock               clock.Clock
	ReceiptPollInterval time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ContractAddress == "" {
		vb.RequiredField("ContractAddress")
	} else if !common.IsHexAddress(c.ContractAddress) {
		vb.InvalidField("ContractAddress", "not a hex address")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.ReceiptPollInterval < 0 {
		vb.InvalidField("ReceiptPollInterval", "must not be negative")
	}

	return vb.Build()
}

type factory struct {
	address      common.Address
	abi          abi.ABI
	clock        clock.Clock
	pollInterval time.Duration
}

// NewFactory parses the contract ABI and returns a Factory for the address
func NewFactory(cfg *Config) (Factory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	parsed, err := abi.JSON(strings.NewReader(ContractABI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse contract ABI")
	}

	poll := cfg.ReceiptPollInterval
	if poll == 0 {
		poll = DefaultReceiptPollInterval
	}

	return &factory{
		address:      common.HexToAddress(cfg.ContractAddress),
		abi:          parsed,
		clock:        cfg.Clock,
		pollInterval: poll,
	}, nil
}

// Connect binds the contract with signer as caller and transaction sender
func (f *factory) Connect(signer wallet.Signer) (Client, error) {
	if signer == nil {
		return nil, errors.InvalidArgument("signer is required")
	}

	return &contract{
		factory: f,
		signer:  signer,
		bound:   bind.NewBoundContract(f.address, f.abi, signer, nil, nil),
	}, nil
}

type contract struct {
	*factory
	signer wallet.Signer
	bound  *bind.BoundContract
}

// Ensure contract implements Client
var _ Client = (*contract)(nil)

func (c *contract) call(ctx context.Context, method string) ([]interface{}, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx, From: c.signer.Address()}

	if err := c.bound.Call(opts, &out, method); err != nil {
		if errors.Is(err, bind.ErrNoCode) {
			return nil, errors.FailedPreconditionf("no contract deployed at %s", c.address.Hex())
		}
		return nil, errors.FromRPCError(err, "contract call failed").
			WithMeta("method", method).
			WithMeta("contract", c.address.Hex())
	}
	if len(out) == 0 {
		return nil, errors.Internalf("contract call %s returned no values", method)
	}

	return out, nil
}

// CheckIfUserHasNFT returns the caller's character record
func (c *contract) CheckIfUserHasNFT(ctx context.Context) (*entities.CharacterRecord, error) {
	out, err := c.call(ctx, MethodCheckIfUserHasNFT)
	if err != nil {
		return nil, err
	}

	attrs, ok := abi.ConvertType(out[0], new(CharacterAttributes)).(*CharacterAttributes)
	if !ok {
		return nil, errors.Internal("unexpected checkIfUserHasNFT result")
	}

	return attrs.Record(), nil
}

// GetAllDefaultCharacters lists the mintable character templates
func (c *contract) GetAllDefaultCharacters(ctx context.Context) ([]entities.CharacterRecord, error) {
	out, err := c.call(ctx, MethodGetAllDefaultCharacters)
	if err != nil {
		return nil, err
	}

	attrs, ok := abi.ConvertType(out[0], new([]CharacterAttributes)).(*[]CharacterAttributes)
	if !ok {
		return nil, errors.Internal("unexpected getAllDefaultCharacters result")
	}

	records := make([]entities.CharacterRecord, len(*attrs))
	for i, a := range *attrs {
		records[i] = *a.Record()
	}

	return records, nil
}

// GetBigBoss returns the arena boss
func (c *contract) GetBigBoss(ctx context.Context) (*entities.Boss, error) {
	out, err := c.call(ctx, MethodGetBigBoss)
	if err != nil {
		return nil, err
	}

	boss, ok := abi.ConvertType(out[0], new(BigBoss)).(*BigBoss)
	if !ok {
		return nil, errors.Internal("unexpected getBigBoss result")
	}

	return boss.Boss(), nil
}

// MintCharacterNFT mints the template at index
func (c *contract) MintCharacterNFT(ctx context.Context, index uint64) (*types.Receipt, error) {
	return c.transact(ctx, MethodMintCharacterNFT, new(big.Int).SetUint64(index))
}

// AttackBoss attacks the boss
func (c *contract) AttackBoss(ctx context.Context) (*types.Receipt, error) {
	return c.transact(ctx, MethodAttackBoss)
}

func (c *contract) transact(ctx context.Context, method string, params ...interface{}) (*types.Receipt, error) {
	data, err := c.abi.Pack(method, params...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to pack %s", method)
	}

	hash, err := c.signer.SendTransaction(ctx, c.address, data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to send %s", method)
	}

	slog.Info("Transaction submitted",
		"method", method,
		"tx", hash.Hex(),
		"from", c.signer.Address().Hex(),
	)

	return c.waitMined(ctx, hash)
}

func (c *contract) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	for {
		receipt, err := c.signer.TransactionReceipt(ctx, hash)
		if err == nil {
			if receipt.Status == types.ReceiptStatusFailed {
				return nil, errors.FailedPrecondition("transaction reverted").WithMeta("tx", hash.Hex())
			}
			slog.Info("Transaction mined",
				"tx", hash.Hex(),
				"block", receipt.BlockNumber,
			)
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, errors.FromRPCError(err, "failed to fetch transaction receipt").WithMeta("tx", hash.Hex())
		}

		select {
		case <-ctx.Done():
			return nil, errors.FromRPCError(ctx.Err(), "gave up waiting for transaction").WithMeta("tx", hash.Hex())
		case <-c.clock.After(c.pollInterval):
		}
	}
}
