// Package wallet talks to the user's wallet over JSON-RPC. A configured RPC
// endpoint plays the part of the provider a browser extension would inject.
package wallet

//go:generate mockgen -destination=mock/mock_wallet.go -package=walletmock github.com/KirkDiggler/metaverse-slayer/internal/clients/wallet Provider,Signer

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
	"github.com/KirkDiggler/metaverse-slayer/internal/errors"
)

// Provider request methods
const (
	// MethodAccounts lists accounts already authorized; never prompts
	MethodAccounts = "eth_accounts"
	// MethodRequestAccounts asks the wallet to authorize accounts; may prompt
	MethodRequestAccounts = "eth_requestAccounts"
	// MethodSendTransaction asks the wallet to sign and submit a transaction
	MethodSendTransaction = "eth_sendTransaction"
)

// ErrNoProvider is returned by Detect when no wallet endpoint is configured
var ErrNoProvider = errors.FailedPrecondition("no wallet provider configured")

// Provider is the request/response contract of a wallet
type Provider interface {
	// Request issues method with args and decodes the JSON result into result
	Request(ctx context.Context, result interface{}, method string, args ...interface{}) error

	// Signer returns a handle that calls and transacts as account
	Signer(account entities.Account) (Signer, error)
}

// Signer acts on behalf of one account. Calls are plain eth_call reads with
// the account as sender; transactions are signed by the wallet.
type Signer interface {
	bind.ContractCaller

	// Address is the account the signer acts for
	Address() common.Address

	// SendTransaction submits a call to `to` carrying data and returns its hash
	SendTransaction(ctx context.Context, to common.Address, data []byte) (common.Hash, error)

	// TransactionReceipt returns the receipt of a mined transaction, or
	// ethereum.NotFound while it is pending
	TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

// ParseAccounts converts a provider response, keeping the wallet's order.
// Entries are not validated here: the first one is the session account
// whatever it holds, and Signer rejects malformed addresses.
func ParseAccounts(raw []string) []entities.Account {
	accounts := make([]entities.Account, len(raw))
	for i, a := range raw {
		accounts[i] = entities.Account(a)
	}
	return accounts
}

// RequestAccounts runs an account-listing method and returns the parsed
// result. Use MethodAccounts for passive checks and MethodRequestAccounts
// when the user asked to connect.
func RequestAccounts(ctx context.Context, p Provider, method string) ([]entities.Account, error) {
	var raw []string
	if err := p.Request(ctx, &raw, method); err != nil {
		return nil, err
	}
	return ParseAccounts(raw), nil
}
