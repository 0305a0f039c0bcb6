package wallet

import (
	"context"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/KirkDiggler/metaverse-slayer/internal/entities"
	"github.com/KirkDiggler/metaverse-slayer/internal/errors"
)

// RPCProvider is a Provider backed by a go-ethereum RPC client
type RPCProvider struct {
	client *rpc.Client
	eth    *ethclient.Client
}

// Detect returns the provider configured at url, or ErrNoProvider when url
// is blank.
func Detect(ctx context.Context, url string) (*RPCProvider, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrNoProvider
	}
	return Dial(ctx, url)
}

// Dial connects to a wallet JSON-RPC endpoint (http, ws or ipc)
func Dial(ctx context.Context, url string) (*RPCProvider, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, errors.FromRPCError(err, "failed to dial wallet provider").WithMeta("url", url)
	}

	slog.Debug("Wallet provider dialed", "url", url)

	return NewRPCProvider(client), nil
}

// NewRPCProvider wraps an existing RPC client
func NewRPCProvider(client *rpc.Client) *RPCProvider {
	return &RPCProvider{
		client: client,
		eth:    ethclient.NewClient(client),
	}
}

// Ensure RPCProvider implements Provider
var _ Provider = (*RPCProvider)(nil)

// Request issues a JSON-RPC call against the wallet
func (p *RPCProvider) Request(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	if err := p.client.CallContext(ctx, result, method, args...); err != nil {
		return errors.FromRPCError(err, "wallet request failed").WithMeta("method", method)
	}
	return nil
}

// Signer returns a signer for account
func (p *RPCProvider) Signer(account entities.Account) (Signer, error) {
	if !common.IsHexAddress(string(account)) {
		return nil, errors.InvalidArgumentf("invalid account address: %q", account)
	}
	return &rpcSigner{
		address:  common.HexToAddress(string(account)),
		provider: p,
	}, nil
}

// Close releases the underlying connection
func (p *RPCProvider) Close() {
	p.client.Close()
}

type rpcSigner struct {
	address  common.Address
	provider *RPCProvider
}

func (s *rpcSigner) Address() common.Address {
	return s.address
}

func (s *rpcSigner) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return s.provider.eth.CodeAt(ctx, contract, blockNumber)
}

func (s *rpcSigner) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	call.From = s.address
	return s.provider.eth.CallContract(ctx, call, blockNumber)
}

// sendTxArgs is the eth_sendTransaction parameter object; the wallet fills
// in gas, price and nonce.
type sendTxArgs struct {
	From common.Address `json:"from"`
	To   common.Address `json:"to"`
	Data hexutil.Bytes  `json:"data"`
}

func (s *rpcSigner) SendTransaction(ctx context.Context, to common.Address, data []byte) (common.Hash, error) {
	var hash common.Hash
	args := sendTxArgs{From: s.address, To: to, Data: data}
	if err := s.provider.Request(ctx, &hash, MethodSendTransaction, args); err != nil {
		return common.Hash{}, err
	}
	return hash, nil
}

func (s *rpcSigner) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	return s.provider.eth.TransactionReceipt(ctx, hash)
}
