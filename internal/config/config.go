// Package config loads client settings from SLAYER_* environment variables
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/ethereum/go-ethereum/common"

	"github.com/KirkDiggler/metaverse-slayer/internal/clients/game"
	"github.com/KirkDiggler/metaverse-slayer/internal/errors"
	"github.com/KirkDiggler/metaverse-slayer/internal/pkg/clock"
)

// LogLevels are the accepted SLAYER_LOG_LEVEL values
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the client settings
type Config struct {
	// RPCURL is the wallet endpoint; empty means no wallet is available
	RPCURL              string        `env:"SLAYER_RPC_URL"`
	ContractAddress     string        `env:"SLAYER_CONTRACT_ADDRESS"      envDefault:"0x5FbDB2315678afecb367f032d93F642f64180aa3"`
	RequestTimeout      time.Duration `env:"SLAYER_REQUEST_TIMEOUT"       envDefault:"30s"`
	TxTimeout           time.Duration `env:"SLAYER_TX_TIMEOUT"            envDefault:"3m"`
	ReceiptPollInterval time.Duration `env:"SLAYER_RECEIPT_POLL_INTERVAL" envDefault:"2s"`
	LogLevel            string        `env:"SLAYER_LOG_LEVEL"             envDefault:"info"`
	// LogFile receives logs when set
	LogFile string `env:"SLAYER_LOG_FILE"`
}

// Load reads the environment and validates the result
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if !common.IsHexAddress(c.ContractAddress) {
		vb.InvalidField("SLAYER_CONTRACT_ADDRESS", "not a hex address")
	}
	if c.RequestTimeout <= 0 {
		vb.InvalidField("SLAYER_REQUEST_TIMEOUT", "must be positive")
	}
	if c.TxTimeout <= 0 {
		vb.InvalidField("SLAYER_TX_TIMEOUT", "must be positive")
	}
	if c.ReceiptPollInterval <= 0 {
		vb.InvalidField("SLAYER_RECEIPT_POLL_INTERVAL", "must be positive")
	}
	errors.ValidateEnum("SLAYER_LOG_LEVEL", strings.ToLower(c.LogLevel), LogLevels, vb)

	return vb.Build()
}

// GameConfig returns the contract factory settings
func (c *Config) GameConfig(clk clock.Clock) *game.Config {
	return &game.Config{
		ContractAddress:     c.ContractAddress,
		Clock:               clk,
		ReceiptPollInterval: c.ReceiptPollInterval,
	}
}

// Level maps LogLevel to a slog level, defaulting to info
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the logger. Logs go to LogFile when set, otherwise to
// fallback. The returned closer releases the log file.
func (c *Config) NewLogger(fallback io.Writer) (*slog.Logger, io.Closer, error) {
	var (
		out    io.Writer = fallback
		closer io.Closer = nopCloser{}
	)

	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to open log file %s", c.LogFile)
		}
		out = f
		closer = f
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: c.Level()})
	return slog.New(handler), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
