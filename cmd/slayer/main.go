// Package main is the entry point for the slayer terminal client
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/metaverse-slayer/internal/errors"
)

var (
	rpcURL  string
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "slayer",
	Short: "Metaverse Slayer client",
	Long: `Metaverse Slayer connects to your wallet, finds your character NFT and
takes you to the arena. The wallet is reached over JSON-RPC (SLAYER_RPC_URL).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rpcURL, "rpc-url", "", "wallet JSON-RPC endpoint (overrides SLAYER_RPC_URL)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout (overrides SLAYER_REQUEST_TIMEOUT)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statusCmd)
}
