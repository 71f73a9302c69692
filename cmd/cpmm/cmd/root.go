// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "cpmm" serves and drives constant product liquidity pools.
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ava-labs/cpmm/config"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/rpc"
)

const requestTimeout = 30 * time.Second

var (
	// pool identity, shared by every pool scoped command
	assetX string
	assetY string
	seed   uint64

	actor      string
	skipPrompt bool

	rootCmd = &cobra.Command{
		Use:        consts.Name,
		Short:      "Constant product AMM",
		SuggestFor: []string{"cpmm", "amm"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().BoolVarP(&skipPrompt, "yes", "y", false, "skip confirmation prompts")

	rootCmd.AddCommand(
		serveCmd,
		versionCmd,
		addressCmd,

		poolCmd,
		liquidityCmd,
		swapCmd,
		quoteCmd,
		balanceCmd,
	)

	// address
	addressCmd.AddCommand(
		genAddressCmd,
	)

	// pool
	poolCmd.AddCommand(
		createPoolCmd,
		poolInfoCmd,
		lockPoolCmd,
		unlockPoolCmd,
	)
	createPoolCmd.Flags().Uint16Var(&fee, "fee", 30, "swap fee in basis points")
	createPoolCmd.Flags().BoolVar(&immutable, "immutable", false, "create the pool without a lock authority")

	// liquidity
	liquidityCmd.AddCommand(
		depositCmd,
		withdrawCmd,
	)
	depositCmd.Flags().StringVar(&shares, "shares", "", "shares to mint (defaults to the initial share count on an empty pool)")
	depositCmd.Flags().Uint64Var(&maxX, "max-x", 0, "maximum amount of asset x to deposit")
	depositCmd.Flags().Uint64Var(&maxY, "max-y", 0, "maximum amount of asset y to deposit")
	withdrawCmd.Flags().StringVar(&shares, "shares", "", "shares to burn")
	withdrawCmd.Flags().Uint64Var(&minX, "min-x", 0, "minimum amount of asset x to receive")
	withdrawCmd.Flags().Uint64Var(&minY, "min-y", 0, "minimum amount of asset y to receive")

	// swap
	for _, c := range []*cobra.Command{swapCmd, quoteCmd} {
		c.Flags().BoolVar(&xToY, "x-to-y", true, "sell asset x for asset y")
		c.Flags().Uint64Var(&amountIn, "amount-in", 0, "amount to sell")
	}
	swapCmd.Flags().Uint64Var(&minAmountOut, "min-out", 0, "minimum amount to receive")

	// balance
	balanceCmd.Flags().StringVar(&asset, "asset", "", "asset to query")
	balanceCmd.Flags().StringVar(&account, "account", "", "account to query")

	for _, c := range []*cobra.Command{poolCmd, liquidityCmd, swapCmd, quoteCmd} {
		c.PersistentFlags().StringVar(&assetX, "asset-x", "", "first pool asset")
		c.PersistentFlags().StringVar(&assetY, "asset-y", "", "second pool asset")
		c.PersistentFlags().Uint64Var(&seed, "seed", 0, "pool seed")
	}
	for _, c := range []*cobra.Command{poolCmd, liquidityCmd, swapCmd} {
		c.PersistentFlags().StringVar(&actor, "actor", "", "account acting on the pool")
	}
}

func newClient(cmd *cobra.Command) (*rpc.JSONRPCClient, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	return rpc.NewJSONRPCClient(cfg.URI), nil
}

func Execute() error {
	return rootCmd.Execute()
}
