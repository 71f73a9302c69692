// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/cpmm/actions"
	"github.com/ava-labs/cpmm/rpc"
	"github.com/ava-labs/cpmm/utils"
)

var (
	xToY         bool
	amountIn     uint64
	minAmountOut uint64
)

var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Sell one pool asset for the other",
	RunE: func(cmd *cobra.Command, _ []string) error {
		x, y, err := poolAssets()
		if err != nil {
			return err
		}
		from, err := actorAddress()
		if err != nil {
			return err
		}
		cli, err := newClient(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := withTimeout()
		defer cancel()

		quote, err := cli.Quote(ctx, &rpc.QuoteArgs{
			AssetX:   x,
			AssetY:   y,
			Seed:     seed,
			XToY:     xToY,
			AmountIn: amountIn,
		})
		if err != nil {
			return err
		}
		if err := confirm(fmt.Sprintf("sell %d for about %d (minimum %d)", amountIn, quote, minAmountOut)); err != nil {
			return err
		}
		result, err := cli.Swap(ctx, from, &actions.Swap{
			AssetX:       x,
			AssetY:       y,
			Seed:         seed,
			XToY:         xToY,
			AmountIn:     amountIn,
			MinAmountOut: minAmountOut,
		})
		if err != nil {
			return err
		}
		utils.Outf(
			"{{green}}swapped:{{/}} %d in for %d of %s\n",
			result.AmountIn,
			result.AmountOut,
			result.AssetOut,
		)
		return nil
	},
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a swap without executing it",
	RunE: func(cmd *cobra.Command, _ []string) error {
		x, y, err := poolAssets()
		if err != nil {
			return err
		}
		cli, err := newClient(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := withTimeout()
		defer cancel()
		out, err := cli.Quote(ctx, &rpc.QuoteArgs{
			AssetX:   x,
			AssetY:   y,
			Seed:     seed,
			XToY:     xToY,
			AmountIn: amountIn,
		})
		if err != nil {
			return err
		}
		utils.Outf("{{green}}amount out:{{/}} %d\n", out)
		return nil
	},
}
