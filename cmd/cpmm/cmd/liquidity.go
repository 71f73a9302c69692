// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/cpmm/actions"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/pricing"
	"github.com/ava-labs/cpmm/utils"
)

var (
	shares string
	maxX   uint64
	maxY   uint64
	minX   uint64
	minY   uint64
)

var liquidityCmd = &cobra.Command{
	Use: "liquidity",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Add liquidity to a pool in exchange for shares",
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

		var amount uint64
		if len(shares) == 0 {
			// The first deposit mints sqrt(x*y) shares by convention
			reply, err := cli.Pool(ctx, x, y, seed)
			if err != nil {
				return err
			}
			if !reply.Pool.Empty() {
				return ErrUnknownShares
			}
			amount = pricing.InitialShares(maxX, maxY)
		} else {
			amount, err = utils.ParseBalance(shares, consts.ShareDecimals)
			if err != nil {
				return err
			}
		}
		if err := confirm(fmt.Sprintf(
			"mint %s shares for at most %d x and %d y",
			utils.FormatBalance(amount, consts.ShareDecimals), maxX, maxY,
		)); err != nil {
			return err
		}
		result, err := cli.Deposit(ctx, from, &actions.Deposit{
			AssetX: x,
			AssetY: y,
			Seed:   seed,
			Shares: amount,
			MaxX:   maxX,
			MaxY:   maxY,
		})
		if err != nil {
			return err
		}
		utils.Outf(
			"{{green}}deposited:{{/}} %d x and %d y for %s shares\n",
			result.AmountX,
			result.AmountY,
			utils.FormatBalance(result.Shares, consts.ShareDecimals),
		)
		return nil
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Burn shares for a proportional amount of both assets",
	RunE: func(cmd *cobra.Command, _ []string) error {
		x, y, err := poolAssets()
		if err != nil {
			return err
		}
		from, err := actorAddress()
		if err != nil {
			return err
		}
		if len(shares) == 0 {
			return fmt.Errorf("%w: --shares", ErrMissingFlag)
		}
		amount, err := utils.ParseBalance(shares, consts.ShareDecimals)
		if err != nil {
			return err
		}
		if err := confirm(fmt.Sprintf(
			"burn %s shares for at least %d x and %d y",
			utils.FormatBalance(amount, consts.ShareDecimals), minX, minY,
		)); err != nil {
			return err
		}
		cli, err := newClient(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := withTimeout()
		defer cancel()
		result, err := cli.Withdraw(ctx, from, &actions.Withdraw{
			AssetX: x,
			AssetY: y,
			Seed:   seed,
			Shares: amount,
			MinX:   minX,
			MinY:   minY,
		})
		if err != nil {
			return err
		}
		utils.Outf(
			"{{green}}withdrew:{{/}} %d x and %d y for %s shares\n",
			result.AmountX,
			result.AmountY,
			utils.FormatBalance(result.Shares, consts.ShareDecimals),
		)
		return nil
	},
}
