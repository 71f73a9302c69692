// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/cpmm/actions"
	"github.com/ava-labs/cpmm/utils"
)

var (
	fee       uint16
	immutable bool
)

var poolCmd = &cobra.Command{
	Use: "pool",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var createPoolCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an empty pool",
	RunE: func(cmd *cobra.Command, _ []string) error {
		x, y, err := poolAssets()
		if err != nil {
			return err
		}
		from, err := actorAddress()
		if err != nil {
			return err
		}
		action := &actions.Initialize{
			Seed:   seed,
			AssetX: x,
			AssetY: y,
			Fee:    fee,
		}
		if !immutable {
			action.Authority = &from
		}
		cli, err := newClient(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := withTimeout()
		defer cancel()
		result, err := cli.Initialize(ctx, from, action)
		if err != nil {
			return err
		}
		utils.Outf("{{green}}created pool:{{/}} %s\n", result.Pool)
		utils.Outf("{{yellow}}vault:{{/}} %s\n", result.Vault)
		utils.Outf("{{yellow}}share token:{{/}} %s\n", result.LPToken)
		return nil
	},
}

var poolInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the ledger of a pool",
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
		reply, err := cli.Pool(ctx, x, y, seed)
		if err != nil {
			return err
		}
		printPool(reply.Pool, reply.Address)
		return nil
	},
}

var lockPoolCmd = &cobra.Command{
	Use:   "lock",
	Short: "Pause deposits, withdrawals and swaps",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return setLock(cmd, true)
	},
}

var unlockPoolCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Resume a locked pool",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return setLock(cmd, false)
	},
}

func setLock(cmd *cobra.Command, locked bool) error {
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
	result, err := cli.SetLock(ctx, from, &actions.SetLock{
		AssetX: x,
		AssetY: y,
		Seed:   seed,
		Locked: locked,
	})
	if err != nil {
		return err
	}
	utils.Outf("{{green}}locked:{{/}} %t\n", result.Locked)
	return nil
}
