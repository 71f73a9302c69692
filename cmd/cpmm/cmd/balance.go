// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/utils"
)

var (
	asset   string
	account string
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Balance of an account in an asset or share token",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := codec.ParseAddress(asset)
		if err != nil {
			return err
		}
		owner, err := codec.ParseAddress(account)
		if err != nil {
			return err
		}
		cli, err := newClient(cmd)
		if err != nil {
			return err
		}
		ctx, cancel := withTimeout()
		defer cancel()
		amount, supply, err := cli.Balance(ctx, a, owner)
		if err != nil {
			return err
		}
		if a.TypeID() == consts.LPTokenID {
			utils.Outf(
				"{{yellow}}balance:{{/}} %s of %s shares\n",
				utils.FormatBalance(amount, consts.ShareDecimals),
				utils.FormatBalance(supply, consts.ShareDecimals),
			)
			return nil
		}
		utils.Outf("{{yellow}}balance:{{/}} %d of %d\n", amount, supply)
		return nil
	},
}
