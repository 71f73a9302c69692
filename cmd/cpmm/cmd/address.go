// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"crypto/rand"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"

	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/utils"
)

var addressTypes = map[string]uint8{
	"account": consts.AccountID,
	"asset":   consts.AssetID,
}

var addressCmd = &cobra.Command{
	Use: "address",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var genAddressCmd = &cobra.Command{
	Use:   "generate [account|asset]",
	Short: "Generate a random account or asset address",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		typeID, ok := addressTypes[args[0]]
		if !ok {
			return fmt.Errorf("%w: %s", ErrInvalidType, args[0])
		}
		var id ids.ID
		if _, err := rand.Read(id[:]); err != nil {
			return err
		}
		utils.Outf("{{green}}%s:{{/}} %s\n", args[0], codec.CreateAddress(typeID, id))
		return nil
	},
}
