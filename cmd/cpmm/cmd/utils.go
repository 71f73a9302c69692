// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/storage"
	"github.com/ava-labs/cpmm/utils"
)

func parseAddress(name string, value string, typeID uint8) (codec.Address, error) {
	if len(value) == 0 {
		return codec.EmptyAddress, fmt.Errorf("%w: --%s", ErrMissingFlag, name)
	}
	addr, err := codec.ParseAddress(value)
	if err != nil {
		return codec.EmptyAddress, fmt.Errorf("--%s: %w", name, err)
	}
	if addr.TypeID() != typeID {
		return codec.EmptyAddress, fmt.Errorf("%w: --%s", ErrInvalidType, name)
	}
	return addr, nil
}

func poolAssets() (codec.Address, codec.Address, error) {
	x, err := parseAddress("asset-x", assetX, consts.AssetID)
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, err
	}
	y, err := parseAddress("asset-y", assetY, consts.AssetID)
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, err
	}
	return x, y, nil
}

func actorAddress() (codec.Address, error) {
	return parseAddress("actor", actor, consts.AccountID)
}

func confirm(label string) error {
	if skipPrompt {
		return nil
	}
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := prompt.Run(); err != nil {
		return ErrAborted
	}
	return nil
}

func printPool(p *storage.Pool, address codec.Address) {
	utils.Outf("{{yellow}}pool:{{/}} %s\n", address)
	utils.Outf("{{yellow}}vault:{{/}} %s\n", storage.VaultAddress(address))
	utils.Outf("{{yellow}}share token:{{/}} %s\n", storage.LPTokenAddress(address))
	utils.Outf("{{yellow}}assets:{{/}} %s / %s\n", p.AssetX, p.AssetY)
	utils.Outf("{{yellow}}fee:{{/}} %d bps\n", p.Fee)
	utils.Outf("{{yellow}}reserves:{{/}} %d / %d\n", p.ReserveX, p.ReserveY)
	utils.Outf("{{yellow}}shares:{{/}} %s\n", utils.FormatBalance(p.LPSupply, consts.ShareDecimals))
	if p.Authority == nil {
		utils.Outf("{{yellow}}authority:{{/}} none\n")
	} else {
		utils.Outf("{{yellow}}authority:{{/}} %s\n", *p.Authority)
	}
	if p.Locked {
		utils.Outf("{{red}}locked{{/}}\n")
	}
}

func withTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
