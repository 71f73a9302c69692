// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/consts"
)

const (
	poolPrefix byte = iota
	balancePrefix
	supplyPrefix
	genesisPrefix
)

const (
	// seed, authority, assets, fee, locked, reserves, supply
	PoolSize = consts.Uint64Len + codec.MaxOptionalAddressLen + 2*codec.AddressLen +
		consts.Uint16Len + consts.BoolLen + 3*consts.Uint64Len

	PoolChunks    uint16 = 3
	BalanceChunks uint16 = 1
	SupplyChunks  uint16 = 1
	GenesisChunks uint16 = 1
)
