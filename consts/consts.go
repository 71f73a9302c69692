// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import "github.com/ava-labs/avalanchego/version"

const (
	ByteLen   = 1
	BoolLen   = 1
	IDLen     = 32
	Uint16Len = 2
	Uint64Len = 8
	MaxUint16 = ^uint16(0)
	MaxUint64 = ^uint64(0)
	MaxUint   = ^uint(0)
	MaxInt    = int(MaxUint >> 1)
)

const (
	Name = "cpmm"

	// BasisPoints is the denominator of every fee.
	BasisPoints uint16 = 10_000

	// ShareDecimals is the display precision of liquidity shares.
	ShareDecimals uint8 = 6
)

var Version = &version.Semantic{
	Major: 0,
	Minor: 1,
	Patch: 0,
}
