// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/cpmm/auth"
	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/state"
)

//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE} -destination=mock_transferer.go . Transferer

type Rules interface {
	// GetMaxFee is the largest fee, in basis points, a pool may charge.
	GetMaxFee() uint16
	// GetShareDecimals is the display precision of share tokens.
	GetShareDecimals() uint8
}

// Transferer moves fungible assets between accounts. Every method operates
// on [mu] so changes are discarded with the rest of a failed action.
type Transferer interface {
	// Transfer moves [amount] of [asset] from [from] to [to]. The caller is
	// trusted to act for [from].
	Transfer(ctx context.Context, mu state.Mutable, asset codec.Address, from codec.Address, to codec.Address, amount uint64) error
	// TransferAsPool moves [amount] of [asset] out of the vault of [signer].
	TransferAsPool(ctx context.Context, mu state.Mutable, signer auth.PoolSigner, asset codec.Address, to codec.Address, amount uint64) error
	// Mint creates [amount] of the share token of [signer] for [to].
	Mint(ctx context.Context, mu state.Mutable, signer auth.PoolSigner, to codec.Address, amount uint64) error
	// Burn destroys [amount] of the share token of [signer] held by [from].
	Burn(ctx context.Context, mu state.Mutable, signer auth.PoolSigner, from codec.Address, amount uint64) error

	Balance(ctx context.Context, im state.Immutable, asset codec.Address, account codec.Address) (uint64, error)
	Supply(ctx context.Context, im state.Immutable, asset codec.Address) (uint64, error)
}
