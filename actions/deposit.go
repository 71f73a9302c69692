// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/cpmm/chain"
	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/pricing"
	"github.com/ava-labs/cpmm/state"
	"github.com/ava-labs/cpmm/storage"
)

var (
	_ codec.Typed  = (*DepositResult)(nil)
	_ chain.Action = (*Deposit)(nil)
)

type DepositResult struct {
	AmountX uint64 `json:"amountX"`
	AmountY uint64 `json:"amountY"`
	Shares  uint64 `json:"shares"`
}

func (*DepositResult) GetTypeID() uint8 {
	return consts.DepositID
}

// Deposit mints [Shares] to the actor in exchange for a proportional amount
// of both assets. The first deposit into an empty pool sets the price with
// exactly [MaxX] and [MaxY].
type Deposit struct {
	// Pool identity, required for `StateKeys()`
	AssetX codec.Address `json:"assetX"`
	AssetY codec.Address `json:"assetY"`
	Seed   uint64        `json:"seed"`

	Shares uint64 `json:"shares"`
	MaxX   uint64 `json:"maxX"`
	MaxY   uint64 `json:"maxY"`
}

func (*Deposit) GetTypeID() uint8 {
	return consts.DepositID
}

func (d *Deposit) StateKeys(actor codec.Address) state.Keys {
	return liquidityStateKeys(d.AssetX, d.AssetY, d.Seed, actor)
}

func (d *Deposit) Execute(
	ctx context.Context,
	_ chain.Rules,
	t chain.Transferer,
	mu state.Mutable,
	actor codec.Address,
) (codec.Typed, error) {
	poolAddress := storage.PoolAddress(d.AssetX, d.AssetY, d.Seed)
	pool, err := getOpenPool(ctx, mu, poolAddress)
	if err != nil {
		return nil, err
	}
	if d.Shares == 0 {
		return nil, ErrInvalidAmount
	}

	var x, y uint64
	if pool.Empty() {
		if d.MaxX == 0 || d.MaxY == 0 {
			return nil, ErrInvalidAmount
		}
		x, y = d.MaxX, d.MaxY
	} else {
		x, y, err = pricing.DepositAmountsFromShares(pool.ReserveX, pool.ReserveY, pool.LPSupply, d.Shares)
		if err != nil {
			return nil, err
		}
		// Shares must be backed by both assets
		if x == 0 || y == 0 {
			return nil, ErrInvalidAmount
		}
	}
	if x > d.MaxX || y > d.MaxY {
		return nil, ErrSlippageExceeded
	}

	// Compute the new ledger before moving anything
	reserveX, err := add(pool.ReserveX, x)
	if err != nil {
		return nil, err
	}
	reserveY, err := add(pool.ReserveY, y)
	if err != nil {
		return nil, err
	}
	supply, err := add(pool.LPSupply, d.Shares)
	if err != nil {
		return nil, err
	}

	signer := storage.PoolSigner(poolAddress)
	if err := t.Transfer(ctx, mu, pool.AssetX, actor, signer.Vault(), x); err != nil {
		return nil, transferErr(err)
	}
	if err := t.Transfer(ctx, mu, pool.AssetY, actor, signer.Vault(), y); err != nil {
		return nil, transferErr(err)
	}
	if err := t.Mint(ctx, mu, signer, actor, d.Shares); err != nil {
		return nil, transferErr(err)
	}

	pool.ReserveX = reserveX
	pool.ReserveY = reserveY
	pool.LPSupply = supply
	if err := storage.SetPool(ctx, mu, poolAddress, pool); err != nil {
		return nil, err
	}
	return &DepositResult{
		AmountX: x,
		AmountY: y,
		Shares:  d.Shares,
	}, nil
}
