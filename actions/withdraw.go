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
	_ codec.Typed  = (*WithdrawResult)(nil)
	_ chain.Action = (*Withdraw)(nil)
)

type WithdrawResult struct {
	AmountX uint64 `json:"amountX"`
	AmountY uint64 `json:"amountY"`
	Shares  uint64 `json:"shares"`
}

func (*WithdrawResult) GetTypeID() uint8 {
	return consts.WithdrawID
}

// Withdraw burns [Shares] of the actor and pays out the proportional amount
// of both assets from the pool vault.
type Withdraw struct {
	// Pool identity, required for `StateKeys()`
	AssetX codec.Address `json:"assetX"`
	AssetY codec.Address `json:"assetY"`
	Seed   uint64        `json:"seed"`

	Shares uint64 `json:"shares"`
	MinX   uint64 `json:"minX"`
	MinY   uint64 `json:"minY"`
}

func (*Withdraw) GetTypeID() uint8 {
	return consts.WithdrawID
}

func (w *Withdraw) StateKeys(actor codec.Address) state.Keys {
	return liquidityStateKeys(w.AssetX, w.AssetY, w.Seed, actor)
}

func (w *Withdraw) Execute(
	ctx context.Context,
	_ chain.Rules,
	t chain.Transferer,
	mu state.Mutable,
	actor codec.Address,
) (codec.Typed, error) {
	poolAddress := storage.PoolAddress(w.AssetX, w.AssetY, w.Seed)
	pool, err := getOpenPool(ctx, mu, poolAddress)
	if err != nil {
		return nil, err
	}
	if w.Shares == 0 {
		return nil, ErrInvalidAmount
	}

	var x, y uint64
	if pool.Empty() {
		// Nothing to quote against. The burn below fails since no shares
		// exist.
		x, y = w.MinX, w.MinY
	} else {
		x, y, err = pricing.WithdrawAmountsFromShares(pool.ReserveX, pool.ReserveY, pool.LPSupply, w.Shares)
		if err != nil {
			return nil, err
		}
	}
	if x < w.MinX || y < w.MinY {
		return nil, ErrSlippageExceeded
	}

	signer := storage.PoolSigner(poolAddress)
	if err := t.Burn(ctx, mu, signer, actor, w.Shares); err != nil {
		return nil, transferErr(err)
	}
	if err := t.TransferAsPool(ctx, mu, signer, pool.AssetX, actor, x); err != nil {
		return nil, transferErr(err)
	}
	if err := t.TransferAsPool(ctx, mu, signer, pool.AssetY, actor, y); err != nil {
		return nil, transferErr(err)
	}

	if pool.ReserveX, err = sub(pool.ReserveX, x); err != nil {
		return nil, err
	}
	if pool.ReserveY, err = sub(pool.ReserveY, y); err != nil {
		return nil, err
	}
	if pool.LPSupply, err = sub(pool.LPSupply, w.Shares); err != nil {
		return nil, err
	}
	if err := storage.SetPool(ctx, mu, poolAddress, pool); err != nil {
		return nil, err
	}
	return &WithdrawResult{
		AmountX: x,
		AmountY: y,
		Shares:  w.Shares,
	}, nil
}
