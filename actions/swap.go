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
	_ codec.Typed  = (*SwapResult)(nil)
	_ chain.Action = (*Swap)(nil)
)

type SwapResult struct {
	AmountIn  uint64        `json:"amountIn"`
	AmountOut uint64        `json:"amountOut"`
	AssetOut  codec.Address `json:"assetOut"`
}

func (*SwapResult) GetTypeID() uint8 {
	return consts.SwapID
}

// Swap sells [AmountIn] of one pool asset for the other.
type Swap struct {
	// Pool identity, required for `StateKeys()`
	AssetX codec.Address `json:"assetX"`
	AssetY codec.Address `json:"assetY"`
	Seed   uint64        `json:"seed"`

	// XToY sells asset x for asset y. Otherwise y is sold for x.
	XToY         bool   `json:"xToY"`
	AmountIn     uint64 `json:"amountIn"`
	MinAmountOut uint64 `json:"minAmountOut"`
}

func (*Swap) GetTypeID() uint8 {
	return consts.SwapID
}

func (s *Swap) StateKeys(actor codec.Address) state.Keys {
	return swapStateKeys(s.AssetX, s.AssetY, s.Seed, actor)
}

// Quote returns the output of the swap against [pool] without checking the
// slippage bound.
func (s *Swap) Quote(pool *storage.Pool) (uint64, error) {
	reserveIn, reserveOut := pool.ReserveX, pool.ReserveY
	if !s.XToY {
		reserveIn, reserveOut = pool.ReserveY, pool.ReserveX
	}
	amountOut, amountInAfterFee, err := pricing.SwapOutput(reserveIn, reserveOut, s.AmountIn, pool.Fee)
	if err != nil {
		return 0, err
	}
	if amountInAfterFee == 0 || amountOut == 0 {
		return 0, ErrInvalidAmount
	}
	return amountOut, nil
}

func (s *Swap) Execute(
	ctx context.Context,
	_ chain.Rules,
	t chain.Transferer,
	mu state.Mutable,
	actor codec.Address,
) (codec.Typed, error) {
	poolAddress := storage.PoolAddress(s.AssetX, s.AssetY, s.Seed)
	pool, err := getOpenPool(ctx, mu, poolAddress)
	if err != nil {
		return nil, err
	}
	amountOut, err := s.Quote(pool)
	if err != nil {
		return nil, err
	}
	if amountOut < s.MinAmountOut {
		return nil, ErrSlippageExceeded
	}

	var (
		assetIn, assetOut     = pool.AssetX, pool.AssetY
		reserveIn, reserveOut = &pool.ReserveX, &pool.ReserveY
	)
	if !s.XToY {
		assetIn, assetOut = pool.AssetY, pool.AssetX
		reserveIn, reserveOut = &pool.ReserveY, &pool.ReserveX
	}
	newReserveIn, err := add(*reserveIn, s.AmountIn)
	if err != nil {
		return nil, err
	}
	newReserveOut, err := sub(*reserveOut, amountOut)
	if err != nil {
		return nil, err
	}
	if pricing.Invariant(newReserveIn, newReserveOut).Lt(pricing.Invariant(*reserveIn, *reserveOut)) {
		return nil, ErrInvariantViolated
	}

	signer := storage.PoolSigner(poolAddress)
	if err := t.Transfer(ctx, mu, assetIn, actor, signer.Vault(), s.AmountIn); err != nil {
		return nil, transferErr(err)
	}
	if err := t.TransferAsPool(ctx, mu, signer, assetOut, actor, amountOut); err != nil {
		return nil, transferErr(err)
	}

	*reserveIn, *reserveOut = newReserveIn, newReserveOut
	if err := storage.SetPool(ctx, mu, poolAddress, pool); err != nil {
		return nil, err
	}
	return &SwapResult{
		AmountIn:  s.AmountIn,
		AmountOut: amountOut,
		AssetOut:  assetOut,
	}, nil
}
