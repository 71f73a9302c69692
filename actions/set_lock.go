// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/cpmm/chain"
	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/state"
	"github.com/ava-labs/cpmm/storage"
)

var (
	_ codec.Typed  = (*SetLockResult)(nil)
	_ chain.Action = (*SetLock)(nil)
)

type SetLockResult struct {
	Locked bool `json:"locked"`
}

func (*SetLockResult) GetTypeID() uint8 {
	return consts.SetLockID
}

// SetLock lets the pool authority pause or resume deposits, withdrawals and
// swaps.
type SetLock struct {
	AssetX codec.Address `json:"assetX"`
	AssetY codec.Address `json:"assetY"`
	Seed   uint64        `json:"seed"`

	Locked bool `json:"locked"`
}

func (*SetLock) GetTypeID() uint8 {
	return consts.SetLockID
}

func (s *SetLock) StateKeys(codec.Address) state.Keys {
	pool := storage.PoolAddress(s.AssetX, s.AssetY, s.Seed)
	return state.Keys{
		string(storage.PoolKey(pool)): state.Read | state.Write,
	}
}

func (s *SetLock) Execute(
	ctx context.Context,
	_ chain.Rules,
	_ chain.Transferer,
	mu state.Mutable,
	actor codec.Address,
) (codec.Typed, error) {
	poolAddress := storage.PoolAddress(s.AssetX, s.AssetY, s.Seed)
	pool, err := getPool(ctx, mu, poolAddress)
	if err != nil {
		return nil, err
	}
	if pool.Authority == nil {
		return nil, ErrPoolImmutable
	}
	if *pool.Authority != actor {
		return nil, ErrUnauthorized
	}
	pool.Locked = s.Locked
	if err := storage.SetPool(ctx, mu, poolAddress, pool); err != nil {
		return nil, err
	}
	return &SetLockResult{Locked: s.Locked}, nil
}
