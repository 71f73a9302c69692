// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/state"
	"github.com/ava-labs/cpmm/storage"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

func getPool(ctx context.Context, im state.Immutable, pool codec.Address) (*storage.Pool, error) {
	p, err := storage.GetPool(ctx, im, pool)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrPoolNotFound
	}
	return p, err
}

// getOpenPool additionally rejects locked pools.
func getOpenPool(ctx context.Context, im state.Immutable, pool codec.Address) (*storage.Pool, error) {
	p, err := getPool(ctx, im, pool)
	if err != nil {
		return nil, err
	}
	if p.Locked {
		return nil, ErrPoolLocked
	}
	return p, nil
}

// liquidityStateKeys covers every key touched when moving both assets and
// shares of a pool.
func liquidityStateKeys(assetX codec.Address, assetY codec.Address, seed uint64, actor codec.Address) state.Keys {
	pool := storage.PoolAddress(assetX, assetY, seed)
	keys := swapStateKeys(assetX, assetY, seed, actor)
	lp := storage.LPTokenAddress(pool)
	keys.Add(string(storage.BalanceKey(lp, actor)), state.All)
	keys.Add(string(storage.SupplyKey(lp)), state.All)
	return keys
}

func swapStateKeys(assetX codec.Address, assetY codec.Address, seed uint64, actor codec.Address) state.Keys {
	pool := storage.PoolAddress(assetX, assetY, seed)
	vault := storage.VaultAddress(pool)
	return state.Keys{
		string(storage.PoolKey(pool)):             state.Read | state.Write,
		string(storage.BalanceKey(assetX, actor)): state.All,
		string(storage.BalanceKey(assetY, actor)): state.All,
		string(storage.BalanceKey(assetX, vault)): state.All,
		string(storage.BalanceKey(assetY, vault)): state.All,
	}
}

func transferErr(err error) error {
	return fmt.Errorf("%w: %w", ErrTransferFailed, err)
}

func add(a uint64, b uint64) (uint64, error) {
	v, err := smath.Add(a, b)
	if err != nil {
		return 0, ErrArithmeticOverflow
	}
	return v, nil
}

func sub(a uint64, b uint64) (uint64, error) {
	v, err := smath.Sub(a, b)
	if err != nil {
		return 0, ErrArithmeticOverflow
	}
	return v, nil
}
