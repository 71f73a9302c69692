// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/cpmm/chain/chaintest"
	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/state"
	"github.com/ava-labs/cpmm/storage"
)

var (
	alice  = codec.CreateAddress(consts.AccountID, ids.GenerateTestID())
	bob    = codec.CreateAddress(consts.AccountID, ids.GenerateTestID())
	assetX = codec.CreateAddress(consts.AssetID, ids.GenerateTestID())
	assetY = codec.CreateAddress(consts.AssetID, ids.GenerateTestID())

	poolAddress = storage.PoolAddress(assetX, assetY, 0)
	vault       = storage.VaultAddress(poolAddress)
	lpToken     = storage.LPTokenAddress(poolAddress)
)

type balance struct {
	asset   codec.Address
	account codec.Address
	amount  uint64
}

// testPool returns an open pool over (assetX, assetY) with seed 0 and alice as
// the authority.
func testPool(reserveX uint64, reserveY uint64, supply uint64, fee uint16) *storage.Pool {
	authority := alice
	return &storage.Pool{
		Authority: &authority,
		AssetX:    assetX,
		AssetY:    assetY,
		Fee:       fee,
		ReserveX:  reserveX,
		ReserveY:  reserveY,
		LPSupply:  supply,
	}
}

// newState stores [pool] with a vault holding its reserves, then mints
// [balances]. Share balances must add up to the pool supply.
func newState(t *testing.T, pool *storage.Pool, balances ...balance) *chaintest.InMemoryStore {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()
	if pool != nil {
		require.NoError(storage.SetPool(ctx, store, poolAddress, pool))
		require.NoError(storage.MintAsset(ctx, store, pool.AssetX, vault, pool.ReserveX))
		require.NoError(storage.MintAsset(ctx, store, pool.AssetY, vault, pool.ReserveY))
	}
	for _, b := range balances {
		require.NoError(storage.MintAsset(ctx, store, b.asset, b.account, b.amount))
	}
	return store
}

func requireBalance(ctx context.Context, t *testing.T, im state.Immutable, asset codec.Address, account codec.Address, expected uint64) {
	t.Helper()
	bal, err := storage.GetBalance(ctx, im, asset, account)
	require.NoError(t, err)
	require.Equal(t, expected, bal)
}

func requirePool(ctx context.Context, t *testing.T, im state.Immutable, reserveX uint64, reserveY uint64, supply uint64) *storage.Pool {
	t.Helper()
	require := require.New(t)
	pool := requireConsistent(ctx, t, im)
	require.Equal(reserveX, pool.ReserveX)
	require.Equal(reserveY, pool.ReserveY)
	require.Equal(supply, pool.LPSupply)
	return pool
}

// requireConsistent checks that the pool ledger matches the vault balances
// and the share token supply.
func requireConsistent(ctx context.Context, t *testing.T, im state.Immutable) *storage.Pool {
	t.Helper()
	require := require.New(t)
	pool, err := storage.GetPool(ctx, im, poolAddress)
	require.NoError(err)

	requireBalance(ctx, t, im, pool.AssetX, vault, pool.ReserveX)
	requireBalance(ctx, t, im, pool.AssetY, vault, pool.ReserveY)
	lpSupply, err := storage.GetSupply(ctx, im, lpToken)
	require.NoError(err)
	require.Equal(pool.LPSupply, lpSupply)
	return pool
}
