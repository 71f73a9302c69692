// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/cpmm/chain/chaintest"
	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/state"
	"github.com/ava-labs/cpmm/storage"
)

func TestInitialize(t *testing.T) {
	authority := alice

	tests := []chaintest.ActionTest{
		{
			Name:  "IdenticalAssets",
			Actor: alice,
			Action: &Initialize{
				AssetX: assetX,
				AssetY: assetX,
				Fee:    30,
			},
			State:       newState(t, nil),
			ExpectedErr: ErrIdenticalAssets,
		},
		{
			Name:  "EmptyAsset",
			Actor: alice,
			Action: &Initialize{
				AssetX: assetX,
				AssetY: codec.EmptyAddress,
				Fee:    30,
			},
			State:       newState(t, nil),
			ExpectedErr: ErrInvalidAsset,
		},
		{
			Name:  "FeeAboveBasisPoints",
			Actor: alice,
			Action: &Initialize{
				AssetX: assetX,
				AssetY: assetY,
				Fee:    10_001,
			},
			State:       newState(t, nil),
			ExpectedErr: ErrInvalidFee,
		},
		{
			Name:  "FeeAboveRules",
			Actor: alice,
			Action: &Initialize{
				AssetX: assetX,
				AssetY: assetY,
				Fee:    101,
			},
			Rules:       &chaintest.Rules{MaxFee: 100},
			State:       newState(t, nil),
			ExpectedErr: ErrInvalidFee,
		},
		{
			Name:  "DuplicatePool",
			Actor: bob,
			Action: &Initialize{
				AssetX: assetX,
				AssetY: assetY,
				Fee:    30,
			},
			State:       newState(t, testPool(0, 0, 0, 30)),
			ExpectedErr: ErrDuplicatePool,
		},
		{
			Name:  "Success",
			Actor: bob,
			Action: &Initialize{
				AssetX:    assetX,
				AssetY:    assetY,
				Fee:       10_000,
				Authority: &authority,
			},
			State: newState(t, nil),
			ExpectedOutputs: &InitializeResult{
				Pool:    poolAddress,
				Vault:   vault,
				LPToken: lpToken,
			},
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				require := require.New(t)
				pool := requirePool(ctx, t, m, 0, 0, 0)
				require.True(pool.Empty())
				require.False(pool.Locked)
				require.Equal(uint16(10_000), pool.Fee)
				require.Equal(&authority, pool.Authority)
			},
		},
		{
			Name:  "ReversedOrderIsDistinct",
			Actor: bob,
			Action: &Initialize{
				AssetX: assetY,
				AssetY: assetX,
				Fee:    30,
			},
			State: newState(t, testPool(0, 0, 0, 30)),
			ExpectedOutputs: &InitializeResult{
				Pool:    storage.PoolAddress(assetY, assetX, 0),
				Vault:   storage.VaultAddress(storage.PoolAddress(assetY, assetX, 0)),
				LPToken: storage.LPTokenAddress(storage.PoolAddress(assetY, assetX, 0)),
			},
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				pool, err := storage.GetPool(ctx, m, storage.PoolAddress(assetY, assetX, 0))
				require.NoError(t, err)
				require.Nil(t, pool.Authority)
			},
		},
		{
			Name:  "SeedIsDistinct",
			Actor: bob,
			Action: &Initialize{
				Seed:   7,
				AssetX: assetX,
				AssetY: assetY,
				Fee:    30,
			},
			State: newState(t, testPool(0, 0, 0, 30)),
			ExpectedOutputs: &InitializeResult{
				Pool:    storage.PoolAddress(assetX, assetY, 7),
				Vault:   storage.VaultAddress(storage.PoolAddress(assetX, assetY, 7)),
				LPToken: storage.LPTokenAddress(storage.PoolAddress(assetX, assetY, 7)),
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
