// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/cpmm/chain/chaintest"
	"github.com/ava-labs/cpmm/state"
	"github.com/ava-labs/cpmm/storage"
)

func TestSetLock(t *testing.T) {
	immutable := testPool(0, 0, 0, 30)
	immutable.Authority = nil
	locked := testPool(0, 0, 0, 30)
	locked.Locked = true

	tests := []chaintest.ActionTest{
		{
			Name:  "PoolNotFound",
			Actor: alice,
			Action: &SetLock{
				AssetX: assetX,
				AssetY: assetY,
				Locked: true,
			},
			State:       newState(t, nil),
			ExpectedErr: ErrPoolNotFound,
		},
		{
			Name:  "Immutable",
			Actor: alice,
			Action: &SetLock{
				AssetX: assetX,
				AssetY: assetY,
				Locked: true,
			},
			State:       newState(t, immutable),
			ExpectedErr: ErrPoolImmutable,
		},
		{
			Name:  "Unauthorized",
			Actor: bob,
			Action: &SetLock{
				AssetX: assetX,
				AssetY: assetY,
				Locked: true,
			},
			State:       newState(t, testPool(0, 0, 0, 30)),
			ExpectedErr: ErrUnauthorized,
		},
		{
			Name:  "Lock",
			Actor: alice,
			Action: &SetLock{
				AssetX: assetX,
				AssetY: assetY,
				Locked: true,
			},
			State:           newState(t, testPool(0, 0, 0, 30)),
			ExpectedOutputs: &SetLockResult{Locked: true},
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				pool, err := storage.GetPool(ctx, m, poolAddress)
				require.NoError(t, err)
				require.True(t, pool.Locked)
			},
		},
		{
			Name:  "Unlock",
			Actor: alice,
			Action: &SetLock{
				AssetX: assetX,
				AssetY: assetY,
			},
			State:           newState(t, locked),
			ExpectedOutputs: &SetLockResult{Locked: false},
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				pool, err := storage.GetPool(ctx, m, poolAddress)
				require.NoError(t, err)
				require.False(t, pool.Locked)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
