// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/cpmm/chain"
	"github.com/ava-labs/cpmm/chain/chaintest"
	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/pricing"
	"github.com/ava-labs/cpmm/storage"
)

const initialBalance = 1_000_000_000

// TestRandomOperations runs a random mix of actions and checks after each one
// that the ledger matches custody, that no asset is created or destroyed and
// that swaps never decrease the product of the reserves.
func TestRandomOperations(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	r := rand.New(rand.NewSource(3)) //nolint:gosec
	rules := chaintest.NewRules()
	bank := storage.NewBank()
	actors := []codec.Address{alice, bob}

	store := newState(t, testPool(0, 0, 0, 30),
		balance{assetX, alice, initialBalance},
		balance{assetY, alice, initialBalance},
		balance{assetX, bob, initialBalance},
		balance{assetY, bob, initialBalance},
	)
	seed := &Deposit{AssetX: assetX, AssetY: assetY, Shares: 1_000_000, MaxX: 1_000_000, MaxY: 3_000_000}
	_, err := chaintest.Execute(ctx, seed, rules, bank, store, alice)
	require.NoError(err)

	for i := 0; i < 2_000; i++ {
		actor := actors[r.Intn(len(actors))]
		before, err := storage.GetPool(ctx, store, poolAddress)
		require.NoError(err)

		var action chain.Action
		switch r.Intn(3) {
		case 0:
			action = &Swap{
				AssetX:   assetX,
				AssetY:   assetY,
				XToY:     r.Intn(2) == 0,
				AmountIn: uint64(r.Int63n(100_000)),
			}
		case 1:
			action = &Deposit{
				AssetX: assetX,
				AssetY: assetY,
				Shares: uint64(r.Int63n(100_000)),
				MaxX:   initialBalance,
				MaxY:   initialBalance,
			}
		default:
			held, err := storage.GetBalance(ctx, store, lpToken, actor)
			require.NoError(err)
			action = &Withdraw{
				AssetX: assetX,
				AssetY: assetY,
				Shares: uint64(r.Int63n(int64(held) + 1)),
			}
		}

		snapshot := store.Clone()
		if _, err := chaintest.Execute(ctx, action, rules, bank, store, actor); err != nil {
			require.Equal(snapshot.Storage, store.Storage)
			continue
		}

		after := requireConsistent(ctx, t, store)
		if _, ok := action.(*Swap); ok {
			k0 := pricing.Invariant(before.ReserveX, before.ReserveY)
			k1 := pricing.Invariant(after.ReserveX, after.ReserveY)
			require.False(k1.Lt(k0))
		}
		for _, asset := range []codec.Address{assetX, assetY} {
			total := uint64(0)
			for _, account := range []codec.Address{alice, bob, vault} {
				bal, err := storage.GetBalance(ctx, store, asset, account)
				require.NoError(err)
				total += bal
			}
			require.Equal(uint64(2*initialBalance), total)
		}
	}
}

func TestDepositWithdrawRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	rules := chaintest.NewRules()
	bank := storage.NewBank()

	store := newState(t, testPool(10_007, 30_011, 5_003, 30),
		balance{lpToken, alice, 5_003},
		balance{assetX, bob, initialBalance},
		balance{assetY, bob, initialBalance},
	)
	for _, shares := range []uint64{1, 7, 333, 5_003, 12_345} {
		out, err := chaintest.Execute(ctx, &Deposit{
			AssetX: assetX,
			AssetY: assetY,
			Shares: shares,
			MaxX:   initialBalance,
			MaxY:   initialBalance,
		}, rules, bank, store, bob)
		require.NoError(err)
		deposited := out.(*DepositResult)

		out, err = chaintest.Execute(ctx, &Withdraw{
			AssetX: assetX,
			AssetY: assetY,
			Shares: shares,
		}, rules, bank, store, bob)
		require.NoError(err)
		withdrawn := out.(*WithdrawResult)

		require.LessOrEqual(withdrawn.AmountX, deposited.AmountX)
		require.LessOrEqual(withdrawn.AmountY, deposited.AmountY)
	}
}
