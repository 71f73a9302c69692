// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/state"
	"github.com/ava-labs/cpmm/storage"
)

var (
	alice = codec.CreateAddress(consts.AccountID, ids.GenerateTestID())
	asset = codec.CreateAddress(consts.AssetID, ids.GenerateTestID())
)

func TestLoad(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(NewDefaultGenesis([]*CustomAllocation{
		{Address: alice, Asset: asset, Balance: 10},
	}))
	require.NoError(err)

	g, err := Load(b)
	require.NoError(err)
	require.Equal(consts.BasisPoints, g.Rules.GetMaxFee())
	require.Equal(consts.ShareDecimals, g.Rules.GetShareDecimals())
	require.Len(g.CustomAllocation, 1)
	require.Equal(alice, g.CustomAllocation[0].Address)

	// Rules default when omitted
	g, err = Load([]byte(`{"customAllocation":[]}`))
	require.NoError(err)
	require.Equal(NewDefaultRules(), g.Rules)

	_, err = Load([]byte(`{"initialRules":{"maxFee":10001}}`))
	require.ErrorIs(err, ErrInvalidRules)

	_, err = Load([]byte(`{`))
	require.Error(err)
}

func TestVerifyAllocations(t *testing.T) {
	pool := storage.PoolAddress(asset, codec.CreateAddress(consts.AssetID, ids.GenerateTestID()), 0)

	tests := []struct {
		name        string
		allocations []*CustomAllocation
		expectedErr error
	}{
		{
			name: "valid",
			allocations: []*CustomAllocation{
				{Address: alice, Asset: asset, Balance: 10},
			},
		},
		{
			name: "supply overflow",
			allocations: []*CustomAllocation{
				{Address: alice, Asset: asset, Balance: math.MaxUint64},
				{Address: alice, Asset: asset, Balance: 1},
			},
			expectedErr: ErrInvalidAllocation,
		},
		{
			name: "empty asset",
			allocations: []*CustomAllocation{
				{Address: alice, Balance: 1},
			},
			expectedErr: ErrInvalidAllocation,
		},
		{
			name: "pool shares",
			allocations: []*CustomAllocation{
				{Address: alice, Asset: storage.LPTokenAddress(pool), Balance: 1_000},
			},
			expectedErr: ErrInvalidAllocation,
		},
		{
			name: "vault holder",
			allocations: []*CustomAllocation{
				{Address: storage.VaultAddress(pool), Asset: asset, Balance: 1_000},
			},
			expectedErr: ErrInvalidAllocation,
		},
		{
			name: "asset holder",
			allocations: []*CustomAllocation{
				{Address: asset, Asset: asset, Balance: 1},
			},
			expectedErr: ErrInvalidAllocation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			g := NewDefaultGenesis(tt.allocations)
			require.ErrorIs(g.Verify(), tt.expectedErr)
		})
	}
}

func TestInitializeState(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	tracer := noop.NewTracerProvider().Tracer("")
	db := memdb.New()

	g := NewDefaultGenesis([]*CustomAllocation{
		{Address: alice, Asset: asset, Balance: 10},
		{Address: alice, Asset: asset, Balance: 5},
	})
	applied, err := g.InitializeState(ctx, tracer, db)
	require.NoError(err)
	require.True(applied)

	im := state.NewReader(db)
	bal, err := storage.GetBalance(ctx, im, asset, alice)
	require.NoError(err)
	require.Equal(uint64(15), bal)
	supply, err := storage.GetSupply(ctx, im, asset)
	require.NoError(err)
	require.Equal(uint64(15), supply)

	// Reapplying the same genesis is a no-op
	applied, err = g.InitializeState(ctx, tracer, db)
	require.NoError(err)
	require.False(applied)
	bal, err = storage.GetBalance(ctx, im, asset, alice)
	require.NoError(err)
	require.Equal(uint64(15), bal)

	// A different genesis is rejected
	other := NewDefaultGenesis([]*CustomAllocation{{Address: alice, Asset: asset, Balance: 1}})
	_, err = other.InitializeState(ctx, tracer, db)
	require.ErrorIs(err, ErrGenesisMismatch)
}
