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
	_ codec.Typed  = (*InitializeResult)(nil)
	_ chain.Action = (*Initialize)(nil)
)

type InitializeResult struct {
	Pool    codec.Address `json:"pool"`
	Vault   codec.Address `json:"vault"`
	LPToken codec.Address `json:"lpToken"`
}

func (*InitializeResult) GetTypeID() uint8 {
	return consts.InitializeID
}

// Initialize creates an empty pool for ([AssetX], [AssetY], [Seed]).
type Initialize struct {
	Seed      uint64         `json:"seed"`
	AssetX    codec.Address  `json:"assetX"`
	AssetY    codec.Address  `json:"assetY"`
	Fee       uint16         `json:"fee"`
	Authority *codec.Address `json:"authority,omitempty"`
}

func (*Initialize) GetTypeID() uint8 {
	return consts.InitializeID
}

func (i *Initialize) StateKeys(codec.Address) state.Keys {
	pool := storage.PoolAddress(i.AssetX, i.AssetY, i.Seed)
	return state.Keys{
		string(storage.PoolKey(pool)): state.All,
	}
}

func (i *Initialize) Execute(
	ctx context.Context,
	r chain.Rules,
	_ chain.Transferer,
	mu state.Mutable,
	_ codec.Address,
) (codec.Typed, error) {
	if i.AssetX == codec.EmptyAddress || i.AssetY == codec.EmptyAddress {
		return nil, ErrInvalidAsset
	}
	if i.AssetX == i.AssetY {
		return nil, ErrIdenticalAssets
	}
	if i.Fee > consts.BasisPoints || i.Fee > r.GetMaxFee() {
		return nil, ErrInvalidFee
	}
	pool := storage.PoolAddress(i.AssetX, i.AssetY, i.Seed)
	exists, err := storage.HasPool(ctx, mu, pool)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePool
	}
	var authority *codec.Address
	if i.Authority != nil {
		a := *i.Authority
		authority = &a
	}
	if err := storage.SetPool(ctx, mu, pool, &storage.Pool{
		Seed:      i.Seed,
		Authority: authority,
		AssetX:    i.AssetX,
		AssetY:    i.AssetY,
		Fee:       i.Fee,
	}); err != nil {
		return nil, err
	}
	return &InitializeResult{
		Pool:    pool,
		Vault:   storage.VaultAddress(pool),
		LPToken: storage.LPTokenAddress(pool),
	}, nil
}
