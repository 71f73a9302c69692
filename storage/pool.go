// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/state"
)

// Pool is the ledger of a single constant product pool.
type Pool struct {
	Seed uint64 `json:"seed"`
	// Authority may toggle Locked. A nil authority makes the pool immutable.
	Authority *codec.Address `json:"authority,omitempty"`
	AssetX    codec.Address  `json:"assetX"`
	AssetY    codec.Address  `json:"assetY"`
	// Fee is charged on swap input, in basis points.
	Fee      uint16 `json:"fee"`
	Locked   bool   `json:"locked"`
	ReserveX uint64 `json:"reserveX"`
	ReserveY uint64 `json:"reserveY"`
	LPSupply uint64 `json:"lpSupply"`
}

// Empty reports whether the pool holds no liquidity.
func (p *Pool) Empty() bool {
	return p.LPSupply == 0 && p.ReserveX == 0 && p.ReserveY == 0
}

func (p *Pool) Marshal() ([]byte, error) {
	pk := codec.NewWriter(PoolSize, PoolSize)
	pk.PackUint64(p.Seed)
	pk.PackOptionalAddress(p.Authority)
	pk.PackAddress(p.AssetX)
	pk.PackAddress(p.AssetY)
	pk.PackUint16(p.Fee)
	pk.PackBool(p.Locked)
	pk.PackUint64(p.ReserveX)
	pk.PackUint64(p.ReserveY)
	pk.PackUint64(p.LPSupply)
	return pk.Bytes(), pk.Err()
}

func UnmarshalPool(b []byte) (*Pool, error) {
	var p Pool
	pk := codec.NewReader(b, PoolSize)
	p.Seed = pk.UnpackUint64(false)
	p.Authority = pk.UnpackOptionalAddress()
	pk.UnpackAddress(&p.AssetX)
	pk.UnpackAddress(&p.AssetY)
	p.Fee = pk.UnpackUint16()
	p.Locked = pk.UnpackBool()
	p.ReserveX = pk.UnpackUint64(false)
	p.ReserveY = pk.UnpackUint64(false)
	p.LPSupply = pk.UnpackUint64(false)
	if err := pk.Done(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPool, err)
	}
	return &p, nil
}

// [poolPrefix] + [address]
func PoolKey(pool codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+consts.Uint16Len)
	k[0] = poolPrefix
	copy(k[1:], pool[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], PoolChunks)
	return k
}

// GetPool returns [database.ErrNotFound] if [pool] was never initialized.
func GetPool(ctx context.Context, im state.Immutable, pool codec.Address) (*Pool, error) {
	v, err := im.GetValue(ctx, PoolKey(pool))
	if err != nil {
		return nil, err
	}
	return UnmarshalPool(v)
}

func SetPool(ctx context.Context, mu state.Mutable, pool codec.Address, p *Pool) error {
	v, err := p.Marshal()
	if err != nil {
		return err
	}
	return mu.Insert(ctx, PoolKey(pool), v)
}

func HasPool(ctx context.Context, im state.Immutable, pool codec.Address) (bool, error) {
	_, err := im.GetValue(ctx, PoolKey(pool))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, database.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
