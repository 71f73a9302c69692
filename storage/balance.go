// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/state"
)

// [balancePrefix] + [asset] + [account]
func BalanceKey(asset codec.Address, account codec.Address) []byte {
	k := make([]byte, 1+2*codec.AddressLen+consts.Uint16Len)
	k[0] = balancePrefix
	copy(k[1:], asset[:])
	copy(k[1+codec.AddressLen:], account[:])
	binary.BigEndian.PutUint16(k[1+2*codec.AddressLen:], BalanceChunks)
	return k
}

// [supplyPrefix] + [asset]
func SupplyKey(asset codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+consts.Uint16Len)
	k[0] = supplyPrefix
	copy(k[1:], asset[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], SupplyChunks)
	return k
}

// GetBalance returns 0 for accounts that never held [asset].
func GetBalance(ctx context.Context, im state.Immutable, asset codec.Address, account codec.Address) (uint64, error) {
	return getUint64(ctx, im, BalanceKey(asset, account))
}

func SetBalance(ctx context.Context, mu state.Mutable, asset codec.Address, account codec.Address, balance uint64) error {
	return setUint64(ctx, mu, BalanceKey(asset, account), balance)
}

func GetSupply(ctx context.Context, im state.Immutable, asset codec.Address) (uint64, error) {
	return getUint64(ctx, im, SupplyKey(asset))
}

func SetSupply(ctx context.Context, mu state.Mutable, asset codec.Address, supply uint64) error {
	return setUint64(ctx, mu, SupplyKey(asset), supply)
}

func getUint64(ctx context.Context, im state.Immutable, key []byte) (uint64, error) {
	v, err := im.GetValue(ctx, key)
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(v) != consts.Uint64Len {
		return 0, ErrInvalidBalance
	}
	return binary.BigEndian.Uint64(v), nil
}

// Zero values are removed rather than stored.
func setUint64(ctx context.Context, mu state.Mutable, key []byte, value uint64) error {
	if value == 0 {
		return mu.Remove(ctx, key)
	}
	return mu.Insert(ctx, key, binary.BigEndian.AppendUint64(nil, value))
}
