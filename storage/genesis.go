// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/cpmm/state"
)

// [genesisPrefix]
func GenesisKey() []byte {
	return binary.BigEndian.AppendUint16([]byte{genesisPrefix}, GenesisChunks)
}

// GetGenesis returns the hash of the applied genesis, if any.
func GetGenesis(ctx context.Context, im state.Immutable) ([]byte, bool, error) {
	v, err := im.GetValue(ctx, GenesisKey())
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func SetGenesis(ctx context.Context, mu state.Mutable, hash []byte) error {
	return mu.Insert(ctx, GenesisKey(), hash)
}
