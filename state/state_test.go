// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/stretchr/testify/require"
)

func TestPermissions(t *testing.T) {
	require := require.New(t)

	keys := Keys{}
	keys.Add("a", Read)
	keys.Add("a", Write)
	keys.Add("b", Allocate)

	require.True(keys["a"].Has(Write))
	require.False(keys["a"].Has(Allocate))
	require.True(keys["a"].Writable())
	require.True(keys["b"].Writable())
	require.False(Read.Writable())
	require.True(All.Has(Allocate | Write))
	require.True(None.Has(None))
}

func TestSimpleMutable(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	db := memdb.New()
	require.NoError(db.Put([]byte("existing"), []byte{1}))

	mu := NewSimpleMutable(db)
	require.NoError(mu.Insert(ctx, []byte("new"), []byte{2}))
	require.NoError(mu.Remove(ctx, []byte("existing")))

	_, err := mu.GetValue(ctx, []byte("existing"))
	require.ErrorIs(err, database.ErrNotFound)
	v, err := mu.GetValue(ctx, []byte("new"))
	require.NoError(err)
	require.Equal([]byte{2}, v)

	// Nothing reaches the database before commit
	has, err := db.Has([]byte("new"))
	require.NoError(err)
	require.False(has)

	require.NoError(mu.Commit(ctx))

	r := NewReader(db)
	v, err = r.GetValue(ctx, []byte("new"))
	require.NoError(err)
	require.Equal([]byte{2}, v)
	_, err = r.GetValue(ctx, []byte("existing"))
	require.ErrorIs(err, database.ErrNotFound)
}
