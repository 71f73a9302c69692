// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/maybe"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/cpmm/state"
)

func newTestDatabase(t *testing.T) *Database {
	cfg := NewDefaultConfig()
	cfg.Sync = false
	db, registry, err := New(t.TempDir(), cfg)
	require.NoError(t, err)
	require.NotNil(t, registry)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestDatabaseGetPutDelete(t *testing.T) {
	require := require.New(t)
	db := newTestDatabase(t)

	_, err := db.Get([]byte("missing"))
	require.ErrorIs(err, database.ErrNotFound)
	has, err := db.Has([]byte("missing"))
	require.NoError(err)
	require.False(has)

	require.NoError(db.Put([]byte("k"), []byte("v")))
	v, err := db.Get([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)
	has, err = db.Has([]byte("k"))
	require.NoError(err)
	require.True(has)

	require.NoError(db.Delete([]byte("k")))
	_, err = db.Get([]byte("k"))
	require.ErrorIs(err, database.ErrNotFound)
}

func TestBatchWriteAndReplay(t *testing.T) {
	require := require.New(t)
	db := newTestDatabase(t)
	require.NoError(db.Put([]byte("old"), []byte("1")))

	b := db.NewBatch()
	require.NoError(b.Put([]byte("a"), []byte("2")))
	require.NoError(b.Delete([]byte("old")))
	require.Equal(len("a")+len("2")+len("old"), b.Size())

	// Nothing is visible before Write
	_, err := db.Get([]byte("a"))
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(b.Write())
	v, err := db.Get([]byte("a"))
	require.NoError(err)
	require.Equal([]byte("2"), v)
	_, err = db.Get([]byte("old"))
	require.ErrorIs(err, database.ErrNotFound)

	mem := memdb.New()
	require.NoError(mem.Put([]byte("old"), []byte("1")))
	require.NoError(b.Replay(mem))
	v, err = mem.Get([]byte("a"))
	require.NoError(err)
	require.Equal([]byte("2"), v)
	has, err := mem.Has([]byte("old"))
	require.NoError(err)
	require.False(has)

	b.Reset()
	require.Zero(b.Size())

	// The batch is reusable once written
	require.NoError(b.Put([]byte("b"), []byte("3")))
	require.NoError(b.Write())
	v, err = db.Get([]byte("b"))
	require.NoError(err)
	require.Equal([]byte("3"), v)
}

func TestWriteChangesPersist(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()
	cfg := NewDefaultConfig()

	db, _, err := New(dir, cfg)
	require.NoError(err)
	require.NoError(state.WriteChanges(db, map[string]maybe.Maybe[[]byte]{
		"pool":    maybe.Some([]byte{1, 2, 3}),
		"balance": maybe.Some([]byte{4}),
	}))
	require.NoError(db.Close())
	require.ErrorIs(db.Close(), database.ErrClosed)
	_, err = db.Get([]byte("pool"))
	require.ErrorIs(err, database.ErrClosed)

	db, _, err = New(dir, cfg)
	require.NoError(err)
	defer func() {
		require.NoError(db.Close())
	}()
	v, err := db.Get([]byte("pool"))
	require.NoError(err)
	require.Equal([]byte{1, 2, 3}, v)
	v, err = db.Get([]byte("balance"))
	require.NoError(err)
	require.Equal([]byte{4}, v)
}

func BenchmarkBatchInsertion(b *testing.B) {
	cfg := NewDefaultConfig()
	cfg.Sync = false
	db, _, err := New(b.TempDir(), cfg)
	require.NoError(b, err)
	defer db.Close()

	keys := make([][]byte, 10_000)
	for i := range keys {
		keys[i] = []byte{byte(i >> 8), byte(i)}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		batch := db.NewBatch()
		for _, k := range keys {
			if err := batch.Put(k, k); err != nil {
				b.Fatal(err)
			}
		}
		if err := batch.Write(); err != nil {
			b.Fatal(err)
		}
	}
}
