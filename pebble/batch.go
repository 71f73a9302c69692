// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
)

var _ database.Batch = (*batch)(nil)

type op struct {
	key    []byte
	value  []byte
	delete bool
}

// batch tracks its own operations so it can be replayed after the pebble
// batch has been committed.
type batch struct {
	db   *Database
	b    *pebble.Batch
	ops  []op
	size int
}

func (b *batch) Put(key, value []byte) error {
	b.ops = append(b.ops, op{key: slices.Clone(key), value: slices.Clone(value)})
	b.size += len(key) + len(value)
	return b.b.Set(key, value, nil)
}

func (b *batch) Delete(key []byte) error {
	b.ops = append(b.ops, op{key: slices.Clone(key), delete: true})
	b.size += len(key)
	return b.b.Delete(key, nil)
}

func (b *batch) Size() int {
	return b.size
}

// Write commits the batch and releases the pebble batch. The recorded ops
// stay available to Replay and the batch can be reused after Reset.
func (b *batch) Write() error {
	if err := b.b.Commit(b.db.wo); err != nil {
		return err
	}
	if err := b.b.Close(); err != nil {
		return err
	}
	b.b = b.db.db.NewBatch()
	return nil
}

func (b *batch) Reset() {
	b.b.Reset()
	b.ops = b.ops[:0]
	b.size = 0
}

func (b *batch) Replay(w database.KeyValueWriterDeleter) error {
	for _, o := range b.ops {
		if o.delete {
			if err := w.Delete(o.key); err != nil {
				return err
			}
			continue
		}
		if err := w.Put(o.key, o.value); err != nil {
			return err
		}
	}
	return nil
}

func (b *batch) Inner() database.Batch {
	return b
}
