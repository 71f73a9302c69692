// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"sort"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/maybe"
	"golang.org/x/exp/maps"
)

var _ Mutable = (*SimpleMutable)(nil)

// SimpleMutable buffers changes over [Database] until Commit is called.
type SimpleMutable struct {
	db Database

	changes map[string]maybe.Maybe[[]byte]
}

func NewSimpleMutable(db Database) *SimpleMutable {
	return &SimpleMutable{db, make(map[string]maybe.Maybe[[]byte])}
}

func (s *SimpleMutable) GetValue(_ context.Context, k []byte) ([]byte, error) {
	if v, ok := s.changes[string(k)]; ok {
		if v.IsNothing() {
			return nil, database.ErrNotFound
		}
		return v.Value(), nil
	}
	return s.db.Get(k)
}

func (s *SimpleMutable) Insert(_ context.Context, k []byte, v []byte) error {
	s.changes[string(k)] = maybe.Some(v)
	return nil
}

func (s *SimpleMutable) Remove(_ context.Context, k []byte) error {
	s.changes[string(k)] = maybe.Nothing[[]byte]()
	return nil
}

func (s *SimpleMutable) Commit(_ context.Context) error {
	return WriteChanges(s.db, s.changes)
}

// WriteChanges applies [changes] to [db] in a single batch.
func WriteChanges(db database.Batcher, changes map[string]maybe.Maybe[[]byte]) error {
	batch := db.NewBatch()
	keys := maps.Keys(changes)
	sort.Strings(keys)
	for _, k := range keys {
		v := changes[k]
		if v.IsNothing() {
			if err := batch.Delete([]byte(k)); err != nil {
				return err
			}
			continue
		}
		if err := batch.Put([]byte(k), v.Value()); err != nil {
			return err
		}
	}
	return batch.Write()
}
