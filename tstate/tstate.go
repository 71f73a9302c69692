// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tstate

import (
	"sync"

	"github.com/ava-labs/avalanchego/utils/maybe"
)

// op records the value a key held in its view before a change. A nothing
// [prev] means the key did not exist.
type op struct {
	key     string
	prev    maybe.Maybe[[]byte]
	touched bool
}

// TState collects the changes of every committed view so they can be
// persisted together.
type TState struct {
	l           sync.RWMutex
	ops         int
	changedKeys map[string]maybe.Maybe[[]byte]
}

// New returns a new instance of TState. Initializes the storage and changedKeys
// maps to have an initial size of [changedSize].
func New(changedSize int) *TState {
	return &TState{
		changedKeys: make(map[string]maybe.Maybe[[]byte], changedSize),
	}
}

func (ts *TState) getChangedValue(key string) ([]byte, bool, bool) {
	ts.l.RLock()
	defer ts.l.RUnlock()

	if v, ok := ts.changedKeys[key]; ok {
		if v.IsNothing() {
			return nil, true, false
		}
		return v.Value(), true, true
	}
	return nil, false, false
}

// PendingChanges returns the number of changed keys (not ops).
func (ts *TState) PendingChanges() int {
	ts.l.RLock()
	defer ts.l.RUnlock()

	return len(ts.changedKeys)
}

// OpIndex returns the number of operations committed by views.
func (ts *TState) OpIndex() int {
	ts.l.RLock()
	defer ts.l.RUnlock()

	return ts.ops
}

// ChangedKeys returns a copy of every changed key. A key holding Nothing was
// removed.
func (ts *TState) ChangedKeys() map[string]maybe.Maybe[[]byte] {
	ts.l.RLock()
	defer ts.l.RUnlock()

	changes := make(map[string]maybe.Maybe[[]byte], len(ts.changedKeys))
	for k, v := range ts.changedKeys {
		changes[k] = v
	}
	return changes
}
