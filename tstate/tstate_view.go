// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tstate

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/maybe"

	"github.com/ava-labs/cpmm/keys"
	"github.com/ava-labs/cpmm/state"
)

const defaultOps = 4

var _ state.Mutable = (*TStateView)(nil)

// TStateView is the scratch space of a single action. Every access is
// checked against the declared scope and every change can be undone with
// Rollback until the view is committed.
type TStateView struct {
	ts      *TState
	pending map[string]maybe.Maybe[[]byte]
	ops     []op

	scope      state.Keys
	prefetched map[string][]byte
}

// NewView returns a view limited to [scope]. [storage] holds the values of
// the keys in [scope] prior to any change.
func (ts *TState) NewView(scope state.Keys, storage map[string][]byte) *TStateView {
	return &TStateView{
		ts:         ts,
		pending:    make(map[string]maybe.Maybe[[]byte], len(scope)),
		ops:        make([]op, 0, defaultOps),
		scope:      scope,
		prefetched: storage,
	}
}

// Rollback undoes every operation after [restorePoint].
func (v *TStateView) Rollback(_ context.Context, restorePoint int) {
	for i := len(v.ops) - 1; i >= restorePoint; i-- {
		o := v.ops[i]
		if o.touched {
			v.pending[o.key] = o.prev
		} else {
			delete(v.pending, o.key)
		}
	}
	v.ops = v.ops[:restorePoint]
}

// OpIndex is the restore point of the current state of the view.
func (v *TStateView) OpIndex() int {
	return len(v.ops)
}

func (v *TStateView) allowed(key []byte, perm state.Permissions) bool {
	return v.scope[string(key)].Has(perm)
}

// GetValue requires Read on [key].
func (v *TStateView) GetValue(_ context.Context, key []byte) ([]byte, error) {
	if !v.allowed(key, state.Read) {
		return nil, ErrInvalidKeyOrPermission
	}
	value, _ := v.current(string(key))
	if value.IsNothing() {
		return nil, database.ErrNotFound
	}
	return value.Value(), nil
}

// current resolves [key] against the view, then committed views, then the
// prefetched storage. touched reports whether this view changed [key].
func (v *TStateView) current(key string) (value maybe.Maybe[[]byte], touched bool) {
	if value, ok := v.pending[key]; ok {
		return value, true
	}
	if b, changed, exists := v.ts.getChangedValue(key); changed {
		if !exists {
			return maybe.Nothing[[]byte](), false
		}
		return maybe.Some(b), false
	}
	if b, ok := v.prefetched[key]; ok {
		return maybe.Some(b), false
	}
	return maybe.Nothing[[]byte](), false
}

func (v *TStateView) record(key string, next maybe.Maybe[[]byte], prev maybe.Maybe[[]byte], touched bool) {
	v.ops = append(v.ops, op{key: key, prev: prev, touched: touched})
	v.pending[key] = next
}

// Insert creates [key] (requires Allocate) or overwrites it (requires
// Write). [value] must not be modified after the call.
func (v *TStateView) Insert(_ context.Context, key []byte, value []byte) error {
	if !keys.VerifyValue(key, value) {
		return ErrInvalidKeyValue
	}
	k := string(key)
	prev, touched := v.current(k)
	perm := state.Allocate
	if prev.HasValue() {
		perm = state.Write
	}
	if !v.allowed(key, perm) {
		return ErrInvalidKeyOrPermission
	}
	v.record(k, maybe.Some(value), prev, touched)
	return nil
}

// Remove requires Write on [key]. Removing a missing key is a no-op.
func (v *TStateView) Remove(_ context.Context, key []byte) error {
	if !v.allowed(key, state.Write) {
		return ErrInvalidKeyOrPermission
	}
	k := string(key)
	prev, touched := v.current(k)
	if prev.IsNothing() {
		return nil
	}
	v.record(k, maybe.Nothing[[]byte](), prev, touched)
	return nil
}

func (v *TStateView) PendingChanges() int {
	return len(v.pending)
}

// Commit merges the pending changes of the view into its parent.
func (v *TStateView) Commit() {
	v.ts.l.Lock()
	defer v.ts.l.Unlock()

	for k, value := range v.pending {
		v.ts.changedKeys[k] = value
	}
	v.ts.ops += len(v.ops)
}
