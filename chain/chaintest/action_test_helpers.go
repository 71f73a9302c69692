// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"context"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/cpmm/chain"
	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/state"
	"github.com/ava-labs/cpmm/tstate"
)

var (
	_ state.Mutable = (*InMemoryStore)(nil)
	_ chain.Rules   = (*Rules)(nil)
)

// InMemoryStore is an in-memory implementation of `state.Mutable`
type InMemoryStore struct {
	Storage map[string][]byte
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		Storage: make(map[string][]byte),
	}
}

func (i *InMemoryStore) GetValue(_ context.Context, key []byte) ([]byte, error) {
	val, ok := i.Storage[string(key)]
	if !ok {
		return nil, database.ErrNotFound
	}
	return val, nil
}

func (i *InMemoryStore) Insert(_ context.Context, key []byte, value []byte) error {
	i.Storage[string(key)] = value
	return nil
}

func (i *InMemoryStore) Remove(_ context.Context, key []byte) error {
	delete(i.Storage, string(key))
	return nil
}

// Clone returns a deep copy of the store.
func (i *InMemoryStore) Clone() *InMemoryStore {
	c := NewInMemoryStore()
	for k, v := range i.Storage {
		c.Storage[k] = append([]byte(nil), v...)
	}
	return c
}

type Rules struct {
	MaxFee        uint16
	ShareDecimals uint8
}

func NewRules() *Rules {
	return &Rules{MaxFee: 10_000, ShareDecimals: 6}
}

func (r *Rules) GetMaxFee() uint16 {
	return r.MaxFee
}

func (r *Rules) GetShareDecimals() uint8 {
	return r.ShareDecimals
}

// ActionTest is a single parameterized test. It executes the action on a view
// restricted to its declared state keys and commits the changes to [State]
// only on success, so a failing action must leave [State] untouched.
type ActionTest struct {
	Name string

	Action chain.Action

	Rules      chain.Rules
	Transferer chain.Transferer
	State      *InMemoryStore
	Actor      codec.Address

	ExpectedOutputs codec.Typed
	ExpectedErr     error

	Assertion func(context.Context, *testing.T, state.Mutable)
}

// Run executes the [ActionTest] and make sure all assertions pass.
func (test *ActionTest) Run(ctx context.Context, t *testing.T) {
	t.Run(test.Name, func(t *testing.T) {
		require := require.New(t)

		rules := test.Rules
		if rules == nil {
			rules = NewRules()
		}
		before := test.State.Clone()

		output, err := Execute(ctx, test.Action, rules, test.Transferer, test.State, test.Actor)
		require.ErrorIs(err, test.ExpectedErr)
		require.Equal(test.ExpectedOutputs, output)
		if err != nil {
			require.Equal(before.Storage, test.State.Storage)
		}

		if test.Assertion != nil {
			test.Assertion(ctx, t, test.State)
		}
	})
}

// Execute runs [action] against [store] the way the processor does.
func Execute(
	ctx context.Context,
	action chain.Action,
	rules chain.Rules,
	transferer chain.Transferer,
	store *InMemoryStore,
	actor codec.Address,
) (codec.Typed, error) {
	stateKeys := action.StateKeys(actor)
	storage := make(map[string][]byte, len(stateKeys))
	for k := range stateKeys {
		v, err := store.GetValue(ctx, []byte(k))
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		storage[k] = v
	}
	ts := tstate.New(len(stateKeys))
	view := ts.NewView(stateKeys, storage)
	output, err := action.Execute(ctx, rules, transferer, view, actor)
	if err != nil {
		return nil, err
	}
	view.Commit()
	for k, v := range ts.ChangedKeys() {
		if v.IsNothing() {
			delete(store.Storage, k)
			continue
		}
		store.Storage[k] = v.Value()
	}
	return output, nil
}
