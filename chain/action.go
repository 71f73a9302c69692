// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/state"
)

type Action interface {
	// GetTypeID uniquely identifies each supported [Action].
	GetTypeID() uint8

	// StateKeys is a full enumeration of all database keys that could be touched during execution
	// of an [Action]. This is used to prefetch state and will be used to serialize conflicting
	// actions.
	//
	// If any key is removed and then re-created, this will count as a creation instead of a modification.
	StateKeys(actor codec.Address) state.Keys

	// Execute actually runs the [Action]. Any state changes that the [Action] performs should
	// be done here.
	//
	// If any keys are touched during [Execute] that are not specified in [StateKeys], the transaction
	// will revert and the execution will fail. An error leaves state untouched.
	Execute(
		ctx context.Context,
		r Rules,
		t Transferer,
		mu state.Mutable,
		actor codec.Address,
	) (codec.Typed, error)
}
