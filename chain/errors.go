// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrNilAction     = errors.New("action is nil")
	ErrEmptyActor    = errors.New("actor is empty")
	ErrInvalidActor  = errors.New("actor is not an account")
	ErrStatePrefetch = errors.New("unable to prefetch state")
	ErrStateCommit   = errors.New("unable to commit state")
)
