// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBalanceOverflow     = errors.New("balance overflow")
	ErrInvalidSigner       = errors.New("invalid pool signer")
	ErrInvalidBalance      = errors.New("invalid balance")
	ErrInvalidPool         = errors.New("invalid pool")
)
