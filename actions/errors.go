// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"errors"

	"github.com/ava-labs/cpmm/pricing"
)

var (
	// Pool-related errors
	ErrIdenticalAssets   = errors.New("asset x and asset y are identical")
	ErrInvalidAsset      = errors.New("asset address is empty")
	ErrDuplicatePool     = errors.New("pool already exists")
	ErrPoolNotFound      = errors.New("pool does not exist")
	ErrPoolLocked        = errors.New("pool is locked")
	ErrPoolImmutable     = errors.New("pool has no authority")
	ErrUnauthorized      = errors.New("actor is not the pool authority")
	ErrSlippageExceeded  = errors.New("slippage limit exceeded")
	ErrInvariantViolated = errors.New("constant product decreased")
	ErrTransferFailed    = errors.New("transfer failed")

	// Shared with the math library
	ErrInvalidFee         = pricing.ErrInvalidFee
	ErrInvalidAmount      = pricing.ErrInvalidAmount
	ErrArithmeticOverflow = pricing.ErrArithmeticOverflow
)
