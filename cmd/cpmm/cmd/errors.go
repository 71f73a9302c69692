// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrMissingFlag       = errors.New("missing flag")
	ErrMissingSubcommand = errors.New("must specify a subcommand")
	ErrInvalidType       = errors.New("invalid address type")
	ErrAborted           = errors.New("aborted")
	ErrUnknownShares     = errors.New("shares must be provided for a pool with liquidity")
)
