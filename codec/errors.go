// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrInvalidAddress    = errors.New("invalid address")
	ErrFieldNotPopulated = errors.New("field is not populated")
	ErrTooManyItems      = errors.New("too many items")
	ErrExtraBytes        = errors.New("extra bytes")
)
