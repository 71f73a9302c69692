// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	ErrInvalidFee         = errors.New("invalid fee")
	ErrDivisionByZero     = errors.New("division by zero")

	ErrZeroSupply         = fmt.Errorf("%w: share supply is zero", ErrInvalidAmount)
	ErrSharesExceedSupply = fmt.Errorf("%w: shares exceed supply", ErrInvalidAmount)
	ErrReservesZero       = fmt.Errorf("%w: reserves are zero", ErrInvalidAmount)
)
