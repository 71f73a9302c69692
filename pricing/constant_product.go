// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"github.com/holiman/uint256"

	"github.com/ava-labs/cpmm/consts"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// SwapOutput quotes a constant product swap of [amountIn] against reserves
// ([reserveIn], [reserveOut]) charging [fee] basis points on the input.
//
// Returns: amount out, amount in after fee, error
//
// A zero result is returned without error when the input is too small to
// move the curve. Callers decide whether that is acceptable.
func SwapOutput(reserveIn uint64, reserveOut uint64, amountIn uint64, fee uint16) (uint64, uint64, error) {
	if fee > consts.BasisPoints {
		return 0, 0, ErrInvalidFee
	}
	if amountIn == 0 {
		return 0, 0, ErrInvalidAmount
	}
	if reserveIn == 0 || reserveOut == 0 {
		return 0, 0, ErrReservesZero
	}
	// The full input is credited to the pool.
	if _, err := smath.Add(reserveIn, amountIn); err != nil {
		return 0, 0, ErrArithmeticOverflow
	}
	amountInAfterFee, err := MulDiv(amountIn, uint64(consts.BasisPoints-fee), uint64(consts.BasisPoints))
	if err != nil {
		return 0, 0, err
	}
	if amountInAfterFee == 0 {
		return 0, 0, nil
	}
	// Cannot overflow: amountInAfterFee <= amountIn
	denominator := reserveIn + amountInAfterFee
	amountOut, err := MulDiv(reserveOut, amountInAfterFee, denominator)
	if err != nil {
		return 0, 0, err
	}
	return amountOut, amountInAfterFee, nil
}

// DepositAmountsFromShares returns the amounts of each asset required to mint
// [shares] against a pool with reserves ([reserveX], [reserveY]) and
// [supply] outstanding shares. Both amounts round down.
func DepositAmountsFromShares(reserveX uint64, reserveY uint64, supply uint64, shares uint64) (uint64, uint64, error) {
	if shares == 0 {
		return 0, 0, ErrInvalidAmount
	}
	if supply == 0 {
		return 0, 0, ErrZeroSupply
	}
	return proportional(reserveX, reserveY, supply, shares)
}

// WithdrawAmountsFromShares returns the amounts of each asset released by
// burning [shares]. Both amounts round down.
func WithdrawAmountsFromShares(reserveX uint64, reserveY uint64, supply uint64, shares uint64) (uint64, uint64, error) {
	if shares == 0 {
		return 0, 0, ErrInvalidAmount
	}
	if supply == 0 {
		return 0, 0, ErrZeroSupply
	}
	if shares > supply {
		return 0, 0, ErrSharesExceedSupply
	}
	return proportional(reserveX, reserveY, supply, shares)
}

func proportional(reserveX uint64, reserveY uint64, supply uint64, shares uint64) (uint64, uint64, error) {
	x, err := MulDiv(shares, reserveX, supply)
	if err != nil {
		return 0, 0, err
	}
	y, err := MulDiv(shares, reserveY, supply)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// InitialShares suggests a share amount for the first deposit of ([x], [y]):
// the geometric mean of the two amounts.
func InitialShares(x uint64, y uint64) uint64 {
	// sqrt of a 128-bit value always fits in 64 bits
	return Sqrt(Invariant(x, y)).Uint64()
}

// Invariant returns x*y without overflow.
func Invariant(x uint64, y uint64) *uint256.Int {
	return new(uint256.Int).Mul(uint256.NewInt(x), uint256.NewInt(y))
}

// MulDiv returns floor(a*b/c) using a 256-bit intermediate.
func MulDiv(a uint64, b uint64, c uint64) (uint64, error) {
	if c == 0 {
		return 0, ErrDivisionByZero
	}
	var product uint256.Int
	product.Mul(uint256.NewInt(a), uint256.NewInt(b))
	product.Div(&product, uint256.NewInt(c))
	if !product.IsUint64() {
		return 0, ErrArithmeticOverflow
	}
	return product.Uint64(), nil
}

// Sqrt returns floor(sqrt(y)).
func Sqrt(y *uint256.Int) *uint256.Int {
	return new(uint256.Int).Sqrt(y)
}
