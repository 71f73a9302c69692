// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"fmt"

	"github.com/ava-labs/cpmm/auth"
	"github.com/ava-labs/cpmm/chain"
	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/state"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var _ chain.Transferer = (*Bank)(nil)

// Bank keeps fungible balances and supplies in the same state as pools.
type Bank struct{}

func NewBank() *Bank {
	return &Bank{}
}

func (*Bank) Transfer(
	ctx context.Context,
	mu state.Mutable,
	asset codec.Address,
	from codec.Address,
	to codec.Address,
	amount uint64,
) error {
	if amount == 0 || from == to {
		return nil
	}
	if err := subBalance(ctx, mu, asset, from, amount); err != nil {
		return err
	}
	return addBalance(ctx, mu, asset, to, amount)
}

func (b *Bank) TransferAsPool(
	ctx context.Context,
	mu state.Mutable,
	signer auth.PoolSigner,
	asset codec.Address,
	to codec.Address,
	amount uint64,
) error {
	if !ValidSigner(signer) {
		return ErrInvalidSigner
	}
	return b.Transfer(ctx, mu, asset, signer.Vault(), to, amount)
}

func (*Bank) Mint(
	ctx context.Context,
	mu state.Mutable,
	signer auth.PoolSigner,
	to codec.Address,
	amount uint64,
) error {
	if !ValidSigner(signer) {
		return ErrInvalidSigner
	}
	return MintAsset(ctx, mu, signer.ShareToken(), to, amount)
}

func (*Bank) Burn(
	ctx context.Context,
	mu state.Mutable,
	signer auth.PoolSigner,
	from codec.Address,
	amount uint64,
) error {
	if !ValidSigner(signer) {
		return ErrInvalidSigner
	}
	asset := signer.ShareToken()
	if amount == 0 {
		return nil
	}
	if err := subBalance(ctx, mu, asset, from, amount); err != nil {
		return err
	}
	supply, err := GetSupply(ctx, mu, asset)
	if err != nil {
		return err
	}
	newSupply, err := smath.Sub(supply, amount)
	if err != nil {
		return fmt.Errorf("%w: supply %d < %d", ErrInsufficientBalance, supply, amount)
	}
	return SetSupply(ctx, mu, asset, newSupply)
}

func (*Bank) Balance(ctx context.Context, im state.Immutable, asset codec.Address, account codec.Address) (uint64, error) {
	return GetBalance(ctx, im, asset, account)
}

func (*Bank) Supply(ctx context.Context, im state.Immutable, asset codec.Address) (uint64, error) {
	return GetSupply(ctx, im, asset)
}

// MintAsset creates [amount] of [asset] for [to] without any authority
// check. It backs genesis allocations and share minting.
func MintAsset(ctx context.Context, mu state.Mutable, asset codec.Address, to codec.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	supply, err := GetSupply(ctx, mu, asset)
	if err != nil {
		return err
	}
	newSupply, err := smath.Add(supply, amount)
	if err != nil {
		return fmt.Errorf("%w: supply of %s", ErrBalanceOverflow, asset)
	}
	if err := SetSupply(ctx, mu, asset, newSupply); err != nil {
		return err
	}
	return addBalance(ctx, mu, asset, to, amount)
}

func addBalance(ctx context.Context, mu state.Mutable, asset codec.Address, account codec.Address, amount uint64) error {
	bal, err := GetBalance(ctx, mu, asset, account)
	if err != nil {
		return err
	}
	newBal, err := smath.Add(bal, amount)
	if err != nil {
		return fmt.Errorf("%w: %s balance of %s", ErrBalanceOverflow, asset, account)
	}
	return SetBalance(ctx, mu, asset, account, newBal)
}

func subBalance(ctx context.Context, mu state.Mutable, asset codec.Address, account codec.Address, amount uint64) error {
	bal, err := GetBalance(ctx, mu, asset, account)
	if err != nil {
		return err
	}
	newBal, err := smath.Sub(bal, amount)
	if err != nil {
		return fmt.Errorf("%w: %s has %d of %s but needs %d", ErrInsufficientBalance, account, bal, asset, amount)
	}
	return SetBalance(ctx, mu, asset, account, newBal)
}
