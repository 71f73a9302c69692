// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/ava-labs/cpmm/chain"
	"github.com/ava-labs/cpmm/chain/chaintest"
	"github.com/ava-labs/cpmm/pricing"
	"github.com/ava-labs/cpmm/state"
	"github.com/ava-labs/cpmm/storage"
)

func TestWithdraw(t *testing.T) {
	bank := storage.NewBank()
	locked := testPool(1_000, 4_000, 2_000, 30)
	locked.Locked = true

	tests := []chaintest.ActionTest{
		{
			Name:  "PoolNotFound",
			Actor: alice,
			Action: &Withdraw{
				AssetX: assetX,
				AssetY: assetY,
				Shares: 1,
			},
			Transferer:  bank,
			State:       newState(t, nil),
			ExpectedErr: ErrPoolNotFound,
		},
		{
			Name:  "PoolLocked",
			Actor: alice,
			Action: &Withdraw{
				AssetX: assetX,
				AssetY: assetY,
				Shares: 1,
			},
			Transferer:  bank,
			State:       newState(t, locked, balance{lpToken, alice, 2_000}),
			ExpectedErr: ErrPoolLocked,
		},
		{
			Name:  "ZeroShares",
			Actor: alice,
			Action: &Withdraw{
				AssetX: assetX,
				AssetY: assetY,
			},
			Transferer:  bank,
			State:       newState(t, testPool(1_000, 4_000, 2_000, 30), balance{lpToken, alice, 2_000}),
			ExpectedErr: ErrInvalidAmount,
		},
		{
			Name:  "EmptyPool",
			Actor: alice,
			Action: &Withdraw{
				AssetX: assetX,
				AssetY: assetY,
				Shares: 10,
				MinX:   1,
				MinY:   1,
			},
			Transferer:  bank,
			State:       newState(t, testPool(0, 0, 0, 30)),
			ExpectedErr: ErrTransferFailed,
		},
		{
			Name:  "SharesExceedSupply",
			Actor: alice,
			Action: &Withdraw{
				AssetX: assetX,
				AssetY: assetY,
				Shares: 2_001,
			},
			Transferer:  bank,
			State:       newState(t, testPool(1_000, 4_000, 2_000, 30), balance{lpToken, alice, 2_000}),
			ExpectedErr: pricing.ErrSharesExceedSupply,
		},
		{
			Name:  "SharesExceedHoldings",
			Actor: bob,
			Action: &Withdraw{
				AssetX: assetX,
				AssetY: assetY,
				Shares: 500,
			},
			Transferer:  bank,
			State:       newState(t, testPool(1_000, 4_000, 2_000, 30), balance{lpToken, alice, 2_000}),
			ExpectedErr: ErrTransferFailed,
		},
		{
			Name:  "SlippageExceeded",
			Actor: alice,
			Action: &Withdraw{
				AssetX: assetX,
				AssetY: assetY,
				Shares: 500,
				MinX:   251,
			},
			Transferer:  bank,
			State:       newState(t, testPool(1_000, 4_000, 2_000, 30), balance{lpToken, alice, 2_000}),
			ExpectedErr: ErrSlippageExceeded,
		},
		{
			Name:  "Partial",
			Actor: alice,
			Action: &Withdraw{
				AssetX: assetX,
				AssetY: assetY,
				Shares: 500,
				MinX:   250,
				MinY:   1_000,
			},
			Transferer: bank,
			State:      newState(t, testPool(1_000, 4_000, 2_000, 30), balance{lpToken, alice, 2_000}),
			ExpectedOutputs: &WithdrawResult{
				AmountX: 250,
				AmountY: 1_000,
				Shares:  500,
			},
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				requirePool(ctx, t, m, 750, 3_000, 1_500)
				requireBalance(ctx, t, m, assetX, alice, 250)
				requireBalance(ctx, t, m, assetY, alice, 1_000)
				requireBalance(ctx, t, m, lpToken, alice, 1_500)
			},
		},
		{
			Name:  "RoundsDown",
			Actor: alice,
			Action: &Withdraw{
				AssetX: assetX,
				AssetY: assetY,
				Shares: 1,
			},
			Transferer: bank,
			State:      newState(t, testPool(10, 7, 3, 30), balance{lpToken, alice, 3}),
			ExpectedOutputs: &WithdrawResult{
				AmountX: 3,
				AmountY: 2,
				Shares:  1,
			},
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				requirePool(ctx, t, m, 7, 5, 2)
			},
		},
		{
			Name:  "Full",
			Actor: alice,
			Action: &Withdraw{
				AssetX: assetX,
				AssetY: assetY,
				Shares: 2_000,
			},
			Transferer: bank,
			State:      newState(t, testPool(1_000, 4_000, 2_000, 30), balance{lpToken, alice, 2_000}),
			ExpectedOutputs: &WithdrawResult{
				AmountX: 1_000,
				AmountY: 4_000,
				Shares:  2_000,
			},
			Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
				requirePool(ctx, t, m, 0, 0, 0)
				requireBalance(ctx, t, m, assetX, alice, 1_000)
				requireBalance(ctx, t, m, assetY, alice, 4_000)
				requireBalance(ctx, t, m, lpToken, alice, 0)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}

func TestWithdrawSecondPayoutFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	bank := storage.NewBank()
	errPayout := errors.New("payout")
	signer := storage.PoolSigner(poolAddress)

	transferer := chain.NewMockTransferer(ctrl)
	burn := transferer.EXPECT().
		Burn(gomock.Any(), gomock.Any(), signer, alice, uint64(500)).
		DoAndReturn(bank.Burn)
	payX := transferer.EXPECT().
		TransferAsPool(gomock.Any(), gomock.Any(), signer, assetX, alice, uint64(250)).
		DoAndReturn(bank.TransferAsPool).
		After(burn)
	transferer.EXPECT().
		TransferAsPool(gomock.Any(), gomock.Any(), signer, assetY, alice, uint64(1_000)).
		Return(errPayout).
		After(payX)

	test := chaintest.ActionTest{
		Name:  "SecondPayoutFailure",
		Actor: alice,
		Action: &Withdraw{
			AssetX: assetX,
			AssetY: assetY,
			Shares: 500,
		},
		Transferer:  transferer,
		State:       newState(t, testPool(1_000, 4_000, 2_000, 30), balance{lpToken, alice, 2_000}),
		ExpectedErr: errPayout,
		Assertion: func(ctx context.Context, t *testing.T, m state.Mutable) {
			requirePool(ctx, t, m, 1_000, 4_000, 2_000)
			requireBalance(ctx, t, m, lpToken, alice, 2_000)
			requireBalance(ctx, t, m, assetX, alice, 0)
		},
	}
	test.Run(context.Background(), t)
}
