// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

// Address type IDs
const (
	AccountID uint8 = iota
	AssetID
	PoolID
	VaultID
	LPTokenID
)

// Action type IDs
const (
	InitializeID uint8 = iota
	DepositID
	WithdrawID
	SwapID
	SetLockID
)
