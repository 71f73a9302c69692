// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/cpmm/consts"
)

func TestPackerOptionalAddress(t *testing.T) {
	require := require.New(t)
	addr := CreateAddress(consts.AccountID, ids.GenerateTestID())

	wp := NewWriter(0, 2*MaxOptionalAddressLen)
	wp.PackOptionalAddress(&addr)
	wp.PackOptionalAddress(nil)
	require.NoError(wp.Err())
	require.Len(wp.Bytes(), MaxOptionalAddressLen+consts.BoolLen)

	rp := NewReader(wp.Bytes(), 2*MaxOptionalAddressLen)
	got := rp.UnpackOptionalAddress()
	require.NotNil(got)
	require.Equal(addr, *got)
	require.Nil(rp.UnpackOptionalAddress())
	require.NoError(rp.Done())
}

func TestPackerRequiredFields(t *testing.T) {
	require := require.New(t)

	wp := NewWriter(0, consts.Uint64Len+AddressLen)
	wp.PackUint64(0)
	wp.PackAddress(EmptyAddress)
	require.NoError(wp.Err())

	rp := NewReader(wp.Bytes(), consts.Uint64Len+AddressLen)
	rp.UnpackUint64(true)
	var a Address
	rp.UnpackAddress(&a)
	require.ErrorIs(rp.Err(), ErrFieldNotPopulated)
}

func TestPackerExtraBytes(t *testing.T) {
	require := require.New(t)

	rp := NewReader([]byte{0, 1, 2}, 3)
	require.Equal(uint16(1), rp.UnpackUint16())
	require.ErrorIs(rp.Done(), ErrExtraBytes)
}

func TestPackerLimit(t *testing.T) {
	require := require.New(t)

	wp := NewWriter(0, consts.Uint16Len)
	wp.PackUint64(1)
	require.Error(wp.Err())

	rp := NewReader(make([]byte, 10), 4)
	require.ErrorIs(rp.Err(), ErrTooManyItems)
}
