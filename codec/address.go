// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
)

const AddressLen = 33

// Address is a 33 byte identifier: a one byte type tag followed by a 32 byte
// id. Accounts, assets, pools, vaults and share tokens all share this space.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// CreateAddress returns [Address] made from concatenating
// [typeID] with [id].
func CreateAddress(typeID uint8, id ids.ID) Address {
	var a Address
	a[0] = typeID
	copy(a[1:], id[:])
	return a
}

// ParseAddress decodes a (optionally 0x prefixed) hex address.
func ParseAddress(s string) (Address, error) {
	var a Address
	if err := a.UnmarshalText([]byte(s)); err != nil {
		return EmptyAddress, err
	}
	return a, nil
}

// TypeID returns the leading type tag.
func (a Address) TypeID() uint8 {
	return a[0]
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText returns the hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a hex-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	s := strings.TrimPrefix(string(input), "0x")
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if len(decoded) != AddressLen {
		return fmt.Errorf("%w: expected %d bytes but got %d", ErrInvalidAddress, AddressLen, len(decoded))
	}
	copy(a[:], decoded)
	return nil
}
