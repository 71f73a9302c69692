// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/cpmm/consts"
)

// Packer is a wrapper struct for the Packer struct
// from avalanchego/utils/wrappers/packing.go. It adds
// address and optional value handling on top of it.
type Packer struct {
	p *wrappers.Packer
}

// NewReader returns a Packer instance that reads from [src].
// [limit] is the maximum number of bytes that will be read.
func NewReader(src []byte, limit int) *Packer {
	p := &wrappers.Packer{Bytes: src, MaxSize: limit}
	if len(src) > limit {
		p.Add(fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(src), limit))
	}
	return &Packer{p: p}
}

// NewWriter returns a Packer instance with an initial size of [initial] and a
// maximum size of [limit].
func NewWriter(initial, limit int) *Packer {
	return &Packer{
		p: &wrappers.Packer{MaxSize: limit, Bytes: make([]byte, 0, initial)},
	}
}

func (p *Packer) Bytes() []byte {
	return p.p.Bytes
}

func (p *Packer) Err() error {
	return p.p.Err
}

// Empty reports whether every byte has been consumed.
func (p *Packer) Empty() bool {
	return p.p.Offset == len(p.p.Bytes)
}

func (p *Packer) Offset() int {
	return p.p.Offset
}

func (p *Packer) PackByte(b byte) {
	p.p.PackByte(b)
}

func (p *Packer) UnpackByte() byte {
	return p.p.UnpackByte()
}

func (p *Packer) PackBool(b bool) {
	p.p.PackBool(b)
}

func (p *Packer) UnpackBool() bool {
	return p.p.UnpackBool()
}

func (p *Packer) PackUint16(v uint16) {
	p.p.PackShort(v)
}

func (p *Packer) UnpackUint16() uint16 {
	return p.p.UnpackShort()
}

func (p *Packer) PackUint64(v uint64) {
	p.p.PackLong(v)
}

// UnpackUint64 unpacks a uint64 and, if [required] is set, records an error when
// it is zero.
func (p *Packer) UnpackUint64(required bool) uint64 {
	v := p.p.UnpackLong()
	if required && v == 0 {
		p.addErr(fmt.Errorf("%w: Uint64 field is not populated", ErrFieldNotPopulated))
	}
	return v
}

func (p *Packer) PackAddress(a Address) {
	p.p.PackFixedBytes(a[:])
}

func (p *Packer) UnpackAddress(dest *Address) {
	copy((*dest)[:], p.p.UnpackFixedBytes(AddressLen))
	if *dest == EmptyAddress {
		p.addErr(fmt.Errorf("%w: Address field is not populated", ErrFieldNotPopulated))
	}
}

// PackOptionalAddress writes a presence flag followed by [a] when it is
// not nil.
func (p *Packer) PackOptionalAddress(a *Address) {
	if a == nil {
		p.PackBool(false)
		return
	}
	p.PackBool(true)
	p.PackAddress(*a)
}

func (p *Packer) UnpackOptionalAddress() *Address {
	if !p.UnpackBool() {
		return nil
	}
	var a Address
	p.UnpackAddress(&a)
	return &a
}

// Done returns the first error encountered. It also fails if any bytes are
// left unread.
func (p *Packer) Done() error {
	if p.Err() == nil && !p.Empty() {
		p.addErr(fmt.Errorf("%w: %d remaining", ErrExtraBytes, len(p.p.Bytes)-p.p.Offset))
	}
	return p.Err()
}

func (p *Packer) addErr(err error) {
	if p.p.Err == nil {
		p.p.Add(err)
	}
}

// MaxOptionalAddressLen is the worst case size of an optional address.
const MaxOptionalAddressLen = consts.BoolLen + AddressLen
