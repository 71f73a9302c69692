// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import "github.com/ava-labs/cpmm/codec"

// PoolSigner is the authority a pool presents to move funds out of its vault
// and to mint or burn its share token. It carries no secret: holders of the
// bank verify that every address belongs to the same pool.
type PoolSigner struct {
	pool       codec.Address
	vault      codec.Address
	shareToken codec.Address
}

func NewPoolSigner(pool codec.Address, vault codec.Address, shareToken codec.Address) PoolSigner {
	return PoolSigner{
		pool:       pool,
		vault:      vault,
		shareToken: shareToken,
	}
}

func (s PoolSigner) Pool() codec.Address {
	return s.pool
}

func (s PoolSigner) Vault() codec.Address {
	return s.vault
}

func (s PoolSigner) ShareToken() codec.Address {
	return s.shareToken
}
