// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"encoding/binary"

	"github.com/ava-labs/cpmm/auth"
	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/utils"
)

// PoolAddress derives the address of the pool for ([assetX], [assetY],
// [seed]). Asset order is significant: (x, y) and (y, x) are distinct pools.
func PoolAddress(assetX codec.Address, assetY codec.Address, seed uint64) codec.Address {
	v := make([]byte, 2*codec.AddressLen+consts.Uint64Len)
	copy(v, assetX[:])
	copy(v[codec.AddressLen:], assetY[:])
	binary.BigEndian.PutUint64(v[2*codec.AddressLen:], seed)
	return codec.CreateAddress(consts.PoolID, utils.ToID(v))
}

// VaultAddress derives the account holding a pool's reserves.
func VaultAddress(pool codec.Address) codec.Address {
	return codec.CreateAddress(consts.VaultID, utils.ToID(pool[:]))
}

// LPTokenAddress derives the asset tracking a pool's liquidity shares.
func LPTokenAddress(pool codec.Address) codec.Address {
	return codec.CreateAddress(consts.LPTokenID, utils.ToID(pool[:]))
}

// PoolSigner returns the authority of [pool] over its vault and share token.
func PoolSigner(pool codec.Address) auth.PoolSigner {
	return auth.NewPoolSigner(pool, VaultAddress(pool), LPTokenAddress(pool))
}

// ValidSigner reports whether every address in [signer] was derived from
// its pool.
func ValidSigner(signer auth.PoolSigner) bool {
	pool := signer.Pool()
	return pool.TypeID() == consts.PoolID &&
		signer.Vault() == VaultAddress(pool) &&
		signer.ShareToken() == LPTokenAddress(pool)
}
