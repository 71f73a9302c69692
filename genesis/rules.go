// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"github.com/ava-labs/cpmm/chain"
	"github.com/ava-labs/cpmm/consts"
)

var _ chain.Rules = (*Rules)(nil)

type Rules struct {
	MaxFee        uint16 `json:"maxFee"`
	ShareDecimals uint8  `json:"shareDecimals"`
}

func NewDefaultRules() *Rules {
	return &Rules{
		MaxFee:        consts.BasisPoints,
		ShareDecimals: consts.ShareDecimals,
	}
}

func (r *Rules) GetMaxFee() uint16 {
	return r.MaxFee
}

func (r *Rules) GetShareDecimals() uint8 {
	return r.ShareDecimals
}
