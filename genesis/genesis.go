// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/hashing"
	"go.opentelemetry.io/otel/trace"

	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/state"
	"github.com/ava-labs/cpmm/storage"

	safemath "github.com/ava-labs/avalanchego/utils/math"
)

var (
	ErrInvalidRules      = errors.New("invalid rules")
	ErrInvalidAllocation = errors.New("invalid allocation")
	ErrGenesisMismatch   = errors.New("database was initialized with a different genesis")
)

type CustomAllocation struct {
	Address codec.Address `json:"address"`
	Asset   codec.Address `json:"asset"`
	Balance uint64        `json:"balance"`
}

type Genesis struct {
	Rules            *Rules              `json:"initialRules"`
	CustomAllocation []*CustomAllocation `json:"customAllocation"`
}

func NewDefaultGenesis(customAllocations []*CustomAllocation) *Genesis {
	return &Genesis{
		Rules:            NewDefaultRules(),
		CustomAllocation: customAllocations,
	}
}

// Load parses and verifies a json encoded genesis. Missing rules are
// replaced with the defaults.
func Load(genesisBytes []byte) (*Genesis, error) {
	g := &Genesis{}
	if err := json.Unmarshal(genesisBytes, g); err != nil {
		return nil, err
	}
	if g.Rules == nil {
		g.Rules = NewDefaultRules()
	}
	if err := g.Verify(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Genesis) Verify() error {
	if g.Rules == nil || g.Rules.MaxFee > consts.BasisPoints {
		return ErrInvalidRules
	}
	supplies := make(map[codec.Address]uint64)
	for _, alloc := range g.CustomAllocation {
		if alloc.Address == codec.EmptyAddress || alloc.Asset == codec.EmptyAddress {
			return fmt.Errorf("%w: empty address", ErrInvalidAllocation)
		}
		// Pool shares and vault funds only come from pool operations
		if alloc.Asset.TypeID() != consts.AssetID {
			return fmt.Errorf("%w: %s is not an asset", ErrInvalidAllocation, alloc.Asset)
		}
		if alloc.Address.TypeID() != consts.AccountID {
			return fmt.Errorf("%w: %s is not an account", ErrInvalidAllocation, alloc.Address)
		}
		supply, err := safemath.Add(supplies[alloc.Asset], alloc.Balance)
		if err != nil {
			return fmt.Errorf("%w: supply of %s overflows", ErrInvalidAllocation, alloc.Asset)
		}
		supplies[alloc.Asset] = supply
	}
	return nil
}

// ID is the hash of the json encoding of [g].
func (g *Genesis) ID() ([]byte, error) {
	b, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return hashing.ComputeHash256(b), nil
}

// InitializeState applies the allocations to [db] once. It returns false if
// the same genesis was already applied.
func (g *Genesis) InitializeState(ctx context.Context, tracer trace.Tracer, db state.Database) (bool, error) {
	ctx, span := tracer.Start(ctx, "Genesis.InitializeState")
	defer span.End()

	id, err := g.ID()
	if err != nil {
		return false, err
	}
	mu := state.NewSimpleMutable(db)
	applied, ok, err := storage.GetGenesis(ctx, mu)
	if err != nil {
		return false, err
	}
	if ok {
		if !bytes.Equal(applied, id) {
			return false, ErrGenesisMismatch
		}
		return false, nil
	}
	for _, alloc := range g.CustomAllocation {
		if err := storage.MintAsset(ctx, mu, alloc.Asset, alloc.Address, alloc.Balance); err != nil {
			return false, fmt.Errorf("%w: addr=%s, asset=%s, bal=%d", err, alloc.Address, alloc.Asset, alloc.Balance)
		}
	}
	if err := storage.SetGenesis(ctx, mu, id); err != nil {
		return false, err
	}
	return true, mu.Commit(ctx)
}
