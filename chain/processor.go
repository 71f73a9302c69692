// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/ava-labs/cpmm/codec"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/lockmap"
	"github.com/ava-labs/cpmm/state"
	"github.com/ava-labs/cpmm/tstate"
)

const initialLocks = 64

// Processor executes actions against [state.Database]. Each action either
// commits every change it made in a single batch or leaves the database
// untouched. Actions touching overlapping keys are serialized.
type Processor struct {
	log     logging.Logger
	tracer  trace.Tracer
	metrics *processorMetrics

	db    state.Database
	rules Rules
	bank  Transferer
	locks *lockmap.Lockmap
}

func NewProcessor(
	log logging.Logger,
	tracer trace.Tracer,
	registerer prometheus.Registerer,
	db state.Database,
	rules Rules,
	bank Transferer,
) (*Processor, error) {
	m, err := newMetrics(registerer)
	if err != nil {
		return nil, err
	}
	return &Processor{
		log:     log,
		tracer:  tracer,
		metrics: m,
		db:      db,
		rules:   rules,
		bank:    bank,
		locks:   lockmap.New(initialLocks),
	}, nil
}

func (p *Processor) Rules() Rules {
	return p.rules
}

func (p *Processor) Bank() Transferer {
	return p.bank
}

// State returns a reader over committed state.
func (p *Processor) State() state.Immutable {
	return state.NewReader(p.db)
}

// Execute runs [action] on behalf of [actor].
func (p *Processor) Execute(ctx context.Context, action Action, actor codec.Address) (codec.Typed, error) {
	if action == nil {
		return nil, ErrNilAction
	}
	if actor == codec.EmptyAddress {
		return nil, ErrEmptyActor
	}
	// Derived accounts (vaults) are only ever moved by their pool.
	if actor.TypeID() != consts.AccountID {
		return nil, ErrInvalidActor
	}
	typeID := strconv.Itoa(int(action.GetTypeID()))
	ctx, span := p.tracer.Start(ctx, "Processor.Execute", trace.WithAttributes(
		attribute.Int("typeID", int(action.GetTypeID())),
		attribute.String("actor", actor.String()),
	))
	defer span.End()

	start := time.Now()
	stateKeys := action.StateKeys(actor)
	release := p.lock(stateKeys)
	defer release()

	storage, err := p.prefetch(stateKeys)
	if err != nil {
		return nil, err
	}
	ts := tstate.New(len(stateKeys))
	view := ts.NewView(stateKeys, storage)
	result, err := action.Execute(ctx, p.rules, p.bank, view, actor)
	if err != nil {
		view.Rollback(ctx, 0)
		span.RecordError(err)
		p.metrics.failed.WithLabelValues(typeID).Inc()
		p.log.Debug("action failed",
			zap.String("typeID", typeID),
			zap.Stringer("actor", actor),
			zap.Error(err),
		)
		return nil, err
	}
	view.Commit()
	changes := ts.ChangedKeys()
	if err := state.WriteChanges(p.db, changes); err != nil {
		p.metrics.failed.WithLabelValues(typeID).Inc()
		p.log.Error("unable to commit action",
			zap.String("typeID", typeID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrStateCommit, err)
	}
	p.metrics.stateChanges.Add(float64(len(changes)))
	p.metrics.executed.WithLabelValues(typeID).Inc()
	p.metrics.latency.WithLabelValues(typeID).Observe(time.Since(start).Seconds())
	p.log.Debug("action executed",
		zap.String("typeID", typeID),
		zap.Stringer("actor", actor),
		zap.Int("changes", len(changes)),
	)
	return result, nil
}

// lock acquires writable keys exclusively and read-only keys shared.
func (p *Processor) lock(stateKeys state.Keys) func() {
	var (
		writes = make([]string, 0, len(stateKeys))
		reads  = make([]string, 0, len(stateKeys))
	)
	for k, perm := range stateKeys {
		if perm.Writable() {
			writes = append(writes, k)
		} else {
			reads = append(reads, k)
		}
	}
	return p.locks.LockAll(writes, reads)
}

func (p *Processor) prefetch(stateKeys state.Keys) (map[string][]byte, error) {
	storage := make(map[string][]byte, len(stateKeys))
	for k := range stateKeys {
		v, err := p.db.Get([]byte(k))
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStatePrefetch, err)
		}
		storage[k] = v
	}
	return storage, nil
}
