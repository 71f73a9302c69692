// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cpmm"

type processorMetrics struct {
	executed     *prometheus.CounterVec
	failed       *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	stateChanges prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*processorMetrics, error) {
	m := &processorMetrics{
		executed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_executed_total",
			Help:      "number of actions committed",
		}, []string{"action"}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_failed_total",
			Help:      "number of actions that returned an error",
		}, []string{"action"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_duration_seconds",
			Help:      "time spent executing and committing an action",
			Buckets:   prometheus.DefBuckets,
		}, []string{"action"}),
		stateChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_changes_total",
			Help:      "number of keys written or removed",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.executed),
		r.Register(m.failed),
		r.Register(m.latency),
		r.Register(m.stateChanges),
	)
	return m, errs.Err
}
