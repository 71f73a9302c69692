// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace       = "pebble"
	metricsInterval = 10 * time.Second
)

type metrics struct {
	delayStart time.Time
	writeStall metric.Averager
	getLatency metric.Averager

	compactions       *prometheus.CounterVec
	activeCompactions prometheus.Gauge

	// sampled from [pebble.Metrics] every [metricsInterval]
	tombstones   prometheus.Gauge
	obsoleteSize *prometheus.GaugeVec
	obsoleteKeys *prometheus.GaugeVec
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()
	writeStall, err := metric.NewAverager(
		"pebble_write_stall",
		"time spent waiting for disk write",
		r,
	)
	if err != nil {
		return nil, nil, err
	}
	getLatency, err := metric.NewAverager(
		"pebble_read_latency",
		"time spent waiting for db get",
		r,
	)
	if err != nil {
		return nil, nil, err
	}
	m := &metrics{
		writeStall: writeStall,
		getLatency: getLatency,
		compactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compactions",
			Help:      "number of compactions by starting level",
		}, []string{"level"}),
		activeCompactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_compactions",
			Help:      "number of active compactions",
		}),
		tombstones: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tombstone_count",
			Help:      "approximate count of internal tombstones",
		}),
		obsoleteSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "obsolete_size",
			Help:      "bytes in files no longer needed by the db",
		}, []string{"kind"}),
		obsoleteKeys: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "obsolete_count",
			Help:      "files no longer needed by the db",
		}, []string{"kind"}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.compactions),
		r.Register(m.activeCompactions),
		r.Register(m.tombstones),
		r.Register(m.obsoleteSize),
		r.Register(m.obsoleteKeys),
	)
	return r, m, errs.Err
}

func (db *Database) onCompactionBegin(info pebble.CompactionInfo) {
	db.metrics.activeCompactions.Inc()
	level := "other"
	if len(info.Input) > 0 && info.Input[0].Level == 0 {
		level = "l0"
	}
	db.metrics.compactions.WithLabelValues(level).Inc()
}

func (db *Database) onCompactionEnd(pebble.CompactionInfo) {
	db.metrics.activeCompactions.Dec()
}

func (db *Database) onWriteStallBegin(pebble.WriteStallBeginInfo) {
	db.metrics.delayStart = time.Now()
}

func (db *Database) onWriteStallEnd() {
	db.metrics.writeStall.Observe(float64(time.Since(db.metrics.delayStart)))
}

func (db *Database) sampleMetrics() {
	m := db.db.Metrics()
	db.metrics.tombstones.Set(float64(m.Keys.TombstoneCount))
	db.metrics.obsoleteSize.WithLabelValues("table").Set(float64(m.Table.ObsoleteSize))
	db.metrics.obsoleteKeys.WithLabelValues("table").Set(float64(m.Table.ObsoleteCount))
	db.metrics.obsoleteSize.WithLabelValues("zombie").Set(float64(m.Table.ZombieSize))
	db.metrics.obsoleteKeys.WithLabelValues("zombie").Set(float64(m.Table.ZombieCount))
	db.metrics.obsoleteSize.WithLabelValues("wal").Set(float64(m.WAL.ObsoletePhysicalSize))
	db.metrics.obsoleteKeys.WithLabelValues("wal").Set(float64(m.WAL.ObsoleteFiles))
}

func (db *Database) collectMetrics() {
	t := time.NewTicker(metricsInterval)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			db.sampleMetrics()
		case <-db.closing:
			return
		}
	}
}
