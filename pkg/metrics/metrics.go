// Copyright 2025 GeoC Project
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// LoadedRowsCounter records rows written per table during loading.
	LoadedRowsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geoc",
			Subsystem: "load",
			Name:      "rows_total",
			Help:      "Total rows written per table during dataset loading.",
		}, []string{"table"})

	// LoadBatchCounter records flushed batches per table and result.
	LoadBatchCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geoc",
			Subsystem: "load",
			Name:      "batches_total",
			Help:      "Total flushed insert batches per table and result.",
		}, []string{"table", "result"})

	// TxnCounter records finished transactions per procedure and outcome.
	TxnCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "geoc",
			Subsystem: "txn",
			Name:      "executions_total",
			Help:      "Total finished transactions per procedure and outcome.",
		}, []string{"procedure", "outcome"})

	// TxnDurationHistogram records the latency of committed transactions.
	TxnDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "geoc",
			Subsystem: "txn",
			Name:      "duration_seconds",
			Help:      "Bucketed histogram of transaction latency (s) per procedure.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
		}, []string{"procedure"})
)

// Outcome labels for TxnCounter.
const (
	OutcomeCommit = "commit"
	OutcomeAbort  = "abort"
	OutcomeFault  = "fault"
)

// InitMetrics registers all collectors with the registry.
func InitMetrics(registry *prometheus.Registry) {
	registry.MustRegister(LoadedRowsCounter)
	registry.MustRegister(LoadBatchCounter)
	registry.MustRegister(TxnCounter)
	registry.MustRegister(TxnDurationHistogram)
}
