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

package workload

import (
	"context"
	"database/sql"
	"time"

	"github.com/pingcap/errors"
	plog "github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/Adri029/geo-c/pkg/geocerr"
	"github.com/Adri029/geo-c/pkg/metrics"
)

// Procedure labels, used for metrics and logging.
const (
	ProcIncreaseCartLine = "increase_cart_line"
	ProcDecreaseCartLine = "decrease_cart_line"
	ProcCheckCart        = "check_cart"
	ProcApproveCart      = "approve_cart"
	ProcRestock          = "restock"
)

// Executor runs procedures inside transactions and classifies their
// outcome: commit, expected abort, or fault.
type Executor struct {
	pool *sql.DB
}

// NewExecutor wraps a connection pool.
func NewExecutor(pool *sql.DB) *Executor {
	return &Executor{pool: pool}
}

// Execute runs one procedure in its own transaction. Expected aborts roll
// back and return nil; faults roll back and surface the error.
func (e *Executor) Execute(ctx context.Context, procedure string, fn func(Store) error) error {
	start := time.Now()
	tx, err := e.pool.BeginTx(ctx, nil)
	if err != nil {
		metrics.TxnCounter.WithLabelValues(procedure, metrics.OutcomeFault).Inc()
		return errors.Annotate(err, "begin transaction")
	}

	if err := fn(NewSQLStore(tx)); err != nil {
		_ = tx.Rollback()
		if geocerr.IsExpectedAbort(err) {
			metrics.TxnCounter.WithLabelValues(procedure, metrics.OutcomeAbort).Inc()
			return nil
		}
		metrics.TxnCounter.WithLabelValues(procedure, metrics.OutcomeFault).Inc()
		plog.Warn("transaction fault",
			zap.String("procedure", procedure), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		metrics.TxnCounter.WithLabelValues(procedure, metrics.OutcomeFault).Inc()
		return errors.Annotate(err, "commit transaction")
	}
	metrics.TxnCounter.WithLabelValues(procedure, metrics.OutcomeCommit).Inc()
	metrics.TxnDurationHistogram.WithLabelValues(procedure).
		Observe(time.Since(start).Seconds())
	return nil
}
