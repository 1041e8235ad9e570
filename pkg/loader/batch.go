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

package loader

import (
	"context"
	"database/sql"

	plog "github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/Adri029/geo-c/pkg/metrics"
	"github.com/Adri029/geo-c/pkg/schema"
)

// Conn is the write surface the loader needs. *sql.DB satisfies it.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// batchWriter accumulates rows for one table and writes them as multi-row
// INSERT statements of at most batchSize rows. A failed flush is logged
// and counted but does not stop the load.
type batchWriter struct {
	conn      Conn
	table     string
	batchSize int

	rows    [][]any
	written int64
	failed  int64
}

func newBatchWriter(conn Conn, table string, batchSize int) *batchWriter {
	return &batchWriter{
		conn:      conn,
		table:     table,
		batchSize: batchSize,
		rows:      make([][]any, 0, batchSize),
	}
}

// Add queues one row and flushes when the batch is full.
func (b *batchWriter) Add(ctx context.Context, vals []any) {
	b.rows = append(b.rows, vals)
	if len(b.rows) >= b.batchSize {
		b.Flush(ctx)
	}
}

// Flush writes any queued rows.
func (b *batchWriter) Flush(ctx context.Context) {
	if len(b.rows) == 0 {
		return
	}
	query := schema.BuildInsertSQL(b.table, len(b.rows))
	args := make([]any, 0, len(b.rows)*len(b.rows[0]))
	for _, row := range b.rows {
		args = append(args, row...)
	}
	n := len(b.rows)
	b.rows = b.rows[:0]

	if _, err := b.conn.ExecContext(ctx, query, args...); err != nil {
		plog.Error("insert batch failed",
			zap.String("table", b.table), zap.Int("rows", n), zap.Error(err))
		metrics.LoadBatchCounter.WithLabelValues(b.table, "error").Inc()
		b.failed += int64(n)
		return
	}
	metrics.LoadBatchCounter.WithLabelValues(b.table, "ok").Inc()
	metrics.LoadedRowsCounter.WithLabelValues(b.table).Add(float64(n))
	b.written += int64(n)
}
