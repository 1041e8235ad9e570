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

package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildInsertSQL(t *testing.T) {
	sql := BuildInsertSQL(TableNewOrder, 3)
	require.Equal(t,
		"INSERT INTO new_order (no_w_id, no_d_id, no_o_id) VALUES (?, ?, ?), (?, ?, ?), (?, ?, ?)",
		sql)

	sql = BuildInsertSQL(TableItem, 1)
	require.Equal(t,
		"INSERT INTO item (i_id, i_name, i_price, i_data, i_im_id) VALUES (?, ?, ?, ?, ?)",
		sql)
}

func TestColumnsMatchDDL(t *testing.T) {
	ddl := CreateTableStatements()
	byTable := make(map[string]string, len(ddl))
	for _, stmt := range ddl {
		rest := strings.TrimPrefix(stmt, "CREATE TABLE IF NOT EXISTS ")
		name := rest[:strings.IndexAny(rest, " (\n")]
		byTable[name] = stmt
	}

	for table, cols := range columns {
		stmt, ok := byTable[table]
		require.True(t, ok, "missing DDL for %s", table)
		for _, col := range cols {
			require.Contains(t, stmt, "\n"+col+" ", "table %s column %s", table, col)
		}
	}
	require.Len(t, byTable, len(columns))
}

func TestColumnsUnknownTablePanics(t *testing.T) {
	require.Panics(t, func() { Columns("nonexistent") })
}
