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

// Package schema owns the benchmark's table catalog: names, column orders
// and CREATE TABLE statements, plus multi-row INSERT synthesis. Row values
// produced elsewhere must follow the column order declared here.
package schema

import (
	"fmt"
	"strings"
)

// Table names.
const (
	TableItem             = "item"
	TableWarehouse        = "warehouse"
	TableStock            = "stock"
	TableDistrict         = "district"
	TableCustomer         = "customer"
	TableIndividual       = "individual"
	TableHistory          = "history"
	TableOrder            = "oorder"
	TableNewOrder         = "new_order"
	TableOrderLine        = "order_line"
	TableShoppingCartLine = "shopping_cart_line"
)

var columns = map[string][]string{
	TableItem: {"i_id", "i_name", "i_price", "i_data", "i_im_id"},
	TableWarehouse: {
		"w_id", "w_ytd", "w_tax", "w_name",
		"w_street_1", "w_street_2", "w_city", "w_state", "w_zip",
	},
	TableStock: {
		"s_w_id", "s_i_id", "s_quantity", "s_ytd", "s_order_cnt",
		"s_remote_cnt", "s_data",
		"s_dist_01", "s_dist_02", "s_dist_03", "s_dist_04", "s_dist_05",
		"s_dist_06", "s_dist_07", "s_dist_08", "s_dist_09", "s_dist_10",
	},
	TableDistrict: {
		"d_w_id", "d_id", "d_ytd", "d_tax", "d_next_o_id", "d_name",
		"d_street_1", "d_street_2", "d_city", "d_state", "d_zip",
	},
	TableCustomer: {
		"c_w_id", "c_d_id", "c_id", "c_discount", "c_credit", "c_last",
		"c_first", "c_credit_lim", "c_balance", "c_ytd_payment",
		"c_payment_cnt", "c_delivery_cnt", "c_street_1", "c_street_2",
		"c_city", "c_state", "c_zip", "c_phone", "c_since", "c_middle",
		"c_data", "c_ind_id",
	},
	TableIndividual: {
		"ind_id", "ind_name", "ind_c_id", "ind_d_id", "ind_w_id",
	},
	TableHistory: {
		"h_c_id", "h_c_d_id", "h_c_w_id", "h_d_id", "h_w_id",
		"h_date", "h_amount", "h_data",
	},
	TableOrder: {
		"o_w_id", "o_d_id", "o_id", "o_c_id", "o_carrier_id",
		"o_ol_cnt", "o_all_local", "o_entry_d",
	},
	TableNewOrder: {"no_w_id", "no_d_id", "no_o_id"},
	TableOrderLine: {
		"ol_w_id", "ol_d_id", "ol_o_id", "ol_number", "ol_i_id",
		"ol_delivery_d", "ol_amount", "ol_supply_w_id", "ol_quantity",
		"ol_dist_info",
	},
	TableShoppingCartLine: {
		"scl_c_id", "scl_d_id", "scl_w_id", "scl_i_id", "scl_supply_w_id",
		"scl_delivery_d", "scl_quantity", "scl_amount", "scl_dist_info",
		"scl_number",
	},
}

// Columns returns the declared column order for a table.
func Columns(table string) []string {
	cols, ok := columns[table]
	if !ok {
		panic(fmt.Sprintf("schema: unknown table %s", table))
	}
	return cols
}

// BuildInsertSQL synthesizes a multi-row INSERT with placeholder groups for
// rowCount rows of the given table.
func BuildInsertSQL(table string, rowCount int) string {
	cols := Columns(table)
	var buf strings.Builder
	buf.WriteString("INSERT INTO ")
	buf.WriteString(table)
	buf.WriteString(" (")
	buf.WriteString(strings.Join(cols, ", "))
	buf.WriteString(") VALUES ")

	group := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ") + ")"
	for r := 0; r < rowCount; r++ {
		if r > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(group)
	}
	return buf.String()
}

// CreateTableStatements returns the DDL for all benchmark tables, in a
// creation-safe order.
func CreateTableStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS item (
i_id int NOT NULL,
i_name varchar(24) NOT NULL,
i_price decimal(5,2) NOT NULL,
i_data varchar(50) NOT NULL,
i_im_id int NOT NULL,
PRIMARY KEY (i_id)
)`,
		`CREATE TABLE IF NOT EXISTS warehouse (
w_id int NOT NULL,
w_ytd decimal(12,2) NOT NULL,
w_tax decimal(4,4) NOT NULL,
w_name varchar(10) NOT NULL,
w_street_1 varchar(20) NOT NULL,
w_street_2 varchar(20) NOT NULL,
w_city varchar(20) NOT NULL,
w_state char(3) NOT NULL,
w_zip char(9) NOT NULL,
PRIMARY KEY (w_id)
)`,
		`CREATE TABLE IF NOT EXISTS stock (
s_w_id int NOT NULL,
s_i_id int NOT NULL,
s_quantity int NOT NULL,
s_ytd decimal(8,2) NOT NULL,
s_order_cnt int NOT NULL,
s_remote_cnt int NOT NULL,
s_data varchar(50) NOT NULL,
s_dist_01 char(24) NOT NULL,
s_dist_02 char(24) NOT NULL,
s_dist_03 char(24) NOT NULL,
s_dist_04 char(24) NOT NULL,
s_dist_05 char(24) NOT NULL,
s_dist_06 char(24) NOT NULL,
s_dist_07 char(24) NOT NULL,
s_dist_08 char(24) NOT NULL,
s_dist_09 char(24) NOT NULL,
s_dist_10 char(24) NOT NULL,
PRIMARY KEY (s_w_id, s_i_id)
)`,
		`CREATE TABLE IF NOT EXISTS district (
d_w_id int NOT NULL,
d_id int NOT NULL,
d_ytd decimal(12,2) NOT NULL,
d_tax decimal(4,4) NOT NULL,
d_next_o_id int NOT NULL,
d_name varchar(10) NOT NULL,
d_street_1 varchar(20) NOT NULL,
d_street_2 varchar(20) NOT NULL,
d_city varchar(20) NOT NULL,
d_state char(3) NOT NULL,
d_zip char(9) NOT NULL,
PRIMARY KEY (d_w_id, d_id)
)`,
		`CREATE TABLE IF NOT EXISTS customer (
c_w_id int NOT NULL,
c_d_id int NOT NULL,
c_id int NOT NULL,
c_discount decimal(4,4) NOT NULL,
c_credit char(2) NOT NULL,
c_last varchar(16) NOT NULL,
c_first varchar(16) NOT NULL,
c_credit_lim decimal(12,2) NOT NULL,
c_balance decimal(12,2) NOT NULL,
c_ytd_payment decimal(12,2) NOT NULL,
c_payment_cnt int NOT NULL,
c_delivery_cnt int NOT NULL,
c_street_1 varchar(20) NOT NULL,
c_street_2 varchar(20) NOT NULL,
c_city varchar(20) NOT NULL,
c_state char(3) NOT NULL,
c_zip char(9) NOT NULL,
c_phone char(16) NOT NULL,
c_since datetime NOT NULL,
c_middle char(2) NOT NULL,
c_data varchar(500) NOT NULL,
c_ind_id int DEFAULT NULL,
PRIMARY KEY (c_w_id, c_d_id, c_id),
KEY idx_customer_name (c_w_id, c_d_id, c_last, c_first)
)`,
		`CREATE TABLE IF NOT EXISTS individual (
ind_id int NOT NULL,
ind_name varchar(32) NOT NULL,
ind_c_id int NOT NULL,
ind_d_id int NOT NULL,
ind_w_id int NOT NULL,
PRIMARY KEY (ind_w_id, ind_d_id, ind_c_id, ind_id)
)`,
		`CREATE TABLE IF NOT EXISTS history (
h_c_id int NOT NULL,
h_c_d_id int NOT NULL,
h_c_w_id int NOT NULL,
h_d_id int NOT NULL,
h_w_id int NOT NULL,
h_date datetime NOT NULL,
h_amount decimal(6,2) NOT NULL,
h_data varchar(24) NOT NULL
)`,
		`CREATE TABLE IF NOT EXISTS oorder (
o_w_id int NOT NULL,
o_d_id int NOT NULL,
o_id int NOT NULL,
o_c_id int NOT NULL,
o_carrier_id int DEFAULT NULL,
o_ol_cnt int NOT NULL,
o_all_local int NOT NULL,
o_entry_d datetime NOT NULL,
PRIMARY KEY (o_w_id, o_d_id, o_id),
UNIQUE KEY idx_order_customer (o_w_id, o_d_id, o_c_id, o_id)
)`,
		`CREATE TABLE IF NOT EXISTS new_order (
no_w_id int NOT NULL,
no_d_id int NOT NULL,
no_o_id int NOT NULL,
PRIMARY KEY (no_w_id, no_d_id, no_o_id)
)`,
		`CREATE TABLE IF NOT EXISTS order_line (
ol_w_id int NOT NULL,
ol_d_id int NOT NULL,
ol_o_id int NOT NULL,
ol_number int NOT NULL,
ol_i_id int NOT NULL,
ol_delivery_d datetime DEFAULT NULL,
ol_amount decimal(6,2) NOT NULL,
ol_supply_w_id int NOT NULL,
ol_quantity int NOT NULL,
ol_dist_info char(24) NOT NULL,
PRIMARY KEY (ol_w_id, ol_d_id, ol_o_id, ol_number)
)`,
		`CREATE TABLE IF NOT EXISTS shopping_cart_line (
scl_c_id int NOT NULL,
scl_d_id int NOT NULL,
scl_w_id int NOT NULL,
scl_i_id int NOT NULL,
scl_supply_w_id int NOT NULL,
scl_delivery_d datetime DEFAULT NULL,
scl_quantity int NOT NULL,
scl_amount decimal(8,2) NOT NULL,
scl_dist_info char(24) NOT NULL,
scl_number int NOT NULL,
PRIMARY KEY (scl_w_id, scl_d_id, scl_c_id, scl_i_id)
)`,
	}
}
