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
	"strings"

	"github.com/pingcap/errors"

	"github.com/Adri029/geo-c/pkg/entity"
)

// Queryer is the slice of database/sql both *sql.Tx and *sql.DB satisfy.
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

const (
	getCustomerSQL = `SELECT c_discount, c_last, c_credit FROM customer WHERE c_w_id = ? AND c_d_id = ? AND c_id = ?`

	getWarehouseSQL = `SELECT w_tax FROM warehouse WHERE w_id = ?`

	getDistrictSQL = `SELECT d_next_o_id, d_tax FROM district WHERE d_w_id = ? AND d_id = ? FOR UPDATE`

	advanceDistrictSQL = `UPDATE district SET d_next_o_id = d_next_o_id + 1 WHERE d_w_id = ? AND d_id = ?`

	getSupervisorSQL = `SELECT c_ind_id FROM customer WHERE c_w_id = ? AND c_d_id = ? AND c_id = ?`

	getItemPriceSQL = `SELECT i_price FROM item WHERE i_id = ?`

	getStockSQL = `SELECT s_quantity, s_ytd, s_order_cnt, s_remote_cnt,
       s_dist_01, s_dist_02, s_dist_03, s_dist_04, s_dist_05,
       s_dist_06, s_dist_07, s_dist_08, s_dist_09, s_dist_10
  FROM stock WHERE s_i_id = ? AND s_w_id = ? FOR UPDATE`

	updateStockSQL = `UPDATE stock SET s_quantity = ?, s_ytd = s_ytd + ?,
       s_order_cnt = s_order_cnt + 1, s_remote_cnt = s_remote_cnt + ?
 WHERE s_i_id = ? AND s_w_id = ?`

	lowStockSQL = `SELECT s_i_id, s_quantity FROM stock WHERE s_w_id = ? AND s_quantity <= ?`

	setStockQuantitySQL = `UPDATE stock SET s_quantity = ? WHERE s_w_id = ? AND s_i_id = ?`

	getCartLinesSQL = `SELECT scl_c_id, scl_d_id, scl_w_id, scl_i_id, scl_supply_w_id,
       scl_delivery_d, scl_quantity, scl_amount, scl_dist_info, scl_number
  FROM shopping_cart_line WHERE scl_w_id = ? AND scl_d_id = ? AND scl_c_id = ?`

	getCartLineQuantitySQL = `SELECT scl_quantity FROM shopping_cart_line
 WHERE scl_w_id = ? AND scl_d_id = ? AND scl_c_id = ? AND scl_i_id = ?`

	getMaxCartLineNumberSQL = `SELECT max(scl_number) FROM shopping_cart_line
 WHERE scl_w_id = ? AND scl_d_id = ? AND scl_c_id = ?`

	insertCartLineSQL = `INSERT INTO shopping_cart_line
 (scl_c_id, scl_d_id, scl_w_id, scl_i_id, scl_supply_w_id, scl_delivery_d,
  scl_quantity, scl_amount, scl_dist_info, scl_number)
 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updateCartLineSQL = `UPDATE shopping_cart_line SET scl_quantity = ?, scl_amount = ?
 WHERE scl_w_id = ? AND scl_d_id = ? AND scl_c_id = ? AND scl_i_id = ?`

	deleteCartLineSQL = `DELETE FROM shopping_cart_line
 WHERE scl_w_id = ? AND scl_d_id = ? AND scl_c_id = ? AND scl_i_id = ?`

	clearCartSQL = `DELETE FROM shopping_cart_line
 WHERE scl_w_id = ? AND scl_d_id = ? AND scl_c_id = ?`

	insertOrderSQL = `INSERT INTO oorder
 (o_id, o_d_id, o_w_id, o_c_id, o_entry_d, o_ol_cnt, o_all_local)
 VALUES (?, ?, ?, ?, ?, ?, ?)`

	insertNewOrderSQL = `INSERT INTO new_order (no_o_id, no_d_id, no_w_id) VALUES (?, ?, ?)`

	insertOrderLinePrefix = `INSERT INTO order_line
 (ol_o_id, ol_d_id, ol_w_id, ol_number, ol_i_id, ol_supply_w_id,
  ol_quantity, ol_amount, ol_dist_info)
 VALUES `

	orderLineValuesClause = `(?, ?, ?, ?, ?, ?, ?, ?, ?)`
)

// sqlStore implements Store over one transaction.
type sqlStore struct {
	q Queryer
}

// NewSQLStore wraps a transaction (or pool) as a Store.
func NewSQLStore(q Queryer) Store {
	return &sqlStore{q: q}
}

func (s *sqlStore) CustomerExists(ctx context.Context, warehouseID, districtID, customerID int) (bool, error) {
	var discount float64
	var last, credit string
	err := s.q.QueryRowContext(ctx, getCustomerSQL, warehouseID, districtID, customerID).
		Scan(&discount, &last, &credit)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.Trace(err)
	}
	return true, nil
}

func (s *sqlStore) WarehouseExists(ctx context.Context, warehouseID int) (bool, error) {
	var tax float64
	err := s.q.QueryRowContext(ctx, getWarehouseSQL, warehouseID).Scan(&tax)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.Trace(err)
	}
	return true, nil
}

func (s *sqlStore) DistrictNextOrderID(ctx context.Context, warehouseID, districtID int) (int, bool, error) {
	var nextOrderID int
	var tax float64
	err := s.q.QueryRowContext(ctx, getDistrictSQL, warehouseID, districtID).
		Scan(&nextOrderID, &tax)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Trace(err)
	}
	return nextOrderID, true, nil
}

func (s *sqlStore) AdvanceNextOrderID(ctx context.Context, warehouseID, districtID int) (int64, error) {
	res, err := s.q.ExecContext(ctx, advanceDistrictSQL, warehouseID, districtID)
	if err != nil {
		return 0, errors.Trace(err)
	}
	affected, err := res.RowsAffected()
	return affected, errors.Trace(err)
}

func (s *sqlStore) Supervisor(ctx context.Context, warehouseID, districtID, customerID int) (int, bool, error) {
	var supervisorID sql.NullInt64
	err := s.q.QueryRowContext(ctx, getSupervisorSQL, warehouseID, districtID, customerID).
		Scan(&supervisorID)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Trace(err)
	}
	return int(supervisorID.Int64), true, nil
}

func (s *sqlStore) ItemPrice(ctx context.Context, itemID int) (float64, bool, error) {
	var price float64
	err := s.q.QueryRowContext(ctx, getItemPriceSQL, itemID).Scan(&price)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Trace(err)
	}
	return price, true, nil
}

func (s *sqlStore) StockForUpdate(ctx context.Context, supplyWarehouseID, itemID int) (*StockView, bool, error) {
	stock := &StockView{}
	err := s.q.QueryRowContext(ctx, getStockSQL, itemID, supplyWarehouseID).Scan(
		&stock.Quantity, &stock.YTD, &stock.OrderCnt, &stock.RemoteCnt,
		&stock.Dists[0], &stock.Dists[1], &stock.Dists[2], &stock.Dists[3],
		&stock.Dists[4], &stock.Dists[5], &stock.Dists[6], &stock.Dists[7],
		&stock.Dists[8], &stock.Dists[9])
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Trace(err)
	}
	return stock, true, nil
}

// UpdateStocks runs one prepared statement against every locked stock
// row, so the whole batch travels the wire together.
func (s *sqlStore) UpdateStocks(ctx context.Context, updates []StockUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	stmt, err := s.q.PrepareContext(ctx, updateStockSQL)
	if err != nil {
		return errors.Trace(err)
	}
	defer stmt.Close()
	for _, u := range updates {
		if _, err := stmt.ExecContext(ctx,
			u.Quantity, u.YTDDelta, u.RemoteDelta, u.ItemID, u.SupplyWarehouseID); err != nil {
			return errors.Trace(err)
		}
	}
	return nil
}

func (s *sqlStore) LowStock(ctx context.Context, warehouseID, threshold int) ([]StockLevel, error) {
	rows, err := s.q.QueryContext(ctx, lowStockSQL, warehouseID, threshold)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer rows.Close()

	var levels []StockLevel
	for rows.Next() {
		var level StockLevel
		if err := rows.Scan(&level.ItemID, &level.Quantity); err != nil {
			return nil, errors.Trace(err)
		}
		levels = append(levels, level)
	}
	return levels, errors.Trace(rows.Err())
}

func (s *sqlStore) SetStockQuantity(ctx context.Context, warehouseID, itemID, quantity int) error {
	_, err := s.q.ExecContext(ctx, setStockQuantitySQL, quantity, warehouseID, itemID)
	return errors.Trace(err)
}

func (s *sqlStore) CartLines(ctx context.Context, warehouseID, districtID, customerID int) ([]entity.ShoppingCartLine, error) {
	rows, err := s.q.QueryContext(ctx, getCartLinesSQL, warehouseID, districtID, customerID)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer rows.Close()

	var lines []entity.ShoppingCartLine
	for rows.Next() {
		var line entity.ShoppingCartLine
		var delivery sql.NullTime
		if err := rows.Scan(&line.CustomerID, &line.DistrictID, &line.WarehouseID,
			&line.ItemID, &line.SupplyWhse, &delivery, &line.Quantity,
			&line.Amount, &line.DistInfo, &line.Number); err != nil {
			return nil, errors.Trace(err)
		}
		if delivery.Valid {
			t := delivery.Time
			line.DeliveryD = &t
		}
		lines = append(lines, line)
	}
	return lines, errors.Trace(rows.Err())
}

func (s *sqlStore) CartLineQuantity(ctx context.Context, warehouseID, districtID, customerID, itemID int) (int, bool, error) {
	var quantity int
	err := s.q.QueryRowContext(ctx, getCartLineQuantitySQL,
		warehouseID, districtID, customerID, itemID).Scan(&quantity)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Trace(err)
	}
	return quantity, true, nil
}

func (s *sqlStore) MaxCartLineNumber(ctx context.Context, warehouseID, districtID, customerID int) (int, error) {
	var maxNumber sql.NullInt64
	err := s.q.QueryRowContext(ctx, getMaxCartLineNumberSQL,
		warehouseID, districtID, customerID).Scan(&maxNumber)
	if err != nil {
		return 0, errors.Trace(err)
	}
	return int(maxNumber.Int64), nil
}

func (s *sqlStore) InsertCartLine(ctx context.Context, line *entity.ShoppingCartLine) error {
	var delivery any
	if line.DeliveryD != nil {
		delivery = *line.DeliveryD
	}
	_, err := s.q.ExecContext(ctx, insertCartLineSQL,
		line.CustomerID, line.DistrictID, line.WarehouseID, line.ItemID,
		line.SupplyWhse, delivery, line.Quantity, line.Amount,
		line.DistInfo, line.Number)
	return errors.Trace(err)
}

func (s *sqlStore) UpdateCartLine(ctx context.Context, warehouseID, districtID, customerID, itemID, quantity int, amount float64) error {
	_, err := s.q.ExecContext(ctx, updateCartLineSQL,
		quantity, amount, warehouseID, districtID, customerID, itemID)
	return errors.Trace(err)
}

func (s *sqlStore) DeleteCartLine(ctx context.Context, warehouseID, districtID, customerID, itemID int) error {
	_, err := s.q.ExecContext(ctx, deleteCartLineSQL,
		warehouseID, districtID, customerID, itemID)
	return errors.Trace(err)
}

func (s *sqlStore) ClearCart(ctx context.Context, warehouseID, districtID, customerID int) error {
	_, err := s.q.ExecContext(ctx, clearCartSQL, warehouseID, districtID, customerID)
	return errors.Trace(err)
}

func (s *sqlStore) InsertOrder(ctx context.Context, order *entity.Order) error {
	_, err := s.q.ExecContext(ctx, insertOrderSQL,
		order.ID, order.DistrictID, order.WarehouseID, order.CustomerID,
		order.EntryDate, order.LineCount, order.AllLocal)
	return errors.Trace(err)
}

func (s *sqlStore) InsertNewOrder(ctx context.Context, newOrder *entity.NewOrder) error {
	_, err := s.q.ExecContext(ctx, insertNewOrderSQL,
		newOrder.OrderID, newOrder.DistrictID, newOrder.WarehouseID)
	return errors.Trace(err)
}

// InsertOrderLines writes all of an order's lines with one multi-row
// insert statement.
func (s *sqlStore) InsertOrderLines(ctx context.Context, lines []*entity.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString(insertOrderLinePrefix)
	args := make([]any, 0, len(lines)*9)
	for i, line := range lines {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(orderLineValuesClause)
		args = append(args,
			line.OrderID, line.DistrictID, line.WarehouseID, line.Number,
			line.ItemID, line.SupplyWhse, line.Quantity, line.Amount, line.DistInfo)
	}
	_, err := s.q.ExecContext(ctx, b.String(), args...)
	return errors.Trace(err)
}
