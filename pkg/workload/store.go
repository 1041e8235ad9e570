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

// Package workload implements the five cart procedures and the terminals
// that drive them. Procedures run against the Store interface so the
// transactional logic is independent of the SQL layer beneath it.
package workload

import (
	"context"

	"github.com/Adri029/geo-c/pkg/entity"
)

// StockView is the slice of a stock row the procedures read.
type StockView struct {
	Quantity  int
	YTD       float64
	OrderCnt  int
	RemoteCnt int
	Dists     [10]string
}

// StockLevel names one stock row below the restock threshold.
type StockLevel struct {
	ItemID   int
	Quantity int
}

// StockUpdate is one row of the batched stock write an approval applies.
type StockUpdate struct {
	SupplyWarehouseID int
	ItemID            int
	Quantity          int
	YTDDelta          int
	RemoteDelta       int
}

// Store is the data surface a procedure touches inside one transaction.
// Lock acquisition order is fixed: the district row is always locked
// before any stock row.
type Store interface {
	// CustomerExists checks the customer row.
	CustomerExists(ctx context.Context, warehouseID, districtID, customerID int) (bool, error)
	// WarehouseExists checks the warehouse row.
	WarehouseExists(ctx context.Context, warehouseID int) (bool, error)
	// DistrictNextOrderID reads and locks the district row, returning its
	// next order id.
	DistrictNextOrderID(ctx context.Context, warehouseID, districtID int) (int, bool, error)
	// AdvanceNextOrderID increments the district's next order id,
	// returning the number of rows updated.
	AdvanceNextOrderID(ctx context.Context, warehouseID, districtID int) (int64, error)

	// Supervisor returns the supervisor individual id recorded on the
	// customer row.
	Supervisor(ctx context.Context, warehouseID, districtID, customerID int) (int, bool, error)

	// ItemPrice returns the item's price; ok is false for unknown items.
	ItemPrice(ctx context.Context, itemID int) (float64, bool, error)

	// StockForUpdate reads and locks one stock row.
	StockForUpdate(ctx context.Context, supplyWarehouseID, itemID int) (*StockView, bool, error)
	// UpdateStocks applies quantity, ytd and counter changes to locked
	// stock rows, one statement batch for the lot.
	UpdateStocks(ctx context.Context, updates []StockUpdate) error
	// LowStock lists the warehouse's stock rows at or below threshold.
	LowStock(ctx context.Context, warehouseID, threshold int) ([]StockLevel, error)
	// SetStockQuantity overwrites one stock row's quantity.
	SetStockQuantity(ctx context.Context, warehouseID, itemID, quantity int) error

	// CartLines returns every line of one customer's cart.
	CartLines(ctx context.Context, warehouseID, districtID, customerID int) ([]entity.ShoppingCartLine, error)
	// CartLineQuantity returns the quantity of one cart line; ok is false
	// when the item is not in the cart.
	CartLineQuantity(ctx context.Context, warehouseID, districtID, customerID, itemID int) (int, bool, error)
	// MaxCartLineNumber returns the highest line number in the cart, zero
	// for an empty cart.
	MaxCartLineNumber(ctx context.Context, warehouseID, districtID, customerID int) (int, error)
	// InsertCartLine adds a new cart line.
	InsertCartLine(ctx context.Context, line *entity.ShoppingCartLine) error
	// UpdateCartLine overwrites the quantity and amount of one cart line.
	UpdateCartLine(ctx context.Context, warehouseID, districtID, customerID, itemID, quantity int, amount float64) error
	// DeleteCartLine removes one cart line.
	DeleteCartLine(ctx context.Context, warehouseID, districtID, customerID, itemID int) error
	// ClearCart removes every line of one customer's cart.
	ClearCart(ctx context.Context, warehouseID, districtID, customerID int) error

	// InsertOrder writes a new order header.
	InsertOrder(ctx context.Context, order *entity.Order) error
	// InsertNewOrder marks the order as pending delivery.
	InsertNewOrder(ctx context.Context, newOrder *entity.NewOrder) error
	// InsertOrderLines writes an order's lines as one multi-row insert.
	InsertOrderLines(ctx context.Context, lines []*entity.OrderLine) error
}
