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
	"time"

	"github.com/Adri029/geo-c/pkg/entity"
	"github.com/Adri029/geo-c/pkg/geocerr"
)

// ApproveCartParams carries the terminal input for one cart approval.
type ApproveCartParams struct {
	WarehouseID int
	DistrictID  int
	CustomerID  int
	ApproverID  int
}

// ApproveCartResult reports the order an approval produced.
type ApproveCartResult struct {
	OrderID   int
	LineCount int
}

// ApproveCart converts a customer's cart into an order. Only the
// customer's supervisor may approve; a wrong approver or an empty cart
// rolls back as an expected abort. The district row is locked before any
// stock row, and the order id is taken from the district's counter which
// is then advanced by one.
func ApproveCart(ctx context.Context, s Store, p ApproveCartParams) (*ApproveCartResult, error) {
	orderID, err := checkPrincipals(ctx, s, p.WarehouseID, p.DistrictID, p.CustomerID)
	if err != nil {
		return nil, err
	}

	supervisorID, ok, err := s.Supervisor(ctx, p.WarehouseID, p.DistrictID, p.CustomerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, geocerr.ErrCustomerNotFound.GenWithStackByArgs(
			p.CustomerID, p.WarehouseID, p.DistrictID)
	}
	if p.ApproverID != supervisorID {
		return nil, geocerr.ErrNotAuthorized.GenWithStackByArgs(p.ApproverID, p.CustomerID)
	}

	lines, err := s.CartLines(ctx, p.WarehouseID, p.DistrictID, p.CustomerID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, geocerr.ErrEmptyCart.GenWithStackByArgs(
			p.WarehouseID, p.DistrictID, p.CustomerID)
	}

	allLocal := 1
	for _, line := range lines {
		if line.SupplyWhse != p.WarehouseID {
			allLocal = 0
			break
		}
	}

	affected, err := s.AdvanceNextOrderID(ctx, p.WarehouseID, p.DistrictID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, geocerr.ErrOrderIDNotAdvanced.GenWithStackByArgs(p.WarehouseID, p.DistrictID)
	}

	if err := s.InsertOrder(ctx, &entity.Order{
		WarehouseID: p.WarehouseID,
		DistrictID:  p.DistrictID,
		ID:          orderID,
		CustomerID:  p.CustomerID,
		LineCount:   len(lines),
		AllLocal:    allLocal,
		EntryDate:   time.Now(),
	}); err != nil {
		return nil, err
	}
	if err := s.InsertNewOrder(ctx, &entity.NewOrder{
		WarehouseID: p.WarehouseID,
		DistrictID:  p.DistrictID,
		OrderID:     orderID,
	}); err != nil {
		return nil, err
	}

	// Lock every stock row first, accumulating the order-line and stock
	// writes into two batches flushed together once the loop is done.
	orderLines := make([]*entity.OrderLine, 0, len(lines))
	stockUpdates := make([]StockUpdate, 0, len(lines))
	for _, line := range lines {
		stock, ok, err := s.StockForUpdate(ctx, line.SupplyWhse, line.ItemID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, geocerr.ErrStockNotFound.GenWithStackByArgs(line.ItemID, line.SupplyWhse)
		}

		orderLines = append(orderLines, &entity.OrderLine{
			WarehouseID: p.WarehouseID,
			DistrictID:  p.DistrictID,
			OrderID:     orderID,
			Number:      line.Number,
			ItemID:      line.ItemID,
			Amount:      line.Amount,
			SupplyWhse:  line.SupplyWhse,
			Quantity:    line.Quantity,
			DistInfo:    stock.Dists[p.DistrictID-1],
		})

		// Quantity drops by the ordered amount; near-empty rows wrap up
		// by 91 so they stay positive until the next restock.
		newQuantity := stock.Quantity - line.Quantity
		if newQuantity < 10 {
			newQuantity += 91
		}
		remoteDelta := 0
		if line.SupplyWhse != p.WarehouseID {
			remoteDelta = 1
		}
		stockUpdates = append(stockUpdates, StockUpdate{
			SupplyWarehouseID: line.SupplyWhse,
			ItemID:            line.ItemID,
			Quantity:          newQuantity,
			YTDDelta:          line.Quantity,
			RemoteDelta:       remoteDelta,
		})
	}

	if err := s.InsertOrderLines(ctx, orderLines); err != nil {
		return nil, err
	}
	if err := s.UpdateStocks(ctx, stockUpdates); err != nil {
		return nil, err
	}
	if err := s.ClearCart(ctx, p.WarehouseID, p.DistrictID, p.CustomerID); err != nil {
		return nil, err
	}
	return &ApproveCartResult{OrderID: orderID, LineCount: len(lines)}, nil
}
