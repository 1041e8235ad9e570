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

// IncreaseCartLineParams carries the terminal input for one cart
// increase.
type IncreaseCartLineParams struct {
	WarehouseID       int
	DistrictID        int
	CustomerID        int
	ItemID            int
	SupplyWarehouseID int
	Quantity          int
}

// IncreaseCartLine adds quantity of an item to a customer's cart,
// creating the cart line if the item is not there yet. The district row
// is locked before the stock row. An unknown item or insufficient stock
// rolls the transaction back as an expected abort.
func IncreaseCartLine(ctx context.Context, s Store, p IncreaseCartLineParams) error {
	if _, err := checkPrincipals(ctx, s, p.WarehouseID, p.DistrictID, p.CustomerID); err != nil {
		return err
	}

	inCart, _, err := s.CartLineQuantity(ctx, p.WarehouseID, p.DistrictID, p.CustomerID, p.ItemID)
	if err != nil {
		return err
	}
	quantity := p.Quantity + inCart

	price, ok, err := s.ItemPrice(ctx, p.ItemID)
	if err != nil {
		return err
	}
	if !ok {
		return geocerr.ErrInvalidItem.GenWithStackByArgs(p.ItemID)
	}
	amount := float64(quantity) * price

	stock, ok, err := s.StockForUpdate(ctx, p.SupplyWarehouseID, p.ItemID)
	if err != nil {
		return err
	}
	if !ok {
		return geocerr.ErrStockNotFound.GenWithStackByArgs(p.ItemID, p.SupplyWarehouseID)
	}
	if stock.Quantity < quantity {
		return geocerr.ErrInsufficientStock.GenWithStackByArgs(
			p.ItemID, p.SupplyWarehouseID, stock.Quantity, quantity)
	}

	if inCart != 0 {
		return s.UpdateCartLine(ctx, p.WarehouseID, p.DistrictID, p.CustomerID,
			p.ItemID, quantity, amount)
	}

	lastNumber, err := s.MaxCartLineNumber(ctx, p.WarehouseID, p.DistrictID, p.CustomerID)
	if err != nil {
		return err
	}
	now := time.Now()
	return s.InsertCartLine(ctx, &entity.ShoppingCartLine{
		CustomerID:  p.CustomerID,
		DistrictID:  p.DistrictID,
		WarehouseID: p.WarehouseID,
		ItemID:      p.ItemID,
		SupplyWhse:  p.SupplyWarehouseID,
		DeliveryD:   &now,
		Quantity:    quantity,
		Amount:      amount,
		DistInfo:    stock.Dists[p.DistrictID-1],
		Number:      lastNumber + 1,
	})
}

// checkPrincipals verifies the customer, warehouse and district rows,
// takes the district lock and returns the district's next order id. All
// three missing cases are integrity faults.
func checkPrincipals(ctx context.Context, s Store, warehouseID, districtID, customerID int) (int, error) {
	ok, err := s.CustomerExists(ctx, warehouseID, districtID, customerID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, geocerr.ErrCustomerNotFound.GenWithStackByArgs(customerID, warehouseID, districtID)
	}

	ok, err = s.WarehouseExists(ctx, warehouseID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, geocerr.ErrWarehouseNotFound.GenWithStackByArgs(warehouseID)
	}

	nextOrderID, ok, err := s.DistrictNextOrderID(ctx, warehouseID, districtID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, geocerr.ErrDistrictNotFound.GenWithStackByArgs(districtID, warehouseID)
	}
	return nextOrderID, nil
}
