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

	"github.com/Adri029/geo-c/pkg/geocerr"
)

// DecreaseCartLineParams carries the terminal input for one cart
// decrease. Pick selects which cart line to shrink, by index modulo the
// cart size.
type DecreaseCartLineParams struct {
	WarehouseID int
	DistrictID  int
	CustomerID  int
	Pick        int
	Quantity    int
}

// DecreaseCartLine removes quantity of one item from a customer's cart,
// deleting the line when it reaches zero. An empty cart rolls back as an
// expected abort.
func DecreaseCartLine(ctx context.Context, s Store, p DecreaseCartLineParams) error {
	if _, err := checkPrincipals(ctx, s, p.WarehouseID, p.DistrictID, p.CustomerID); err != nil {
		return err
	}

	lines, err := s.CartLines(ctx, p.WarehouseID, p.DistrictID, p.CustomerID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return geocerr.ErrEmptyCart.GenWithStackByArgs(p.WarehouseID, p.DistrictID, p.CustomerID)
	}
	itemID := lines[p.Pick%len(lines)].ItemID

	inCart, _, err := s.CartLineQuantity(ctx, p.WarehouseID, p.DistrictID, p.CustomerID, itemID)
	if err != nil {
		return err
	}
	quantity := inCart - p.Quantity

	price, ok, err := s.ItemPrice(ctx, itemID)
	if err != nil {
		return err
	}
	if !ok {
		return geocerr.ErrInvalidItem.GenWithStackByArgs(itemID)
	}

	if quantity > 0 {
		amount := float64(quantity) * price
		return s.UpdateCartLine(ctx, p.WarehouseID, p.DistrictID, p.CustomerID,
			itemID, quantity, amount)
	}
	return s.DeleteCartLine(ctx, p.WarehouseID, p.DistrictID, p.CustomerID, itemID)
}
