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

// RestockParams carries the input for one warehouse restock sweep.
type RestockParams struct {
	WarehouseID int
	Threshold   int
	Quantity    int
}

// Restock tops up every stock row of a warehouse that sits at or below
// the threshold. A warehouse with nothing to restock rolls back as an
// expected abort. Returns the number of rows topped up.
func Restock(ctx context.Context, s Store, p RestockParams) (int, error) {
	levels, err := s.LowStock(ctx, p.WarehouseID, p.Threshold)
	if err != nil {
		return 0, err
	}
	if len(levels) == 0 {
		return 0, geocerr.ErrNothingToRestock.GenWithStackByArgs(p.WarehouseID, p.Threshold)
	}

	for _, level := range levels {
		if err := s.SetStockQuantity(ctx, p.WarehouseID, level.ItemID,
			level.Quantity+p.Quantity); err != nil {
			return 0, err
		}
	}
	return len(levels), nil
}
