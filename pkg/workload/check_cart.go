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

	"github.com/Adri029/geo-c/pkg/entity"
)

// CheckCartParams identifies the cart to read.
type CheckCartParams struct {
	WarehouseID int
	DistrictID  int
	CustomerID  int
}

// CheckCart reads the full contents of a customer's cart. An empty cart
// is a valid result, not an abort.
func CheckCart(ctx context.Context, s Store, p CheckCartParams) ([]entity.ShoppingCartLine, error) {
	return s.CartLines(ctx, p.WarehouseID, p.DistrictID, p.CustomerID)
}
