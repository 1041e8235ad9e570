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

package entity

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Adri029/geo-c/pkg/config"
	"github.com/Adri029/geo-c/pkg/randgen"
	"github.com/Adri029/geo-c/pkg/schema"
)

func testFactory() Factory {
	return Factory{Scale: config.Scale{
		ScaleFactor:            1,
		Warehouses:             4,
		Items:                  100000,
		DistrictsPerWarehouse:  10,
		CustomersPerDistrict:   3000,
		IndividualsPerCustomer: 10,
		WarehouseSpecificItems: 1000,
	}}
}

func TestValuesMatchColumnCounts(t *testing.T) {
	f := testFactory()
	r := rand.New(rand.NewSource(1))

	cases := []struct {
		table string
		vals  []any
	}{
		{schema.TableItem, f.Item(r, 1).Values()},
		{schema.TableWarehouse, f.Warehouse(r, 1).Values()},
		{schema.TableStock, f.Stock(r, 1, 1).Values()},
		{schema.TableDistrict, f.District(r, 1, 1).Values()},
		{schema.TableCustomer, f.Customer(r, 1, 1, 1).Values()},
		{schema.TableIndividual, f.Individual(r, 1, 1, 1, 1).Values()},
		{schema.TableHistory, f.History(r, 1, 1, 1).Values()},
		{schema.TableOrder, f.Order(r, 1, 1, 1, 1).Values()},
		{schema.TableNewOrder, (&NewOrder{1, 1, 2101}).Values()},
		{schema.TableOrderLine, f.OrderLine(r, 1, 1, 1, 1).Values()},
		{schema.TableShoppingCartLine, (&ShoppingCartLine{}).Values()},
	}
	for _, tc := range cases {
		require.Len(t, tc.vals, len(schema.Columns(tc.table)), "table %s", tc.table)
	}
}

func TestItemData(t *testing.T) {
	f := testFactory()
	r := rand.New(rand.NewSource(7))

	original := 0
	for i := 1; i <= 5000; i++ {
		item := f.Item(r, i)
		require.GreaterOrEqual(t, len(item.Data), 26)
		require.LessOrEqual(t, len(item.Data), 50)
		require.GreaterOrEqual(t, item.Price, 1.0)
		require.LessOrEqual(t, item.Price, 100.0)
		if strings.Contains(item.Data, "ORIGINAL") {
			// The marker overlay must not shorten the blob.
			require.GreaterOrEqual(t, len(item.Data), 26)
			original++
		}
	}
	// 10% of rows carry the marker; allow generous slack for 5000 draws.
	require.InDelta(t, 500, original, 120)
}

func TestCustomerLastNames(t *testing.T) {
	f := testFactory()
	r := rand.New(rand.NewSource(3))

	c := f.Customer(r, 1, 1, 1)
	require.Equal(t, "BARBARBAR", c.Last)
	c = f.Customer(r, 1, 1, 1000)
	require.Equal(t, randgen.LastName(999), c.Last)

	// Beyond the first thousand the name is drawn, but still a valid
	// three-token composition.
	c = f.Customer(r, 1, 1, 1001)
	found := false
	for _, tok := range randgen.NameTokens {
		if strings.HasPrefix(c.Last, tok) {
			found = true
		}
	}
	require.True(t, found, "last name %q", c.Last)
}

func TestStockedBy(t *testing.T) {
	f := testFactory()

	// Warehouse-specific items live at exactly one warehouse.
	for itemID := 1; itemID <= f.Scale.WarehouseSpecificItems; itemID++ {
		holders := 0
		for w := 1; w <= f.Scale.Warehouses; w++ {
			if f.StockedBy(itemID, w) {
				holders++
				require.Equal(t, f.EligibleWarehouse(itemID), w)
			}
		}
		require.Equal(t, 1, holders, "item %d", itemID)
	}

	// General items are stocked everywhere.
	for w := 1; w <= f.Scale.Warehouses; w++ {
		require.True(t, f.StockedBy(f.Scale.WarehouseSpecificItems+1, w))
	}
}

func TestOrderCarrierSplit(t *testing.T) {
	f := testFactory()
	r := rand.New(rand.NewSource(5))

	delivered := f.Order(r, 1, 1, FirstUnprocessedOrderID-1, 42)
	require.NotNil(t, delivered.CarrierID)
	require.GreaterOrEqual(t, *delivered.CarrierID, 1)
	require.LessOrEqual(t, *delivered.CarrierID, 10)
	require.GreaterOrEqual(t, delivered.LineCount, 5)
	require.LessOrEqual(t, delivered.LineCount, 15)

	pending := f.Order(r, 1, 1, FirstUnprocessedOrderID, 42)
	require.Nil(t, pending.CarrierID)
}

func TestOrderLineRespectsWarehouseSpecificItems(t *testing.T) {
	f := testFactory()
	r := rand.New(rand.NewSource(11))

	for n := 0; n < 2000; n++ {
		ol := f.OrderLine(r, 2, 1, FirstUnprocessedOrderID, 1)
		require.True(t, f.StockedBy(ol.ItemID, 2), "item %d not stocked", ol.ItemID)
		require.Nil(t, ol.DeliveryD)
		require.Greater(t, ol.Amount, 0.0)
	}

	ol := f.OrderLine(r, 2, 1, FirstUnprocessedOrderID-1, 1)
	require.NotNil(t, ol.DeliveryD)
	require.Zero(t, ol.Amount)
	require.Equal(t, 5, ol.Quantity)
	require.Equal(t, 2, ol.SupplyWhse)
}

func TestDistrictNextOrderID(t *testing.T) {
	f := testFactory()
	r := rand.New(rand.NewSource(13))

	d := f.District(r, 1, 1)
	require.Equal(t, f.Scale.CustomersPerDistrict+1, d.NextOrderID)
	require.Equal(t, 3, len(d.State))
	require.Equal(t, strings.ToUpper(d.State), d.State)
}
