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
	"sort"

	"github.com/Adri029/geo-c/pkg/entity"
)

type distKey struct{ w, d int }
type custKey struct{ w, d, c int }
type stockKey struct{ w, i int }
type cartKey struct {
	w, d, c, i int
}

// memStore is an in-memory Store for exercising procedure logic without a
// database. It is not transactional; tests assert on its final state.
type memStore struct {
	warehouses  map[int]bool
	districts   map[distKey]int
	supervisors map[custKey]int
	items       map[int]float64
	stocks      map[stockKey]*StockView
	carts       map[cartKey]*entity.ShoppingCartLine
	orders      []*entity.Order
	newOrders   []*entity.NewOrder
	orderLines  []*entity.OrderLine

	// Sizes of each flushed write batch, in call order.
	orderLineBatches []int
	stockBatches     []int
}

func newMemStore() *memStore {
	return &memStore{
		warehouses:  make(map[int]bool),
		districts:   make(map[distKey]int),
		supervisors: make(map[custKey]int),
		items:       make(map[int]float64),
		stocks:      make(map[stockKey]*StockView),
		carts:       make(map[cartKey]*entity.ShoppingCartLine),
	}
}

func (m *memStore) CustomerExists(_ context.Context, w, d, c int) (bool, error) {
	_, ok := m.supervisors[custKey{w, d, c}]
	return ok, nil
}

func (m *memStore) WarehouseExists(_ context.Context, w int) (bool, error) {
	return m.warehouses[w], nil
}

func (m *memStore) DistrictNextOrderID(_ context.Context, w, d int) (int, bool, error) {
	next, ok := m.districts[distKey{w, d}]
	return next, ok, nil
}

func (m *memStore) AdvanceNextOrderID(_ context.Context, w, d int) (int64, error) {
	key := distKey{w, d}
	if _, ok := m.districts[key]; !ok {
		return 0, nil
	}
	m.districts[key]++
	return 1, nil
}

func (m *memStore) Supervisor(_ context.Context, w, d, c int) (int, bool, error) {
	sup, ok := m.supervisors[custKey{w, d, c}]
	return sup, ok, nil
}

func (m *memStore) ItemPrice(_ context.Context, i int) (float64, bool, error) {
	price, ok := m.items[i]
	return price, ok, nil
}

func (m *memStore) StockForUpdate(_ context.Context, w, i int) (*StockView, bool, error) {
	stock, ok := m.stocks[stockKey{w, i}]
	if !ok {
		return nil, false, nil
	}
	view := *stock
	return &view, true, nil
}

func (m *memStore) UpdateStocks(_ context.Context, updates []StockUpdate) error {
	for _, u := range updates {
		stock := m.stocks[stockKey{u.SupplyWarehouseID, u.ItemID}]
		stock.Quantity = u.Quantity
		stock.YTD += float64(u.YTDDelta)
		stock.OrderCnt++
		stock.RemoteCnt += u.RemoteDelta
	}
	m.stockBatches = append(m.stockBatches, len(updates))
	return nil
}

func (m *memStore) LowStock(_ context.Context, w, threshold int) ([]StockLevel, error) {
	var levels []StockLevel
	for key, stock := range m.stocks {
		if key.w == w && stock.Quantity <= threshold {
			levels = append(levels, StockLevel{ItemID: key.i, Quantity: stock.Quantity})
		}
	}
	sort.Slice(levels, func(a, b int) bool { return levels[a].ItemID < levels[b].ItemID })
	return levels, nil
}

func (m *memStore) SetStockQuantity(_ context.Context, w, i, quantity int) error {
	m.stocks[stockKey{w, i}].Quantity = quantity
	return nil
}

func (m *memStore) CartLines(_ context.Context, w, d, c int) ([]entity.ShoppingCartLine, error) {
	var lines []entity.ShoppingCartLine
	for key, line := range m.carts {
		if key.w == w && key.d == d && key.c == c {
			lines = append(lines, *line)
		}
	}
	sort.Slice(lines, func(a, b int) bool { return lines[a].Number < lines[b].Number })
	return lines, nil
}

func (m *memStore) CartLineQuantity(_ context.Context, w, d, c, i int) (int, bool, error) {
	line, ok := m.carts[cartKey{w, d, c, i}]
	if !ok {
		return 0, false, nil
	}
	return line.Quantity, true, nil
}

func (m *memStore) MaxCartLineNumber(_ context.Context, w, d, c int) (int, error) {
	maxNumber := 0
	for key, line := range m.carts {
		if key.w == w && key.d == d && key.c == c && line.Number > maxNumber {
			maxNumber = line.Number
		}
	}
	return maxNumber, nil
}

func (m *memStore) InsertCartLine(_ context.Context, line *entity.ShoppingCartLine) error {
	cp := *line
	m.carts[cartKey{line.WarehouseID, line.DistrictID, line.CustomerID, line.ItemID}] = &cp
	return nil
}

func (m *memStore) UpdateCartLine(_ context.Context, w, d, c, i, quantity int, amount float64) error {
	line := m.carts[cartKey{w, d, c, i}]
	line.Quantity = quantity
	line.Amount = amount
	return nil
}

func (m *memStore) DeleteCartLine(_ context.Context, w, d, c, i int) error {
	delete(m.carts, cartKey{w, d, c, i})
	return nil
}

func (m *memStore) ClearCart(_ context.Context, w, d, c int) error {
	for key := range m.carts {
		if key.w == w && key.d == d && key.c == c {
			delete(m.carts, key)
		}
	}
	return nil
}

func (m *memStore) InsertOrder(_ context.Context, order *entity.Order) error {
	cp := *order
	m.orders = append(m.orders, &cp)
	return nil
}

func (m *memStore) InsertNewOrder(_ context.Context, newOrder *entity.NewOrder) error {
	cp := *newOrder
	m.newOrders = append(m.newOrders, &cp)
	return nil
}

func (m *memStore) InsertOrderLines(_ context.Context, lines []*entity.OrderLine) error {
	for _, line := range lines {
		cp := *line
		m.orderLines = append(m.orderLines, &cp)
	}
	m.orderLineBatches = append(m.orderLineBatches, len(lines))
	return nil
}

// seedStore builds a store with one warehouse, one district and one
// customer, plus a handful of items with plentiful stock.
func seedStore() *memStore {
	m := newMemStore()
	m.warehouses[1] = true
	m.warehouses[2] = true
	m.districts[distKey{1, 1}] = 3001
	m.supervisors[custKey{1, 1, 5}] = 1
	for i := 1; i <= 10; i++ {
		m.items[i] = float64(i) * 2.5
		for w := 1; w <= 2; w++ {
			stock := &StockView{Quantity: 100}
			for d := range stock.Dists {
				stock.Dists[d] = "dist-info-123456789012345"[:24]
			}
			m.stocks[stockKey{w, i}] = stock
		}
	}
	return m
}
