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

// Package loader generates and writes the initial dataset. The item table
// is loaded first; once it is in place every warehouse is populated by its
// own worker, so a fixed seed plus warehouse id reproduces a warehouse's
// rows regardless of scheduling.
package loader

import (
	"context"
	"math/rand"
	"sync"
	"time"

	plog "github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/Adri029/geo-c/pkg/config"
	"github.com/Adri029/geo-c/pkg/entity"
	"github.com/Adri029/geo-c/pkg/randgen"
	"github.com/Adri029/geo-c/pkg/schema"
)

// Loader writes the initial dataset through a Conn.
type Loader struct {
	Conn    Conn
	Scale   config.Scale
	Load    config.Load
	Factory entity.Factory
}

// New builds a Loader for the given configuration.
func New(conn Conn, cfg *config.Config) *Loader {
	return &Loader{
		Conn:    conn,
		Scale:   cfg.Scale,
		Load:    cfg.Load,
		Factory: entity.Factory{Scale: cfg.Scale},
	}
}

// Run loads the full dataset. Items go first; warehouse workers start
// generating rows only after the item load finishes.
func (l *Loader) Run(ctx context.Context) error {
	start := time.Now()
	warehouses := l.Scale.WarehouseCount()
	plog.Info("start loading dataset",
		zap.Int("warehouses", warehouses),
		zap.Int("items", l.Scale.Items),
		zap.Int64("seed", l.Load.Seed))

	itemDone := make(chan struct{})
	go func() {
		defer close(itemDone)
		l.loadItems(ctx, rand.New(rand.NewSource(l.Load.Seed)))
	}()

	var wg sync.WaitGroup
	for w := 1; w <= warehouses; w++ {
		wg.Add(1)
		go func(warehouseID int) {
			defer wg.Done()
			select {
			case <-itemDone:
			case <-ctx.Done():
				return
			}
			l.loadWarehouse(ctx, warehouseID)
		}(w)
	}
	wg.Wait()
	<-itemDone

	plog.Info("dataset loaded", zap.Duration("elapsed", time.Since(start)))
	return ctx.Err()
}

func (l *Loader) loadItems(ctx context.Context, r *rand.Rand) {
	b := newBatchWriter(l.Conn, schema.TableItem, l.Load.BatchSize)
	for i := 1; i <= l.Scale.Items; i++ {
		b.Add(ctx, l.Factory.Item(r, i).Values())
	}
	b.Flush(ctx)
	plog.Info("items loaded", zap.Int("count", l.Scale.Items))
}

// loadWarehouse populates one warehouse end to end. The per-warehouse rng
// is derived from the base seed so warehouses are independent and
// reproducible.
func (l *Loader) loadWarehouse(ctx context.Context, warehouseID int) {
	r := rand.New(rand.NewSource(l.Load.Seed + int64(warehouseID)))
	plog.Info("start loading warehouse", zap.Int("warehouse", warehouseID))

	l.loadWarehouseRow(ctx, r, warehouseID)
	l.loadStock(ctx, r, warehouseID)
	l.loadDistricts(ctx, r, warehouseID)
	l.loadCustomers(ctx, r, warehouseID)
	l.loadIndividuals(ctx, r, warehouseID)
	l.assignSupervisors(ctx, warehouseID)
	l.loadHistory(ctx, r, warehouseID)
	l.loadOrders(ctx, r, warehouseID)
	l.loadNewOrders(ctx, warehouseID)
	l.loadOrderLines(ctx, r, warehouseID)

	plog.Info("warehouse loaded", zap.Int("warehouse", warehouseID))
}

func (l *Loader) loadWarehouseRow(ctx context.Context, r *rand.Rand, warehouseID int) {
	b := newBatchWriter(l.Conn, schema.TableWarehouse, l.Load.BatchSize)
	b.Add(ctx, l.Factory.Warehouse(r, warehouseID).Values())
	b.Flush(ctx)
}

func (l *Loader) loadStock(ctx context.Context, r *rand.Rand, warehouseID int) {
	b := newBatchWriter(l.Conn, schema.TableStock, l.Load.BatchSize)
	for i := 1; i <= l.Scale.Items; i++ {
		// Warehouse-specific items get stock rows only at their home
		// warehouse.
		if !l.Factory.StockedBy(i, warehouseID) {
			continue
		}
		b.Add(ctx, l.Factory.Stock(r, warehouseID, i).Values())
	}
	b.Flush(ctx)
}

func (l *Loader) loadDistricts(ctx context.Context, r *rand.Rand, warehouseID int) {
	b := newBatchWriter(l.Conn, schema.TableDistrict, l.Load.BatchSize)
	for d := 1; d <= l.Scale.DistrictsPerWarehouse; d++ {
		b.Add(ctx, l.Factory.District(r, warehouseID, d).Values())
	}
	b.Flush(ctx)
}

func (l *Loader) loadCustomers(ctx context.Context, r *rand.Rand, warehouseID int) {
	b := newBatchWriter(l.Conn, schema.TableCustomer, l.Load.BatchSize)
	for d := 1; d <= l.Scale.DistrictsPerWarehouse; d++ {
		for c := 1; c <= l.Scale.CustomersPerDistrict; c++ {
			b.Add(ctx, l.Factory.Customer(r, warehouseID, d, c).Values())
		}
	}
	b.Flush(ctx)
}

func (l *Loader) loadIndividuals(ctx context.Context, r *rand.Rand, warehouseID int) {
	b := newBatchWriter(l.Conn, schema.TableIndividual, l.Load.BatchSize)
	for d := 1; d <= l.Scale.DistrictsPerWarehouse; d++ {
		for c := 1; c <= l.Scale.CustomersPerDistrict; c++ {
			for i := 1; i <= l.Scale.IndividualsPerCustomer; i++ {
				b.Add(ctx, l.Factory.Individual(r, warehouseID, d, c, i).Values())
			}
		}
	}
	b.Flush(ctx)
}

const assignSupervisorSQL = `UPDATE customer SET c_ind_id = ? WHERE c_w_id = ? AND c_d_id = ? AND c_id = ?`

// assignSupervisors points every customer at its supervisor, the
// individual with id 1. Runs after the individuals exist.
func (l *Loader) assignSupervisors(ctx context.Context, warehouseID int) {
	for d := 1; d <= l.Scale.DistrictsPerWarehouse; d++ {
		for c := 1; c <= l.Scale.CustomersPerDistrict; c++ {
			if _, err := l.Conn.ExecContext(ctx, assignSupervisorSQL, 1, warehouseID, d, c); err != nil {
				plog.Error("assign supervisor failed",
					zap.Int("warehouse", warehouseID), zap.Int("district", d),
					zap.Int("customer", c), zap.Error(err))
			}
		}
	}
}

func (l *Loader) loadHistory(ctx context.Context, r *rand.Rand, warehouseID int) {
	b := newBatchWriter(l.Conn, schema.TableHistory, l.Load.BatchSize)
	for d := 1; d <= l.Scale.DistrictsPerWarehouse; d++ {
		for c := 1; c <= l.Scale.CustomersPerDistrict; c++ {
			b.Add(ctx, l.Factory.History(r, warehouseID, d, c).Values())
		}
	}
	b.Flush(ctx)
}

// loadOrders creates one order per customer, with customer ids assigned
// through a random permutation so order id and customer id decorrelate.
func (l *Loader) loadOrders(ctx context.Context, r *rand.Rand, warehouseID int) {
	b := newBatchWriter(l.Conn, schema.TableOrder, l.Load.BatchSize)
	for d := 1; d <= l.Scale.DistrictsPerWarehouse; d++ {
		customerIDs := randgen.Permutation(r, l.Scale.CustomersPerDistrict)
		for o := 1; o <= l.Scale.CustomersPerDistrict; o++ {
			b.Add(ctx, l.Factory.Order(r, warehouseID, d, o, customerIDs[o-1]).Values())
		}
	}
	b.Flush(ctx)
}

func (l *Loader) loadNewOrders(ctx context.Context, warehouseID int) {
	b := newBatchWriter(l.Conn, schema.TableNewOrder, l.Load.BatchSize)
	for d := 1; d <= l.Scale.DistrictsPerWarehouse; d++ {
		for o := entity.FirstUnprocessedOrderID; o <= l.Scale.CustomersPerDistrict; o++ {
			row := entity.NewOrder{WarehouseID: warehouseID, DistrictID: d, OrderID: o}
			b.Add(ctx, row.Values())
		}
	}
	b.Flush(ctx)
}

func (l *Loader) loadOrderLines(ctx context.Context, r *rand.Rand, warehouseID int) {
	b := newBatchWriter(l.Conn, schema.TableOrderLine, l.Load.BatchSize)
	for d := 1; d <= l.Scale.DistrictsPerWarehouse; d++ {
		for o := 1; o <= l.Scale.CustomersPerDistrict; o++ {
			count := randgen.OrderLineCount(warehouseID, d, o)
			for n := 1; n <= count; n++ {
				b.Add(ctx, l.Factory.OrderLine(r, warehouseID, d, o, n).Values())
			}
		}
	}
	b.Flush(ctx)
}
