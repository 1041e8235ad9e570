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
	"math/rand"
	"sync"

	plog "github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/Adri029/geo-c/pkg/config"
	"github.com/Adri029/geo-c/pkg/randgen"
)

// InvalidItemID is the deliberately unresolvable item id a terminal
// occasionally submits to force an expected abort.
const InvalidItemID = -12345

// Terminal emulates one operator bound to a home warehouse, issuing a
// weighted mix of procedures until its context ends.
type Terminal struct {
	id          int
	warehouseID int
	executor    *Executor
	rng         *rand.Rand

	scale config.Scale
	run   config.Run
}

// NewTerminal binds terminal number id to its home warehouse. The rng is
// derived from the run seed and the terminal id.
func NewTerminal(id int, executor *Executor, cfg *config.Config) *Terminal {
	warehouses := cfg.Scale.WarehouseCount()
	return &Terminal{
		id:          id,
		warehouseID: id%warehouses + 1,
		executor:    executor,
		rng:         rand.New(rand.NewSource(cfg.Run.Seed + int64(id))),
		scale:       cfg.Scale,
		run:         cfg.Run,
	}
}

// Run issues transactions until ctx is cancelled.
func (t *Terminal) Run(ctx context.Context) {
	for ctx.Err() == nil {
		t.step(ctx)
	}
}

func (t *Terminal) step(ctx context.Context) {
	switch t.pickProcedure() {
	case ProcIncreaseCartLine:
		p := t.increaseParams()
		_ = t.executor.Execute(ctx, ProcIncreaseCartLine, func(s Store) error {
			return IncreaseCartLine(ctx, s, p)
		})
	case ProcDecreaseCartLine:
		p := t.decreaseParams()
		_ = t.executor.Execute(ctx, ProcDecreaseCartLine, func(s Store) error {
			return DecreaseCartLine(ctx, s, p)
		})
	case ProcCheckCart:
		p := t.checkParams()
		_ = t.executor.Execute(ctx, ProcCheckCart, func(s Store) error {
			_, err := CheckCart(ctx, s, p)
			return err
		})
	case ProcApproveCart:
		p := t.approveParams()
		_ = t.executor.Execute(ctx, ProcApproveCart, func(s Store) error {
			_, err := ApproveCart(ctx, s, p)
			return err
		})
	case ProcRestock:
		p := RestockParams{
			WarehouseID: t.warehouseID,
			Threshold:   t.run.StockThreshold,
			Quantity:    t.run.RestockQuantity,
		}
		_ = t.executor.Execute(ctx, ProcRestock, func(s Store) error {
			_, err := Restock(ctx, s, p)
			return err
		})
	}
}

// pickProcedure draws from the configured mix.
func (t *Terminal) pickProcedure() string {
	mix := t.run.Mix
	total := mix.IncreaseCartLine + mix.DecreaseCartLine + mix.CheckCart +
		mix.ApproveCart + mix.Restock
	n := randgen.Number(t.rng, 1, total)
	if n <= mix.IncreaseCartLine {
		return ProcIncreaseCartLine
	}
	n -= mix.IncreaseCartLine
	if n <= mix.DecreaseCartLine {
		return ProcDecreaseCartLine
	}
	n -= mix.DecreaseCartLine
	if n <= mix.CheckCart {
		return ProcCheckCart
	}
	n -= mix.CheckCart
	if n <= mix.ApproveCart {
		return ProcApproveCart
	}
	return ProcRestock
}

func (t *Terminal) increaseParams() IncreaseCartLineParams {
	p := IncreaseCartLineParams{
		WarehouseID: t.warehouseID,
		DistrictID:  randgen.Number(t.rng, 1, t.scale.DistrictsPerWarehouse),
		CustomerID:  randgen.CustomerID(t.rng, t.scale.CustomersPerDistrict),
		ItemID:      randgen.ItemID(t.rng, t.scale.Items),
		Quantity:    randgen.Number(t.rng, 1, 10),
	}

	warehouses := t.scale.WarehouseCount()
	p.SupplyWarehouseID = t.warehouseID
	if randgen.Number(t.rng, 1, 100) == 1 && warehouses > 1 {
		for p.SupplyWarehouseID == t.warehouseID {
			p.SupplyWarehouseID = randgen.Number(t.rng, 1, warehouses)
		}
	}

	// One order in a hundred asks for an item that does not exist and is
	// expected to roll back.
	if randgen.Number(t.rng, 1, 100) == 1 {
		p.ItemID = InvalidItemID
	}
	return p
}

func (t *Terminal) decreaseParams() DecreaseCartLineParams {
	return DecreaseCartLineParams{
		WarehouseID: t.warehouseID,
		DistrictID:  randgen.Number(t.rng, 1, t.scale.DistrictsPerWarehouse),
		CustomerID:  randgen.CustomerID(t.rng, t.scale.CustomersPerDistrict),
		Pick:        randgen.Number(t.rng, 0, 10000),
		Quantity:    randgen.Number(t.rng, 1, 10),
	}
}

func (t *Terminal) checkParams() CheckCartParams {
	return CheckCartParams{
		WarehouseID: t.warehouseID,
		DistrictID:  randgen.Number(t.rng, 1, t.scale.DistrictsPerWarehouse),
		CustomerID:  randgen.CustomerID(t.rng, t.scale.CustomersPerDistrict),
	}
}

func (t *Terminal) approveParams() ApproveCartParams {
	p := ApproveCartParams{
		WarehouseID: t.warehouseID,
		DistrictID:  randgen.Number(t.rng, 1, t.scale.DistrictsPerWarehouse),
		CustomerID:  randgen.CustomerID(t.rng, t.scale.CustomersPerDistrict),
		ApproverID:  1,
	}
	// One approval in a hundred comes from someone other than the
	// supervisor and is expected to roll back.
	if randgen.Number(t.rng, 1, 100) == 1 {
		p.ApproverID = 2
	}
	return p
}

// RunTerminals starts the configured number of terminals against the pool
// and blocks until ctx ends.
func RunTerminals(ctx context.Context, pool *sql.DB, cfg *config.Config) {
	executor := NewExecutor(pool)
	plog.Info("starting terminals",
		zap.Int("terminals", cfg.Run.Terminals),
		zap.Duration("duration", cfg.Run.Duration.Duration),
		zap.Int64("seed", cfg.Run.Seed))

	var wg sync.WaitGroup
	for i := 0; i < cfg.Run.Terminals; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			NewTerminal(id, executor, cfg).Run(ctx)
		}(i)
	}
	wg.Wait()
	plog.Info("terminals stopped")
}
