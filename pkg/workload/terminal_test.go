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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Adri029/geo-c/pkg/config"
)

func terminalConfig() *config.Config {
	return &config.Config{
		Scale: config.Scale{
			ScaleFactor:            1,
			Warehouses:             4,
			Items:                  100000,
			DistrictsPerWarehouse:  10,
			CustomersPerDistrict:   3000,
			IndividualsPerCustomer: 10,
			WarehouseSpecificItems: 1000,
		},
		Run: config.Run{
			Terminals: 8,
			Seed:      99,
			Mix: config.Mix{
				IncreaseCartLine: 45,
				DecreaseCartLine: 20,
				CheckCart:        15,
				ApproveCart:      15,
				Restock:          5,
			},
			StockThreshold:  20,
			RestockQuantity: 50,
		},
	}
}

func TestTerminalHomeWarehouseAssignment(t *testing.T) {
	cfg := terminalConfig()
	counts := map[int]int{}
	for id := 0; id < 8; id++ {
		term := NewTerminal(id, nil, cfg)
		require.GreaterOrEqual(t, term.warehouseID, 1)
		require.LessOrEqual(t, term.warehouseID, 4)
		counts[term.warehouseID]++
	}
	// Eight terminals over four warehouses spread evenly.
	for w := 1; w <= 4; w++ {
		require.Equal(t, 2, counts[w])
	}
}

func TestPickProcedureFollowsMix(t *testing.T) {
	cfg := terminalConfig()
	term := NewTerminal(0, nil, cfg)

	counts := map[string]int{}
	const draws = 100000
	for i := 0; i < draws; i++ {
		counts[term.pickProcedure()]++
	}

	require.InDelta(t, 0.45, float64(counts[ProcIncreaseCartLine])/draws, 0.02)
	require.InDelta(t, 0.20, float64(counts[ProcDecreaseCartLine])/draws, 0.02)
	require.InDelta(t, 0.15, float64(counts[ProcCheckCart])/draws, 0.02)
	require.InDelta(t, 0.15, float64(counts[ProcApproveCart])/draws, 0.02)
	require.InDelta(t, 0.05, float64(counts[ProcRestock])/draws, 0.02)
}

func TestIncreaseParamsBounds(t *testing.T) {
	cfg := terminalConfig()
	term := NewTerminal(1, nil, cfg)

	invalid, remote := 0, 0
	const draws = 20000
	for i := 0; i < draws; i++ {
		p := term.increaseParams()
		require.Equal(t, term.warehouseID, p.WarehouseID)
		require.GreaterOrEqual(t, p.DistrictID, 1)
		require.LessOrEqual(t, p.DistrictID, 10)
		require.GreaterOrEqual(t, p.CustomerID, 1)
		require.LessOrEqual(t, p.CustomerID, 3000)
		require.GreaterOrEqual(t, p.Quantity, 1)
		require.LessOrEqual(t, p.Quantity, 10)
		if p.ItemID == InvalidItemID {
			invalid++
		} else {
			require.GreaterOrEqual(t, p.ItemID, 1)
			require.LessOrEqual(t, p.ItemID, 100000)
		}
		if p.SupplyWarehouseID != p.WarehouseID {
			remote++
			require.GreaterOrEqual(t, p.SupplyWarehouseID, 1)
			require.LessOrEqual(t, p.SupplyWarehouseID, 4)
		}
	}

	// Both the invalid-item and remote-warehouse branches fire about once
	// per hundred draws.
	require.InDelta(t, 0.01, float64(invalid)/draws, 0.01)
	require.InDelta(t, 0.01, float64(remote)/draws, 0.01)
	require.Greater(t, invalid, 0)
	require.Greater(t, remote, 0)
}

func TestApproveParamsApproverSkew(t *testing.T) {
	cfg := terminalConfig()
	term := NewTerminal(2, nil, cfg)

	wrong := 0
	const draws = 20000
	for i := 0; i < draws; i++ {
		p := term.approveParams()
		if p.ApproverID != 1 {
			wrong++
			require.Equal(t, 2, p.ApproverID)
		}
	}
	require.InDelta(t, 0.01, float64(wrong)/draws, 0.01)
	require.Greater(t, wrong, 0)
}
