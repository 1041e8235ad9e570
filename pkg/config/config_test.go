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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geoc.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		cfg, err := FromFile(writeConfig(t, ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Scale.Items != 100000 || cfg.Scale.CustomersPerDistrict != 1000 {
			t.Fatalf("unexpected scale defaults: %+v", cfg.Scale)
		}
		if cfg.Scale.WarehouseCount() != 1 {
			t.Fatalf("unexpected warehouse count: %d", cfg.Scale.WarehouseCount())
		}
		if cfg.Load.BatchSize != 128 {
			t.Fatalf("unexpected batch size: %d", cfg.Load.BatchSize)
		}
		if cfg.Run.Mix.total() == 0 {
			t.Fatalf("default mix is empty")
		}
		if cfg.Run.StockThreshold != 20 || cfg.Run.RestockQuantity != 50 {
			t.Fatalf("unexpected restock defaults: %+v", cfg.Run)
		}
	})

	t.Run("explicit values", func(t *testing.T) {
		cfg, err := FromFile(writeConfig(t, `
[scale]
scale_factor = 2.0
warehouses = 4

[load]
batch_size = 64

[run]
terminals = 8
duration = "90s"

[run.mix]
increase_cart_line = 1
approve_cart = 1
`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Scale.WarehouseCount() != 8 {
			t.Fatalf("unexpected warehouse count: %d", cfg.Scale.WarehouseCount())
		}
		if cfg.Run.Duration.Duration != 90*time.Second {
			t.Fatalf("unexpected duration: %v", cfg.Run.Duration)
		}
		if cfg.Run.Mix.CheckCart != 0 || cfg.Run.Mix.IncreaseCartLine != 1 {
			t.Fatalf("unexpected mix: %+v", cfg.Run.Mix)
		}
	})

	t.Run("unknown keys rejected", func(t *testing.T) {
		_, err := FromFile(writeConfig(t, "nonsense = true\n"))
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("small districts rejected", func(t *testing.T) {
		_, err := FromFile(writeConfig(t, "[scale]\ncustomers_per_district = 500\n"))
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("negative mix weight rejected", func(t *testing.T) {
		_, err := FromFile(writeConfig(t, "[run.mix]\nrestock = -1\n"))
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("not toml", func(t *testing.T) {
		_, err := FromFile("geoc.yaml")
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestWarehouseCountFloor(t *testing.T) {
	t.Parallel()

	s := Scale{ScaleFactor: 0.1, Warehouses: 1}
	if s.WarehouseCount() != 1 {
		t.Fatalf("warehouse count must never drop below 1, got %d", s.WarehouseCount())
	}
}
