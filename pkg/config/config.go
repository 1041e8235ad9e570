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
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
)

// Scale holds the benchmark's fixed scale parameters. They are read-only
// once loading starts; both the loader and the terminals derive everything
// from them.
type Scale struct {
	ScaleFactor            float64 `toml:"scale_factor"`
	Warehouses             int     `toml:"warehouses"`
	Items                  int     `toml:"items"`
	DistrictsPerWarehouse  int     `toml:"districts_per_warehouse"`
	CustomersPerDistrict   int     `toml:"customers_per_district"`
	IndividualsPerCustomer int     `toml:"individuals_per_customer"`
	WarehouseSpecificItems int     `toml:"warehouse_specific_items"`
}

// WarehouseCount applies the scale factor to the configured warehouse
// count, never going below one.
func (s Scale) WarehouseCount() int {
	n := int(math.Round(float64(s.Warehouses) * s.ScaleFactor))
	if n < 1 {
		return 1
	}
	return n
}

// DB holds connection settings for the MySQL-compatible target store.
type DB struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
	MaxConns int    `toml:"max_conns"`
}

// Load holds dataset-loading settings.
type Load struct {
	BatchSize int   `toml:"batch_size"`
	Seed      int64 `toml:"seed"`
}

// Mix holds the relative weights of the five procedures. Zero disables a
// procedure.
type Mix struct {
	IncreaseCartLine int `toml:"increase_cart_line"`
	DecreaseCartLine int `toml:"decrease_cart_line"`
	CheckCart        int `toml:"check_cart"`
	ApproveCart      int `toml:"approve_cart"`
	Restock          int `toml:"restock"`
}

func (m Mix) total() int {
	return m.IncreaseCartLine + m.DecreaseCartLine + m.CheckCart + m.ApproveCart + m.Restock
}

// Duration lets TOML carry values like "90s" or "5m".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Annotate(err, "parse duration failed")
	}
	d.Duration = parsed
	return nil
}

// Run holds transaction-phase settings.
type Run struct {
	Terminals       int      `toml:"terminals"`
	Duration        Duration `toml:"duration"`
	Seed            int64    `toml:"seed"`
	Mix             Mix      `toml:"mix"`
	StockThreshold  int      `toml:"stock_threshold"`
	RestockQuantity int      `toml:"restock_quantity"`
}

// Config is the root of the benchmark configuration file.
type Config struct {
	MetricsAddr string `toml:"metrics_addr"`
	DB          DB     `toml:"db"`
	Scale       Scale  `toml:"scale"`
	Load        Load   `toml:"load"`
	Run         Run    `toml:"run"`
}

// FromFile decodes, normalizes and validates a TOML configuration file.
// Unknown keys are rejected.
func FromFile(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("config path is empty")
	}
	if filepath.Ext(path) != ".toml" {
		return nil, errors.Errorf("config must be a .toml file: %s", path)
	}

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Annotate(err, "decode config failed")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown keys in config: %v", undecoded)
	}

	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	if c.DB.Host == "" {
		c.DB.Host = "127.0.0.1"
	}
	if c.DB.Port == 0 {
		c.DB.Port = 4000
	}
	if c.DB.User == "" {
		c.DB.User = "root"
	}
	if c.DB.Name == "" {
		c.DB.Name = "geoc"
	}
	if c.DB.MaxConns == 0 {
		c.DB.MaxConns = 256
	}

	if c.Scale.ScaleFactor == 0 {
		c.Scale.ScaleFactor = 1
	}
	if c.Scale.Warehouses == 0 {
		c.Scale.Warehouses = 1
	}
	if c.Scale.Items == 0 {
		c.Scale.Items = 100000
	}
	if c.Scale.DistrictsPerWarehouse == 0 {
		c.Scale.DistrictsPerWarehouse = 10
	}
	if c.Scale.CustomersPerDistrict == 0 {
		c.Scale.CustomersPerDistrict = 1000
	}
	if c.Scale.IndividualsPerCustomer == 0 {
		c.Scale.IndividualsPerCustomer = 10
	}
	if c.Scale.WarehouseSpecificItems == 0 {
		c.Scale.WarehouseSpecificItems = 1000
	}

	if c.Load.BatchSize == 0 {
		c.Load.BatchSize = 128
	}

	if c.Run.Terminals == 0 {
		c.Run.Terminals = c.Scale.WarehouseCount() * 10
	}
	if c.Run.Duration.Duration == 0 {
		c.Run.Duration = Duration{time.Minute}
	}
	if c.Run.Mix.total() == 0 {
		c.Run.Mix = Mix{
			IncreaseCartLine: 45,
			DecreaseCartLine: 20,
			CheckCart:        15,
			ApproveCart:      15,
			Restock:          5,
		}
	}
	if c.Run.StockThreshold == 0 {
		c.Run.StockThreshold = 20
	}
	if c.Run.RestockQuantity == 0 {
		c.Run.RestockQuantity = 50
	}
}

func (c *Config) validate() error {
	if c.Scale.ScaleFactor < 0 {
		return errors.Errorf("scale_factor must be >= 0: %v", c.Scale.ScaleFactor)
	}
	// The deterministic name scheme covers exactly the first 1000 customers
	// of each district.
	if c.Scale.CustomersPerDistrict < 1000 {
		return errors.Errorf("customers_per_district must be >= 1000: %d", c.Scale.CustomersPerDistrict)
	}
	if c.Scale.DistrictsPerWarehouse != 10 {
		return errors.Errorf("districts_per_warehouse must be 10: %d", c.Scale.DistrictsPerWarehouse)
	}
	if c.Scale.WarehouseSpecificItems > c.Scale.Items {
		return errors.Errorf("warehouse_specific_items %d exceeds items %d",
			c.Scale.WarehouseSpecificItems, c.Scale.Items)
	}
	if c.Scale.IndividualsPerCustomer < 1 {
		return errors.Errorf("individuals_per_customer must be >= 1: %d", c.Scale.IndividualsPerCustomer)
	}
	if c.Load.BatchSize < 1 {
		return errors.Errorf("batch_size must be >= 1: %d", c.Load.BatchSize)
	}
	if c.Run.Terminals < 1 {
		return errors.Errorf("terminals must be >= 1: %d", c.Run.Terminals)
	}
	for name, v := range map[string]int{
		"increase_cart_line": c.Run.Mix.IncreaseCartLine,
		"decrease_cart_line": c.Run.Mix.DecreaseCartLine,
		"check_cart":         c.Run.Mix.CheckCart,
		"approve_cart":       c.Run.Mix.ApproveCart,
		"restock":            c.Run.Mix.Restock,
	} {
		if v < 0 {
			return errors.Errorf("mix weight must be >= 0: %s=%d", name, v)
		}
	}
	if c.Run.Mix.total() == 0 {
		return errors.New("mix has no enabled procedures")
	}
	if c.Run.StockThreshold < 0 {
		return errors.Errorf("stock_threshold must be >= 0: %d", c.Run.StockThreshold)
	}
	if c.Run.RestockQuantity < 1 {
		return errors.Errorf("restock_quantity must be >= 1: %d", c.Run.RestockQuantity)
	}
	return nil
}
