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

// Command geoc loads the benchmark dataset and drives the cart workload
// against a MySQL-compatible database.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	plog "github.com/pingcap/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Adri029/geo-c/pkg/config"
	"github.com/Adri029/geo-c/pkg/db"
	"github.com/Adri029/geo-c/pkg/loader"
	"github.com/Adri029/geo-c/pkg/metrics"
	"github.com/Adri029/geo-c/pkg/workload"
)

func main() {
	var (
		configPath  = flag.String("config", "geoc.toml", "path to the TOML configuration file")
		phase       = flag.String("phase", "all", "phase to run: load, run, or all")
		metricsAddr = flag.String("metrics-addr", "", "prometheus listen address (overrides config)")
	)
	flag.Parse()

	if *phase != "load" && *phase != "run" && *phase != "all" {
		fmt.Fprintf(os.Stderr, "unknown phase %q\n", *phase)
		os.Exit(2)
	}

	cfg, err := config.FromFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	if *metricsAddr != "" {
		cfg.MetricsAddr = *metricsAddr
	}

	runID := uuid.NewString()
	plog.Info("geoc starting",
		zap.String("runID", runID),
		zap.String("phase", *phase),
		zap.Int("warehouses", cfg.Scale.WarehouseCount()))

	registry := prometheus.NewRegistry()
	metrics.InitMetrics(registry)
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, registry)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Open(ctx, cfg.DB)
	if err != nil {
		plog.Fatal("open database failed", zap.Error(err))
	}
	defer pool.Close()

	if *phase == "load" || *phase == "all" {
		if err := db.EnsureSchema(ctx, pool); err != nil {
			plog.Fatal("ensure schema failed", zap.Error(err))
		}
		if err := db.Truncate(ctx, pool); err != nil {
			plog.Fatal("truncate failed", zap.Error(err))
		}
		if err := loader.New(pool, cfg).Run(ctx); err != nil {
			plog.Fatal("load failed", zap.Error(err))
		}
	}

	if *phase == "run" || *phase == "all" {
		runCtx, cancel := context.WithTimeout(ctx, cfg.Run.Duration.Duration)
		defer cancel()
		workload.RunTerminals(runCtx, pool, cfg)
	}

	plog.Info("geoc finished", zap.String("runID", runID))
}

func serveMetrics(addr string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	plog.Info("serving metrics", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		plog.Error("metrics server stopped", zap.Error(err))
	}
}
