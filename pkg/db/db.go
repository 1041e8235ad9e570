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

// Package db opens and configures the MySQL connection pool shared by the
// loader and the terminals.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pingcap/errors"
	plog "github.com/pingcap/log"
	"go.uber.org/zap"

	"github.com/Adri029/geo-c/pkg/config"
	"github.com/Adri029/geo-c/pkg/schema"
)

// Open creates the connection pool and verifies connectivity.
func Open(ctx context.Context, cfg config.DB) (*sql.DB, error) {
	plog.Info("create db connection",
		zap.String("host", cfg.Host), zap.Int("port", cfg.Port),
		zap.String("dbName", cfg.Name))
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&maxAllowedPacket=1073741824",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
	pool, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.Annotate(err, "open mysql pool")
	}
	pool.SetMaxIdleConns(cfg.MaxConns)
	pool.SetMaxOpenConns(cfg.MaxConns)
	pool.SetConnMaxLifetime(time.Minute)

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, errors.Annotate(err, "ping mysql")
	}
	return pool, nil
}

// EnsureSchema creates all benchmark tables if they do not exist.
func EnsureSchema(ctx context.Context, pool *sql.DB) error {
	for _, stmt := range schema.CreateTableStatements() {
		if _, err := pool.ExecContext(ctx, stmt); err != nil {
			return errors.Annotate(err, "create table")
		}
	}
	plog.Info("schema ready")
	return nil
}

// Truncate empties all benchmark tables, for a clean reload.
func Truncate(ctx context.Context, pool *sql.DB) error {
	tables := []string{
		schema.TableShoppingCartLine, schema.TableOrderLine,
		schema.TableNewOrder, schema.TableOrder, schema.TableHistory,
		schema.TableIndividual, schema.TableCustomer, schema.TableDistrict,
		schema.TableStock, schema.TableWarehouse, schema.TableItem,
	}
	for _, table := range tables {
		if _, err := pool.ExecContext(ctx, "TRUNCATE TABLE "+table); err != nil {
			return errors.Annotatef(err, "truncate %s", table)
		}
	}
	return nil
}
