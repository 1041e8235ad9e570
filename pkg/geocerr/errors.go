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

// Package geocerr declares the benchmark's error taxonomy. Expected aborts
// are business-rule rollbacks that a harness counts as benign; everything
// else is an integrity fault that must fail the enclosing transaction.
package geocerr

import (
	"github.com/pingcap/errors"
)

// Expected aborts.
var (
	ErrInvalidItem = errors.Normalize(
		"item %d does not exist",
		errors.RFCCodeText("GEOC:ErrInvalidItem"),
	)
	ErrEmptyCart = errors.Normalize(
		"cart is empty for warehouse %d district %d customer %d",
		errors.RFCCodeText("GEOC:ErrEmptyCart"),
	)
	ErrNotAuthorized = errors.Normalize(
		"individual %d is not the supervisor of customer %d",
		errors.RFCCodeText("GEOC:ErrNotAuthorized"),
	)
	ErrInsufficientStock = errors.Normalize(
		"stock of item %d in warehouse %d is %d, want %d",
		errors.RFCCodeText("GEOC:ErrInsufficientStock"),
	)
	ErrNothingToRestock = errors.Normalize(
		"warehouse %d has no stock at or below threshold %d",
		errors.RFCCodeText("GEOC:ErrNothingToRestock"),
	)
)

// Integrity faults. These should never occur on a correctly loaded dataset.
var (
	ErrWarehouseNotFound = errors.Normalize(
		"warehouse %d not found",
		errors.RFCCodeText("GEOC:ErrWarehouseNotFound"),
	)
	ErrDistrictNotFound = errors.Normalize(
		"district %d not found in warehouse %d",
		errors.RFCCodeText("GEOC:ErrDistrictNotFound"),
	)
	ErrCustomerNotFound = errors.Normalize(
		"customer %d not found in warehouse %d district %d",
		errors.RFCCodeText("GEOC:ErrCustomerNotFound"),
	)
	ErrStockNotFound = errors.Normalize(
		"stock of item %d not found in warehouse %d",
		errors.RFCCodeText("GEOC:ErrStockNotFound"),
	)
	ErrOrderIDNotAdvanced = errors.Normalize(
		"next order id not advanced for warehouse %d district %d",
		errors.RFCCodeText("GEOC:ErrOrderIDNotAdvanced"),
	)
)

var expectedAborts = []*errors.Error{
	ErrInvalidItem,
	ErrEmptyCart,
	ErrNotAuthorized,
	ErrInsufficientStock,
	ErrNothingToRestock,
}

// IsExpectedAbort reports whether err is one of the anticipated
// business-rule rollbacks rather than a system error.
func IsExpectedAbort(err error) bool {
	if err == nil {
		return false
	}
	for _, abort := range expectedAborts {
		if abort.Equal(err) {
			return true
		}
	}
	return false
}
