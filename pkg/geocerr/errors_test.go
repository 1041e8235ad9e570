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

package geocerr

import (
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
)

func TestIsExpectedAbort(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		err      error
		expected bool
	}{
		{nil, false},
		{ErrInvalidItem.GenWithStackByArgs(-12345), true},
		{ErrEmptyCart.GenWithStackByArgs(1, 1, 1), true},
		{ErrNotAuthorized.GenWithStackByArgs(7, 1), true},
		{ErrInsufficientStock.GenWithStackByArgs(5, 1, 2, 10), true},
		{ErrNothingToRestock.GenWithStackByArgs(1, 20), true},
		{ErrWarehouseNotFound.GenWithStackByArgs(1), false},
		{ErrDistrictNotFound.GenWithStackByArgs(1, 1), false},
		{ErrCustomerNotFound.GenWithStackByArgs(1, 1, 1), false},
		{ErrStockNotFound.GenWithStackByArgs(5, 1), false},
		{ErrOrderIDNotAdvanced.GenWithStackByArgs(1, 1), false},
		{errors.New("plain error"), false},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, IsExpectedAbort(tc.err))
	}
}

func TestAbortsKeepCausesAfterAnnotate(t *testing.T) {
	t.Parallel()

	err := ErrEmptyCart.GenWithStackByArgs(1, 2, 3)
	wrapped := errors.Annotate(err, "approve cart")
	require.True(t, IsExpectedAbort(wrapped))
}
