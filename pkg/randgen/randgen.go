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

// Package randgen holds the deterministic pseudo-random generators behind
// dataset generation and terminal input: uniform draws, fixed-length
// strings, and the TPC-C style non-uniform (NURand) distributions. Every
// function takes the caller's *rand.Rand so reproducibility is controlled
// by whoever seeds it.
package randgen

import (
	"encoding/binary"
	"math/rand"
	"strings"

	"github.com/twmb/murmur3"
)

// NameTokens are the syllables composed into skewed customer last names.
// Three tokens per name give 1000 distinct combinations.
var NameTokens = [...]string{
	"BAR", "OUGHT", "ABLE", "PRI", "PRES",
	"ESE", "ANTI", "CALLY", "ATION", "EING",
}

// NURand A-constants and the fixed C runs. The load and run constants for
// last names differ so that load-time and transaction-time lookups draw
// from two related but distinct skews.
const (
	aLastName   = 255
	aCustomerID = 1023
	aItemID     = 8191

	cLastNameLoad = 157
	cLastNameRun  = 223
	cCustomerID   = 259
	cItemID       = 7911
)

const alphanumerics = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Number returns a uniform integer in [lo, hi] inclusive.
// lo > hi is a programming error, not a runtime fault.
func Number(r *rand.Rand, lo, hi int) int {
	if lo > hi {
		panic("randgen: lo > hi")
	}
	return lo + r.Intn(hi-lo+1)
}

// AString returns a random alphanumeric string of exactly n characters.
func AString(r *rand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphanumerics[r.Intn(len(alphanumerics))]
	}
	return string(buf)
}

// UpperAString is AString folded to upper case, for state codes.
func UpperAString(r *rand.Rand, n int) string {
	return strings.ToUpper(AString(r, n))
}

// NString returns a random digit-only string of exactly n characters.
func NString(r *rand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte('0' + r.Intn(10))
	}
	return string(buf)
}

// NURand is the TPC-C non-uniform random distribution over [lo, hi].
func NURand(r *rand.Rand, a, c, lo, hi int) int {
	return (((Number(r, 0, a) | Number(r, lo, hi)) + c) % (hi - lo + 1)) + lo
}

// LastName builds the deterministic token-combination last name for a
// number in [0, 999].
func LastName(num int) string {
	return NameTokens[num/100] + NameTokens[(num/10)%10] + NameTokens[num%10]
}

// LoadLastName draws a skewed last name with the load-time C constant. Used
// for customers beyond the first 1000 in a district.
func LoadLastName(r *rand.Rand) string {
	return LastName(NURand(r, aLastName, cLastNameLoad, 0, 999))
}

// RunLastName draws a skewed last name with the run-time C constant. Used
// for name-based lookups issued by terminals.
func RunLastName(r *rand.Rand) string {
	return LastName(NURand(r, aLastName, cLastNameRun, 0, 999))
}

// CustomerID draws a skewed customer id in [1, customersPerDistrict].
func CustomerID(r *rand.Rand, customersPerDistrict int) int {
	return NURand(r, aCustomerID, cCustomerID, 1, customersPerDistrict)
}

// ItemID draws a skewed item id in [1, itemCount].
func ItemID(r *rand.Rand, itemCount int) int {
	return NURand(r, aItemID, cItemID, 1, itemCount)
}

// Permutation returns a random bijection over [1, n].
func Permutation(r *rand.Rand, n int) []int {
	ids := make([]int, n)
	for i, v := range r.Perm(n) {
		ids[i] = v + 1
	}
	return ids
}

// OrderLineCount derives the number of lines on an order from the
// (warehouse, district, order) triple alone. The mixing hash makes the
// count reproducible across independent runs and processes, so the loader
// and any later recomputation always agree.
func OrderLineCount(warehouseID, districtID, orderID int) int {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(warehouseID))
	binary.LittleEndian.PutUint64(buf[8:], uint64(districtID))
	binary.LittleEndian.PutUint64(buf[16:], uint64(orderID))
	seed := murmur3.Sum64(buf[:])
	r := rand.New(rand.NewSource(int64(seed)))
	return Number(r, 5, 15)
}
