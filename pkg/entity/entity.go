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

// Package entity defines the benchmark row types and the deterministic
// factory that populates them. Values() methods emit fields in the column
// order declared by the schema package.
package entity

import (
	"math/rand"
	"time"

	"github.com/Adri029/geo-c/pkg/config"
	"github.com/Adri029/geo-c/pkg/randgen"
)

// FirstUnprocessedOrderID splits each district's initial orders: ids below
// it are delivered (carrier assigned, lines delivered), ids at or above it
// remain pending and get new_order rows.
const FirstUnprocessedOrderID = 2101

// Item is a catalog entry.
type Item struct {
	ID      int
	Name    string
	Price   float64
	Data    string
	ImageID int
}

func (i *Item) Values() []any {
	return []any{i.ID, i.Name, i.Price, i.Data, i.ImageID}
}

// Warehouse is a regional site holding ten districts.
type Warehouse struct {
	ID      int
	YTD     float64
	Tax     float64
	Name    string
	Street1 string
	Street2 string
	City    string
	State   string
	Zip     string
}

func (w *Warehouse) Values() []any {
	return []any{
		w.ID, w.YTD, w.Tax, w.Name,
		w.Street1, w.Street2, w.City, w.State, w.Zip,
	}
}

// Stock tracks one item's inventory at one warehouse.
type Stock struct {
	WarehouseID int
	ItemID      int
	Quantity    int
	YTD         float64
	OrderCnt    int
	RemoteCnt   int
	Data        string
	Dists       [10]string
}

func (s *Stock) Values() []any {
	vals := make([]any, 0, 17)
	vals = append(vals, s.WarehouseID, s.ItemID, s.Quantity, s.YTD,
		s.OrderCnt, s.RemoteCnt, s.Data)
	for _, d := range s.Dists {
		vals = append(vals, d)
	}
	return vals
}

// District is the unit of order-id allocation inside a warehouse.
type District struct {
	WarehouseID int
	ID          int
	YTD         float64
	Tax         float64
	NextOrderID int
	Name        string
	Street1     string
	Street2     string
	City        string
	State       string
	Zip         string
}

func (d *District) Values() []any {
	return []any{
		d.WarehouseID, d.ID, d.YTD, d.Tax, d.NextOrderID, d.Name,
		d.Street1, d.Street2, d.City, d.State, d.Zip,
	}
}

// Customer belongs to one district and owns a shopping cart.
type Customer struct {
	WarehouseID  int
	DistrictID   int
	ID           int
	Discount     float64
	Credit       string
	Last         string
	First        string
	CreditLim    float64
	Balance      float64
	YTDPayment   float64
	PaymentCnt   int
	DeliveryCnt  int
	Street1      string
	Street2      string
	City         string
	State        string
	Zip          string
	Phone        string
	Since        time.Time
	Middle       string
	Data         string
	SupervisorID *int
}

func (c *Customer) Values() []any {
	var sup any
	if c.SupervisorID != nil {
		sup = *c.SupervisorID
	}
	return []any{
		c.WarehouseID, c.DistrictID, c.ID, c.Discount, c.Credit, c.Last,
		c.First, c.CreditLim, c.Balance, c.YTDPayment,
		c.PaymentCnt, c.DeliveryCnt, c.Street1, c.Street2,
		c.City, c.State, c.Zip, c.Phone, c.Since, c.Middle,
		c.Data, sup,
	}
}

// Individual is one of the natural persons behind a corporate customer.
// The individual with id 1 acts as the customer's supervisor.
type Individual struct {
	ID          int
	Name        string
	CustomerID  int
	DistrictID  int
	WarehouseID int
}

func (i *Individual) Values() []any {
	return []any{i.ID, i.Name, i.CustomerID, i.DistrictID, i.WarehouseID}
}

// History records one payment event.
type History struct {
	CustomerID     int
	CustomerDistID int
	CustomerWhseID int
	DistrictID     int
	WarehouseID    int
	Date           time.Time
	Amount         float64
	Data           string
}

func (h *History) Values() []any {
	return []any{
		h.CustomerID, h.CustomerDistID, h.CustomerWhseID,
		h.DistrictID, h.WarehouseID, h.Date, h.Amount, h.Data,
	}
}

// Order is a placed order header.
type Order struct {
	WarehouseID int
	DistrictID  int
	ID          int
	CustomerID  int
	CarrierID   *int
	LineCount   int
	AllLocal    int
	EntryDate   time.Time
}

func (o *Order) Values() []any {
	var carrier any
	if o.CarrierID != nil {
		carrier = *o.CarrierID
	}
	return []any{
		o.WarehouseID, o.DistrictID, o.ID, o.CustomerID, carrier,
		o.LineCount, o.AllLocal, o.EntryDate,
	}
}

// NewOrder marks an order as not yet delivered.
type NewOrder struct {
	WarehouseID int
	DistrictID  int
	OrderID     int
}

func (n *NewOrder) Values() []any {
	return []any{n.WarehouseID, n.DistrictID, n.OrderID}
}

// OrderLine is one item position of an order.
type OrderLine struct {
	WarehouseID int
	DistrictID  int
	OrderID     int
	Number      int
	ItemID      int
	DeliveryD   *time.Time
	Amount      float64
	SupplyWhse  int
	Quantity    int
	DistInfo    string
}

func (ol *OrderLine) Values() []any {
	var delivery any
	if ol.DeliveryD != nil {
		delivery = *ol.DeliveryD
	}
	return []any{
		ol.WarehouseID, ol.DistrictID, ol.OrderID, ol.Number, ol.ItemID,
		delivery, ol.Amount, ol.SupplyWhse, ol.Quantity, ol.DistInfo,
	}
}

// ShoppingCartLine is a pending purchase a customer has staged but not
// yet had approved.
type ShoppingCartLine struct {
	CustomerID  int
	DistrictID  int
	WarehouseID int
	ItemID      int
	SupplyWhse  int
	DeliveryD   *time.Time
	Quantity    int
	Amount      float64
	DistInfo    string
	Number      int
}

func (l *ShoppingCartLine) Values() []any {
	var delivery any
	if l.DeliveryD != nil {
		delivery = *l.DeliveryD
	}
	return []any{
		l.CustomerID, l.DistrictID, l.WarehouseID, l.ItemID, l.SupplyWhse,
		delivery, l.Quantity, l.Amount, l.DistInfo, l.Number,
	}
}

// Factory populates rows with the benchmark's generation recipes. Methods
// draw from the caller's rng so that a fixed seed reproduces a dataset.
type Factory struct {
	Scale config.Scale
}

// StockedBy reports whether the given warehouse carries the item.
// Low-numbered items are exclusive to a single warehouse; the rest are
// stocked everywhere.
func (f Factory) StockedBy(itemID, warehouseID int) bool {
	if itemID > f.Scale.WarehouseSpecificItems {
		return true
	}
	return f.EligibleWarehouse(itemID) == warehouseID
}

// EligibleWarehouse returns the only warehouse stocking a
// warehouse-specific item. For general items every warehouse qualifies and
// the result is just one of them.
func (f Factory) EligibleWarehouse(itemID int) int {
	return itemID%f.Scale.WarehouseCount() + 1
}

// dataString returns a string of length [26, 50]; roughly one in ten has
// the literal "ORIGINAL" overlaid at a random interior offset.
func dataString(r *rand.Rand) string {
	pct := randgen.Number(r, 1, 100)
	n := randgen.Number(r, 26, 50)
	if pct > 10 {
		return randgen.AString(r, n)
	}
	start := randgen.Number(r, 2, n-8)
	return randgen.AString(r, start-1) + "ORIGINAL" + randgen.AString(r, n-start-7)
}

func (f Factory) Item(r *rand.Rand, id int) *Item {
	return &Item{
		ID:      id,
		Name:    randgen.AString(r, randgen.Number(r, 14, 24)),
		Price:   float64(randgen.Number(r, 100, 10000)) / 100.0,
		Data:    dataString(r),
		ImageID: randgen.Number(r, 1, 10000),
	}
}

func (f Factory) Warehouse(r *rand.Rand, id int) *Warehouse {
	return &Warehouse{
		ID:      id,
		YTD:     300000,
		Tax:     float64(randgen.Number(r, 0, 2000)) / 10000.0,
		Name:    randgen.AString(r, randgen.Number(r, 6, 10)),
		Street1: randgen.AString(r, randgen.Number(r, 10, 20)),
		Street2: randgen.AString(r, randgen.Number(r, 10, 20)),
		City:    randgen.AString(r, randgen.Number(r, 10, 20)),
		State:   randgen.UpperAString(r, 3),
		Zip:     "123456789",
	}
}

func (f Factory) Stock(r *rand.Rand, warehouseID, itemID int) *Stock {
	s := &Stock{
		WarehouseID: warehouseID,
		ItemID:      itemID,
		Quantity:    randgen.Number(r, 10, 100),
		Data:        dataString(r),
	}
	for i := range s.Dists {
		s.Dists[i] = randgen.AString(r, 24)
	}
	return s
}

func (f Factory) District(r *rand.Rand, warehouseID, id int) *District {
	return &District{
		WarehouseID: warehouseID,
		ID:          id,
		YTD:         30000,
		Tax:         float64(randgen.Number(r, 0, 2000)) / 10000.0,
		NextOrderID: f.Scale.CustomersPerDistrict + 1,
		Name:        randgen.AString(r, randgen.Number(r, 6, 10)),
		Street1:     randgen.AString(r, randgen.Number(r, 10, 20)),
		Street2:     randgen.AString(r, randgen.Number(r, 10, 20)),
		City:        randgen.AString(r, randgen.Number(r, 10, 20)),
		State:       randgen.UpperAString(r, 3),
		Zip:         "123456789",
	}
}

func (f Factory) Customer(r *rand.Rand, warehouseID, districtID, id int) *Customer {
	c := &Customer{
		WarehouseID: warehouseID,
		DistrictID:  districtID,
		ID:          id,
		Discount:    float64(randgen.Number(r, 1, 5000)) / 10000.0,
		Credit:      "GC",
		First:       randgen.AString(r, randgen.Number(r, 8, 16)),
		CreditLim:   50000,
		Balance:     -10,
		YTDPayment:  10,
		PaymentCnt:  1,
		Street1:     randgen.AString(r, randgen.Number(r, 10, 20)),
		Street2:     randgen.AString(r, randgen.Number(r, 10, 20)),
		City:        randgen.AString(r, randgen.Number(r, 10, 20)),
		State:       randgen.UpperAString(r, 3),
		Zip:         randgen.NString(r, 4) + "11111",
		Phone:       randgen.NString(r, 16),
		Since:       time.Now(),
		Middle:      "OE",
		Data:        randgen.AString(r, randgen.Number(r, 300, 500)),
	}
	if randgen.Number(r, 1, 100) <= 10 {
		c.Credit = "BC"
	}
	// The first thousand customers cover every syllable combination; the
	// rest draw skewed.
	if id <= 1000 {
		c.Last = randgen.LastName(id - 1)
	} else {
		c.Last = randgen.LoadLastName(r)
	}
	return c
}

func (f Factory) Individual(r *rand.Rand, warehouseID, districtID, customerID, id int) *Individual {
	return &Individual{
		ID:          id,
		Name:        randgen.AString(r, randgen.Number(r, 16, 32)),
		CustomerID:  customerID,
		DistrictID:  districtID,
		WarehouseID: warehouseID,
	}
}

func (f Factory) History(r *rand.Rand, warehouseID, districtID, customerID int) *History {
	return &History{
		CustomerID:     customerID,
		CustomerDistID: districtID,
		CustomerWhseID: warehouseID,
		DistrictID:     districtID,
		WarehouseID:    warehouseID,
		Date:           time.Now(),
		Amount:         10,
		Data:           randgen.AString(r, randgen.Number(r, 10, 24)),
	}
}

// Order builds an initial order header. Orders below
// FirstUnprocessedOrderID have already been delivered and carry a carrier
// id.
func (f Factory) Order(r *rand.Rand, warehouseID, districtID, orderID, customerID int) *Order {
	o := &Order{
		WarehouseID: warehouseID,
		DistrictID:  districtID,
		ID:          orderID,
		CustomerID:  customerID,
		LineCount:   randgen.OrderLineCount(warehouseID, districtID, orderID),
		AllLocal:    1,
		EntryDate:   time.Now(),
	}
	if orderID < FirstUnprocessedOrderID {
		carrier := randgen.Number(r, 1, 10)
		o.CarrierID = &carrier
	}
	return o
}

// OrderLine builds one line of an initial order. Item ids are redrawn
// until the line references an item this warehouse actually stocks.
func (f Factory) OrderLine(r *rand.Rand, warehouseID, districtID, orderID, number int) *OrderLine {
	itemID := randgen.Number(r, 1, f.Scale.Items)
	for !f.StockedBy(itemID, warehouseID) {
		itemID = randgen.Number(r, 1, f.Scale.Items)
	}

	ol := &OrderLine{
		WarehouseID: warehouseID,
		DistrictID:  districtID,
		OrderID:     orderID,
		Number:      number,
		ItemID:      itemID,
		SupplyWhse:  warehouseID,
		Quantity:    5,
		DistInfo:    randgen.AString(r, 24),
	}
	if orderID < FirstUnprocessedOrderID {
		now := time.Now()
		ol.DeliveryD = &now
	} else {
		ol.Amount = float64(randgen.Number(r, 1, 999999)) / 100.0
	}
	return ol
}
