package directory

import (
	"sort"

	"github.com/shopspring/decimal"

	"phonemechanic-system/internal/pos"
)

// Directory is an injected read-only repository of known customers. Order
// entry only ever copies fields out of it; records here are never mutated.
type Directory struct {
	customers []pos.Customer
}

func NewDirectory(customers []pos.Customer) *Directory {
	owned := make([]pos.Customer, len(customers))
	copy(owned, customers)
	return &Directory{customers: owned}
}

func (d *Directory) All() []pos.Customer {
	customers := make([]pos.Customer, len(d.customers))
	copy(customers, d.customers)
	return customers
}

// DefaultDirectory returns the shop's known-customer records.
func DefaultDirectory() *Directory {
	return NewDirectory([]pos.Customer{
		{ID: "C001", Name: "Alice Tan", Phone: "012-3456789", Email: "alice.t@example.com", IsMember: true, DeviceModel: "iPhone 13 Pro", TotalSpent: decimal.NewFromInt(450), VisitCount: 3},
		{ID: "C002", Name: "Bob Smith", Phone: "019-8765432", Email: "bob.smith@test.com", IsMember: false, DeviceModel: "Samsung S24", TotalSpent: decimal.NewFromInt(50), VisitCount: 1},
		{ID: "C003", Name: "Charlie Doe", Phone: "017-1122334", Email: "charlie@gmail.com", IsMember: true, DeviceModel: "iPad Air 4", TotalSpent: decimal.NewFromInt(120), VisitCount: 2},
		{ID: "C004", Name: "David Lee", Phone: "016-5556666", Email: "david.l@outlook.com", IsMember: true, DeviceModel: "Pixel 8", TotalSpent: decimal.NewFromInt(200), VisitCount: 4},
		{ID: "C005", Name: "Eve Wong", Phone: "012-9988776", Email: "eve.w@example.com", IsMember: false, DeviceModel: "MacBook Air", TotalSpent: decimal.Zero, VisitCount: 0},
	})
}

var suggestedModels = []string{
	"iPhone 15 Pro Max", "iPhone 15 Pro", "iPhone 15", "iPhone 15 Plus",
	"iPhone 14 Pro Max", "iPhone 14 Pro", "iPhone 14",
	"iPhone 13 Pro Max", "iPhone 13 Pro", "iPhone 13", "iPhone 13 mini",
	"iPhone 12 Pro Max", "iPhone 12", "iPhone 11", "iPhone XR", "iPhone X",
	"Samsung S24 Ultra", "Samsung S24+", "Samsung S24",
	"Samsung S23 Ultra", "Samsung S23",
	"Pixel 8 Pro", "Pixel 8",
	"iPad Pro 12.9", "iPad Air 5", "iPad mini 6", "iPad 10th Gen",
}

// SuggestedModels merges the common device-model list with the models seen
// in the directory, deduplicated and sorted, for device-intake autocomplete.
func SuggestedModels(d *Directory) []string {
	seen := map[string]bool{}
	var models []string
	for _, m := range suggestedModels {
		if !seen[m] {
			seen[m] = true
			models = append(models, m)
		}
	}
	for _, c := range d.All() {
		if c.DeviceModel != "" && !seen[c.DeviceModel] {
			seen[c.DeviceModel] = true
			models = append(models, c.DeviceModel)
		}
	}
	sort.Strings(models)
	return models
}
