// Package metrics computes derived statistics over a snapshot of
// products fetched from the store. Everything here is a pure function of
// its inputs: no persistence, no I/O.
package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/magazyn-io/magazyn/internal/models"
)

// DefaultThreshold is the low-stock threshold applied when the caller
// does not supply one.
const DefaultThreshold = 5

// UnknownCategory is reported when a product references a category id
// absent from the name map, guarding against stale references.
const UnknownCategory = "Unknown"

// Status classifies a product's stock level against a threshold.
type Status int

const (
	StatusOutOfStock Status = iota
	StatusLow
	StatusAvailable
)

func (s Status) String() string {
	switch s {
	case StatusOutOfStock:
		return "out_of_stock"
	case StatusLow:
		return "low"
	default:
		return "available"
	}
}

// Summary holds the aggregate view shown on the dashboard.
type Summary struct {
	TotalProducts int             `json:"total_products"`
	TotalUnits    int             `json:"total_units"`
	TotalValue    decimal.Decimal `json:"total_value"`
	LowStockCount int             `json:"low_stock_count"`
}

// InventoryValue sums quantity times price over the snapshot.
func InventoryValue(products []models.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total
}

// LowStock returns the products with quantity at or below threshold,
// preserving the snapshot order.
func LowStock(products []models.Product, threshold int) []models.Product {
	var low []models.Product
	for _, p := range products {
		if p.Quantity <= threshold {
			low = append(low, p)
		}
	}
	return low
}

// StatusOf classifies a single product. Quantity zero is out of stock for
// every threshold; at or below the threshold is low; anything else is
// available.
func StatusOf(p models.Product, threshold int) Status {
	switch {
	case p.Quantity == 0:
		return StatusOutOfStock
	case p.Quantity <= threshold:
		return StatusLow
	default:
		return StatusAvailable
	}
}

// Summarize computes the dashboard aggregates for a snapshot.
func Summarize(products []models.Product, threshold int) Summary {
	s := Summary{
		TotalProducts: len(products),
		TotalValue:    InventoryValue(products),
	}
	for _, p := range products {
		s.TotalUnits += p.Quantity
		if p.Quantity <= threshold {
			s.LowStockCount++
		}
	}
	return s
}

// CategoryNameMap builds an id-keyed name map from a category snapshot.
// Ids are unique, so duplicate category names cannot collide here.
func CategoryNameMap(categories []models.Category) map[int]string {
	names := make(map[int]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}

// CategoryNameFor resolves the display name of a product's category,
// falling back to UnknownCategory when the reference is stale.
func CategoryNameFor(p models.Product, names map[int]string) string {
	if name, ok := names[p.CategoryID]; ok {
		return name
	}
	return UnknownCategory
}
