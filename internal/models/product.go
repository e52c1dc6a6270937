package models

import "github.com/shopspring/decimal"

// Product represents a product entity in the warehouse.
type Product struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	CategoryID int             `json:"category_id"`
}
