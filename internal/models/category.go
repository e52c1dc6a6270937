package models

// Category represents a product category in the warehouse.
// Names are not unique; products reference categories by id only.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
