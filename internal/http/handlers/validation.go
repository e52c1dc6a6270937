package handlers

import (
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateCategory(c CategoryRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	return errs
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.CategoryID <= 0 {
		errs = append(errs, ValidationError{Field: "CategoryID", Description: "Category is required"})
	}
	if p.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if p.Price.IsNegative() {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	return errs
}

func validateQuantity(q int) []ValidationError {
	errs := []ValidationError{}
	if q < 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	return errs
}
