package handlers

import "github.com/shopspring/decimal"

type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type ProductRequest struct {
	Name       string          `json:"name"`
	CategoryID int             `json:"category_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

type ProductResponse struct {
	Id         int             `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	CategoryID int             `json:"category_id"`
	Status     string          `json:"status"`
}

type QuantityUpdateRequest struct {
	Quantity int `json:"quantity"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type DashboardResponse struct {
	TotalProducts int               `json:"total_products"`
	TotalUnits    int               `json:"total_units"`
	TotalValue    decimal.Decimal   `json:"total_value"`
	LowStockCount int               `json:"low_stock_count"`
	Threshold     int               `json:"threshold"`
	LowStock      []ProductResponse `json:"low_stock"`
}

type AlertResult struct {
	Message   string `json:"message"`
	ItemCount int    `json:"item_count"`
}

type ExportedProduct struct {
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
