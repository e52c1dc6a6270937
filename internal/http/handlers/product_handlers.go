package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/magazyn-io/magazyn/internal/metrics"
	models "github.com/magazyn-io/magazyn/internal/models"
	repo "github.com/magazyn-io/magazyn/internal/repo"
)

func toProductResponse(p models.Product, threshold int) ProductResponse {
	return ProductResponse{
		Id:         p.ID,
		Name:       p.Name,
		Quantity:   p.Quantity,
		Price:      p.Price,
		CategoryID: p.CategoryID,
		Status:     metrics.StatusOf(p, threshold).String(),
	}
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the warehouse; the category must already exist
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ValidationError
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) == 0 {
		// The referenced category must exist before any insert is issued.
		if _, err := categoryRepo.GetByID(req.CategoryID); err != nil {
			if errors.Is(err, repo.ErrCategoryNotFound) {
				validationErrors = append(validationErrors, ValidationError{
					Field:       "CategoryID",
					Description: "Category does not exist",
				})
			} else {
				http.Error(w, "could not verify category", http.StatusInternalServerError)
				return
			}
		}
	}
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	product := models.Product{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	}
	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrCategoryMissing) {
			// The category disappeared between the check and the insert;
			// the store's foreign key caught it.
			http.Error(w, "could not create product: category does not exist", http.StatusConflict)
			return
		}
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toProductResponse(created, defaultThreshold))
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Param threshold query int false "Low-stock threshold for status classification"
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	threshold, ok := thresholdFromQuery(r)
	if !ok {
		http.Error(w, "threshold must be a non-negative integer", http.StatusBadRequest)
		return
	}

	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p, threshold)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(product, defaultThreshold))
}

// UpdateProductQuantityHandler godoc
// @Summary Update a product's quantity
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param quantity body QuantityUpdateRequest true "New quantity"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id}/quantity [put]
// @Security BearerAuth
func UpdateProductQuantityHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req QuantityUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateQuantity(req.Quantity)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	updated, err := productRepo.UpdateQuantity(id, req.Quantity)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update quantity", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toProductResponse(updated, defaultThreshold))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Deleting an unknown id reports 404, it is not treated as success
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/{id} [delete]
// @Security BearerAuth
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SearchProductsHandler godoc
// @Summary Search products by name substring
// @Tags products
// @Produce json
// @Param name query string true "Substring to match, case-insensitive"
// @Success 200 {object} ProductsSearchResult
// @Failure 500 {string} string "Internal error"
// @Router /products/search [get]
func SearchProductsHandler(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")

	products, err := productRepo.Search(name)
	if err != nil {
		http.Error(w, "could not search products", http.StatusInternalServerError)
		return
	}

	resp := ProductsSearchResult{
		Data: make([]ProductResponse, len(products)),
		Meta: Meta{TotalCount: len(products)},
	}
	for i, p := range products {
		resp.Data[i] = toProductResponse(p, defaultThreshold)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
