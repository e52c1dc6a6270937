package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	models "github.com/magazyn-io/magazyn/internal/models"
	repo "github.com/magazyn-io/magazyn/internal/repo"
)

// GetCategoriesHandler godoc
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {array} CategoryResponse
// @Failure 500 {string} string "Internal error"
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := categoryRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch categories", http.StatusInternalServerError)
		return
	}

	response := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		response[i] = CategoryResponse{
			Id:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// CreateCategoryHandler godoc
// @Summary Create a new category
// @Description Adds a category; description is optional
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body CategoryRequest true "Category to add"
// @Success 201 {object} CategoryResponse
// @Failure 400 {array} ValidationError
// @Router /categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateCategory(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	created, err := categoryRepo.Create(models.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		http.Error(w, "could not create category", http.StatusInternalServerError)
		return
	}

	resp := CategoryResponse{
		Id:          created.ID,
		Name:        created.Name,
		Description: created.Description,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// DeleteCategoryHandler godoc
// @Summary Delete a category
// @Description Fails while any product still references the category
// @Tags categories
// @Param id path int true "Category ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Category still referenced"
// @Failure 500 {string} string "Internal error"
// @Router /categories/{id} [delete]
// @Security BearerAuth
func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid category ID", http.StatusBadRequest)
		return
	}

	if err := categoryRepo.Delete(id); err != nil {
		switch {
		case errors.Is(err, repo.ErrCategoryInUse):
			http.Error(w, "cannot delete category: products are still assigned to it, delete or reassign them first", http.StatusConflict)
		case errors.Is(err, repo.ErrCategoryNotFound):
			http.Error(w, "category not found", http.StatusNotFound)
		default:
			http.Error(w, "could not delete category", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
