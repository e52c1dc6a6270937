package repo

import (
	"github.com/magazyn-io/magazyn/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of CategoryRepository.
type InMemoryCategoryRepository struct {
	categories []models.Category
	nextID     int
	products   ProductRepository
}

// NewInMemoryCategoryRepository creates a new instance of InMemoryCategoryRepository.
func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{
		categories: []models.Category{},
		nextID:     1,
	}
}

// SetProductRepository attaches the product repository used to enforce
// referential integrity on Delete, mirroring the foreign key the store
// applies in the Postgres implementation.
func (r *InMemoryCategoryRepository) SetProductRepository(products ProductRepository) {
	r.products = products
}

// Create adds a new category to the repository.
func (r *InMemoryCategoryRepository) Create(category models.Category) (models.Category, error) {
	category.ID = r.nextID
	r.nextID++
	r.categories = append(r.categories, category)
	return category, nil
}

// GetAll retrieves all categories from the repository.
func (r *InMemoryCategoryRepository) GetAll() ([]models.Category, error) {
	return r.categories, nil
}

// GetByID retrieves a category by its ID.
func (r *InMemoryCategoryRepository) GetByID(id int) (models.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

// Delete removes a category, refusing while any product references it.
func (r *InMemoryCategoryRepository) Delete(id int) error {
	if r.products != nil {
		products, err := r.products.GetAll()
		if err != nil {
			return err
		}
		for _, p := range products {
			if p.CategoryID == id {
				return ErrCategoryInUse
			}
		}
	}

	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Clear() {
	r.categories = []models.Category{}
	r.nextID = 1
}
