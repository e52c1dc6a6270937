package repo

import (
	"strings"

	"github.com/magazyn-io/magazyn/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products   []models.Product
	nextID     int
	categories CategoryRepository
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// SetCategoryRepository attaches the category repository used to enforce
// the kategoria_id foreign key on Create, as the store does in the
// Postgres implementation.
func (r *InMemoryProductRepository) SetCategoryRepository(categories CategoryRepository) {
	r.categories = categories
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	if r.categories != nil {
		if _, err := r.categories.GetByID(product.CategoryID); err != nil {
			return models.Product{}, ErrCategoryMissing
		}
	}

	product.ID = r.nextID
	r.nextID++
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products from the repository.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	return r.products, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// UpdateQuantity sets the stored quantity of a product.
func (r *InMemoryProductRepository) UpdateQuantity(id int, quantity int) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == id {
			r.products[i].Quantity = quantity
			return r.products[i], nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

// Search returns products whose name contains the given substring,
// case-insensitive, in insertion order.
func (r *InMemoryProductRepository) Search(name string) ([]models.Product, error) {
	var matched []models.Product
	for _, p := range r.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
	r.nextID = 1
}
