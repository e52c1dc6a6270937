package repo

import "github.com/magazyn-io/magazyn/internal/models"

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	UpdateQuantity(id int, quantity int) (models.Product, error)
	Delete(id int) error
	Search(name string) ([]models.Product, error)
}
