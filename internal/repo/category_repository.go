package repo

import "github.com/magazyn-io/magazyn/internal/models"

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	Create(category models.Category) (models.Category, error)
	GetAll() ([]models.Category, error)
	GetByID(id int) (models.Category, error)
	Delete(id int) error
}
