package repo

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/magazyn-io/magazyn/internal/models"
)

func TestProductCreateRequiresExistingCategory(t *testing.T) {
	_, products := newLinkedRepos()

	_, err := products.Create(models.Product{Name: "Apple", Quantity: 3, CategoryID: 99})
	if !errors.Is(err, ErrCategoryMissing) {
		t.Fatalf("expected ErrCategoryMissing, got %v", err)
	}

	all, _ := products.GetAll()
	if len(all) != 0 {
		t.Errorf("expected no products stored after failed create, got %d", len(all))
	}
}

func TestProductCreateAssignsSequentialIDs(t *testing.T) {
	categories, products := newLinkedRepos()
	cat, _ := categories.Create(models.Category{Name: "Fruits"})

	first, err := products.Create(models.Product{Name: "Apple", Quantity: 3, Price: decimal.NewFromFloat(2.5), CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := products.Create(models.Product{Name: "Pear", Quantity: 7, CategoryID: cat.ID})

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestProductUpdateQuantity(t *testing.T) {
	categories, products := newLinkedRepos()
	cat, _ := categories.Create(models.Category{Name: "Fruits"})
	created, _ := products.Create(models.Product{Name: "Apple", Quantity: 3, CategoryID: cat.ID})

	updated, err := products.UpdateQuantity(created.ID, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 12 {
		t.Errorf("expected quantity 12, got %d", updated.Quantity)
	}

	stored, _ := products.GetByID(created.ID)
	if stored.Quantity != 12 {
		t.Errorf("expected stored quantity 12, got %d", stored.Quantity)
	}
}

func TestProductUpdateQuantityNotFound(t *testing.T) {
	_, products := newLinkedRepos()

	if _, err := products.UpdateQuantity(42, 5); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductDeleteNotFound(t *testing.T) {
	_, products := newLinkedRepos()

	if err := products.Delete(42); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductSearch(t *testing.T) {
	categories, products := newLinkedRepos()
	cat, _ := categories.Create(models.Category{Name: "Groceries"})

	products.Create(models.Product{Name: "Green Apple", Quantity: 3, CategoryID: cat.ID})
	products.Create(models.Product{Name: "Pineapple", Quantity: 5, CategoryID: cat.ID})
	products.Create(models.Product{Name: "Flour", Quantity: 9, CategoryID: cat.ID})

	matched, err := products.Search("apple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matched))
	}
	if matched[0].Name != "Green Apple" || matched[1].Name != "Pineapple" {
		t.Errorf("unexpected matches: %v, %v", matched[0].Name, matched[1].Name)
	}

	empty, _ := products.Search("zzz")
	if len(empty) != 0 {
		t.Errorf("expected no matches, got %d", len(empty))
	}
}
