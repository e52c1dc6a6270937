package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	models "github.com/magazyn-io/magazyn/internal/models"
)

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(c models.Category) (models.Category, error) {
	query := `INSERT INTO kategorie (nazwa, opis) VALUES ($1, $2) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, c.Name, c.Description).Scan(&c.ID)
	return c, err
}

func (r *PostgresCategoryRepository) GetAll() ([]models.Category, error) {
	query := `SELECT id, nazwa, COALESCE(opis, '') FROM kategorie ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *PostgresCategoryRepository) GetByID(id int) (models.Category, error) {
	query := `SELECT id, nazwa, COALESCE(opis, '') FROM kategorie WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var c models.Category
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrCategoryNotFound
	}
	return c, err
}

// Delete removes a category. The kategorie table is referenced by
// produkty.kategoria_id, so the store rejects the delete while products
// still point at the row; that rejection is surfaced as ErrCategoryInUse.
func (r *PostgresCategoryRepository) Delete(id int) error {
	query := `DELETE FROM kategorie WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrCategoryInUse
		}
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
