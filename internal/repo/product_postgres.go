package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	models "github.com/magazyn-io/magazyn/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	query := `INSERT INTO produkty (nazwa, liczba, cena, kategoria_id) VALUES ($1, $2, $3, $4) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Quantity, p.Price, p.CategoryID).Scan(&p.ID)
	if isForeignKeyViolation(err) {
		return models.Product{}, ErrCategoryMissing
	}
	return p, err
}

func (r *PostgresProductRepository) GetAll() ([]models.Product, error) {
	query := `SELECT id, nazwa, liczba, cena, kategoria_id FROM produkty ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *PostgresProductRepository) GetByID(id int) (models.Product, error) {
	query := `SELECT id, nazwa, liczba, cena, kategoria_id FROM produkty WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Quantity, &p.Price, &p.CategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) UpdateQuantity(id int, quantity int) (models.Product, error) {
	query := `
		UPDATE produkty
		SET liczba = $1
		WHERE id = $2
		RETURNING id, nazwa, liczba, cena, kategoria_id
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, quantity, id).
		Scan(&p.ID, &p.Name, &p.Quantity, &p.Price, &p.CategoryID)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Delete(id int) error {
	query := `DELETE FROM produkty WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Search(name string) ([]models.Product, error) {
	query := `SELECT id, nazwa, liczba, cena, kategoria_id FROM produkty WHERE nazwa ILIKE $1 ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, "%"+name+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]models.Product, error) {
	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.Price, &p.CategoryID); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
