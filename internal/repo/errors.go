package repo

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrCategoryNotFound is returned when a category id is unknown.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryInUse is returned when a category cannot be deleted
	// because products still reference it.
	ErrCategoryInUse = errors.New("category has products assigned to it")

	// ErrCategoryMissing is returned when a product references a
	// category id that does not exist.
	ErrCategoryMissing = errors.New("referenced category does not exist")

	// ErrProductNotFound is returned when a product id is unknown.
	ErrProductNotFound = errors.New("product not found")

	ErrUserNotFound          = errors.New("user not found")
	ErrDuplicatedValueUnique = errors.New("duplicated value in unique column")
)

// Postgres error codes for constraint violations.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
