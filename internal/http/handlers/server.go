package handlers

import (
	"github.com/magazyn-io/magazyn/internal/metrics"
	"github.com/magazyn-io/magazyn/internal/models"
	repo "github.com/magazyn-io/magazyn/internal/repo"
)

// AlertSender dispatches a low-stock notification. Implemented by
// alert.Mailer; handler tests substitute a stub.
type AlertSender interface {
	SendLowStock(items []models.Product) error
}

var (
	categoryRepo repo.CategoryRepository
	productRepo  repo.ProductRepository
	userRepo     repo.UserRepository

	alertSender AlertSender

	defaultThreshold = metrics.DefaultThreshold
)

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetAlertSender(a AlertSender) {
	alertSender = a
}

func SetDefaultThreshold(t int) {
	if t >= 0 {
		defaultThreshold = t
	}
}
