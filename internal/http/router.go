package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/magazyn-io/magazyn/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)

	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/search", handlers.SearchProductsHandler)
	r.Get("/products/export", handlers.ExportProductsHandler)
	r.Get("/products/low-stock", handlers.GetLowStockHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/metrics/dashboard", handlers.GetDashboardMetricsHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Post("/categories", handlers.CreateCategoryHandler)
		r.Delete("/categories/{id}", handlers.DeleteCategoryHandler)
		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}/quantity", handlers.UpdateProductQuantityHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Post("/alerts/low-stock", handlers.SendLowStockAlertHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
