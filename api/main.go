package main

import (
	"log"
	"net/http"

	_ "github.com/magazyn-io/magazyn/docs"
	"github.com/magazyn-io/magazyn/internal/alert"
	"github.com/magazyn-io/magazyn/internal/auth"
	"github.com/magazyn-io/magazyn/internal/config"
	"github.com/magazyn-io/magazyn/internal/db"
	api "github.com/magazyn-io/magazyn/internal/http"
	"github.com/magazyn-io/magazyn/internal/http/handlers"
	rl "github.com/magazyn-io/magazyn/internal/http/rate_limiter"
	"github.com/magazyn-io/magazyn/internal/repo"
)

// @title Magazyn API
// @version 1.0
// @description REST API for the magazyn inventory dashboard: categories, products, derived stock metrics and low-stock alerting.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	handlers.SetCategoryRepo(repo.NewPostgresCategoryRepository(database))
	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))
	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetDefaultThreshold(cfg.LowStockThreshold)
	handlers.SetAlertSender(alert.NewMailer(alert.Config{
		Server:   cfg.SMTPServer,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.AlertFrom,
		To:       cfg.AlertTo,
	}))

	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	log.Printf("✅ Server running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, api.RateLimit(r)); err != nil {
		log.Fatal(err)
	}
}
