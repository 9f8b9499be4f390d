package main

// GET  /products       – List all products
// GET  /cart           – Show cart contents with subtotals and total
// POST /cart/add       – Add a product to the cart
// POST /cart/remove    – Remove quantity of a product from the cart
// GET  /checkout       – Preview the bill
// POST /checkout       – Confirm checkout, clear the cart
// GET  /debug/cart     – Raw cart lines as JSON

import (
	"database/sql"
	_ "embed"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Dawood573189/simple-online-shop/config"
	"github.com/Dawood573189/simple-online-shop/handler"
	"github.com/Dawood573189/simple-online-shop/service"
	"github.com/Dawood573189/simple-online-shop/session"
	"github.com/Dawood573189/simple-online-shop/store"
)

//go:embed migrations.sql
var migrationSQL string

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	// --- Catalog ---
	// The catalog is loaded once at startup and never mutated. With no
	// database configured, the built-in five products are used.
	catalog := store.DefaultCatalog()
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		defer db.Close()

		if _, err := db.Exec(migrationSQL); err != nil {
			log.Fatalf("Failed running migrations: %v", err)
		}
		catalog, err = store.LoadCatalog(db)
		if err != nil {
			log.Fatalf("Failed loading catalog: %v", err)
		}
		log.WithField("products", len(catalog.List())).Info("catalog loaded from database")
	}

	// --- Service ---
	svc := service.NewService(catalog)
	var serviceInterface service.ServiceInterface = svc

	// --- Sessions ---
	sessions := session.NewStore()

	// --- Handlers ---
	h := handler.NewHandler(serviceInterface, sessions, cfg.SessionCookie, log)

	// --- Router ---
	r := mux.NewRouter()
	r.Use(handler.Logging(log))
	h.RegisterRoutes(r)

	// --- Server ---
	log.WithField("addr", cfg.ListenAddr).Info("server running")

	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
