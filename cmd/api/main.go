package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/lesatelierszo/zopos-backend/internal/cache"
	"github.com/lesatelierszo/zopos-backend/internal/metrics"
	"github.com/lesatelierszo/zopos-backend/internal/modules/analytics"
	"github.com/lesatelierszo/zopos-backend/internal/modules/auth"
	"github.com/lesatelierszo/zopos-backend/internal/modules/barcode"
	"github.com/lesatelierszo/zopos-backend/internal/modules/catalog"
	"github.com/lesatelierszo/zopos-backend/internal/modules/pos"
	"github.com/lesatelierszo/zopos-backend/internal/modules/sales"
	"github.com/lesatelierszo/zopos-backend/internal/modules/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	redisCache := cache.New(os.Getenv("REDIS_ADDR"), os.Getenv("REDIS_PASSWORD"))

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		log.Fatal("JWT_SECRET is required")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(metrics.Middleware())

	router.Handle("/metrics", metrics.Handler())

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	authMW := auth.Middleware(jwtSecret)
	user.NewHandler(userService, authMW).RegisterRoutes(router)

	authService := auth.NewService(userRepo, jwtSecret)
	auth.NewHandler(authService).RegisterRoutes(router)

	// ── Catalog & Barcodes ──────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo, redisCache)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	barcode.NewHandler(catalogService).RegisterRoutes(router)

	// ── Sales & Checkout ────────────────────────────────────
	salesRepo := sales.NewPostgresRepository(db)
	salesService := sales.NewService(salesRepo, catalogRepo)
	sales.NewHandler(salesService).RegisterRoutes(router)

	posService := pos.NewService(catalogRepo, salesRepo)
	pos.NewHandler(posService).RegisterRoutes(router)

	// ── Analytics ───────────────────────────────────────────
	analyticsService := analytics.NewService(salesRepo)
	analytics.NewHandler(analyticsService).RegisterRoutes(router)

	// ── Start Server ─────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Zo POS API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
