package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	appdb "github.com/soberanopy/soberano-backend/internal/db"
	"github.com/soberanopy/soberano-backend/internal/modules/auth"
	"github.com/soberanopy/soberano-backend/internal/modules/cart"
	"github.com/soberanopy/soberano-backend/internal/modules/catalog"
	"github.com/soberanopy/soberano-backend/internal/modules/category"
	"github.com/soberanopy/soberano-backend/internal/modules/concierge"
	"github.com/soberanopy/soberano-backend/internal/modules/media"
	"github.com/soberanopy/soberano-backend/internal/modules/order"
	"github.com/soberanopy/soberano-backend/internal/modules/wishlist"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
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

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := appdb.EnsureSchema(ctx, db); err != nil {
		log.Fatal(err)
	}

	jwtKey := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtKey) == 0 {
		log.Fatal("JWT_SECRET is required")
	}

	waNumber := getenv("WHATSAPP_NUMBER", "595984508348")
	contactName := getenv("WHATSAPP_CONTACT_NAME", "Lucas")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Auth gate ───────────────────────────────────────────
	var remote auth.RemoteAuthenticator
	if url := os.Getenv("REMOTE_AUTH_URL"); url != "" {
		remote = auth.NewRemoteAuthClient(url, os.Getenv("REMOTE_AUTH_API_KEY"))
	}
	authService := auth.NewService(auth.ParseAllowList(os.Getenv("ADMIN_ALLOWLIST")), remote, jwtKey)
	auth.NewHandler(authService).RegisterRoutes(router)
	admin := auth.RequireAdmin(jwtKey)

	// ── Order log ───────────────────────────────────────────
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo)
	order.NewHandler(orderService).RegisterRoutes(router, admin)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo, orderService)
	catalog.NewHandler(catalogService).RegisterRoutes(router, admin)

	// ── Category registry ───────────────────────────────────
	categoryRepo := category.NewPostgresRepository(db)
	if err := category.Seed(ctx, categoryRepo); err != nil {
		log.Printf("category seed warning: %v", err)
	}
	categoryService := category.NewService(categoryRepo, catalogRepo)
	category.NewHandler(categoryService).RegisterRoutes(router, admin)

	// ── Cart & checkout ─────────────────────────────────────
	cartService := cart.NewService(cart.NewMemoryStore(), catalogService, orderService, waNumber, contactName)
	cart.NewHandler(cartService).RegisterRoutes(router)

	// ── Wishlist ────────────────────────────────────────────
	wishlistRepo := wishlist.NewPostgresRepository(db)
	wishlistService := wishlist.NewService(wishlistRepo, catalogService)
	wishlist.NewHandler(wishlistService).RegisterRoutes(router)

	// ── Concierge Virtual ───────────────────────────────────
	recommender := concierge.NewGeminiClient(
		os.Getenv("GEMINI_API_KEY"),
		getenv("GEMINI_MODEL", "gemini-3-flash-preview"),
	)
	conciergeService := concierge.NewService(recommender, catalogService, contactName)
	concierge.NewHandler(conciergeService).RegisterRoutes(router)

	// ── Media: uploads & hero galleries ─────────────────────
	uploader := media.NewCloudinaryUploader(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
	)
	mediaService := media.NewService(uploader, media.NewPostgresHeroRepository(db))
	media.NewHandler(mediaService).RegisterRoutes(router, admin)

	// ── Start Server ────────────────────────────────────────
	port := getenv("APP_PORT", "8080")
	fmt.Printf("Soberano API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
