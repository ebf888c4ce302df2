package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"pulse-backend/internal/database"
	"pulse-backend/internal/handlers"
	customMiddleware "pulse-backend/internal/middleware"
	"pulse-backend/internal/notify"
	"pulse-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	// Required env vars
	mongoURI := getEnv("MONGODB_URI", "")
	dbName := getEnv("DB_NAME", "pulse")
	jwtSecret := getEnv("JWT_SECRET", "")
	port := getEnv("PORT", "8080")

	if mongoURI == "" {
		log.Fatal("❌ MONGODB_URI is required")
	}
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET is required")
	}

	// Connect to MongoDB
	if err := database.Connect(mongoURI, dbName); err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo()
	surveyRepo := repository.NewSurveyRepo()

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create user indexes: %v", err)
	}
	if err := surveyRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create feedback indexes: %v", err)
	}

	// Initialize admin notifier — falls back to a logging mock without an API key
	var notifier notify.Notifier
	if apiKey := getEnv("RESEND_API_KEY", ""); apiKey != "" {
		notifier = notify.NewMailer(apiKey, getEnv("FROM_EMAIL", ""), getEnv("ADMIN_EMAIL", ""))
	} else {
		log.Println("⚠️  RESEND_API_KEY not set, using mock notifier")
		notifier = notify.NewMock()
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, jwtSecret)
	surveyHandler := handlers.NewSurveyHandler(surveyRepo, notifier)
	userHandler := handlers.NewUserHandler(userRepo)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"pulse-backend"}`))
	})

	// Store liveness probe
	r.Get("/api/test-connection", func(w http.ResponseWriter, r *http.Request) {
		if err := database.Ping(r.Context()); err != nil {
			log.Printf("❌ Database connection error: %v", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"success":false,"error":"database connection failed"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success":true,"message":"database connection successful"}`))
	})

	// Public routes (no auth required)
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// Protected routes (JWT required)
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.JWTAuth(jwtSecret))

		r.Get("/api/feedbacks", surveyHandler.List)
		r.Post("/api/feedbacks", surveyHandler.Create)
		r.Get("/api/me", userHandler.Me)

		// Admin-only surface
		r.Group(func(r chi.Router) {
			r.Use(customMiddleware.RequireAdmin)

			r.Delete("/api/feedbacks/{id}", surveyHandler.Delete)
			r.Get("/api/feedbacks/export", surveyHandler.Export)
			r.Get("/api/stats/departments", surveyHandler.DepartmentStats)
		})
	})

	// Start server
	log.Printf("🚀 Pulse backend starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
