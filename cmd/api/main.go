package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/handlers"
	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/store"
)

func main() {
	// 1. Environment & config
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// 2. Database connection
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 3. One-shot legacy import. Best effort: a broken dump is logged and
	// the server starts anyway.
	if err := database.ImportLegacyData(db, cfg.LegacyDataPath); err != nil {
		log.Printf("Legacy import failed: %v", err)
	}

	// 4. Stores
	users := store.NewUserStore(db)
	profiles := store.NewProfileStore(db)
	jobs := store.NewJobStore(db)
	applications := store.NewApplicationStore(db)

	// 5. Handlers
	authHandler := handlers.NewAuthHandler(users, cfg.JWTSecret)
	profileHandler := handlers.NewProfileHandler(profiles, cfg.UploadDir)
	jobHandler := handlers.NewJobHandler(jobs)
	applicationHandler := handlers.NewApplicationHandler(applications)

	// 6. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	if cfg.CORSOrigin != "" {
		corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Routes
	r.GET("/health", handlers.HealthCheck)
	r.Static("/uploads", cfg.UploadDir)

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)
	seekerOnly := middleware.RequireRole(models.RoleJobSeeker)
	employerOnly := middleware.RequireRole(models.RoleEmployer)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.GET("/me", requireAuth, authHandler.Me)
	}

	jobRoutes := r.Group("/jobs")
	{
		jobRoutes.GET("", jobHandler.Search)
		jobRoutes.POST("", requireAuth, employerOnly, jobHandler.Create)
		jobRoutes.GET("/employer/mine/list", requireAuth, employerOnly, jobHandler.Mine)
		jobRoutes.GET("/:id", jobHandler.Get)
		jobRoutes.PUT("/:id", requireAuth, employerOnly, jobHandler.Update)
		jobRoutes.DELETE("/:id", requireAuth, employerOnly, jobHandler.Delete)
	}

	applicationRoutes := r.Group("/applications", requireAuth)
	{
		applicationRoutes.POST("", seekerOnly, applicationHandler.Apply)
		applicationRoutes.GET("/me", seekerOnly, applicationHandler.Mine)
		applicationRoutes.GET("/job/:jobId", employerOnly, applicationHandler.ForJob)
		applicationRoutes.PATCH("/:id/status", employerOnly, applicationHandler.UpdateStatus)
	}

	profileRoutes := r.Group("/profiles", requireAuth)
	{
		profileRoutes.GET("/seeker/me", seekerOnly, profileHandler.GetSeeker)
		profileRoutes.POST("/seeker/me", seekerOnly, profileHandler.UpsertSeeker)
		profileRoutes.GET("/employer/me", employerOnly, profileHandler.GetEmployer)
		profileRoutes.POST("/employer/me", employerOnly, profileHandler.UpsertEmployer)
	}

	// 8. Serve
	log.Printf("Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
