package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vickhardth/site-pulse-api/internal/config"
	"github.com/vickhardth/site-pulse-api/internal/database"
	"github.com/vickhardth/site-pulse-api/internal/handlers"
	"github.com/vickhardth/site-pulse-api/internal/metrics"
	"github.com/vickhardth/site-pulse-api/internal/middleware"
	"github.com/vickhardth/site-pulse-api/internal/repository"
	"github.com/vickhardth/site-pulse-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	siteActivityRepo := repository.NewSiteActivityRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret)
	activityService := services.NewActivityService(reportRepo)
	directoryService := services.NewDirectoryService(userRepo)

	var digestService *services.DigestService
	if cfg.OpenAIAPIKey != "" {
		digestService = services.NewDigestService(cfg.OpenAIAPIKey)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	activityHandler := handlers.NewActivityHandler(activityService, directoryService, digestService)
	dailyHandler := handlers.NewDailyReportHandler(reportRepo, cfg.UploadDir)
	hourlyHandler := handlers.NewHourlyReportHandler(reportRepo)
	siteActivityHandler := handlers.NewSiteActivityHandler(siteActivityRepo)

	// Initialize Gin router
	r := gin.Default()
	r.Use(metrics.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Legacy site activity log
		activity := api.Group("/activity")
		{
			activity.GET("", siteActivityHandler.ListRecent)
			activity.POST("", siteActivityHandler.Create)
		}

		// Daily target reports (protected)
		daily := api.Group("/daily-target")
		daily.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			daily.POST("", dailyHandler.Create)
			daily.PUT("/:id", dailyHandler.Update)
		}

		// Hourly reports (protected)
		hourly := api.Group("/hourly-report")
		hourly.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			hourly.GET("/daily-targets/:date", hourlyHandler.ListDailyTargetsByDate)
			hourly.GET("/:date", hourlyHandler.ListByDate)
			hourly.POST("", hourlyHandler.Create)
			hourly.PUT("/:id", hourlyHandler.Update)
		}

		// Combined activity feed and directory (protected)
		employeeActivity := api.Group("/employee-activity")
		employeeActivity.Use(middleware.RequireAuth(cfg.JWTSecret))
		{
			employeeActivity.GET("/activities", activityHandler.ListActivities)
			employeeActivity.GET("/employees", activityHandler.ListEmployees)
			employeeActivity.GET("/subordinates", activityHandler.ListSubordinates)
			employeeActivity.GET("/summary", activityHandler.Summary)
			employeeActivity.GET("/digest", activityHandler.Digest)
		}
	}

	// Start server with graceful shutdown: finish in-flight requests and close the
	// connection pool before exiting.
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server stopped")
}
