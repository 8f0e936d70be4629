package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/mwalsh-dev/statduel/internal/api"
	"github.com/mwalsh-dev/statduel/internal/api/middleware"
	"github.com/mwalsh-dev/statduel/internal/models"
	"github.com/mwalsh-dev/statduel/internal/scrape"
	"github.com/mwalsh-dev/statduel/internal/services"
	"github.com/mwalsh-dev/statduel/pkg/config"
	"github.com/mwalsh-dev/statduel/pkg/database"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}

	// Day boundary zone; "today" must be the same for every user
	location, err := time.LoadLocation(cfg.GameTimezone)
	if err != nil {
		logrus.Fatalf("Invalid game timezone %q: %v", cfg.GameTimezone, err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := models.Migrate(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	// Connect to Redis
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logrus.Fatalf("Failed to parse Redis URL: %v", err)
	}
	redisClient := redis.NewClient(opt)
	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logrus.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize services
	cacheService := services.NewCacheService(redisClient)
	generator := services.NewGameGenerator(db, logrus.StandardLogger(), cfg.PlayersPerGame, cfg.CategoriesPerGame)

	scrapeTimeout, err := time.ParseDuration(cfg.ScrapeTimeout)
	if err != nil {
		logrus.Warnf("Invalid scrape timeout, using default 30s: %v", err)
		scrapeTimeout = 30 * time.Second
	}
	fetcher := scrape.NewFetcher(scrapeTimeout, cfg.ScrapeRateLimit, cfg.BreakerThreshold, logrus.StandardLogger())
	pipeline := scrape.NewPipeline(db, fetcher, logrus.StandardLogger(), cfg.ScrapeSeason, cfg.ScrapePlayerCap)

	scheduler := services.NewScheduler(pipeline, generator, cacheService, logrus.StandardLogger(), location, cfg.ScrapeCron)
	if err := scheduler.Start(); err != nil {
		logrus.Errorf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	if cfg.ScrapeOnStartup {
		scheduler.TriggerScrape()
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logrus.StandardLogger()))
	router.Use(middleware.CORS(cfg.CorsOrigins))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC(),
		})
	})

	// Setup API routes under /api/v1
	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, db, cacheService, cfg, generator, scheduler, location, logrus.StandardLogger())

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
