// File: tidybee/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"tidybee/config"
	"tidybee/cron"
	"tidybee/database"
	catalogRepo "tidybee/database/repository/catalog"
	cleanerRepo "tidybee/database/repository/cleaner"
	clientRepo "tidybee/database/repository/client"
	"tidybee/handlers"
	"tidybee/middleware"
	"tidybee/routes"
	"tidybee/services/pricing"
	"tidybee/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	cleanRepo := cleanerRepo.NewMongoCleanerRepo()
	cliRepo := clientRepo.NewMongoClientRepo()
	catRepo := catalogRepo.NewMongoCatalogRepo()

	// The engine reads the rule/bundle catalog through the Redis snapshot.
	catalog := &pricing.CachedCatalog{
		Repo:        catRepo,
		CacheClient: utils.GetCacheClient(),
	}

	pricingEngine := &pricing.DefaultPricingEngine{
		CleanerRepo: cleanRepo,
		ClientRepo:  cliRepo,
		Catalog:     catalog,
	}

	pricingHandler := handlers.NewPricingHandler(pricingEngine, logger)

	// Register routes.
	routes.RegisterRoutes(router, pricingHandler)

	// Keep the catalog snapshot warm and the health endpoint honest.
	cron.InitCatalogWorker(catalog)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
