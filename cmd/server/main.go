package main

import (
	"log"
	"smartfarm_app_go/config"
	"smartfarm_app_go/db"
	"smartfarm_app_go/handlers"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Open the JSON document store and make sure every collection exists
	store := db.Open(cfg.DataFile)
	for _, path := range []string{
		cfg.ScoresCollectionPath(),
		cfg.SalesCollectionPath(),
		cfg.ProjectsCollectionPath(),
	} {
		if err := store.EnsureCollection(path); err != nil {
			log.Fatalf("Failed to initialize data file: %v", err)
		}
	}

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	// Handlers with the store handle injected
	scoreHandler := handlers.NewScoreHandler(store, cfg)
	saleHandler := handlers.NewSaleHandler(store, cfg)
	projectHandler := handlers.NewProjectHandler(store, cfg)
	catalogHandler := handlers.NewCatalogHandler()
	reportHandler := handlers.NewReportHandler(store, cfg)

	api := e.Group("/api")
	{
		// Scoring catalog (read-only)
		api.GET("/catalog", catalogHandler.List)
		api.GET("/catalog/options", catalogHandler.Options)
		api.GET("/catalog/:name", catalogHandler.Get)

		// Client evaluations
		api.POST("/clients", scoreHandler.Create)
		api.GET("/clients", scoreHandler.List)
		api.GET("/clients/:id", scoreHandler.Get)
		api.PATCH("/clients/:id", scoreHandler.UpdateMetadata)
		api.DELETE("/clients/:id", scoreHandler.Delete)
		api.GET("/clients/:id/breakdown", scoreHandler.Breakdown)
		api.PUT("/clients/:id/recommendations", scoreHandler.SaveRecommendations)

		// Sales ledger
		api.GET("/sales", saleHandler.List)
		api.POST("/sales", saleHandler.Create)
		api.POST("/sales/changes", saleHandler.ApplyChanges)
		api.GET("/sales/summary", saleHandler.Summary)

		// Agronomy engagements
		api.GET("/projects", projectHandler.List)
		api.POST("/projects", projectHandler.Save)
		api.GET("/projects/latest", projectHandler.Latest)
		api.GET("/projects/summary", projectHandler.Summary)
		api.POST("/projects/bulk-delete", projectHandler.BulkDelete)
		api.GET("/projects/:id", projectHandler.Get)

		// Excel score report
		api.GET("/reports/scores", reportHandler.ScoreReport)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
