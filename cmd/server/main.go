package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labelsort/backend/config"
	httpDelivery "github.com/labelsort/backend/internal/delivery/http"
	"github.com/labelsort/backend/internal/domain"
	"github.com/labelsort/backend/internal/infrastructure/archive"
	"github.com/labelsort/backend/internal/infrastructure/pdfio"
	"github.com/labelsort/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting LabelSort Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Build the pattern registry from config; empty tables use defaults
	groups := make([]usecase.StyleGroup, 0, len(cfg.Sorter.StyleGroups))
	for _, g := range cfg.Sorter.StyleGroups {
		groups = append(groups, usecase.StyleGroup{Name: g.Name, Keywords: g.Keywords})
	}
	registry := usecase.NewRegistry(usecase.RegistryConfig{
		CourierPriority: cfg.Sorter.CourierPriority,
		SizeOrder:       cfg.Sorter.SizeOrder,
		StyleGroups:     groups,
	})
	log.Printf("Couriers: %v", registry.Couriers())
	log.Printf("Sizes: %v", registry.Sizes())
	log.Printf("Style groups: %v", registry.StyleNames())

	// Initialize infrastructure dependencies
	extractor := pdfio.NewExtractor()
	collector := pdfio.NewCollector()

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		extractor.SetDebug(true)
		log.Printf("PDF extractor debug mode enabled")
	}

	var archiveStore domain.ArchiveStore
	if cfg.Archive.Enabled {
		store, err := archive.NewMinioStore(archive.Config{
			Endpoint:  cfg.Archive.Endpoint,
			AccessKey: cfg.Archive.AccessKey,
			SecretKey: cfg.Archive.SecretKey,
			Bucket:    cfg.Archive.Bucket,
			Region:    cfg.Archive.Region,
			UseSSL:    cfg.Archive.UseSSL,
			Prefix:    cfg.Archive.Prefix,
		})
		if err != nil {
			log.Fatalf("Failed to initialize archive store: %v", err)
		}
		archiveStore = store
		log.Printf("Archive enabled: %s/%s", cfg.Archive.Endpoint, cfg.Archive.Bucket)
	} else {
		log.Printf("Archive disabled")
	}

	// Initialize usecase layer
	sorter := usecase.NewSorterService(registry, extractor, collector, archiveStore,
		usecase.SorterConfig{
			EnableDebugLogging: cfg.Sorter.EnableDebugLogging,
		})

	// Result cache bridges sort responses and download requests
	results := httpDelivery.NewResultCache(cfg.Results.TTL, cfg.Results.MaxRuns)
	log.Printf("Result cache: ttl=%s max_runs=%d", cfg.Results.TTL, cfg.Results.MaxRuns)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(sorter, results)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
