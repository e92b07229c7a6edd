package main

import (
	"context"
	"fmt"
	"log"

	"github.com/parts-pile/vehicles/config"
	"github.com/parts-pile/vehicles/db"
	"github.com/parts-pile/vehicles/server"
	"github.com/parts-pile/vehicles/source"
	"github.com/parts-pile/vehicles/vehicle"
)

func main() {
	cfg := config.Load()

	// Pick the data source; a database wins over a file
	var loader source.Loader = source.FileLoader{Path: cfg.VehiclesFile}
	if cfg.DatabaseURL != "" {
		if err := db.Init(context.Background(), cfg.DatabaseURL); err != nil {
			log.Fatalf("error initializing database: %v", err)
		}
		defer db.Close()
		loader = db.Loader{}
	}

	// Load the vehicle collection once, before serving
	records, err := loader.Load(context.Background())
	if err == nil {
		err = source.Validate(records)
	}
	if err != nil {
		log.Fatalf("Failed to load vehicles from %v: %v", loader, err)
	}
	log.Printf("[source] Loaded %d vehicles from %v", len(records), loader)

	svc, err := vehicle.NewService(vehicle.NewStore(records), cfg.CacheEnabled)
	if err != nil {
		log.Fatalf("Failed to initialize vehicle cache: %v", err)
	}
	defer svc.Close()

	app := server.New(cfg, svc, loader)

	fmt.Printf("Starting server on port %s...\n", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("server stopped: %v", err)
	}
}
