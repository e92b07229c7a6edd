package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/parts-pile/vehicles/db"
	"github.com/parts-pile/vehicles/source"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <vehicles.json|vehicles.yaml> [project.db]\n", os.Args[0])
		os.Exit(1)
	}
	dataFile := os.Args[1]
	dbFile := "project.db"
	if len(os.Args) > 2 {
		dbFile = os.Args[2]
	}

	records, err := source.LoadFile(dataFile)
	if err != nil {
		log.Fatalf("Failed to read vehicles: %v", err)
	}

	ctx := context.Background()
	if err := db.Init(ctx, dbFile); err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	n, err := db.InsertVehicles(ctx, records)
	if err != nil {
		log.Fatalf("Failed to insert vehicles: %v", err)
	}
	fmt.Printf("Imported %d vehicles into %s.\n", n, dbFile)
}
