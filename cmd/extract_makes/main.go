package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/parts-pile/vehicles/source"
	"github.com/parts-pile/vehicles/vehicle"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <vehicles.json|vehicles.yaml> [limit]\n", os.Args[0])
		os.Exit(1)
	}
	records, err := source.LoadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading vehicles: %v\n", err)
		os.Exit(1)
	}

	limit := 0
	if len(os.Args) > 2 {
		limit, _ = strconv.Atoi(os.Args[2])
	}

	for _, name := range vehicle.Collection(records).ListMakes(limit) {
		fmt.Println(name)
	}
}
