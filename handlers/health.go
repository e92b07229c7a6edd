package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/parts-pile/vehicles/db"
)

// HealthResponse reports the state of the loaded collection.
type HealthResponse struct {
	Status     string    `json:"status"`
	Vehicles   int       `json:"vehicles"`
	Generation uint64    `json:"generation"`
	LoadedAt   time.Time `json:"loadedAt"`
	Database   string    `json:"database,omitempty"`
}

// HandleHealth returns the health status of the application
func (a *API) HandleHealth(c *fiber.Ctx) error {
	snap := a.svc.Snapshot()
	health := HealthResponse{
		Status:     "ok",
		Vehicles:   len(snap.Vehicles),
		Generation: snap.Generation,
		LoadedAt:   snap.LoadedAt,
	}

	// Queries never touch the database, but a reload would.
	if db.Ready() {
		if err := db.Get().PingContext(c.UserContext()); err != nil {
			health.Status = "degraded"
			health.Database = "down"
		} else {
			health.Database = "up"
		}
	}

	return c.JSON(health)
}
