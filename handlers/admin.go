package handlers

import (
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
	"github.com/parts-pile/vehicles/source"
)

// AdminRequired guards admin routes with a bearer token.
func AdminRequired(token string) fiber.Handler {
	return keyauth.New(keyauth.Config{
		KeyLookup:  "header:" + fiber.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(c *fiber.Ctx, key string) (bool, error) {
			if subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1 {
				return true, nil
			}
			return false, keyauth.ErrMissingOrMalformedAPIKey
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		},
	})
}

// RegisterAdmin mounts the cache and reload routes on router, which should
// already be guarded by AdminRequired.
func (a *API) RegisterAdmin(router fiber.Router) {
	router.Get("/vehicle-cache", a.HandleAdminVehicleCache)
	router.Post("/vehicle-cache/clear", a.HandleClearVehicleCache)
	router.Post("/vehicles/reload", a.HandleReloadVehicles)
}

// HandleAdminVehicleCache returns facet cache statistics.
func (a *API) HandleAdminVehicleCache(c *fiber.Ctx) error {
	return c.JSON(a.svc.CacheStats())
}

// HandleClearVehicleCache drops every cached facet result.
func (a *API) HandleClearVehicleCache(c *fiber.Ctx) error {
	a.svc.ClearCache()
	return c.SendStatus(fiber.StatusNoContent)
}

// ReloadResponse describes the snapshot installed by a reload.
type ReloadResponse struct {
	Vehicles   int    `json:"vehicles"`
	Generation uint64 `json:"generation"`
}

// HandleReloadVehicles re-reads the data source and swaps in the new
// collection. On failure the current collection stays active.
func (a *API) HandleReloadVehicles(c *fiber.Ctx) error {
	if a.loader == nil {
		return fiber.NewError(fiber.StatusNotImplemented, "No data source configured")
	}

	records, err := a.loader.Load(c.UserContext())
	if err == nil {
		err = source.Validate(records)
	}
	if err != nil {
		log.Printf("[source] Reload failed: %v", err)
		return fiber.NewError(fiber.StatusBadGateway, "Reload failed: "+err.Error())
	}

	snap := a.svc.Reload(records)
	return c.JSON(ReloadResponse{Vehicles: len(snap.Vehicles), Generation: snap.Generation})
}
