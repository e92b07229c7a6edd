package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parts-pile/vehicles/source"
	"github.com/parts-pile/vehicles/vehicle"
)

// API serves the vehicle facet endpoints.
type API struct {
	svc    *vehicle.Service
	loader source.Loader
}

// New creates an API over svc. loader is used by the reload endpoint and may
// be nil, in which case reloading is rejected.
func New(svc *vehicle.Service, loader source.Loader) *API {
	return &API{svc: svc, loader: loader}
}

// Register mounts the public vehicle routes under /api/vehicles.
func (a *API) Register(router fiber.Router) {
	vehicles := router.Group("/api/vehicles")
	vehicles.Get("/", a.HandleVehicles)
	vehicles.Get("/makes", a.HandleMakes)
	vehicles.Get("/models", a.HandleModels)
	vehicles.Get("/submodels", a.HandleSubmodels)
	vehicles.Get("/details", a.HandleDetails)
}

// HandleVehicles returns every record of the active collection.
func (a *API) HandleVehicles(c *fiber.Ctx) error {
	return c.JSON(a.svc.Vehicles())
}

// HandleMakes returns the distinct makes, optionally limited by ?limit=N.
func (a *API) HandleMakes(c *fiber.Ctx) error {
	return c.JSON(a.svc.Makes(queryLimit(c)))
}

// HandleModels returns the distinct models of ?make=.
func (a *API) HandleModels(c *fiber.Ctx) error {
	models, err := a.svc.Models(c.Query("make"))
	if err != nil {
		return err
	}
	return c.JSON(models)
}

// HandleSubmodels returns the distinct submodels of ?make= and ?model=.
func (a *API) HandleSubmodels(c *fiber.Ctx) error {
	submodels, err := a.svc.Submodels(c.Query("make"), c.Query("model"))
	if err != nil {
		return err
	}
	return c.JSON(submodels)
}

// HandleDetails aggregates attributes for make and model. The optional
// submodel is accepted as either ?submodel= or ?subModel=.
func (a *API) HandleDetails(c *fiber.Ctx) error {
	details, err := a.svc.Details(c.Query("make"), c.Query("model"), queryAny(c, "submodel", "subModel"))
	if err != nil {
		return err
	}
	return c.JSON(details)
}
