package vehicle

import (
	"fmt"
	"log"

	"github.com/parts-pile/vehicles/cache"
)

// cacheMaxCost bounds each facet cache (16MB).
const cacheMaxCost = 1 << 24

// Service answers facet queries against the active snapshot of a Store,
// optionally memoizing results. Returned slices are shared with the cache and
// must not be modified.
type Service struct {
	store   *Store
	lists   *cache.Cache[[]string]
	details *cache.Cache[Details]
}

// NewService creates a Service over store. With cached set, facet results are
// kept in ristretto caches keyed by snapshot generation.
func NewService(store *Store, cached bool) (*Service, error) {
	s := &Service{store: store}
	if !cached {
		return s, nil
	}

	var err error
	s.lists, err = cache.New[[]string]("Vehicle Facet Cache", cacheMaxCost, func(value []string) int64 {
		return listCost(value)
	})
	if err != nil {
		return nil, err
	}
	s.details, err = cache.New[Details]("Vehicle Details Cache", cacheMaxCost, func(value Details) int64 {
		return listCost(value.DateOfManufacture) + listCost(value.Transmission) +
			listCost(value.Fuel) + listCost(value.EngineSize)
	})
	if err != nil {
		s.lists.Close()
		return nil, err
	}

	log.Printf("[vehicle-cache] Cache initialized successfully")
	return s, nil
}

// Snapshot returns the snapshot queries are currently answered from.
func (s *Service) Snapshot() *Snapshot {
	return s.store.Snapshot()
}

// Vehicles returns every record of the active snapshot.
func (s *Service) Vehicles() Collection {
	return s.store.Snapshot().Vehicles
}

// Makes returns the distinct makes, truncated to limit when limit > 0.
func (s *Service) Makes(limit int) []string {
	snap := s.store.Snapshot()
	all := s.list(snap, "makes", func() ([]string, error) {
		return snap.Vehicles.ListMakes(0), nil
	})
	return truncate(all, limit)
}

// Models returns the distinct models of makeName.
func (s *Service) Models(makeName string) ([]string, error) {
	snap := s.store.Snapshot()
	if makeName == "" {
		return snap.Vehicles.ListModels(makeName)
	}
	return s.listErr(snap, fmt.Sprintf("models:%q", fold(makeName)), func() ([]string, error) {
		return snap.Vehicles.ListModels(makeName)
	})
}

// Submodels returns the distinct submodels of makeName and model.
func (s *Service) Submodels(makeName, model string) ([]string, error) {
	snap := s.store.Snapshot()
	if makeName == "" || model == "" {
		return snap.Vehicles.ListSubmodels(makeName, model)
	}
	key := fmt.Sprintf("submodels:%q:%q", fold(makeName), fold(model))
	return s.listErr(snap, key, func() ([]string, error) {
		return snap.Vehicles.ListSubmodels(makeName, model)
	})
}

// Details aggregates the attribute facets for makeName, model and an optional
// submodel.
func (s *Service) Details(makeName, model, submodel string) (Details, error) {
	snap := s.store.Snapshot()
	if s.details == nil || makeName == "" || model == "" {
		return snap.Vehicles.GetDetails(makeName, model, submodel)
	}

	key := cacheKey(snap, fmt.Sprintf("details:%q:%q:%q", fold(makeName), fold(model), fold(submodel)))
	if cached, found := s.details.Get(key); found {
		return cached, nil
	}
	details, err := snap.Vehicles.GetDetails(makeName, model, submodel)
	if err != nil {
		return Details{}, err
	}
	s.details.Set(key, details)
	return details, nil
}

// Reload installs records as the new generation. Cached results of older
// generations become unreachable and age out of the cache.
func (s *Service) Reload(records []Record) *Snapshot {
	snap := s.store.Replace(records)
	log.Printf("[vehicle-cache] Loaded generation %d with %d vehicles", snap.Generation, len(snap.Vehicles))
	return snap
}

// ClearCache removes all memoized results. ristretto's Clear is not atomic
// with respect to concurrent Sets; a racing Set can at worst leave one entry
// of the current generation behind.
func (s *Service) ClearCache() {
	if s.lists == nil {
		return
	}
	s.lists.Clear()
	s.details.Clear()
	log.Printf("[vehicle-cache] Cache cleared")
}

// CacheStats returns metrics for each facet cache. It is empty when caching
// is disabled.
func (s *Service) CacheStats() []cache.Stats {
	if s.lists == nil {
		return []cache.Stats{}
	}
	return []cache.Stats{s.lists.Stats(), s.details.Stats()}
}

// Close releases cache resources.
func (s *Service) Close() {
	if s.lists == nil {
		return
	}
	s.lists.Close()
	s.details.Close()
}

func (s *Service) list(snap *Snapshot, name string, compute func() ([]string, error)) []string {
	values, _ := s.listErr(snap, name, compute)
	return values
}

func (s *Service) listErr(snap *Snapshot, name string, compute func() ([]string, error)) ([]string, error) {
	if s.lists == nil {
		return compute()
	}

	key := cacheKey(snap, name)
	if cached, found := s.lists.Get(key); found {
		return cached, nil
	}
	values, err := compute()
	if err != nil {
		return nil, err
	}
	s.lists.Set(key, values)
	return values, nil
}

// cacheKey namespaces name by snapshot generation so results computed against
// an older collection are never served after a reload.
func cacheKey(snap *Snapshot, name string) string {
	return fmt.Sprintf("g%d:%s", snap.Generation, name)
}

func listCost(values []string) int64 {
	var n int64
	for _, v := range values {
		n += int64(len(v)) + 16
	}
	return n + 24
}
