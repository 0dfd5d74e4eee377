package dashboard

import (
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/co2-watch/site/cache"
	"github.com/co2-watch/site/vehicle"
)

// Loader produces a fresh dataset from the configured source.
type Loader func() (*vehicle.Dataset, error)

// Service serves views of the current dataset, caching them per filter.
type Service struct {
	store  *vehicle.Store
	load   Loader
	views  *cache.Cache[*View]
	ttl    time.Duration
	reload sync.Mutex
}

// NewService loads the dataset once and returns a service over it. A load
// failure here is fatal to the caller.
func NewService(load Loader, ttl time.Duration) (*Service, error) {
	ds, err := load()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	views, err := cache.New[*View](viewCost, "Dashboard View Cache")
	if err != nil {
		return nil, fmt.Errorf("create view cache: %w", err)
	}

	return &Service{
		store: vehicle.NewStore(ds),
		load:  load,
		views: views,
		ttl:   ttl,
	}, nil
}

// viewCost approximates the bytes a cached view pins. Records are shared
// with the dataset, so only the slices and aggregates count.
func viewCost(v *View) int64 {
	const recordHeader = 24
	return int64((len(v.Rows)+len(v.FuelPeers))*recordHeader +
		(len(v.PowerCapacity)+len(v.MassConsumption))*24 +
		(len(v.ByManufacturer)+len(v.ByFuelType))*48)
}

// Dataset returns the dataset currently served.
func (s *Service) Dataset() *vehicle.Dataset {
	return s.store.Load()
}

// Options returns the control options of the current dataset.
func (s *Service) Options() Options {
	return NewOptions(s.store.Load())
}

// View computes, or fetches from cache, the view for f.
func (s *Service) View(f Filter) *View {
	ds := s.store.Load()
	key := strconv.FormatUint(ds.Version, 10) + ":" + f.Key()

	if v, ok := s.views.Get(key); ok {
		return v
	}

	v := Compute(ds, f)
	s.views.SetWithTTL(key, v, viewCost(v), s.ttl)
	return v
}

// Reload replaces the dataset from its source. On failure the current
// dataset keeps being served.
func (s *Service) Reload() error {
	s.reload.Lock()
	defer s.reload.Unlock()

	ds, err := s.load()
	if err != nil {
		log.Printf("[dataset] Reload failed, keeping version %d: %v", s.store.Load().Version, err)
		return fmt.Errorf("reload dataset: %w", err)
	}

	s.store.Swap(ds)
	s.views.Clear()
	log.Printf("[dataset] Reloaded %d rows from %s as version %d", ds.Len(), ds.Source, ds.Version)
	return nil
}

// ClearCache drops every cached view.
func (s *Service) ClearCache() {
	s.views.Clear()
	log.Printf("[cache] View cache cleared")
}

// CacheStats reports view cache metrics for the admin page.
func (s *Service) CacheStats() cache.Stats {
	return s.views.Stats()
}
