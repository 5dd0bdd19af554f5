package weather

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// Service orchestrates fetching from multiple providers and persisting series.
type Service struct {
	store     Store
	providers []Provider
	days      int
}

// NewService creates a new Service. days is the forecast horizon used when
// a caller does not ask for one.
func NewService(store Store, providers []Provider, days int) *Service {
	if days <= 0 {
		days = 7
	}
	return &Service{
		store:     store,
		providers: providers,
		days:      days,
	}
}

// FetchAndStore fetches series from all providers concurrently for the given
// location, aggregates the successful ones, and stores the result.
func (s *Service) FetchAndStore(ctx context.Context, loc Location, days int) (StoredSeries, error) {
	if days <= 0 {
		days = s.days
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		series []ProviderSeries
	)

	log.Printf("DEBUG: FetchAndStore called for %s with %d providers", loc, len(s.providers))
	if len(s.providers) == 0 {
		log.Printf("ERROR: No providers available to fetch temperatures for %s", loc)
		return StoredSeries{}, fmt.Errorf("no weather providers configured")
	}

	for _, p := range s.providers {
		p := p
		wg.Add(1)
		go func() {
			defer wg.Done()

			got, err := p.FetchSeries(ctx, loc, days)
			if err != nil {
				// Log and continue; we want partial success when possible.
				log.Printf("provider %s fetch failed for %s: %v", p.Name(), loc, err)
				return
			}

			mu.Lock()
			series = append(series, ProviderSeries{ProviderName: p.Name(), Series: got})
			mu.Unlock()
		}()
	}

	wg.Wait()

	if len(series) == 0 {
		// No providers succeeded; do not overwrite last good series.
		log.Printf("no successful provider series for %s; keeping last good series if any", loc)
		return StoredSeries{}, fmt.Errorf("all providers failed for %s", loc)
	}

	merged, names := AggregateSeries(series)
	l := loc
	stored := s.store.Save(StoredSeries{
		Location:  &l,
		Providers: names,
		FetchedAt: time.Now().UTC(),
		Days:      days,
		Series:    merged,
	})
	return stored, nil
}

// Latest returns the latest stored series for a location, fetching one on
// demand when none is stored yet or the stored one covers another horizon.
func (s *Service) Latest(ctx context.Context, loc Location, days int) (StoredSeries, error) {
	if days <= 0 {
		days = s.days
	}
	if got, err := s.store.GetLatest(loc); err == nil && got.Days == days {
		return got, nil
	}
	return s.FetchAndStore(ctx, loc, days)
}

// Put stores a caller-supplied series as-is.
func (s *Service) Put(series Series) StoredSeries {
	return s.store.Save(StoredSeries{
		FetchedAt: time.Now().UTC(),
		Series:    series,
	})
}

// Get delegates to the underlying store.
func (s *Service) Get(id string) (StoredSeries, error) {
	return s.store.Get(id)
}
