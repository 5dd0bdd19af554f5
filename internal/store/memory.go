package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/i474232898/temperature-chart/internal/weather"
)

var (
	// ErrNotFound is returned when no series is available for an ID or location.
	ErrNotFound = errors.New("no temperature series found")
)

// SeriesHistory holds the time-ordered IDs of series stored for a location.
type SeriesHistory struct {
	IDs []string
}

// MemoryStore is a concurrency-safe in-memory implementation of a series store.
type MemoryStore struct {
	mu sync.RWMutex

	// key: series ID
	byID map[string]weather.StoredSeries
	// key: location key, value: history
	byLocation map[string]*SeriesHistory

	// retention configuration
	maxHistory int           // max number of series per location
	maxAge     time.Duration // optional max age for series

	now func() time.Time
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		byID:       make(map[string]weather.StoredSeries),
		byLocation: make(map[string]*SeriesHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
		now:        time.Now,
	}
}

// Save assigns an ID to the series, stores it and enforces retention.
// Series without a location are kept until they age out.
func (s *MemoryStore) Save(series weather.StoredSeries) weather.StoredSeries {
	series.ID = uuid.NewString()
	if series.FetchedAt.IsZero() {
		series.FetchedAt = s.now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[series.ID] = series
	s.expire()

	if series.Location == nil {
		return series
	}

	key := series.Location.Key()
	history, ok := s.byLocation[key]
	if !ok {
		history = &SeriesHistory{}
		s.byLocation[key] = history
	}
	history.IDs = append(history.IDs, series.ID)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(history.IDs) > s.maxHistory {
		over := len(history.IDs) - s.maxHistory
		for _, id := range history.IDs[:over] {
			delete(s.byID, id)
		}
		history.IDs = history.IDs[over:]
	}

	return series
}

// expire drops series older than maxAge. Callers must hold the write lock.
func (s *MemoryStore) expire() {
	if s.maxAge <= 0 {
		return
	}
	cutoff := s.now().Add(-s.maxAge)
	for id, series := range s.byID {
		if series.FetchedAt.Before(cutoff) {
			delete(s.byID, id)
		}
	}
	for key, history := range s.byLocation {
		kept := history.IDs[:0]
		for _, id := range history.IDs {
			if _, ok := s.byID[id]; ok {
				kept = append(kept, id)
			}
		}
		history.IDs = kept
		if len(history.IDs) == 0 {
			delete(s.byLocation, key)
		}
	}
}

// Get returns the series stored under id.
func (s *MemoryStore) Get(id string) (weather.StoredSeries, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	series, ok := s.byID[id]
	if !ok {
		return weather.StoredSeries{}, ErrNotFound
	}
	return series, nil
}

// GetLatest returns the most recent series for a location.
func (s *MemoryStore) GetLatest(loc weather.Location) (weather.StoredSeries, error) {
	key := loc.Key()

	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.byLocation[key]
	if !ok || len(history.IDs) == 0 {
		return weather.StoredSeries{}, ErrNotFound
	}
	series, ok := s.byID[history.IDs[len(history.IDs)-1]]
	if !ok {
		return weather.StoredSeries{}, ErrNotFound
	}
	if s.maxAge > 0 && series.FetchedAt.Before(s.now().Add(-s.maxAge)) {
		return weather.StoredSeries{}, ErrNotFound
	}
	return series, nil
}
