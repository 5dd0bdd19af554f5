package store

import (
	"errors"
	"testing"
	"time"

	"github.com/i474232898/temperature-chart/internal/weather"
)

func TestMemoryStoreSaveAndGet(t *testing.T) {
	s := NewMemoryStore(10, time.Hour)

	saved := s.Save(weather.StoredSeries{
		Series: weather.Series{
			Time:          []string{"2024-01-01T00:00"},
			Temperature2m: weather.Temps(5),
		},
	})
	if saved.ID == "" {
		t.Fatal("expected an ID to be assigned")
	}
	if saved.FetchedAt.IsZero() {
		t.Fatal("expected FetchedAt to be set")
	}

	got, err := s.Get(saved.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if *got.Temperature2m[0] != 5 {
		t.Errorf("unexpected series: %+v", got)
	}

	if _, err := s.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreLatestAndRetention(t *testing.T) {
	s := NewMemoryStore(2, 0)
	loc := weather.Location{Latitude: 52.52, Longitude: 13.41}

	var ids []string
	for i := 0; i < 3; i++ {
		l := loc
		saved := s.Save(weather.StoredSeries{
			Location: &l,
			Series: weather.Series{
				Time:          []string{"2024-01-01T00:00"},
				Temperature2m: weather.Temps(float64(i)),
			},
		})
		ids = append(ids, saved.ID)
	}

	latest, err := s.GetLatest(loc)
	if err != nil {
		t.Fatalf("GetLatest: %v", err)
	}
	if latest.ID != ids[2] {
		t.Errorf("expected latest %s, got %s", ids[2], latest.ID)
	}

	// The oldest series exceeds maxHistory and must be gone.
	if _, err := s.Get(ids[0]); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected oldest series to be evicted, got %v", err)
	}
	if _, err := s.Get(ids[1]); err != nil {
		t.Errorf("expected second series to be kept: %v", err)
	}

	if _, err := s.GetLatest(weather.Location{Latitude: 1, Longitude: 1}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown location, got %v", err)
	}
}

func TestMemoryStoreMaxAge(t *testing.T) {
	s := NewMemoryStore(0, time.Hour)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	loc := weather.Location{Latitude: 10, Longitude: 20}
	old := s.Save(weather.StoredSeries{Location: &loc, FetchedAt: now.Add(-2 * time.Hour)})

	if _, err := s.GetLatest(loc); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected stale series to be hidden, got %v", err)
	}

	fresh := s.Save(weather.StoredSeries{Location: &loc, FetchedAt: now})
	if _, err := s.Get(old.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected stale series to be expired on save, got %v", err)
	}
	latest, err := s.GetLatest(loc)
	if err != nil {
		t.Fatalf("GetLatest: %v", err)
	}
	if latest.ID != fresh.ID {
		t.Errorf("expected %s, got %s", fresh.ID, latest.ID)
	}
}
