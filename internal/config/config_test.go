package config

import (
	"testing"
	"time"
)

func TestParseLocations(t *testing.T) {
	locs, err := ParseLocations("Berlin:52.52:13.41; Tokyo:35.68:139.69;")
	if err != nil {
		t.Fatalf("ParseLocations: %v", err)
	}
	if len(locs) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(locs))
	}
	if locs[0].Name != "Berlin" || locs[0].Latitude != 52.52 || locs[0].Longitude != 13.41 {
		t.Errorf("unexpected first location: %+v", locs[0])
	}
	if locs[1].Name != "Tokyo" || locs[1].Longitude != 139.69 {
		t.Errorf("unexpected second location: %+v", locs[1])
	}

	if locs, err := ParseLocations(""); err != nil || len(locs) != 0 {
		t.Errorf("empty input: %v %v", locs, err)
	}

	for _, bad := range []string{"Berlin:52.52", "Tokyo:35.68:139.69:Asia/Tokyo", "X:91:0", "X:0:181", "X:a:b"} {
		if _, err := ParseLocations(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("FETCH_INTERVAL", "30m")
	t.Setenv("CHART_TIMEZONE", "Europe/Berlin")
	t.Setenv("WEATHER_LOCATIONS", "Berlin:52.52:13.41")
	t.Setenv("FORECAST_DAYS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FetchInterval != 30*time.Minute {
		t.Errorf("FetchInterval = %v", cfg.FetchInterval)
	}
	if cfg.ChartLocation.String() != "Europe/Berlin" {
		t.Errorf("ChartLocation = %v", cfg.ChartLocation)
	}
	if cfg.ForecastDays != 7 || len(cfg.Locations) != 1 {
		t.Errorf("unexpected config: %+v", cfg)
	}

	t.Setenv("FORECAST_DAYS", "30")
	if _, err := Load(); err == nil {
		t.Error("expected error for FORECAST_DAYS out of range")
	}

	t.Setenv("FORECAST_DAYS", "")
	t.Setenv("STORE_MAX_AGE", "forever")
	if _, err := Load(); err == nil {
		t.Error("expected error for invalid STORE_MAX_AGE")
	}
}
