package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // CHART_TIMEZONE must resolve in minimal images

	"github.com/joho/godotenv"

	"github.com/i474232898/temperature-chart/internal/weather"
)

type AppConfig struct {
	OpenWeatherAPIKey string
	WeatherAPIKey     string

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	// FetchInterval controls how often we refresh series for each location.
	FetchInterval time.Duration

	// ForecastDays is the horizon requested from providers.
	ForecastDays int

	// Locations to track.
	Locations []weather.Location

	// ChartLocation is the timezone axis labels and tooltips are shown in.
	ChartLocation *time.Location

	// In-memory store retention.
	StoreMaxHistory int           // max number of series per location (0 = unlimited)
	StoreMaxAge     time.Duration // max age of series (0 = unlimited)

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	// Scheduler interval: default 60 minutes, Open-Meteo updates hourly.
	if cfg.FetchInterval, err = getenvDuration("FETCH_INTERVAL", "60m"); err != nil {
		return nil, err
	}

	cfg.ForecastDays = getenvInt("FORECAST_DAYS", 7)
	if cfg.ForecastDays < 1 || cfg.ForecastDays > 16 {
		return nil, fmt.Errorf("invalid FORECAST_DAYS %d: must be between 1 and 16", cfg.ForecastDays)
	}

	// Store retention.
	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 24) // roughly a day at hourly refreshes
	if cfg.StoreMaxAge, err = getenvDuration("STORE_MAX_AGE", "24h"); err != nil {
		return nil, err
	}

	cfg.ChartLocation, err = time.LoadLocation(getenvDefault("CHART_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid CHART_TIMEZONE: %w", err)
	}

	cfg.Port = getenvDefault("PORT", "8080")

	locs, err := ParseLocations(os.Getenv("WEATHER_LOCATIONS"))
	if err != nil {
		return nil, err
	}
	cfg.Locations = locs

	return cfg, nil
}

// ParseLocations reads "name:lat:lon;..." entries. Series are always fetched
// in the location's own time; CHART_TIMEZONE only affects display.
func ParseLocations(s string) ([]weather.Location, error) {
	var locs []weather.Location
	for _, entry := range strings.Split(s, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid location %q: want name:lat:lon", entry)
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil || lat < -90 || lat > 90 {
			return nil, fmt.Errorf("invalid latitude in %q", entry)
		}
		lon, err := strconv.ParseFloat(parts[2], 64)
		if err != nil || lon < -180 || lon > 180 {
			return nil, fmt.Errorf("invalid longitude in %q", entry)
		}
		locs = append(locs, weather.Location{Name: parts[0], Latitude: lat, Longitude: lon})
	}

	return locs, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
