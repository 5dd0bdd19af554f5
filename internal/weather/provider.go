package weather

import (
	"context"
)

// ProviderSeries is a single provider's hourly series, normalized to TimeLayout.
type ProviderSeries struct {
	ProviderName string
	Series       Series
}

// Provider abstracts a temperature data source (e.g. Open-Meteo, WeatherAPI, OpenWeatherMap).
type Provider interface {
	Name() string
	FetchSeries(ctx context.Context, loc Location, days int) (Series, error)
}

// Store is the contract the in-memory store (and any future persistent store) must satisfy.
type Store interface {
	Save(series StoredSeries) StoredSeries
	Get(id string) (StoredSeries, error)
	GetLatest(loc Location) (StoredSeries, error)
}
