package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/i474232898/temperature-chart/internal/weather"
	"github.com/sony/gobreaker"
)

// OpenWeatherBaseURL is the OpenWeatherMap 5 day / 3 hour forecast endpoint.
const OpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5/forecast"

// openWeatherSamplesPerDay is the number of 3-hourly entries in a day.
const openWeatherSamplesPerDay = 8

// OpenWeatherProvider implements the weather.Provider interface for OpenWeatherMap.
type OpenWeatherProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey, baseURL string) *OpenWeatherProvider {
	if baseURL == "" {
		baseURL = OpenWeatherBaseURL
	}
	return &OpenWeatherProvider{
		name:    "openweathermap",
		apiKey:  apiKey,
		baseURL: baseURL,
		httpCfg: defaultHTTPConfig(client),
		circuit: newCircuitBreaker("openweather"),
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

func (p *OpenWeatherProvider) FetchSeries(ctx context.Context, loc weather.Location, days int) (weather.Series, error) {
	if p.apiKey == "" {
		return weather.Series{}, fmt.Errorf("openweather: %w", errMissingAPIKey)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("appid", p.apiKey)
		values.Set("units", "metric")
		values.Set("lat", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
		values.Set("lon", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
		if days > 0 {
			values.Set("cnt", strconv.Itoa(days*openWeatherSamplesPerDay))
		}

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
		} `json:"list"`
		City struct {
			// Timezone is the shift in seconds from UTC.
			Timezone int `json:"timezone"`
		} `json:"city"`
	}
	if err := getJSON(ctx, p.httpCfg, p.circuit, buildRequest, &payload); err != nil {
		return weather.Series{}, err
	}

	zone := time.FixedZone("", payload.City.Timezone)
	var out weather.Series
	for _, item := range payload.List {
		ts := time.Unix(item.Dt, 0).In(zone)
		out.Time = append(out.Time, ts.Format(weather.TimeLayout))
		out.Temperature2m = append(out.Temperature2m, weather.Temp(item.Main.Temp))
	}

	return out, nil
}
