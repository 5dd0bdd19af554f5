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

// WeatherAPIBaseURL is the WeatherAPI.com forecast endpoint.
const WeatherAPIBaseURL = "https://api.weatherapi.com/v1/forecast.json"

const weatherAPITimeLayout = "2006-01-02 15:04"

// WeatherAPIProvider implements the weather.Provider interface for WeatherAPI.com.
type WeatherAPIProvider struct {
	name    string
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewWeatherAPIProvider(client *http.Client, apiKey, baseURL string) *WeatherAPIProvider {
	if baseURL == "" {
		baseURL = WeatherAPIBaseURL
	}
	return &WeatherAPIProvider{
		name:    "weatherapi",
		apiKey:  apiKey,
		baseURL: baseURL,
		httpCfg: defaultHTTPConfig(client),
		circuit: newCircuitBreaker("weatherapi"),
	}
}

func (p *WeatherAPIProvider) Name() string {
	return p.name
}

func (p *WeatherAPIProvider) FetchSeries(ctx context.Context, loc weather.Location, days int) (weather.Series, error) {
	if p.apiKey == "" {
		return weather.Series{}, fmt.Errorf("weatherapi: %w", errMissingAPIKey)
	}
	if days <= 0 {
		days = 1
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("key", p.apiKey)
		// WeatherAPI uses "q" for location; it accepts "lat,lon".
		values.Set("q", fmt.Sprintf("%f,%f", loc.Latitude, loc.Longitude))
		values.Set("days", strconv.Itoa(days))
		values.Set("aqi", "no")
		values.Set("alerts", "no")

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		Forecast struct {
			Forecastday []struct {
				Hour []struct {
					Time  string  `json:"time"`
					TempC float64 `json:"temp_c"`
				} `json:"hour"`
			} `json:"forecastday"`
		} `json:"forecast"`
	}
	if err := getJSON(ctx, p.httpCfg, p.circuit, buildRequest, &payload); err != nil {
		return weather.Series{}, err
	}

	var out weather.Series
	for _, day := range payload.Forecast.Forecastday {
		for _, h := range day.Hour {
			// Hour times are already local to the location.
			ts, err := time.Parse(weatherAPITimeLayout, h.Time)
			if err != nil {
				return weather.Series{}, fmt.Errorf("weatherapi: invalid hour time %q: %w", h.Time, err)
			}
			out.Time = append(out.Time, ts.Format(weather.TimeLayout))
			out.Temperature2m = append(out.Temperature2m, weather.Temp(h.TempC))
		}
	}

	return out, nil
}
