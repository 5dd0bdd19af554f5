package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/i474232898/temperature-chart/internal/weather"
	"github.com/sony/gobreaker"
)

// OpenMeteoBaseURL is the Open-Meteo forecast endpoint. No API key is required.
const OpenMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteoProvider implements the weather.Provider interface for Open-Meteo.
// Its hourly response is already in the series shape, nulls included.
type OpenMeteoProvider struct {
	name    string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoProvider(client *http.Client, baseURL string) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = OpenMeteoBaseURL
	}
	return &OpenMeteoProvider{
		name:    "openmeteo",
		baseURL: baseURL,
		httpCfg: defaultHTTPConfig(client),
		circuit: newCircuitBreaker("openmeteo"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

func (p *OpenMeteoProvider) FetchSeries(ctx context.Context, loc weather.Location, days int) (weather.Series, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
		values.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
		values.Set("hourly", "temperature_2m")
		// Local wall-clock times, the same zone the keyed providers report in.
		values.Set("timezone", "auto")
		if days > 0 {
			values.Set("forecast_days", strconv.Itoa(days))
		}

		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	var payload struct {
		Hourly weather.Series `json:"hourly"`
	}
	if err := getJSON(ctx, p.httpCfg, p.circuit, buildRequest, &payload); err != nil {
		return weather.Series{}, err
	}

	return payload.Hourly, nil
}
