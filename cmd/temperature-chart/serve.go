package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/temperature-chart/internal/api/http"
	"github.com/i474232898/temperature-chart/internal/chart"
	"github.com/i474232898/temperature-chart/internal/config"
	"github.com/i474232898/temperature-chart/internal/scheduler"
	"github.com/i474232898/temperature-chart/internal/store"
	"github.com/i474232898/temperature-chart/internal/weather"
	"github.com/i474232898/temperature-chart/internal/weather/providers"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the chart HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

// serve runs until ctx is cancelled, SIGINT or SIGTERM arrives, or the
// listener fails.
func serve(ctx context.Context) error {

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	// Open-Meteo needs no key; the others join only when configured.
	provs := []weather.Provider{providers.NewOpenMeteoProvider(httpClient, "")}
	if cfg.WeatherAPIKey != "" {
		provs = append(provs, providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIKey, ""))
	}
	if cfg.OpenWeatherAPIKey != "" {
		provs = append(provs, providers.NewOpenWeatherProvider(httpClient, cfg.OpenWeatherAPIKey, ""))
	}

	service := weather.NewService(memStore, provs, cfg.ForecastDays)

	sched := scheduler.New(cfg.Locations, cfg.FetchInterval, cfg.ForecastDays, service)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "temperature-chart",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "temperature-chart",
		})
	})

	httpapi.RegisterRoutes(app, service, chart.NewFormatter(cfg.ChartLocation))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("INFO: listening on :%s with %d providers", cfg.Port, len(provs))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on :%s: %w", cfg.Port, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
	return nil
}
