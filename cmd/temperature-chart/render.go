package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/i474232898/temperature-chart/internal/chart"
	"github.com/i474232898/temperature-chart/internal/weather"
	"github.com/i474232898/temperature-chart/internal/weather/providers"
)

type renderOptions struct {
	htmlPath  string
	width     int
	timezone  string
	latitude  float64
	longitude float64
	days      int
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [series.json|-]",
		Short: "Render a temperature series as a terminal preview or an HTML page",
		Long: `render reads a {"time": [...], "temperature_2m": [...]} document from a file
or stdin, or fetches one from Open-Meteo when --latitude and --longitude are set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.htmlPath, "html", "", "Write a Chart.js page to this path instead of printing a preview")
	cmd.Flags().IntVar(&opts.width, "width", 40, "Bar width of the terminal preview")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "UTC", "Timezone labels and tooltips are shown in")
	cmd.Flags().Float64Var(&opts.latitude, "latitude", 0, "Fetch from Open-Meteo for this latitude")
	cmd.Flags().Float64Var(&opts.longitude, "longitude", 0, "Fetch from Open-Meteo for this longitude")
	cmd.Flags().IntVar(&opts.days, "days", 2, "Forecast days to fetch from Open-Meteo")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts renderOptions) error {
	loc, err := time.LoadLocation(opts.timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}

	var series weather.Series
	title := chart.DatasetLabel
	if cmd.Flags().Changed("latitude") || cmd.Flags().Changed("longitude") {
		where := weather.Location{Latitude: opts.latitude, Longitude: opts.longitude}
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		p := providers.NewOpenMeteoProvider(&http.Client{Timeout: 10 * time.Second}, "")
		if series, err = p.FetchSeries(ctx, where, opts.days); err != nil {
			return fmt.Errorf("fetch series: %w", err)
		}
		title = fmt.Sprintf("%s: %s", chart.DatasetLabel, where)
	} else {
		if series, err = readSeries(cmd.InOrStdin(), args); err != nil {
			return err
		}
	}

	view := chart.NewFormatter(loc).Build(series)

	if opts.htmlPath != "" {
		page, err := chart.Page(title, view)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.htmlPath, page, 0o644); err != nil {
			return fmt.Errorf("write page: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Chart written to %s\n", opts.htmlPath)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), chart.RenderText(view, opts.width))
	return nil
}

func readSeries(stdin io.Reader, args []string) (weather.Series, error) {
	var series weather.Series

	r := stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return series, fmt.Errorf("open series: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&series); err != nil {
		return series, fmt.Errorf("decode series: %w", err)
	}
	return series, nil
}
