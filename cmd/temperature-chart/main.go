// Package main provides the CLI entry point for temperature-chart.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "temperature-chart",
		Short: "Hourly temperature line charts",
		Long: `temperature-chart serves hourly temperature series as Chart.js line charts
and renders a terminal preview of a series.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd(), newRenderCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
