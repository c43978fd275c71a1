package sampledata

import (
	"fmt"
	"os"

	"github.com/Arun1457/olympics-dashboard/pkg/logger"
)

// SetupLogging initializes the structured logger for the CLI run.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		if err := logger.SetLevelString("debug"); err != nil {
			return fmt.Errorf("failed to set log level: %w", err)
		}
	}
	return nil
}

// ShowHelp prints usage information for the sample data tool.
func ShowHelp() {
	os.Stdout.WriteString(`Olympics Sample Data Tool
=========================

Generates a synthetic pair of dashboard source files, athlete_events.csv
and noc_regions.csv, with realistic shapes: stable athlete identities
across editions, one Gold/Silver/Bronze per generated final, NA cells
for missing ages and measurements, and a NOC without a region name so
the unmatched-region path gets exercised. Optionally smoke checks a
running dashboard afterwards.

Usage:
  go run cmd/sample-data/main.go [options]

Options:
  -out string
        Output directory for the two source files (default "data")
  -rows int
        Number of athlete-event rows to generate (default 5000)
  -athletes int
        Size of the athlete roster (default 400)
  -seed int
        Seed for deterministic output; 0 picks a time-based seed
  -workers int
        Number of concurrent generation workers (default CPU cores)
  -url string
        Base URL of a running dashboard to smoke check (default: skip)
  -timeout duration
        HTTP request timeout for the smoke checks (default 30s)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Generate the default dataset into ./data
  go run cmd/sample-data/main.go

  # Reproducible large dataset
  go run cmd/sample-data/main.go -rows 50000 -seed 42 -out testdata

  # Generate and then smoke check a running dashboard
  go run cmd/sample-data/main.go -url http://localhost:9080
`)
}
