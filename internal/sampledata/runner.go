package sampledata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/Arun1457/olympics-dashboard/pkg/logger"
)

// Run executes the sample data tool: generate a roster, generate the
// athlete-event rows, write the two source files, and optionally smoke
// check a running dashboard.
func Run(ctx context.Context, cfg *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger.Get().Info(ctx, "starting sample data run",
		logger.String("outDir", cfg.OutDir),
		logger.Int("rows", cfg.Rows),
		logger.Int("athletes", cfg.Athletes),
		logger.Int64("seed", cfg.Seed),
		logger.Int("workers", cfg.Workers),
		logger.String("baseURL", cfg.BaseURL),
		logger.Any("verbose", cfg.Verbose))

	roster := generateRoster(cfg, rand.New(rand.NewSource(cfg.Seed)))
	stats.AthletesGenerated = len(roster)

	rows, err := generateRows(ctx, cfg, roster, stats)
	if err != nil {
		return fmt.Errorf("row generation failed: %w", err)
	}

	if err := writeFiles(ctx, cfg, rows, stats); err != nil {
		return fmt.Errorf("file writing failed: %w", err)
	}

	if cfg.BaseURL != "" {
		if err := verifyService(ctx, cfg, stats); err != nil {
			return fmt.Errorf("service verification failed: %w", err)
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "sample data run completed")
	return nil
}

// displayFinalStats prints the final run statistics.
func displayFinalStats(stats *Stats) {
	var rowsPerSecond float64
	if stats.Duration > 0 {
		rowsPerSecond = float64(stats.RowsGenerated) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("rowsGenerated", stats.RowsGenerated),
		logger.Int("medalsAwarded", stats.MedalsAwarded),
		logger.Int("athletesGenerated", stats.AthletesGenerated),
		logger.Int("regionsGenerated", stats.RegionsGenerated),
		logger.Int("checksRun", stats.ChecksRun),
		logger.Int("checksFailed", stats.ChecksFailed),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("rowsPerSecond", rowsPerSecond))
}
