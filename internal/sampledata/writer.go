package sampledata

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Arun1457/olympics-dashboard/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Source file names written into the output directory.
const (
	athletesFileName = "athlete_events.csv"
	regionsFileName  = "noc_regions.csv"
)

var athletesHeader = []string{
	"ID", "Name", "Sex", "Age", "Height", "Weight", "Team", "NOC",
	"Games", "Year", "Season", "City", "Sport", "Event", "Medal",
}

var regionsHeader = []string{"NOC", "region", "notes"}

// writeFiles writes the two source files the dashboard loads at
// startup: the athlete-event rows and the NOC region lookup.
func writeFiles(ctx context.Context, cfg *Config, rows []Row, stats *Stats) error {
	if err := os.MkdirAll(cfg.OutDir, directoryPermission); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	athletesPath := filepath.Join(cfg.OutDir, athletesFileName)
	if err := writeAthletesFile(athletesPath, rows); err != nil {
		return err
	}

	regionsPath := filepath.Join(cfg.OutDir, regionsFileName)
	if err := writeRegionsFile(regionsPath); err != nil {
		return err
	}
	stats.RegionsGenerated = len(nocPool)

	logger.Get().Info(ctx, "source files written",
		logger.String("athletes", athletesPath),
		logger.String("regions", regionsPath),
		logger.Int("rows", len(rows)),
		logger.Int("nocs", len(nocPool)))
	return nil
}

func writeAthletesFile(path string, rows []Row) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(athletesHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		record := []string{
			strconv.Itoa(r.ID),
			r.Name,
			r.Sex,
			r.Age,
			r.Height,
			r.Weight,
			r.Team,
			r.NOC,
			r.Games,
			strconv.Itoa(r.Year),
			r.Season,
			r.City,
			r.Sport,
			r.Event,
			r.Medal,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

func writeRegionsFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write(regionsHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, entry := range nocPool {
		if err := w.Write([]string{entry.NOC, entry.Region, entry.Notes}); err != nil {
			return fmt.Errorf("failed to write NOC %s: %w", entry.NOC, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}
