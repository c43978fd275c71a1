package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/Arun1457/olympics-dashboard/internal/sampledata"
)

// Default configuration constants.
const (
	defaultRows       = 5000
	defaultAthletes   = 400
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		outDir   = flag.String("out", "data", "Output directory for the two source files")
		rows     = flag.Int("rows", defaultRows, "Number of athlete-event rows to generate")
		athletes = flag.Int("athletes", defaultAthletes, "Size of the athlete roster")
		seed     = flag.Int64("seed", 0, "Seed for deterministic output (0 picks a time-based seed)")
		workers  = flag.Int("workers", runtime.NumCPU(), "Number of concurrent generation workers")
		baseURL  = flag.String("url", "", "Base URL of a running dashboard to smoke check (empty skips the checks)")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout for the smoke checks")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		sampledata.ShowHelp()
		return
	}

	if err := sampledata.SetupLogging(*verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &sampledata.Config{
		OutDir:   *outDir,
		Rows:     *rows,
		Athletes: *athletes,
		Seed:     *seed,
		Workers:  *workers,
		BaseURL:  *baseURL,
		Timeout:  *timeout,
		Verbose:  *verbose,
	}

	if err := sampledata.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Sample data run failed: " + err.Error() + "\n")
		return
	}
}
