package sampledata

import "time"

// Config holds configuration for the sample data tool
type Config struct {
	OutDir   string        // Directory the two source files are written to
	Rows     int           // Number of athlete-event rows to generate
	Athletes int           // Size of the synthetic athlete roster
	Seed     int64         // Seed for deterministic output; 0 means time-based
	Workers  int           // Number of concurrent generation workers
	BaseURL  string        // When set, also smoke-check a running service
	Timeout  time.Duration // HTTP request timeout for the smoke checks
	Verbose  bool          // Enable verbose logging
}

// Stats holds generation and verification statistics
type Stats struct {
	RowsGenerated     int
	MedalsAwarded     int
	AthletesGenerated int
	RegionsGenerated  int
	ChecksRun         int
	ChecksFailed      int
	StartTime         time.Time
	EndTime           time.Time
	Duration          time.Duration
}
