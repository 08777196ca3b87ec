package config

import (
	"fmt"
	"os"
)

// Config process configuration, loaded from ATLAS_* environment variables
// with demo-friendly defaults.
type Config struct {
	// StorePath is the embedded database file
	StorePath string

	Log  LogConfig
	Seed SeedConfig

	// ExportPath, when set, writes the cohort report workbook after startup
	ExportPath string
}

// LogConfig logging configuration
type LogConfig struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "json" or "console"
}

// SeedConfig synthetic generator configuration. The ratios are demo
// defaults, not clinical constants.
type SeedConfig struct {
	ResponderRatio     float64
	PositivityRate     float64
	BatchSize          int
	PerCell            bool
	CellsPerPopulation int

	// RandomSeed, when non-zero, makes generation reproducible
	RandomSeed int64
}

// Load returns the configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		StorePath: "immune_atlas.db",
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Seed: SeedConfig{
			ResponderRatio:     0.3,
			PositivityRate:     0.8,
			BatchSize:          1000,
			PerCell:            false,
			CellsPerPopulation: 100,
		},
	}
	cfg.LoadFromEnv("ATLAS")
	return cfg
}

// LoadFromEnv overrides fields from prefixed environment variables.
func (c *Config) LoadFromEnv(prefix string) {
	if path := os.Getenv(prefix + "_STORE_PATH"); path != "" {
		c.StorePath = path
	}
	if level := os.Getenv(prefix + "_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if format := os.Getenv(prefix + "_LOG_FORMAT"); format != "" {
		c.Log.Format = format
	}
	if ratio := os.Getenv(prefix + "_RESPONDER_RATIO"); ratio != "" {
		fmt.Sscanf(ratio, "%f", &c.Seed.ResponderRatio)
	}
	if rate := os.Getenv(prefix + "_POSITIVITY_RATE"); rate != "" {
		fmt.Sscanf(rate, "%f", &c.Seed.PositivityRate)
	}
	if size := os.Getenv(prefix + "_SEED_BATCH_SIZE"); size != "" {
		fmt.Sscanf(size, "%d", &c.Seed.BatchSize)
	}
	if perCell := os.Getenv(prefix + "_SEED_PER_CELL"); perCell != "" {
		c.Seed.PerCell = perCell == "true"
	}
	if cells := os.Getenv(prefix + "_SEED_CELLS_PER_POPULATION"); cells != "" {
		fmt.Sscanf(cells, "%d", &c.Seed.CellsPerPopulation)
	}
	if seed := os.Getenv(prefix + "_SEED_RANDOM_SEED"); seed != "" {
		fmt.Sscanf(seed, "%d", &c.Seed.RandomSeed)
	}
	if path := os.Getenv(prefix + "_EXPORT_PATH"); path != "" {
		c.ExportPath = path
	}
}
