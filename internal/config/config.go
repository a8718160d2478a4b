// Package config resolves runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults applied when neither flags nor environment say otherwise.
const (
	DefaultBankPath     = "data.csv"
	DefaultKnowledgeDir = "knowledge"
	DefaultVolume       = 0.5
)

// Config is the resolved runtime configuration. DBPath may be empty, in
// which case the store falls back to its XDG default.
type Config struct {
	DBPath       string
	BankPath     string
	KnowledgeDir string
	Volume       float64
}

// Load reads an optional .env file from the working directory and then the
// process environment. A missing .env is not an error.
func Load() (Config, error) {
	// Values already set in the environment win over the file.
	_ = godotenv.Load()

	cfg := Config{
		DBPath:       os.Getenv("INTERQ_DB"),
		BankPath:     envOr("INTERQ_BANK", DefaultBankPath),
		KnowledgeDir: envOr("INTERQ_KNOWLEDGE", DefaultKnowledgeDir),
		Volume:       DefaultVolume,
	}

	if raw := os.Getenv("INTERQ_VOLUME"); raw != "" {
		vol, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse INTERQ_VOLUME %q: %w", raw, err)
		}
		cfg.Volume = clampVolume(vol)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
