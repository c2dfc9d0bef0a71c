// Package config provides engine tuning configuration.
// It loads configuration from environment variables with sensible defaults.
// The heuristic thresholds live here rather than as literals inside the
// engines so they can be tuned without touching algorithm structure.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all engine tuning configuration.
type Config struct {
	Payday Payday
	Goals  Goals
	Income Income
}

// Payday holds the payday-detection heuristic thresholds.
type Payday struct {
	// ToleranceDays is the accepted deviation, in days, between an observed
	// gap and a cadence's nominal gap length.
	ToleranceDays int
	// MinOccurrences is the minimum number of payments a payee needs before
	// a pattern is considered at all.
	MinOccurrences int
	// MinConfidence discards detected patterns scoring below it.
	MinConfidence float64
	// SamplePenalty dampens confidence for small samples: a pattern with n
	// gaps is scaled by n/(n+SamplePenalty).
	SamplePenalty float64
	// AnchorShare is the share of payment dates that must land on two
	// month-day anchors for a cadence to classify as semi-monthly.
	AnchorShare float64
}

// Goals holds goal status classification tuning.
type Goals struct {
	// BehindPaceRatio marks a goal behind when its actual daily saving pace
	// is below the required pace times this ratio.
	BehindPaceRatio float64
}

// Income holds monthly-income estimation tuning.
type Income struct {
	// SamplePenalty dampens estimate confidence for small samples, same
	// shape as Payday.SamplePenalty.
	SamplePenalty float64
}

// Default returns the engine defaults without reading the environment.
func Default() *Config {
	return &Config{
		Payday: Payday{
			ToleranceDays:  3,
			MinOccurrences: 3,
			MinConfidence:  0.5,
			SamplePenalty:  2.0,
			AnchorShare:    0.7,
		},
		Goals: Goals{
			BehindPaceRatio: 0.9,
		},
		Income: Income{
			SamplePenalty: 2.0,
		},
	}
}

// Load returns the defaults overridden by ENGINE_* environment variables.
// A .env file is honored when present (development only).
func Load() *Config {
	_ = godotenv.Load()

	cfg := Default()
	cfg.Payday.ToleranceDays = getEnvAsInt("ENGINE_PAYDAY_TOLERANCE_DAYS", cfg.Payday.ToleranceDays)
	cfg.Payday.MinOccurrences = getEnvAsInt("ENGINE_PAYDAY_MIN_OCCURRENCES", cfg.Payday.MinOccurrences)
	cfg.Payday.MinConfidence = getEnvAsFloat("ENGINE_PAYDAY_MIN_CONFIDENCE", cfg.Payday.MinConfidence)
	cfg.Payday.SamplePenalty = getEnvAsFloat("ENGINE_PAYDAY_SAMPLE_PENALTY", cfg.Payday.SamplePenalty)
	cfg.Payday.AnchorShare = getEnvAsFloat("ENGINE_PAYDAY_ANCHOR_SHARE", cfg.Payday.AnchorShare)
	cfg.Goals.BehindPaceRatio = getEnvAsFloat("ENGINE_GOAL_BEHIND_PACE_RATIO", cfg.Goals.BehindPaceRatio)
	cfg.Income.SamplePenalty = getEnvAsFloat("ENGINE_INCOME_SAMPLE_PENALTY", cfg.Income.SamplePenalty)
	return cfg
}

// Helper functions for environment variable parsing

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
