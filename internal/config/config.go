package config

import (
	"os"
	"strconv"
)

// Config holds run defaults sourced from the environment. Command-line flags
// are seeded from these values, so explicit flags always win.
type Config struct {
	Mode      string  // "auto", "point", "interval"
	TierName  string  // tier name written into the TextGrid
	Delimiter string  // input field separator
	Tail      float64 // seconds added after the last timestamp for xmax
	TimeCol   int     // 0-based column index for times
	LabelCol  int     // 0-based column index for labels
	LogLevel  string  // "debug", "info", "warn", "error"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Mode:      getenv("GRIDGEN_MODE", "auto"),
		TierName:  getenv("GRIDGEN_TIER_NAME", "events"),
		Delimiter: getenv("GRIDGEN_DELIMITER", "\t"),
		Tail:      getenvFloat("GRIDGEN_TAIL", 1.0),
		TimeCol:   getenvInt("GRIDGEN_TIME_COL", 0),
		LabelCol:  getenvInt("GRIDGEN_LABEL_COL", 1),
		LogLevel:  getenv("GRIDGEN_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
