// Package config reads typed settings from the environment with
// fallbacks. Malformed values fall back rather than abort: a bad knob
// should not keep the service from starting with defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetInt parses key as an integer, falling back when unset or malformed.
func GetInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// GetFloat parses key as a float, falling back when unset or malformed.
func GetFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

// GetSeconds parses key as a (possibly fractional) number of seconds.
func GetSeconds(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed < 0 {
		return fallback
	}
	return time.Duration(parsed * float64(time.Second))
}
