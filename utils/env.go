package utils

import (
	"os"
	"strings"
	"time"
)

// EnvOrDefault returns the trimmed value of key, or def when unset or blank.
func EnvOrDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

// EnvDuration parses key as a time.Duration, falling back to def.
func EnvDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(EnvOrDefault(key, ""))
	if err != nil || d <= 0 {
		return def
	}
	return d
}
