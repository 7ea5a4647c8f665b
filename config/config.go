package config

import (
	"os"
	"strconv"
)

// Settings holds everything the service reads from the environment.
// It is built once in main and never mutated afterwards.
type Settings struct {
	Addr           string
	Model          string
	MaxSourceChars int
	MaxUploadMB    int64

	DefaultTemperature float64
	DefaultMaxPages    int
	MaxPagesLimit      int
}

// Load reads the environment and returns Settings with defaults filled
// in for anything unset.
func Load() Settings {
	s := Settings{
		Addr:               ":8080",
		Model:              "gpt-4o-mini",
		MaxSourceChars:     40000,
		MaxUploadMB:        25,
		DefaultTemperature: 0.2,
		DefaultMaxPages:    20,
		MaxPagesLimit:      200,
	}
	if v := os.Getenv("PORT"); v != "" {
		s.Addr = ":" + v
	}
	if v := os.Getenv("NOTES_MODEL"); v != "" {
		s.Model = v
	}
	if v := os.Getenv("NOTES_MAX_SOURCE_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.MaxSourceChars = n
		}
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.MaxUploadMB = int64(n)
		}
	}
	return s
}
