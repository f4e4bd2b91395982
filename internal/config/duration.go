package config

import (
	"fmt"
	"strings"
	"time"
)

// OptionalDuration parses a duration string. An empty value means "unset" and yields zero.
func OptionalDuration(value string) (time.Duration, error) {
	candidate := strings.TrimSpace(value)
	if candidate == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(candidate)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", candidate, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration %q must not be negative", candidate)
	}
	return d, nil
}
