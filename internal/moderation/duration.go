// Package moderation implements the warning and mute enforcement engine:
// duration parsing, the persisted warning store, content policy checks,
// the mute scheduler and the warning escalation state machine.
package moderation

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrInvalidDuration is returned for malformed or out-of-range duration tokens
var ErrInvalidDuration = errors.New("invalid duration token")

// maxDuration caps accepted durations at roughly 100 years; anything longer
// is treated as scheduler misuse.
const maxDuration = 100 * 365 * 24 * time.Hour

// ParseDuration converts a compact token such as "10m", "2h" or "1d" into a
// time.Duration. The token must be a positive integer immediately followed
// by exactly one unit suffix: m (minutes), h (hours) or d (days).
func ParseDuration(token string) (time.Duration, error) {
	if len(token) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
	}

	var unit time.Duration
	switch token[len(token)-1] {
	case 'm':
		unit = time.Minute
	case 'h':
		unit = time.Hour
	case 'd':
		unit = 24 * time.Hour
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
	}

	digits := token[:len(token)-1]
	if digits[0] < '0' || digits[0] > '9' {
		// strconv accepts a leading sign; the token format does not
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, token)
	}

	if n > int64(maxDuration/unit) {
		return 0, fmt.Errorf("%w: %q exceeds the maximum duration", ErrInvalidDuration, token)
	}

	return time.Duration(n) * unit, nil
}
