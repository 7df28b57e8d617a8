package status

import (
	"testing"
	"time"
)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0m"},
		{"minutes only", 42 * time.Minute, "42m"},
		{"hours and minutes", 3*time.Hour + 4*time.Minute, "3h 4m"},
		{"days", 50*time.Hour + 12*time.Minute, "2d 2h 12m"},
		{"rounds seconds", 90 * time.Second, "2m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatUptime(tt.d); got != tt.want {
				t.Errorf("formatUptime(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}
