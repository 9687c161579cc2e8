package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWithinRange(t *testing.T) {
	tests := []struct {
		name string
		date string
		from string
		to   string
		want bool
	}{
		{"inside", "2024-06-15", "2024-06-01", "2024-06-30", true},
		{"after to", "2024-07-01", "2024-06-01", "2024-06-30", false},
		{"before from", "2024-05-31", "2024-06-01", "2024-06-30", false},
		{"on from boundary", "2024-06-01", "2024-06-01", "2024-06-30", true},
		{"on to boundary", "2024-06-30", "2024-06-01", "2024-06-30", true},
		{"open from", "2024-01-01", "", "2024-06-30", true},
		{"open to", "2030-01-01", "2024-06-01", "", true},
		{"no bounds", "2024-06-15", "", "", true},
		{"empty date", "", "2024-06-01", "2024-06-30", false},
		{"garbage date", "not-a-date", "", "", false},
		{"garbage bound is open", "2024-06-15", "garbage", "", true},
		{"rfc3339 date", "2024-06-15T10:30:00Z", "2024-06-01", "2024-06-30", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWithinRange(tt.date, tt.from, tt.to))
		})
	}
}
