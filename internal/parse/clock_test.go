package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  Clock
		expectErr bool
	}{
		{
			name:     "Morning time",
			raw:      "08:00",
			expected: Clock(8 * 60),
		},
		{
			name:     "Evening time",
			raw:      "18:30",
			expected: Clock(18*60 + 30),
		},
		{
			name:     "Midnight",
			raw:      "00:00",
			expected: Clock(0),
		},
		{
			name:     "Single digit hour",
			raw:      "7:05",
			expected: Clock(7*60 + 5),
		},
		{
			name:      "Hour out of range",
			raw:       "24:00",
			expectErr: true,
		},
		{
			name:      "Minute out of range",
			raw:       "12:60",
			expectErr: true,
		},
		{
			name:      "Garbage",
			raw:       "noon",
			expectErr: true,
		},
		{
			name:      "Empty string",
			raw:       "",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseClock(tc.raw)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestClockOf(t *testing.T) {
	at := time.Date(2026, 3, 9, 23, 15, 42, 0, time.UTC)
	assert.Equal(t, Clock(23*60+15), ClockOf(at))
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "07:05", Clock(7*60+5).String())
	assert.Equal(t, "18:00", Clock(18*60).String())
}
