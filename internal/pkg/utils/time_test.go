package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBeforeToday(t *testing.T) {
	location := time.FixedZone("UTC+7", 7*60*60)
	now := time.Date(2026, time.March, 10, 23, 30, 0, 0, location)

	tests := []struct {
		name     string
		date     string
		expected bool
	}{
		{name: "Yesterday", date: "2026-03-09", expected: true},
		{name: "Today late in the day", date: "2026-03-10", expected: false},
		{name: "Tomorrow", date: "2026-03-11", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, err := IsBeforeToday(tt.date, now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, before)
		})
	}

	t.Run("Malformed date", func(t *testing.T) {
		_, err := IsBeforeToday("10/03/2026", now)
		assert.Error(t, err, "non ISO dates should be rejected")
	})
}
