package verify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmount(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		amount float64
		found  bool
	}{
		{"amount in sentence", "deposit 60", 60, true},
		{"bare number", "80", 80, true},
		{"decimal amount", "I sent 59.99 today", 59.99, true},
		{"first of several numbers", "sent 100 on 2024", 100, true},
		{"no number", "screenshot attached", 0, false},
		{"empty string", "", 0, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount, found := extractAmount(tc.input)
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.amount, amount)
		})
	}
}

func TestParseYesNo(t *testing.T) {
	testCases := []struct {
		input string
		yes   bool
		ok    bool
	}{
		{"yes", true, true},
		{"YES", true, true},
		{" y ", true, true},
		{"no", false, true},
		{"N", false, true},
		{"maybe", false, false},
		{"", false, false},
	}
	for _, tc := range testCases {
		yes, ok := parseYesNo(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		assert.Equal(t, tc.yes, yes, "input %q", tc.input)
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate(" 2024-01-15 ")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.January, d.Month())
	assert.Equal(t, 15, d.Day())

	for _, bad := range []string{"15/01/2024", "2024-1-15", "yesterday", ""} {
		_, err := parseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)

	testCases := []struct {
		name string
		date time.Time
		days int
	}{
		{"same day", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), 0},
		{"yesterday", time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC), 1},
		{"thirty days", time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), 30},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.days, daysSince(tc.date, now))
		})
	}
}
