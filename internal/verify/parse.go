package verify

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timeNow is swapped out in tests that pin the clock.
var timeNow = time.Now

var (
	// CR followed by 5-8 digits, matched after normalization.
	codePattern = regexp.MustCompile(`^CR[0-9]{5,8}$`)

	// First decimal number anywhere in free text or a photo caption.
	// No currency symbols, no locale-aware separators.
	amountPattern = regexp.MustCompile(`[0-9]+(?:\.[0-9]+)?`)
)

// extractAmount returns the first decimal number found in s.
func extractAmount(s string) (float64, bool) {
	match := amountPattern.FindString(s)
	if match == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// parseYesNo interprets a yes/no answer, accepting y/n shorthands
// case-insensitively. ok is false for anything else.
func parseYesNo(s string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return true, true
	case "no", "n":
		return false, true
	}
	return false, false
}

// parseDate parses a YYYY-MM-DD calendar date.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(s))
}

// daysSince counts whole calendar days between d and now, both truncated
// to UTC midnight.
func daysSince(d time.Time, now time.Time) int {
	day := 24 * time.Hour
	return int(now.UTC().Truncate(day).Sub(d.UTC().Truncate(day)) / day)
}
