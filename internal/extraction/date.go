package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateRx matches YYYY[-/]M[-/]D or D[-/]M[-/]YYYY with 4-digit years in the
// 2000s and 1-2 digit months and days.
var dateRx = regexp.MustCompile(
	`\b(20\d{2}[-/](0?[1-9]|1[0-2])[-/](0?[1-9]|[12]\d|3[01])|` +
		`(0?[1-9]|[12]\d|3[01])[-/](0?[1-9]|1[0-2])[-/](20\d{2}))\b`)

// extractDate finds the first calendar-date-shaped substring and normalizes
// it to ISO-8601. If the matched digits do not form a valid calendar date,
// the raw match is kept verbatim; confidence stays 0.9 either way because a
// date-shaped token was present.
func extractDate(text string) (*string, float64) {
	raw := dateRx.FindString(text)
	if raw == "" {
		return nil, 0.2
	}

	value := raw
	if iso, ok := normalizeDate(raw); ok {
		value = iso
	}
	return &value, 0.9
}

// normalizeDate disambiguates by which group carries the 4-digit year:
// year-first means YMD, otherwise DMY.
func normalizeDate(raw string) (string, bool) {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '-' || r == '/'
	})
	if len(parts) != 3 {
		return "", false
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", false
		}
		nums[i] = n
	}

	var year, month, day int
	if len(parts[0]) == 4 {
		year, month, day = nums[0], nums[1], nums[2]
	} else {
		day, month, year = nums[0], nums[1], nums[2]
	}

	// time.Date silently rolls invalid dates forward (Feb 30 -> Mar 2), so
	// check the components round-trip.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
