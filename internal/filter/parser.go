package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pfrederiksen/sane-sg23/internal/program"
)

var (
	sameMonthRange  = regexp.MustCompile(`(?i)^([a-z]+)\s+(\d{1,2})\s*-\s*(\d{1,2})$`)
	crossMonthRange = regexp.MustCompile(`(?i)^([a-z]+)\s+(\d{1,2})\s*-\s*([a-z]+)\s+(\d{1,2})$`)
	singleDay       = regexp.MustCompile(`(?i)^([a-z]+)\s+(\d{1,2})$`)
	catalogDate     = regexp.MustCompile(`^\d{2}-\d{2}$`)
)

// ParseDateRange parses a date range into inclusive catalog dates ("MM-DD").
//
// Supported formats:
//   - "Aug 8-10" or "August 8-10" - Same month, different days
//   - "Jul 31 - Aug 2" - Different months
//   - "Aug 8" - Single day
//   - "08-08" or "08-08..08-10" - Catalog dates
func ParseDateRange(input string) (from, to string, err error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", "", fmt.Errorf("date range cannot be empty")
	}

	if a, b, ok := strings.Cut(input, ".."); ok {
		a, b = strings.TrimSpace(a), strings.TrimSpace(b)
		if !validCatalogDate(a) || !validCatalogDate(b) {
			return "", "", fmt.Errorf("invalid date range: %s", input)
		}
		return orderedRange(a, b)
	}

	if validCatalogDate(input) {
		return input, input, nil
	}

	if m := sameMonthRange.FindStringSubmatch(input); m != nil {
		from, err := monthDay(m[1], m[2])
		if err != nil {
			return "", "", err
		}
		to, err := monthDay(m[1], m[3])
		if err != nil {
			return "", "", err
		}
		return orderedRange(from, to)
	}

	if m := crossMonthRange.FindStringSubmatch(input); m != nil {
		from, err := monthDay(m[1], m[2])
		if err != nil {
			return "", "", err
		}
		to, err := monthDay(m[3], m[4])
		if err != nil {
			return "", "", err
		}
		return orderedRange(from, to)
	}

	if m := singleDay.FindStringSubmatch(input); m != nil {
		day, err := monthDay(m[1], m[2])
		if err != nil {
			return "", "", err
		}
		return day, day, nil
	}

	return "", "", fmt.Errorf("unrecognized date range: %s", input)
}

func validCatalogDate(s string) bool {
	if !catalogDate.MatchString(s) {
		return false
	}
	_, err := time.Parse(program.DateLayout, s)
	return err == nil
}

func monthDay(monthName, dayText string) (string, error) {
	month := parseMonth(monthName)
	if month == 0 {
		return "", fmt.Errorf("invalid month: %s", monthName)
	}

	day, err := strconv.Atoi(dayText)
	if err != nil || day < 1 || day > 31 {
		return "", fmt.Errorf("invalid day: %s", dayText)
	}

	return fmt.Sprintf("%02d-%02d", month, day), nil
}

func orderedRange(from, to string) (string, string, error) {
	if from > to {
		return "", "", fmt.Errorf("range start %s is after end %s", from, to)
	}
	return from, to, nil
}

// parseMonth converts a month name or abbreviation to its number, 0 if unknown
func parseMonth(s string) time.Month {
	s = strings.ToLower(s)
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if s == name || s == name[:3] {
			return m
		}
	}
	return 0
}
