package importer

import (
	"strings"
	"time"
)

// Channel exports abbreviate months in German ("03-Okt-24").
var germanMonths = map[string]string{
	"Jan": "01", "Feb": "02", "Mär": "03", "Apr": "04", "Mai": "05", "Jun": "06",
	"Jul": "07", "Aug": "08", "Sep": "09", "Okt": "10", "Nov": "11", "Dez": "12",
}

// ConvertDate normalizes a channel date string to DD.MM.YYYY. It first
// tries the German DD-MMM-YY shape, then ISO YYYY-MM-DD with an optional
// time suffix. Anything unparseable is returned unchanged so one odd date
// never aborts a whole import.
func ConvertDate(raw string) string {
	parts := strings.Split(raw, "-")
	if len(parts) == 3 {
		if month, ok := germanMonths[parts[1]]; ok {
			return parts[0] + "." + month + ".20" + parts[2]
		}
	}

	s := raw
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("02.01.2006")
	}
	return raw
}

// Day-first layouts accepted by ParseDayFirst, tried in order. New formats
// are added here, not in calling code.
var dayFirstLayouts = []string{
	"02.01.2006",
	"2.1.2006",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"2006-01-02",
}

// ParseDayFirst parses an order date with day-before-month semantics,
// accepting the shapes ConvertDate emits plus common manual-entry variants.
func ParseDayFirst(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	var firstErr error
	for _, layout := range dayFirstLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
