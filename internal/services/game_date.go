package services

import (
	"strings"
	"time"

	"github.com/samber/oops"
)

// gameDateLayouts are the ISO-8601 shapes accepted for a game's scheduled date, tried in order.
var gameDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseGameDate parses an ISO-8601 date. A trailing "Z" is rewritten to "+00:00" first.
// Values without an offset are read as UTC. The result is always in UTC.
func ParseGameDate(value string) (time.Time, error) {
	normalized := strings.TrimSpace(value)
	if strings.HasSuffix(normalized, "Z") {
		normalized = strings.TrimSuffix(normalized, "Z") + "+00:00"
	}

	for _, layout := range gameDateLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, oops.Code(CodeInvalidDate).
		With("date", value).
		Errorf("Invalid date format")
}
