// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package timefmt parses the ISO-8601 timestamps found in activity exports
// and in the watermark file.
package timefmt

import (
	"strings"
	"time"
)

// layouts are tried in order. Layouts without a zone are read as UTC.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse parses an ISO-8601 timestamp. A trailing "Z" is accepted as the UTC
// offset. It reports false when no layout matches.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
