// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package watermark persists the timestamp of the newest exported record so
// repeated export runs only append what is new.
package watermark

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pdiddy/chat-archive/internal/timefmt"
)

// layout writes ISO-8601 with a numeric offset, e.g.
// 2025-01-02T03:04:05.678+00:00.
const layout = "2006-01-02T15:04:05.999999-07:00"

// Store reads and writes the watermark file at Path.
type Store struct {
	Path string
}

// NewStore returns a Store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load returns the persisted watermark. A missing, unreadable, or
// unparseable file yields the zero time, which precedes every record.
func (s *Store) Load() time.Time {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return time.Time{}
	}
	ts, ok := timefmt.Parse(strings.TrimSpace(string(data)))
	if !ok {
		return time.Time{}
	}
	return ts
}

// Save overwrites the watermark with ts, written in UTC.
func (s *Store) Save(ts time.Time) error {
	if err := os.WriteFile(s.Path, []byte(Format(ts)), 0o644); err != nil {
		return fmt.Errorf("writing watermark %s: %w", s.Path, err)
	}
	return nil
}

// Format renders ts the way Save persists it.
func Format(ts time.Time) string {
	return ts.UTC().Format(layout)
}
