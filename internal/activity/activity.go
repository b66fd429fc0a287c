// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package activity loads Takeout activity exports and selects the records
// belonging to one product.
package activity

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/pdiddy/chat-archive/pkg/types"
)

var (
	// ErrNotFound reports a missing input file.
	ErrNotFound = errors.New("input file not found")

	// ErrMalformed reports input that does not decode as an array of records.
	ErrMalformed = errors.New("input is not a valid activity export")
)

// Read decodes the activity export at path.
func Read(path string) ([]types.ActivityRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var records []types.ActivityRecord
	if err := sonic.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return records, nil
}

// Messages formats the user-facing lines Load prints on failure.
type Messages interface {
	T(key string, args ...any) string
}

// Load is Read with soft failure: any error is reported on w and yields an
// empty record set.
func Load(path string, msgs Messages, w io.Writer) []types.ActivityRecord {
	records, err := Read(path)
	switch {
	case err == nil:
		return records
	case errors.Is(err, ErrNotFound):
		fmt.Fprintln(w, msgs.T("file_not_found", path))
	case errors.Is(err, ErrMalformed):
		fmt.Fprintln(w, msgs.T("json_decode_error", err))
	default:
		fmt.Fprintln(w, msgs.T("error_occurred", err))
	}
	return nil
}

// Filter returns the records whose header contains marker. Matching is
// case-sensitive.
func Filter(records []types.ActivityRecord, marker string) []types.ActivityRecord {
	var out []types.ActivityRecord
	for _, r := range records {
		if strings.Contains(r.Header, marker) {
			out = append(out, r)
		}
	}
	return out
}

// Chronological returns records in reverse order. Takeout lists activity
// newest first.
func Chronological(records []types.ActivityRecord) []types.ActivityRecord {
	out := make([]types.ActivityRecord, len(records))
	for i, r := range records {
		out[len(records)-1-i] = r
	}
	return out
}
