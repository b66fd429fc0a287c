// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package watermark

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    time.Time
	}{
		{
			name: "missing file",
			want: time.Time{},
		},
		{
			name:    "offset form",
			content: ptr("2025-01-02T03:04:05.678000+00:00\n"),
			want:    time.Date(2025, 1, 2, 3, 4, 5, 678000000, time.UTC),
		},
		{
			name:    "zulu form",
			content: ptr("2025-01-02T03:04:05Z"),
			want:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name:    "garbage",
			content: ptr("last tuesday"),
			want:    time.Time{},
		},
		{
			name:    "empty",
			content: ptr(""),
			want:    time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "last_entry_time.txt")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}
			got := NewStore(path).Load()
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_entry_time.txt")
	s := NewStore(path)

	ts := time.Date(2025, 6, 7, 17, 8, 9, 123456000, time.FixedZone("JST", 9*3600))
	require.NoError(t, s.Save(ts))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-07T08:08:09.123456+00:00", string(data))
	assert.True(t, ts.Equal(s.Load()))
}

func TestSave_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_entry_time.txt")
	s := NewStore(path)

	require.NoError(t, s.Save(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, s.Save(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01T00:00:00+00:00", string(data))
}

func TestSave_UnwritableDirectory(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "missing", "last_entry_time.txt"))
	assert.Error(t, s.Save(time.Now()))
}

func ptr(s string) *string { return &s }
