// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package activity

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/chat-archive/pkg/types"
)

// keyMessages echoes the key and arguments so tests can see which message fired.
type keyMessages struct{}

func (keyMessages) T(key string, args ...any) string {
	return fmt.Sprint(append([]any{key, ": "}, args...)...)
}

const sampleExport = `[
  {
    "header": "Gemini Apps",
    "title": "Prompted second",
    "time": "2025-01-02T00:00:00.000Z",
    "products": ["Gemini Apps"],
    "subtitles": [{"name": "Prompt", "value": "hi"}],
    "safeHtmlItem": [{"html": "<p>hello</p>"}]
  },
  {
    "header": "Search",
    "title": "Searched for cats",
    "time": "2025-01-01T12:00:00.000Z"
  },
  {
    "header": "Gemini Apps",
    "title": "Prompted first",
    "time": "2025-01-01T00:00:00.000Z",
    "subtitles": [{"value": "no name"}],
    "unknownField": {"nested": true}
  }
]`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "MyActivity.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead(t *testing.T) {
	records, err := Read(writeInput(t, sampleExport))
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, "Gemini Apps", first.Header)
	assert.Equal(t, "Prompted second", first.Title)
	require.Len(t, first.Subtitles, 1)
	assert.Equal(t, "Prompt", first.Subtitles[0].Label())
	assert.Equal(t, "hi", first.Subtitles[0].Value)
	require.Len(t, first.SafeHTMLItem, 1)
	assert.Equal(t, "<p>hello</p>", first.SafeHTMLItem[0].HTML)

	assert.Equal(t, "User", records[2].Subtitles[0].Label())
	assert.Empty(t, records[1].SafeHTMLItem)
}

func TestRead_Errors(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Read(writeInput(t, `[{"header": "Gemini"`))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Read(writeInput(t, `{"header": "not an array"}`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantLen int
		wantLog string
	}{
		{
			name:    "valid export",
			path:    func(t *testing.T) string { return writeInput(t, sampleExport) },
			wantLen: 3,
		},
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
			wantLog: "file_not_found",
		},
		{
			name:    "malformed json",
			path:    func(t *testing.T) string { return writeInput(t, "not json") },
			wantLog: "json_decode_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log bytes.Buffer
			records := Load(tt.path(t), keyMessages{}, &log)
			assert.Len(t, records, tt.wantLen)
			if tt.wantLog == "" {
				assert.Empty(t, log.String())
			} else {
				assert.Contains(t, log.String(), tt.wantLog)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	records := []types.ActivityRecord{
		{Header: "Gemini Apps", Title: "a"},
		{Header: "gemini lowercase", Title: "b"},
		{Title: "c"},
		{Header: "Gemini", Title: "d"},
	}
	got := Filter(records, "Gemini")
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Title)
	assert.Equal(t, "d", got[1].Title)

	assert.Empty(t, Filter(nil, "Gemini"))
}

func TestChronological(t *testing.T) {
	in := []types.ActivityRecord{{Title: "3"}, {Title: "2"}, {Title: "1"}}
	got := Chronological(in)

	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].Title)
	assert.Equal(t, "3", got[2].Title)
	assert.Equal(t, "3", in[0].Title, "input must not be modified")
	assert.Empty(t, Chronological(nil))
}
