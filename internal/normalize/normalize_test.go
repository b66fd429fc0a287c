// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"

	"github.com/pdiddy/chat-archive/pkg/types"
)

func strPtr(s string) *string { return &s }

func TestNormalize_FullRecord(t *testing.T) {
	rec := types.ActivityRecord{
		Header: "Gemini Apps",
		Time:   "2025-01-02T03:04:05.678Z",
		Title:  "Prompted hello",
		Subtitles: []types.Subtitle{
			{Value: "line one\nline two"},
			{Name: strPtr("Attachment"), Value: "notes.txt"},
			{Name: strPtr("Empty")},
		},
		SafeHTMLItem: []types.SafeHTML{
			{HTML: "<p>Hi <b>there</b></p>"},
			{HTML: ""},
			{HTML: "<ul><li>one</li></ul>"},
		},
	}

	sec := New("Gemini").Normalize(rec, time.Time{})

	want := "## 2025/01/02 03:04:05\n\n" +
		"**Action**: Prompted hello\n\n" +
		"### User\n" +
		"line one  \nline two\n\n" +
		"### Attachment\n" +
		"notes.txt\n\n" +
		"### Gemini (Response)\n" +
		"Hi **there**\n\n" +
		"- one\n\n" +
		"\n" +
		"---\n\n"
	assert.Equal(t, want, sec.Text)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 678000000, time.UTC), sec.Time.UTC())
	assert.Equal(t, int64(len(want)), sec.Size())
	assert.NotContains(t, sec.Text, "### Empty")
}

func TestNormalize_RendersWellFormedMarkdown(t *testing.T) {
	rec := types.ActivityRecord{
		Time:         "2025-01-02T03:04:05Z",
		Title:        "Prompted",
		Subtitles:    []types.Subtitle{{Value: "question"}},
		SafeHTMLItem: []types.SafeHTML{{HTML: "<h2>Answer</h2><p>text</p>"}},
	}
	sec := New("Gemini").Normalize(rec, time.Time{})

	var buf bytes.Buffer
	require.NoError(t, goldmark.Convert([]byte(sec.Text), &buf))
	out := buf.String()

	assert.Contains(t, out, "<h2>2025/01/02 03:04:05</h2>")
	assert.Contains(t, out, "<h3>User</h3>")
	assert.Contains(t, out, "<h3>Gemini (Response)</h3>")
	assert.Contains(t, out, "<strong>Answer</strong>")
	assert.Contains(t, out, "<hr")
}

func TestNormalize_Watermark(t *testing.T) {
	watermark := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	n := New("Gemini")

	tests := []struct {
		name      string
		time      string
		wantEmpty bool
	}{
		{"before watermark", "2025-01-01T23:59:59Z", true},
		{"equal to watermark", "2025-01-02T00:00:00Z", true},
		{"equal in another zone", "2025-01-02T09:00:00+09:00", true},
		{"after watermark", "2025-01-02T00:00:01Z", false},
		{"unparseable is always rendered", "not a time", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec := n.Normalize(types.ActivityRecord{Time: tt.time, Title: "x"}, watermark)
			assert.Equal(t, tt.wantEmpty, sec.IsEmpty())
		})
	}
}

func TestNormalize_UnparseableTime(t *testing.T) {
	sec := New("Gemini").Normalize(types.ActivityRecord{Time: "sometime"}, time.Time{})
	assert.True(t, sec.Time.IsZero())
	assert.Equal(t, "## sometime\n\n---\n\n", sec.Text)
}

func TestNormalize_KeepsRecordZone(t *testing.T) {
	sec := New("Gemini").Normalize(types.ActivityRecord{Time: "2025-01-02T09:30:00+09:00"}, time.Time{})
	assert.Contains(t, sec.Text, "## 2025/01/02 09:30:00\n")
}

func TestNormalize_EmptyResponseOmitsHeading(t *testing.T) {
	rec := types.ActivityRecord{
		Time:         "2025-01-02T03:04:05Z",
		SafeHTMLItem: []types.SafeHTML{{HTML: "<br>"}, {HTML: "<div></div>"}},
	}
	sec := New("Gemini").Normalize(rec, time.Time{})
	assert.NotContains(t, sec.Text, "Response")
	assert.Equal(t, "## 2025/01/02 03:04:05\n\n---\n\n", sec.Text)
}

func TestNormalize_DefaultResponseHeading(t *testing.T) {
	rec := types.ActivityRecord{
		Time:         "2025-01-02T03:04:05Z",
		SafeHTMLItem: []types.SafeHTML{{HTML: "ok"}},
	}
	sec := New("").Normalize(rec, time.Time{})
	assert.Contains(t, sec.Text, "### Response\nok\n\n\n---\n\n")
}
