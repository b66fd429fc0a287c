// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize turns activity records into self-contained Markdown
// sections, skipping records at or before the export watermark.
package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/chat-archive/internal/htmlmd"
	"github.com/pdiddy/chat-archive/internal/timefmt"
	"github.com/pdiddy/chat-archive/pkg/types"
)

// displayLayout is the heading format of a section's timestamp.
const displayLayout = "2006/01/02 15:04:05"

// Normalizer renders records. Assistant names the responder in the
// response heading (e.g. "Gemini").
type Normalizer struct {
	Assistant string
}

// New returns a Normalizer labelling responses with assistant.
func New(assistant string) *Normalizer {
	return &Normalizer{Assistant: assistant}
}

// Normalize renders rec as a Markdown section. It returns a section with
// empty text when the record's parsed time is not strictly after
// watermark. Records with an unparseable time carry the zero time, are
// always rendered, and display their raw time string.
func (n *Normalizer) Normalize(rec types.ActivityRecord, watermark time.Time) types.Section {
	ts, ok := timefmt.Parse(rec.Time)
	if ok && !ts.After(watermark) {
		return types.Section{Time: ts}
	}

	date := rec.Time
	if ok {
		date = ts.Format(displayLayout)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", date)

	if rec.Title != "" {
		fmt.Fprintf(&b, "**Action**: %s\n\n", rec.Title)
	}

	for _, sub := range rec.Subtitles {
		if sub.Value == "" {
			continue
		}
		fmt.Fprintf(&b, "### %s\n", sub.Label())
		b.WriteString(strings.ReplaceAll(sub.Value, "\n", "  \n"))
		b.WriteString("\n\n")
	}

	if resp := n.response(rec.SafeHTMLItem); resp != "" {
		fmt.Fprintf(&b, "### %s\n", n.responseHeading())
		b.WriteString(resp)
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	return types.Section{Time: ts, Text: b.String()}
}

// response concatenates the rendered fragments, or returns "" when they
// render to nothing but whitespace.
func (n *Normalizer) response(items []types.SafeHTML) string {
	var b strings.Builder
	for _, item := range items {
		if item.HTML == "" {
			continue
		}
		b.WriteString(htmlmd.Render(item.HTML))
		b.WriteString("\n\n")
	}
	if strings.TrimSpace(b.String()) == "" {
		return ""
	}
	return b.String()
}

func (n *Normalizer) responseHeading() string {
	if n.Assistant == "" {
		return "Response"
	}
	return n.Assistant + " (Response)"
}
