// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ActivityRecord is one entry of a Google Takeout "My Activity" export.
// Every field is optional; absent fields decode to their zero value.
type ActivityRecord struct {
	// Header names the product the activity belongs to (e.g. "Gemini Apps").
	Header string `json:"header,omitempty"`

	// Time is the ISO-8601 timestamp of the activity, usually with a
	// trailing "Z".
	Time string `json:"time,omitempty"`

	// Title is the action label (e.g. "Prompted how do I ...").
	Title string `json:"title,omitempty"`

	// Subtitles holds labeled text blocks, typically the user prompt.
	Subtitles []Subtitle `json:"subtitles,omitempty"`

	// SafeHTMLItem holds the HTML fragments of the response body.
	SafeHTMLItem []SafeHTML `json:"safeHtmlItem,omitempty"`
}

// Subtitle is a labeled text block inside an ActivityRecord.
type Subtitle struct {
	Name  *string `json:"name,omitempty"`
	Value string  `json:"value,omitempty"`
}

// Label returns the subtitle name, or "User" when the export omits it.
func (s Subtitle) Label() string {
	if s.Name == nil {
		return "User"
	}
	return *s.Name
}

// SafeHTML is one HTML fragment of a response body.
type SafeHTML struct {
	HTML string `json:"html,omitempty"`
}

// Section is the rendered Markdown of one ActivityRecord.
type Section struct {
	// Time is the parsed record timestamp, or the zero time when the
	// record's time could not be parsed.
	Time time.Time

	// Text is the Markdown body. Empty means the record was already exported.
	Text string
}

// Size returns the byte length of the section in its UTF-8 output encoding.
func (s Section) Size() int64 {
	return int64(len(s.Text))
}

// IsEmpty reports whether the section carries no text.
func (s Section) IsEmpty() bool {
	return s.Text == ""
}
