// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package htmlmd rewrites the HTML fragments found in activity responses
// into Markdown-flavored text.
//
// The rewrite is textual, not a DOM parse. Well-formed fragments produce
// readable Markdown; malformed or deeply nested markup renders best-effort.
package htmlmd

import (
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
)

var (
	unicodeEscapeRe = regexp.MustCompile(`(?:\\u[0-9a-fA-F]{4})+`)
	headingRe       = regexp.MustCompile(`(?i)<h[1-6][^>]*>(.*?)</h[1-6]>`)
	listItemRe      = regexp.MustCompile(`(?i)<li[^>]*>`)
	paragraphEndRe  = regexp.MustCompile(`(?i)</p>`)
	divEndRe        = regexp.MustCompile(`(?i)</div>`)
	lineBreakRe     = regexp.MustCompile(`(?i)<br\s*/?>`)
	boldRe          = regexp.MustCompile(`(?i)<b(?:\s[^>]*)?>(.*?)</b>`)
	strongRe        = regexp.MustCompile(`(?i)<strong(?:\s[^>]*)?>(.*?)</strong>`)
	tagRe           = regexp.MustCompile(`<[^>]+>`)
	blankRunRe      = regexp.MustCompile(`\n{3,}`)
)

// Render converts one HTML fragment into Markdown text. It never fails;
// empty input yields an empty string.
func Render(fragment string) string {
	if fragment == "" {
		return ""
	}

	text := DecodeUnicodeEscapes(fragment)
	text = html.UnescapeString(text)

	text = headingRe.ReplaceAllString(text, "\n**${1}**\n")
	text = listItemRe.ReplaceAllString(text, "\n- ")

	text = paragraphEndRe.ReplaceAllString(text, "\n\n")
	text = divEndRe.ReplaceAllString(text, "\n")
	text = lineBreakRe.ReplaceAllString(text, "\n")

	text = boldRe.ReplaceAllString(text, "**${1}**")
	text = strongRe.ReplaceAllString(text, "**${1}**")

	text = tagRe.ReplaceAllString(text, "")
	text = blankRunRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// DecodeUnicodeEscapes replaces literal \uXXXX sequences with the characters
// they encode. Adjacent escapes forming a UTF-16 surrogate pair decode to a
// single character.
func DecodeUnicodeEscapes(s string) string {
	if !strings.Contains(s, `\u`) {
		return s
	}
	return unicodeEscapeRe.ReplaceAllStringFunc(s, func(run string) string {
		units := make([]uint16, 0, len(run)/6)
		for i := 0; i+6 <= len(run); i += 6 {
			v, err := strconv.ParseUint(run[i+2:i+6], 16, 16)
			if err != nil {
				return run
			}
			units = append(units, uint16(v))
		}
		return string(utf16.Decode(units))
	})
}
