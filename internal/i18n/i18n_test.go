// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"", "en"},
		{"C", "en"},
		{"POSIX", "en"},
		{"en_US.UTF-8", "en"},
		{"ja_JP.UTF-8", "ja"},
		{"ja", "ja"},
		{"de-DE", "de"},
		{"pt_BR", "pt"},
		{"fr_CA.UTF-8@euro", "fr"},
		{"zh_CN.UTF-8", "zh_CN"},
		{"zh_TW", "zh_TW"},
		{"nl_NL.UTF-8", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, err := Match(tt.locale)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatch_Unparseable(t *testing.T) {
	got, err := Match("!!not-a-locale")
	assert.Error(t, err)
	assert.Equal(t, Fallback, got)
}

func TestDetect(t *testing.T) {
	env := map[string]string{
		"LC_MESSAGES": "ko_KR.UTF-8",
		"LANG":        "de_DE.UTF-8",
	}
	got, err := Detect(func(k string) string { return env[k] })
	assert.NoError(t, err)
	assert.Equal(t, "ko", got, "LC_MESSAGES outranks LANG")

	env["LC_ALL"] = "es_ES"
	got, _ = Detect(func(k string) string { return env[k] })
	assert.Equal(t, "es", got, "LC_ALL outranks everything")

	got, err = Detect(func(string) string { return "" })
	assert.NoError(t, err)
	assert.Equal(t, "en", got)
}

func TestCatalog_T(t *testing.T) {
	en := New("en")
	assert.Equal(t, "en", en.Tag())
	assert.Equal(t, "Error: File not found: a.json", en.T("file_not_found", "a.json"))
	assert.Equal(t,
		"Extracted 10 entries, of which 4 are Gemini history.",
		en.T("extracted_entries", 10, 4))
	assert.Equal(t, "Converting to Markdown...", en.T("converting_markdown"))

	ja := New("ja_JP.UTF-8")
	assert.Equal(t, "ja", ja.Tag())
	assert.Equal(t, "エラー: ファイルが見つかりません: a.json", ja.T("file_not_found", "a.json"))
}

func TestCatalog_T_Fallbacks(t *testing.T) {
	c := New("nl")
	assert.Equal(t, "en", c.Tag())
	assert.Equal(t, "no_such_key", c.T("no_such_key", 1))

	// Too few arguments leaves the template untouched.
	assert.Equal(t, "Error: File not found: %[1]v", c.T("file_not_found"))

	// Extra arguments are ignored.
	assert.Equal(t, "An error occurred: boom", c.T("error_occurred", "boom", "extra"))
}

func TestCatalogs_Complete(t *testing.T) {
	for tag, msgs := range catalogs {
		for key, enMsg := range catalogs[Fallback] {
			msg, ok := msgs[key]
			if !assert.True(t, ok, "%s missing %s", tag, key) {
				continue
			}
			assert.Equal(t, placeholders(enMsg), placeholders(msg), "%s/%s placeholder count", tag, key)
		}
	}
}
