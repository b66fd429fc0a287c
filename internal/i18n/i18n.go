// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package i18n selects the message table for the user's locale and formats
// progress messages from it. The locale is chosen once at startup; English
// is the fallback for unknown locales and missing keys.
package i18n

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Fallback is the locale used when detection finds nothing better.
const Fallback = "en"

// localeEnv lists the environment variables consulted for the locale, in
// priority order.
var localeEnv = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

var placeholderRe = regexp.MustCompile(`%\[(\d+)\]v`)

var (
	supportedKeys []string
	matcher       language.Matcher
)

func init() {
	supportedKeys = make([]string, 0, len(catalogs))
	for k := range catalogs {
		if k != Fallback {
			supportedKeys = append(supportedKeys, k)
		}
	}
	sort.Strings(supportedKeys)
	// The matcher falls back to its first tag.
	supportedKeys = append([]string{Fallback}, supportedKeys...)

	tags := make([]language.Tag, len(supportedKeys))
	for i, k := range supportedKeys {
		tags[i] = language.Make(strings.ReplaceAll(k, "_", "-"))
	}
	matcher = language.NewMatcher(tags)
}

// Catalog formats messages for one locale.
type Catalog struct {
	tag      string
	messages map[string]string
}

// New returns the catalog for tag. Tags are matched loosely ("ja-JP",
// "ja_JP.UTF-8", and "ja" all select Japanese); unknown tags select English.
func New(tag string) *Catalog {
	key, _ := Match(tag)
	return &Catalog{tag: key, messages: catalogs[key]}
}

// Tag returns the catalog's locale key (e.g. "en", "zh_TW").
func (c *Catalog) Tag() string {
	return c.tag
}

// T formats the message for key with args. Missing keys fall back to
// English, then to the key itself. When args do not cover the message's
// placeholders the unformatted message is returned.
func (c *Catalog) T(key string, args ...any) string {
	msg, ok := c.messages[key]
	if !ok {
		msg, ok = catalogs[Fallback][key]
	}
	if !ok {
		return key
	}
	if placeholders(msg) > len(args) {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func placeholders(msg string) int {
	highest := 0
	for _, m := range placeholderRe.FindAllStringSubmatch(msg, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}

// Match maps a locale identifier to a catalog key. It returns an error when
// the identifier is not a parseable language tag; the key is then Fallback.
func Match(locale string) (string, error) {
	locale = clean(locale)
	if locale == "" {
		return Fallback, nil
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Fallback, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Fallback, nil
	}
	return supportedKeys[idx], nil
}

// Detect picks the catalog key from the process locale environment, read
// through getenv.
func Detect(getenv func(string) string) (string, error) {
	for _, name := range localeEnv {
		if v := getenv(name); v != "" {
			return Match(v)
		}
	}
	return Fallback, nil
}

// clean strips POSIX locale decorations ("ja_JP.UTF-8@euro" -> "ja-JP") and
// maps the C/POSIX locales to "".
func clean(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(locale, "_", "-")
}
