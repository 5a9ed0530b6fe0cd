// Package sanitize normalizes externally sourced question text before it is
// written to the store: markup is stripped, HTML entities are decoded, and
// the result is clipped to the column limits. Truncation is silent — losing
// the tail of an over-long generated title is accepted, failing the whole
// question is not.
package sanitize

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// Column limits of the question store.
const (
	// MaxNameLen matches the varchar(255) name column.
	MaxNameLen = 255
	// MaxTextLen matches the 64 KiB text column budget.
	MaxTextLen = 65535
)

// strict drops every tag and attribute, leaving only text content.
var strict = bluemonday.StrictPolicy()

// QuestionName sanitizes a question display name and clips it to MaxNameLen.
func QuestionName(raw string) string {
	return Truncate(Clean(raw), MaxNameLen)
}

// QuestionText sanitizes a question body and clips it to MaxTextLen.
func QuestionText(raw string) string {
	return Truncate(Clean(raw), MaxTextLen)
}

// Clean strips markup, decodes HTML entities and trims surrounding
// whitespace. The strip runs first so "&lt;b&gt;" survives as literal text
// rather than turning into a tag.
func Clean(raw string) string {
	stripped := strict.Sanitize(raw)
	return strings.TrimSpace(html.UnescapeString(stripped))
}

// Truncate hard-clips s to at most limit bytes without an ellipsis, backing
// off to the previous rune boundary so the result stays valid UTF-8.
func Truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
