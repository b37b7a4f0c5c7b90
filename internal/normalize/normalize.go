package normalize

import (
	"bytes"
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
)

var md = goldmark.New()

var (
	tagPattern = regexp.MustCompile(`<[^>]*>`)
	urlPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// Clean prepares raw review text for scoring. Markdown becomes plain
// text with link text preserved, bare URLs are dropped, everything is
// lowercased, punctuation and other non-alphanumeric noise is removed,
// and whitespace runs collapse to single spaces. Pure and total: an
// empty string cleans to an empty string.
func Clean(raw string) string {
	text := stripMarkdown(raw)
	text = urlPattern.ReplaceAllString(text, "")
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// stripMarkdown renders markdown and discards the tags, keeping only
// the text content. Falls back to the raw input if rendering fails.
func stripMarkdown(raw string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(raw), &buf); err != nil {
		return raw
	}
	return html.UnescapeString(tagPattern.ReplaceAllString(buf.String(), " "))
}
