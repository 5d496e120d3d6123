// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Backed by goquery so script/style content and entities are handled properly

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML removes HTML markup from a string and returns the plain text
// with entities decoded and whitespace collapsed. On unparseable input the
// raw string is returned trimmed rather than dropped.
func StripHTML(html string) string {
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}

	doc.Find("script, style").Remove()

	return collapseWhitespace(doc.Text())
}

// collapseWhitespace reduces runs of whitespace to single spaces
func collapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
