package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLTitle returns the text of the first <h1> element, falling back to the
// document <title>, and then to fallback. Entities are decoded.
func HTMLTitle(src, fallback string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return fallback
	}
	if h1 := normalizeSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	if title := normalizeSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return fallback
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
