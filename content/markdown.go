package content

import (
	"html"
	"strings"
)

// MarkdownToHTML converts a minimal subset of Markdown to HTML, one line at
// a time. Supported: "# " and "## " headings, "* " list items (grouped into a
// single <ul> per run of consecutive items) and paragraphs. Everything else,
// including inline formatting, is emitted as an encoded paragraph.
func MarkdownToHTML(src string) string {
	var sb strings.Builder
	var inList bool
	closeList := func() {
		if inList {
			sb.WriteString("</ul>\n")
			inList = false
		}
	}
	for _, line := range splitLines(src) {
		switch {
		case strings.TrimSpace(line) == "":
			closeList()
		case strings.HasPrefix(line, "# "):
			closeList()
			writeElement(&sb, "h1", line[2:])
		case strings.HasPrefix(line, "## "):
			closeList()
			writeElement(&sb, "h2", line[3:])
		case strings.HasPrefix(line, "* "):
			if !inList {
				sb.WriteString("<ul>\n")
				inList = true
			}
			writeElement(&sb, "li", line[2:])
		default:
			closeList()
			writeElement(&sb, "p", line)
		}
	}
	closeList()
	return sb.String()
}

func writeElement(sb *strings.Builder, tag, text string) {
	sb.WriteString("<")
	sb.WriteString(tag)
	sb.WriteString(">")
	sb.WriteString(html.EscapeString(strings.TrimSpace(text)))
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">\n")
}

// MarkdownTitle returns the text of the first level-1 heading, or fallback if
// there isn't one.
func MarkdownTitle(src, fallback string) string {
	for _, line := range splitLines(src) {
		rest, ok := strings.CutPrefix(line, "# ")
		if !ok {
			continue
		}
		if title := strings.TrimSpace(rest); title != "" {
			return title
		}
	}
	return fallback
}

func splitLines(src string) []string {
	return strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
}
