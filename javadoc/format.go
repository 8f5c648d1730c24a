package javadoc

import (
	"regexp"
	"strings"
)

// PlainText flattens body nodes into plain text: HTML tags are removed, code
// content kept verbatim, links reduced to their label (or reference).
func PlainText(nodes []Node) string {
	var sb strings.Builder
	for _, node := range nodes {
		switch n := node.(type) {
		case Text:
			sb.WriteString(stripHTML(n.Content))
		case Code:
			sb.WriteString(n.Content)
		case Link:
			if n.Label != "" {
				sb.WriteString(n.Label)
			} else {
				sb.WriteString(n.Reference)
			}
		}
	}
	return strings.TrimSpace(normalizeWhitespace(sb.String()))
}

// FirstSentence returns the description up to and including the first period
// followed by whitespace, matching the summary convention of doc tools.
func FirstSentence(text string) string {
	for i := 0; i < len(text); i++ {
		if text[i] != '.' {
			continue
		}
		if i+1 == len(text) {
			return text
		}
		next := text[i+1]
		if next == ' ' || next == '\t' || next == '\n' {
			return text[:i+1]
		}
	}
	return text
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

func stripHTML(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	replacer := strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", `"`,
		"&nbsp;", " ",
	)
	return replacer.Replace(s)
}

func normalizeWhitespace(s string) string {
	var sb strings.Builder
	space := false
	for _, ch := range s {
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			space = true
			continue
		}
		if space && sb.Len() > 0 {
			sb.WriteRune(' ')
		}
		space = false
		sb.WriteRune(ch)
	}
	return sb.String()
}
