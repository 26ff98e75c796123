package taxonomy

import (
	"strings"
	"unicode"
)

// edgePunct is punctuation stripped from token edges before comparison.
const edgePunct = "()[]{}\"'`,;:!?"

// NormalizeToken canonicalizes a raw token or short phrase for comparison:
// lowercased, edge punctuation and trailing slashes/dots removed, and runs of
// hyphens, underscores and whitespace collapsed to a single space. Interior
// ".", "+", "#" and "/" survive so names like "node.js", "c++", "c#" and
// "ci/cd" keep their identity.
func NormalizeToken(token string) string {
	s := strings.ToLower(strings.TrimSpace(token))
	s = strings.Trim(s, edgePunct)
	s = strings.TrimRight(s, "/.")

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		if r == '-' || r == '_' || unicode.IsSpace(r) {
			pendingSep = true
			continue
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte(' ')
		}
		pendingSep = false
		b.WriteRune(r)
	}
	return b.String()
}

// compactKey reduces a normalized token to its lookup key by removing
// separators outright, so "node.js", "node js" and "nodejs" all share the
// key "nodejs" and "ci/cd" shares "cicd".
func compactKey(normalized string) string {
	var b strings.Builder
	b.Grow(len(normalized))
	for _, r := range normalized {
		switch r {
		case ' ', '.', '/':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
