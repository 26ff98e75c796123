package extraction

import (
	"regexp"
	"strings"
)

// segment is one line of input text with provenance for mention tracking.
type segment struct {
	text    string
	line    int  // 1-based line number
	offset  int  // byte offset of the line start in the full text
	inSkill bool // line belongs to a recognized skills section
}

// skillsHeaderRe recognizes section headings that introduce a skills list.
var skillsHeaderRe = regexp.MustCompile(`^(?:technical\s+|core\s+|key\s+|hard\s+)?(?:skills?|technologies|tech\s+stack|competencies|tooling|toolbox)\b`)

// classifyLine decides whether a line is a section header and, if so,
// whether it opens a skills section. A skills heading may carry its list
// inline ("Skills: React, Go"), so those lines count as inside the section.
func classifyLine(raw, lower string) (header, skills bool) {
	if loc := skillsHeaderRe.FindStringIndex(lower); loc != nil {
		rest := strings.TrimSpace(lower[loc[1]:])
		if rest == "" || strings.HasPrefix(rest, ":") || strings.HasPrefix(rest, "-") {
			return true, true
		}
	}
	return isGenericHeader(raw, lower), false
}

// isGenericHeader reports whether a trimmed line looks like a section header:
// at most four words and either colon-terminated or written in all caps.
func isGenericHeader(raw, lower string) bool {
	if lower == "" || len(strings.Fields(lower)) > 4 {
		return false
	}
	if strings.HasSuffix(lower, ":") {
		return true
	}
	letters := 0
	for _, r := range raw {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			letters++
		}
	}
	return letters >= 2
}

// normalizeNewlines rewrites CRLF and bare CR line endings to LF so that
// segment offsets index the same text the caller scans.
func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// segmentLines splits text into line segments and marks the ones inside a
// recognized skills section. Blank lines are dropped; section state persists
// until the next header. Callers must pass LF-normalized text.
func segmentLines(text string) []segment {
	segments := make([]segment, 0, strings.Count(text, "\n")+1)
	inSkills := false
	offset := 0
	line := 0

	for _, raw := range strings.Split(text, "\n") {
		line++
		trimmed := strings.TrimSpace(raw)
		lower := strings.ToLower(trimmed)

		if header, skills := classifyLine(trimmed, lower); header {
			inSkills = skills
		}

		if trimmed != "" {
			segments = append(segments, segment{
				text:    raw,
				line:    line,
				offset:  offset,
				inSkill: inSkills,
			})
		}
		offset += len(raw) + 1
	}
	return segments
}
