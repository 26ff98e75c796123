// Package extraction scans unstructured text for canonical skill mentions.
package extraction

import (
	"strings"
	"unicode"

	"github.com/jonathan/skillplan/internal/taxonomy"
	"github.com/jonathan/skillplan/internal/types"
)

// maxPhraseTokens bounds candidate phrases to trigrams; multi-word skill
// names like "machine learning" and "ci/cd pipelines" fit within three
// tokens.
const maxPhraseTokens = 3

// Weights are the confidence signals assigned to each match kind. They are
// policy knobs, not structure: fixtures tune them without code changes.
type Weights struct {
	Exact        float64 // canonical-name match
	Alias        float64 // alias match
	SectionBoost float64 // additive boost inside a skills section, capped at 1.0
}

// DefaultWeights returns the standard confidence policy.
func DefaultWeights() Weights {
	return Weights{Exact: 1.0, Alias: 0.9, SectionBoost: 0.1}
}

// Extractor turns free text into confidence-scored skill mentions using an
// immutable taxonomy registry. It holds no per-call state and is safe for
// concurrent use.
type Extractor struct {
	registry *taxonomy.Registry
	weights  Weights
}

// NewExtractor builds an extractor. A zero-valued Weights falls back to
// DefaultWeights.
func NewExtractor(registry *taxonomy.Registry, weights Weights) *Extractor {
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	return &Extractor{registry: registry, weights: weights}
}

// token is a word-boundary-delimited candidate with its span in the full text.
type token struct {
	start int
	end   int
}

// isTokenRune reports whether a rune belongs inside a token. Keeping
// "+ # . /" as word characters preserves names like "c++", "c#", "node.js"
// and "ci/cd"; everything else is a boundary, so single-letter skills never
// match inside longer words.
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' || r == '/'
}

// tokenize splits one line into tokens with spans relative to the full text.
// Trailing dots and slashes are shaved off so sentence punctuation does not
// leak into spans.
func tokenize(line string, base int) []token {
	var toks []token
	start := -1
	for i, r := range line {
		if isTokenRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			toks = append(toks, trimToken(line, start, i, base))
			start = -1
		}
	}
	if start >= 0 {
		toks = append(toks, trimToken(line, start, len(line), base))
	}
	return toks
}

func trimToken(line string, start, end, base int) token {
	for end > start && (line[end-1] == '.' || line[end-1] == '/') {
		end--
	}
	return token{start: base + start, end: base + end}
}

// Extract finds all canonical skill mentions in text. The scan is a single
// forward pass: at each token it tries the longest candidate phrase first and
// advances past a match, so sub-spans of a matched phrase never double-count.
// Mentions are deduplicated per canonical skill, keeping the highest
// confidence and the earliest span, and returned in first-occurrence order.
// Empty or unrecognizable text yields an empty list, never an error.
func (e *Extractor) Extract(text string, source types.SourceTag) []types.SkillMention {
	mentions := []types.SkillMention{}
	if strings.TrimSpace(text) == "" {
		return mentions
	}
	text = normalizeNewlines(text)

	index := make(map[string]int)
	for _, seg := range segmentLines(text) {
		toks := tokenize(seg.text, seg.offset)
		i := 0
		for i < len(toks) {
			matched := false
			max := maxPhraseTokens
			if rem := len(toks) - i; rem < max {
				max = rem
			}
			for n := max; n >= 1; n-- {
				span := types.Span{Start: toks[i].start, End: toks[i+n-1].end}
				raw := text[span.Start:span.End]
				sk, kind := e.registry.Resolve(raw)
				if sk == nil {
					continue
				}
				conf := e.confidence(kind, seg.inSkill)
				if prev, seen := index[sk.Name]; seen {
					// Keep the earliest span; only the confidence may rise.
					if conf > mentions[prev].Confidence {
						mentions[prev].Confidence = conf
					}
					mentions[prev].Occurrences++
				} else {
					index[sk.Name] = len(mentions)
					mentions = append(mentions, types.SkillMention{
						Skill:       sk.Name,
						Raw:         raw,
						Confidence:  conf,
						Source:      source,
						Line:        seg.line,
						Span:        span,
						Occurrences: 1,
					})
				}
				i += n
				matched = true
				break
			}
			if !matched {
				i++
			}
		}
	}
	return mentions
}

func (e *Extractor) confidence(kind taxonomy.MatchKind, inSkillSection bool) float64 {
	conf := e.weights.Exact
	if kind == taxonomy.MatchAlias {
		conf = e.weights.Alias
	}
	if inSkillSection {
		conf += e.weights.SectionBoost
	}
	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}
