package types

// SourceTag identifies the document a skill mention was found in.
type SourceTag string

// Mention sources.
const (
	SourceResume         SourceTag = "resume"
	SourceJobDescription SourceTag = "job_description"
	SourceProfile        SourceTag = "profile"
)

// Span marks the byte offsets of a matched phrase within its source text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// SkillMention is one detected occurrence of a canonical skill in a document.
// Mentions for the same canonical skill within one document are deduplicated
// upstream, keeping the highest confidence and the earliest span.
// Occurrences counts how many raw matches were folded into the mention.
type SkillMention struct {
	Skill       string    `json:"skill"`
	Raw         string    `json:"raw"`
	Confidence  float64   `json:"confidence"`
	Source      SourceTag `json:"source"`
	Line        int       `json:"line"`
	Span        Span      `json:"span"`
	Occurrences int       `json:"occurrences,omitempty"`
}
