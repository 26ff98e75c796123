// Package types provides type definitions for structured data used throughout the skillplan engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Category classifies a canonical skill for hour estimation and grouping.
type Category string

// Skill categories recognized by the taxonomy.
const (
	CategoryLanguage  Category = "language"
	CategoryFramework Category = "framework"
	CategoryTool      Category = "tool"
	CategoryPlatform  Category = "platform"
	CategorySoftSkill Category = "soft_skill"
	CategoryDomain    Category = "domain"
)

// categoryBaseHours maps each category to a base learning-hour estimate.
var categoryBaseHours = map[Category]int{
	CategoryLanguage:  15,
	CategoryFramework: 20,
	CategoryTool:      8,
	CategoryPlatform:  12,
	CategorySoftSkill: 5,
	CategoryDomain:    10,
}

// Valid reports whether the category is one of the recognized values.
func (c Category) Valid() bool {
	_, ok := categoryBaseHours[c]
	return ok
}

// BaseHours returns the base learning-hour estimate for the category.
// Unknown categories fall back to the domain estimate.
func (c Category) BaseHours() int {
	if h, ok := categoryBaseHours[c]; ok {
		return h
	}
	return categoryBaseHours[CategoryDomain]
}

// CanonicalSkill is a single entry in the skill taxonomy. The Name is the
// unique lowercase-normalized identity; Aliases are spelling/format variants
// that resolve to it.
type CanonicalSkill struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Aliases  []string `json:"aliases,omitempty"`
	Weight   float64  `json:"weight"`
	Trending bool     `json:"trending,omitempty"`
}
