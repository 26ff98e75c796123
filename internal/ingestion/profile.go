package ingestion

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/skillplan/internal/taxonomy"
	"github.com/jonathan/skillplan/internal/types"
)

// ProfileConfidence is the fixed confidence assigned to profile-derived
// skills; there is no source text to score them against.
const ProfileConfidence = 0.8

// ProfileSkillRecord is the loosely shaped skill entry exported by external
// profile sources. Different exporters use different field names for the
// same thing; exactly one of them has to be present.
type ProfileSkillRecord struct {
	SkillName string `json:"skill_name,omitempty" validate:"required_without_all=Name Canonical"`
	Name      string `json:"name,omitempty"`
	Canonical string `json:"canonical,omitempty"`
}

// skillName collapses the alternative field names into one value. Precedence
// is fixed: canonical beats skill_name beats name, so one record can never
// yield two different skills.
func (r ProfileSkillRecord) skillName() string {
	switch {
	case r.Canonical != "":
		return r.Canonical
	case r.SkillName != "":
		return r.SkillName
	default:
		return r.Name
	}
}

var validate = validator.New()

// MapProfileSkills adapts external profile skill records into pre-resolved
// mentions with source=profile and a fixed confidence. Records naming skills
// the registry does not know are dropped, not errors: profile exports
// routinely contain endorsement noise.
func MapProfileSkills(registry *taxonomy.Registry, records []ProfileSkillRecord) ([]types.SkillMention, error) {
	mentions := []types.SkillMention{}
	seen := make(map[string]bool, len(records))

	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("profile skill record %d has no skill name: %w", i, err)
		}

		raw := rec.skillName()
		sk, kind := registry.Resolve(raw)
		if kind == taxonomy.MatchNone {
			continue
		}
		if seen[sk.Name] {
			continue
		}
		seen[sk.Name] = true
		mentions = append(mentions, types.SkillMention{
			Skill:       sk.Name,
			Raw:         raw,
			Confidence:  ProfileConfidence,
			Source:      types.SourceProfile,
			Occurrences: 1,
		})
	}
	return mentions, nil
}

// LoadProfileSkills reads a JSON array of profile skill records from disk
// and adapts it via MapProfileSkills.
func LoadProfileSkills(registry *taxonomy.Registry, path string) ([]types.SkillMention, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile skills file %s: %w", path, err)
	}

	var records []ProfileSkillRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse profile skills JSON %s: %w", path, err)
	}
	return MapProfileSkills(registry, records)
}
