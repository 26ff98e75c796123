// Package taxonomy provides the canonical skill registry: a static,
// immutable mapping from free-form skill tokens to canonical skills.
package taxonomy

import (
	"sort"

	"github.com/jonathan/skillplan/internal/types"
)

// MatchKind distinguishes how a token resolved against the registry.
type MatchKind int

// Match kinds, in decreasing signal strength.
const (
	MatchNone MatchKind = iota
	MatchCanonical
	MatchAlias
)

// entry maps a lookup key to its canonical skill. alias holds the original
// alias text that produced the key; it is empty for canonical-name keys.
type entry struct {
	skill *types.CanonicalSkill
	alias string
}

// Registry is the alias-to-canonical lookup table. It is immutable after
// NewRegistry and safe for unlimited concurrent readers.
type Registry struct {
	byKey  map[string]entry
	skills []types.CanonicalSkill
}

// NewRegistry builds a registry from canonical skill definitions. It fails
// with a ConflictError if an alias maps to two distinct canonical skills;
// when the colliding aliases differ in length the longer (more specific)
// alias wins deterministically and no error is raised.
func NewRegistry(defs []types.CanonicalSkill) (*Registry, error) {
	r := &Registry{
		byKey:  make(map[string]entry, len(defs)*2),
		skills: make([]types.CanonicalSkill, len(defs)),
	}
	copy(r.skills, defs)
	sort.Slice(r.skills, func(i, j int) bool {
		return r.skills[i].Name < r.skills[j].Name
	})

	// Canonical names claim their keys first; they always shadow aliases.
	for i := range r.skills {
		sk := &r.skills[i]
		if sk.Name == "" {
			return nil, &DefinitionError{Message: "canonical name must not be empty"}
		}
		if !sk.Category.Valid() {
			return nil, &DefinitionError{Name: sk.Name, Message: "unknown category " + string(sk.Category)}
		}
		if sk.Weight < 0 || sk.Weight > 1 {
			return nil, &DefinitionError{Name: sk.Name, Message: "weight must be in [0,1]"}
		}
		key := compactKey(NormalizeToken(sk.Name))
		if key == "" {
			return nil, &DefinitionError{Name: sk.Name, Message: "name normalizes to nothing"}
		}
		if prev, ok := r.byKey[key]; ok {
			return nil, &ConflictError{Alias: sk.Name, First: prev.skill.Name, Second: sk.Name}
		}
		r.byKey[key] = entry{skill: sk}
	}

	for i := range r.skills {
		sk := &r.skills[i]
		for _, alias := range sk.Aliases {
			key := compactKey(NormalizeToken(alias))
			if key == "" {
				continue
			}
			prev, ok := r.byKey[key]
			if !ok {
				r.byKey[key] = entry{skill: sk, alias: alias}
				continue
			}
			if prev.skill.Name == sk.Name {
				continue
			}
			if prev.alias == "" {
				// Key already taken by a canonical name.
				continue
			}
			switch {
			case len(alias) > len(prev.alias):
				r.byKey[key] = entry{skill: sk, alias: alias}
			case len(alias) < len(prev.alias):
				// Longer existing alias keeps the key.
			default:
				return nil, &ConflictError{Alias: alias, First: prev.skill.Name, Second: sk.Name}
			}
		}
	}

	return r, nil
}

// Resolve maps a free-form token or short phrase to its canonical skill.
// Returns nil and MatchNone when the token is unknown.
func (r *Registry) Resolve(token string) (*types.CanonicalSkill, MatchKind) {
	key := compactKey(NormalizeToken(token))
	if key == "" {
		return nil, MatchNone
	}
	e, ok := r.byKey[key]
	if !ok {
		return nil, MatchNone
	}
	if e.alias == "" {
		return e.skill, MatchCanonical
	}
	return e.skill, MatchAlias
}

// Lookup returns the canonical skill for an exact canonical name.
func (r *Registry) Lookup(name string) (*types.CanonicalSkill, bool) {
	sk, kind := r.Resolve(name)
	if kind != MatchCanonical {
		return nil, false
	}
	return sk, true
}

// Skills returns all canonical skills, sorted by name.
func (r *Registry) Skills() []types.CanonicalSkill {
	out := make([]types.CanonicalSkill, len(r.skills))
	copy(out, r.skills)
	return out
}

// Len returns the number of canonical skills in the registry.
func (r *Registry) Len() int {
	return len(r.skills)
}
