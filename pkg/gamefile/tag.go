// SPDX-License-Identifier: MPL-2.0

package gamefile

import "strings"

// negationPrefix marks a tag literal that must be absent for a match.
const negationPrefix = "!"

type (
	// Tag is one literal of a tag query: a name and whether it is negated.
	Tag struct {
		Name    string
		Negated bool
	}

	// TagGroup is a conjunctive query over possibly negated tags, parsed
	// from one comma-separated string. A group matches a candidate tag set
	// iff every non-negated tag is present and every negated tag is absent.
	//
	// Disjunction across groups is the caller's job: parse each query
	// string independently and accept a candidate if any group matches.
	TagGroup struct {
		Tags []Tag
	}
)

// ParseTagGroup parses a comma-separated tag query. Any string is a valid
// query; there is no escaping, so a tag name can never contain ',' or a
// leading '!'. An empty segment yields an empty tag name, which never
// matches a real tag.
func ParseTagGroup(query string) TagGroup {
	parts := strings.Split(query, ",")
	tags := make([]Tag, 0, len(parts))
	for _, part := range parts {
		name, negated := strings.CutPrefix(part, negationPrefix)
		tags = append(tags, Tag{Name: name, Negated: negated})
	}
	return TagGroup{Tags: tags}
}

// Matches reports whether every tag in the group is satisfied by the
// candidate tag set.
func (g TagGroup) Matches(candidates []string) bool {
	set := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		set[c] = struct{}{}
	}
	for _, tag := range g.Tags {
		_, present := set[tag.Name]
		if present == tag.Negated {
			return false
		}
	}
	return true
}
