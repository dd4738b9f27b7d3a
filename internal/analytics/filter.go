package analytics

import (
	"strings"

	"jobpulse/internal/dataset"
)

// WorkType narrows postings by work arrangement. It generalizes a plain
// remote-only toggle to the three-way selector the dashboard exposes.
type WorkType string

const (
	WorkAny    WorkType = ""
	WorkRemote WorkType = "remote"
	WorkOnsite WorkType = "onsite"
)

// ParseWorkType normalizes raw client input. Unknown values fall back to
// WorkAny so an invalid filter never constrains the result.
func ParseWorkType(raw string) WorkType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "remote", "remote only", "remote_only":
		return WorkRemote
	case "onsite", "on-site", "onsite only", "on-site only":
		return WorkOnsite
	default:
		return WorkAny
	}
}

// FilterSelection is the complete set of user choices for one interaction.
// It is a value: every interaction replaces the whole selection, nothing is
// patched in place. A zero FilterSelection constrains nothing.
type FilterSelection struct {
	Location string
	Category string
	Skill    string
	Work     WorkType
}

// IsEmpty reports whether no field constrains the table.
func (s FilterSelection) IsEmpty() bool {
	return s.Location == "" && s.Category == "" && s.Skill == "" && s.Work == WorkAny
}

// Apply returns the sub-view of rows satisfying every active predicate.
// Predicates are AND-combined; an empty field means "do not constrain".
// String matching is case-insensitive exact; skill matching tests set
// membership. Deterministic: the same inputs always yield the same view.
func Apply(view dataset.View, sel FilterSelection) dataset.View {
	if sel.IsEmpty() {
		return view
	}

	location := strings.ToLower(strings.TrimSpace(sel.Location))
	category := strings.ToLower(strings.TrimSpace(sel.Category))
	skill := strings.TrimSpace(sel.Skill)

	return view.Narrow(func(p dataset.JobPosting) bool {
		if location != "" && strings.ToLower(p.Location) != location {
			return false
		}
		if category != "" && strings.ToLower(p.Category) != category {
			return false
		}
		if skill != "" && !p.HasSkill(skill) {
			return false
		}
		switch sel.Work {
		case WorkRemote:
			return p.Remote
		case WorkOnsite:
			return !p.Remote
		}
		return true
	})
}
