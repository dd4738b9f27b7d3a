package dataset

import "time"

// JobPosting is one row of the loaded dataset. Rows are immutable after load
// and have no identity beyond their position in the table.
type JobPosting struct {
	Title      string
	Company    string
	Category   string
	Location   string
	Remote     bool
	Skills     []string
	HasSalary  bool
	PostedDate time.Time
	SourceURL  string
}

// HasSkill reports whether the posting lists the given skill.
// Skills are stored normalized (lower-case, canonical alias), so the
// candidate is normalized the same way before comparison.
func (p JobPosting) HasSkill(skill string) bool {
	want := canonicalSkill(skill)
	if want == "" {
		return false
	}
	for _, s := range p.Skills {
		if s == want {
			return true
		}
	}
	return false
}
