package dataset

import (
	"regexp"
	"strings"
)

// skillAliases folds common alternate spellings into one canonical skill so
// frequency counts do not split across variants.
var skillAliases = map[string]string{
	"golang":              "go",
	"js":                  "javascript",
	"ts":                  "typescript",
	"reactjs":             "react",
	"react.js":            "react",
	"nodejs":              "node.js",
	"node":                "node.js",
	"postgres":            "postgresql",
	"k8s":                 "kubernetes",
	"amazon web services": "aws",
	"google cloud":        "gcp",
	"ci-cd":               "ci/cd",
	"cicd":                "ci/cd",
}

func canonicalSkill(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	if canonical, ok := skillAliases[s]; ok {
		return canonical
	}
	return s
}

// splitSkills parses a comma-separated keyword cell into normalized, deduped
// skills, preserving first-seen order.
func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	seen := make(map[string]bool, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		skill := canonicalSkill(p)
		if skill == "" || seen[skill] {
			continue
		}
		seen[skill] = true
		out = append(out, skill)
	}
	return out
}

var remoteLocationTerms = []string{"remote", "anywhere", "global", "worldwide", "work from home", "wfh"}

// isRemoteLocation reports whether a location string indicates remote work.
func isRemoteLocation(location string) bool {
	loc := strings.ToLower(location)
	for _, term := range remoteLocationTerms {
		if strings.Contains(loc, term) {
			return true
		}
	}
	return false
}

var salaryPattern = regexp.MustCompile(`\$\d`)

// mentionsSalary reports whether a description carries salary information.
func mentionsSalary(description string) bool {
	return salaryPattern.MatchString(description)
}

func parseRemoteFlag(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "y", "1":
		return true, true
	case "false", "no", "n", "0":
		return false, true
	default:
		return false, false
	}
}
