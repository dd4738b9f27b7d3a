package analytics

import (
	"fmt"
	"sort"
	"strings"

	"jobpulse/internal/dataset"
)

// Summary holds the headline metrics shown above the charts.
type Summary struct {
	TotalPostings   int     `json:"total_postings"`
	UniqueCompanies int     `json:"unique_companies"`
	UniqueSkills    int     `json:"unique_skills"`
	RemotePercent   float64 `json:"remote_percent"`
	SalaryPercent   float64 `json:"salary_percent"`
}

// Summarize computes headline metrics for a view. A pure function of the
// view; an empty view yields zeros.
func Summarize(view dataset.View) Summary {
	companies := make(map[string]bool)
	skills := make(map[string]bool)
	remote := 0
	salary := 0

	for i := 0; i < view.Len(); i++ {
		p := view.At(i)
		companies[p.Company] = true
		for _, s := range p.Skills {
			skills[s] = true
		}
		if p.Remote {
			remote++
		}
		if p.HasSalary {
			salary++
		}
	}

	return Summary{
		TotalPostings:   view.Len(),
		UniqueCompanies: len(companies),
		UniqueSkills:    len(skills),
		RemotePercent:   percentOf(remote, view.Len()),
		SalaryPercent:   percentOf(salary, view.Len()),
	}
}

// SkillPairs counts co-occurring skill pairs across the view. Pair labels are
// "a + b" with the two skills in ascending order, so (go, aws) and (aws, go)
// land in the same bucket. Sorted like every aggregation: count descending,
// label ascending.
func SkillPairs(view dataset.View, limit int) []Bucket {
	counts := make(map[string]int)

	for i := 0; i < view.Len(); i++ {
		skills := view.At(i).Skills
		for a := 0; a < len(skills); a++ {
			for b := a + 1; b < len(skills); b++ {
				first, second := skills[a], skills[b]
				if second < first {
					first, second = second, first
				}
				counts[first+" + "+second]++
			}
		}
	}

	buckets := make([]Bucket, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, Bucket{
			Label:   label,
			Count:   count,
			Percent: percentOf(count, view.Len()),
		})
	}

	sortBuckets(buckets)

	if limit > 0 && len(buckets) > limit {
		buckets = buckets[:limit]
	}
	return buckets
}

// Insight is one highlighted market observation.
type Insight struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Insights derives the highlight cards from a view. An empty view yields no
// insights.
func Insights(view dataset.View) []Insight {
	if view.Len() == 0 {
		return nil
	}

	var out []Insight

	if top := Aggregate(view, BySkill, 1); len(top) > 0 {
		out = append(out, Insight{
			Title: "Hottest skill",
			Detail: fmt.Sprintf("%s appears in %d postings (%.1f%% of the selection)",
				strings.ToUpper(top[0].Label), top[0].Count, top[0].Percent),
		})
	}

	if top := Aggregate(view, ByCompany, 1); len(top) > 0 {
		out = append(out, Insight{
			Title:  "Top employer",
			Detail: fmt.Sprintf("%s is hiring with %d open postings", top[0].Label, top[0].Count),
		})
	}

	s := Summarize(view)
	out = append(out, Insight{
		Title:  "Remote work",
		Detail: fmt.Sprintf("%.1f%% of postings offer remote work", s.RemotePercent),
	})
	out = append(out, Insight{
		Title:  "Salary transparency",
		Detail: fmt.Sprintf("%.1f%% of postings mention salary information", s.SalaryPercent),
	})

	return out
}

// FilterOptions lists the distinct values offered by the dashboard widgets.
type FilterOptions struct {
	Categories []string `json:"categories"`
	Locations  []string `json:"locations"`
	Skills     []string `json:"skills"`
}

// Options gathers distinct categories and locations (alphabetical) and the
// most frequent skills for populating filter dropdowns.
func Options(view dataset.View, skillLimit int) FilterOptions {
	categories := make(map[string]bool)
	locations := make(map[string]bool)

	for i := 0; i < view.Len(); i++ {
		p := view.At(i)
		categories[p.Category] = true
		if !p.Remote {
			locations[p.Location] = true
		}
	}

	skills := Aggregate(view, BySkill, skillLimit)
	skillNames := make([]string, 0, len(skills))
	for _, b := range skills {
		skillNames = append(skillNames, b.Label)
	}

	return FilterOptions{
		Categories: sortedKeys(categories),
		Locations:  sortedKeys(locations),
		Skills:     skillNames,
	}
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
