package analytics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"jobpulse/internal/dataset"
)

// Kind selects the grouping dimension for an aggregation.
type Kind string

const (
	BySkill    Kind = "skill"
	ByRemote   Kind = "remote"
	ByCompany  Kind = "company"
	ByLocation Kind = "location"
	ByCategory Kind = "category"
)

// ParseKind validates a client-supplied aggregation kind.
func ParseKind(raw string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case BySkill:
		return BySkill, nil
	case ByRemote:
		return ByRemote, nil
	case ByCompany:
		return ByCompany, nil
	case ByLocation:
		return ByLocation, nil
	case ByCategory:
		return ByCategory, nil
	default:
		return "", fmt.Errorf("unknown aggregation kind %q", raw)
	}
}

// Labels for the remote/on-site partition.
const (
	LabelRemote = "Remote"
	LabelOnsite = "On-site"
)

// Bucket is one (label, count) pair of an aggregation result. Percent is the
// share of the aggregated view's rows, rounded to one decimal for display.
type Bucket struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Aggregate groups the view's rows by the given kind and counts per label.
// Results are sorted by count descending, ties broken by label ascending.
// limit > 0 keeps only the top buckets. An empty view yields an empty result,
// never an error.
//
// ByRemote, ByCompany, and ByCategory partition the view, so their counts sum
// to the view's row count. BySkill does not: one posting contributes to every
// skill it lists. ByLocation counts on-site rows only; a remote posting has
// no meaningful geography.
func Aggregate(view dataset.View, kind Kind, limit int) []Bucket {
	counts := make(map[string]int)

	for i := 0; i < view.Len(); i++ {
		p := view.At(i)
		switch kind {
		case BySkill:
			for _, s := range p.Skills {
				counts[s]++
			}
		case ByRemote:
			if p.Remote {
				counts[LabelRemote]++
			} else {
				counts[LabelOnsite]++
			}
		case ByCompany:
			counts[p.Company]++
		case ByLocation:
			if !p.Remote {
				counts[p.Location]++
			}
		case ByCategory:
			counts[p.Category]++
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

// sortBuckets orders by count descending, then label ascending.
func sortBuckets(buckets []Bucket) {
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Label < buckets[j].Label
	})
}

// percentOf rounds to one decimal. The rounding rule is a display choice.
func percentOf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}
