package dataset

import "strings"

// Canonical column keys. The loader validates headers at load time so every
// downstream consumer works against named, typed fields instead of positional
// or dynamic column access.
const (
	colTitle       = "title"
	colCompany     = "company"
	colCategory    = "category"
	colLocation    = "location"
	colRemote      = "remote"
	colSkills      = "skills"
	colPostedDate  = "posted_date"
	colDescription = "job_description"
	colSourceURL   = "post_link"
)

// headerAliases maps accepted CSV header spellings to canonical keys.
var headerAliases = map[string]string{
	"title":           colTitle,
	"company":         colCompany,
	"category":        colCategory,
	"location":        colLocation,
	"remote":          colRemote,
	"skills":          colSkills,
	"keywords":        colSkills,
	"posted_date":     colPostedDate,
	"date_posted":     colPostedDate,
	"job_description": colDescription,
	"description":     colDescription,
	"post_link":       colSourceURL,
	"url":             colSourceURL,
}

var requiredColumns = []string{colCompany, colCategory, colLocation, colSkills, colPostedDate}

// columnIndex maps canonical column keys to their position in the header row.
type columnIndex map[string]int

// mapHeader resolves a raw header row into a columnIndex and reports any
// required columns that are absent.
func mapHeader(headers []string) (columnIndex, []string) {
	idx := make(columnIndex, len(headers))
	for i, h := range headers {
		key := normalizeHeader(h)
		canonical, ok := headerAliases[key]
		if !ok {
			continue // unknown columns are ignored
		}
		if _, seen := idx[canonical]; !seen {
			idx[canonical] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	return idx, missing
}

// normalizeHeader converts "Date Posted" to "date_posted".
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

// field returns the trimmed cell for a canonical column, or "" when the
// column is not present in the file.
func (ci columnIndex) field(row []string, key string) string {
	i, ok := ci[key]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
