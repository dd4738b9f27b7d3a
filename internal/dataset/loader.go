package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Load reads the postings dataset from a local file path or an http(s) URL
// and returns the fully parsed table. It returns a *LoadError when the source
// is missing, unreadable, or fails schema validation; it never returns a
// partial table.
//
// Individual malformed rows (wrong field count, blank required fields) are
// skipped and counted rather than failing the whole load. A header-only file
// yields a valid empty table.
func Load(ctx context.Context, source string) (*Table, error) {
	r, closeFn, err := openSource(ctx, source)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	return parse(r, source)
}

func openSource(ctx context.Context, source string) (io.Reader, func() error, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, nil, newLoadError(LoadErrMissingFile, source, "invalid dataset URL", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, nil, newLoadError(LoadErrMissingFile, source, "failed to fetch dataset", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, nil, newLoadError(LoadErrMissingFile, source,
				fmt.Sprintf("unexpected status %d fetching dataset", resp.StatusCode), nil)
		}
		return resp.Body, resp.Body.Close, nil
	}

	f, err := os.Open(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, newLoadError(LoadErrMissingFile, source, "dataset file not found", err)
		}
		return nil, nil, newLoadError(LoadErrMissingFile, source, "dataset file not readable", err)
	}
	return f, f.Close, nil
}

func parse(r io.Reader, source string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, newLoadError(LoadErrMalformed, source, "dataset file is empty", nil)
		}
		return nil, newLoadError(LoadErrMalformed, source, "failed to read CSV header", err)
	}

	cols, missing := mapHeader(headers)
	if len(missing) > 0 {
		return nil, newLoadError(LoadErrSchema, source,
			"missing required columns: "+strings.Join(missing, ", "), nil)
	}

	var postings []JobPosting
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped++
				continue
			}
			return nil, newLoadError(LoadErrMalformed, source, "failed to read CSV row", err)
		}

		posting, ok := parseRow(cols, row)
		if !ok {
			skipped++
			continue
		}
		postings = append(postings, posting)
	}

	table := NewTable(postings)
	table.skipped = skipped
	return table, nil
}

// parseRow builds a JobPosting from one CSV row. Rows without a company,
// category, or location carry no analytical value and are dropped.
func parseRow(cols columnIndex, row []string) (JobPosting, bool) {
	company := cols.field(row, colCompany)
	category := cols.field(row, colCategory)
	location := cols.field(row, colLocation)
	if company == "" || category == "" || location == "" {
		return JobPosting{}, false
	}

	description := cols.field(row, colDescription)

	remote := isRemoteLocation(location)
	if v, ok := parseRemoteFlag(cols.field(row, colRemote)); ok {
		remote = v
	}

	return JobPosting{
		Title:      cols.field(row, colTitle),
		Company:    company,
		Category:   category,
		Location:   location,
		Remote:     remote,
		Skills:     splitSkills(cols.field(row, colSkills)),
		HasSalary:  mentionsSalary(description),
		PostedDate: parseDate(cols.field(row, colPostedDate)),
		SourceURL:  cols.field(row, colSourceURL),
	}, true
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "01/02/2006", "2006-01-02 15:04:05"}

// parseDate is lenient: an unparseable date leaves the posting dateless
// rather than dropping the row.
func parseDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
