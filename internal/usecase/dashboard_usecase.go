package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"jobpulse/internal/analytics"
	"jobpulse/internal/chart"
	"jobpulse/internal/dataset"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDatasetUnavailable = errors.New("dataset unavailable")
)

// Widget sizes, matching what the dashboard page displays.
const (
	topSkillsLimit       = 20
	topCompaniesLimit    = 15
	onsiteLocationsLimit = 10
	skillPairsLimit      = 10
	filterSkillsLimit    = 50
	sampleListingsLimit  = 100
)

// DashboardView is everything one dashboard render needs: headline metrics,
// chart descriptions, highlight cards, and a sample of matching rows.
type DashboardView struct {
	Summary    analytics.Summary
	Charts     DashboardCharts
	SkillPairs []analytics.Bucket
	Insights   []analytics.Insight
	Sample     []PostingItem
}

type DashboardCharts struct {
	TopSkills       *chart.Config
	WorkSplit       *chart.Config
	TopCompanies    *chart.Config
	Categories      *chart.Config
	OnsiteLocations *chart.Config
}

// PostingItem is one listing row as exposed to delivery.
type PostingItem struct {
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

type DashboardUsecase interface {
	BuildDashboard(ctx context.Context, sel analytics.FilterSelection) (DashboardView, error)
	FilterOptions(ctx context.Context) (analytics.FilterOptions, error)
}

type Dashboard struct {
	table  *dataset.Table
	logger *zap.Logger
}

func NewDashboardUsecase(table *dataset.Table, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{table: table, logger: logger}
}

// BuildDashboard runs one synchronous recomputation: filter the table,
// aggregate each widget's dimension, and wrap the results in chart
// descriptions. The result is a pure function of (table, selection).
func (u *Dashboard) BuildDashboard(_ context.Context, sel analytics.FilterSelection) (DashboardView, error) {
	if u.table == nil {
		return DashboardView{}, ErrDatasetUnavailable
	}

	subset := analytics.Apply(u.table.All(), sel)

	view := DashboardView{
		Summary: analytics.Summarize(subset),
		Charts: DashboardCharts{
			TopSkills: chart.Build(
				analytics.Aggregate(subset, analytics.BySkill, topSkillsLimit),
				chart.Bar, "Top Skills", analytics.BySkill),
			WorkSplit: chart.Build(
				analytics.Aggregate(subset, analytics.ByRemote, 0),
				chart.Pie, "Remote vs On-site", analytics.ByRemote),
			TopCompanies: chart.Build(
				analytics.Aggregate(subset, analytics.ByCompany, topCompaniesLimit),
				chart.Bar, "Top Hiring Companies", analytics.ByCompany),
			Categories: chart.Build(
				analytics.Aggregate(subset, analytics.ByCategory, 0),
				chart.Pie, "Job Categories", analytics.ByCategory),
			OnsiteLocations: chart.Build(
				analytics.Aggregate(subset, analytics.ByLocation, onsiteLocationsLimit),
				chart.Bar, "Top On-site Locations", analytics.ByLocation),
		},
		SkillPairs: analytics.SkillPairs(subset, skillPairsLimit),
		Insights:   analytics.Insights(subset),
		Sample:     collectPostings(subset, sampleListingsLimit, 0),
	}

	u.logger.Debug("dashboard recomputed",
		zap.Int("subset_rows", subset.Len()),
		zap.Bool("filtered", !sel.IsEmpty()),
	)

	return view, nil
}

// FilterOptions returns the distinct values the filter widgets offer.
func (u *Dashboard) FilterOptions(_ context.Context) (analytics.FilterOptions, error) {
	if u.table == nil {
		return analytics.FilterOptions{}, ErrDatasetUnavailable
	}
	return analytics.Options(u.table.All(), filterSkillsLimit), nil
}

func collectPostings(view dataset.View, limit, offset int) []PostingItem {
	if offset >= view.Len() {
		return []PostingItem{}
	}

	end := view.Len()
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	out := make([]PostingItem, 0, end-offset)
	for i := offset; i < end; i++ {
		p := view.At(i)
		out = append(out, PostingItem{
			Title:      p.Title,
			Company:    p.Company,
			Category:   p.Category,
			Location:   p.Location,
			Remote:     p.Remote,
			Skills:     p.Skills,
			HasSalary:  p.HasSalary,
			PostedDate: p.PostedDate,
			SourceURL:  p.SourceURL,
		})
	}
	return out
}
