package dto

import (
	"jobpulse/internal/analytics"
	"jobpulse/internal/chart"
)

type DashboardResponse struct {
	Summary    SummaryResponse    `json:"summary"`
	Charts     ChartsResponse     `json:"charts"`
	SkillPairs []analytics.Bucket `json:"skill_pairs"`
	Insights   []InsightResponse  `json:"insights"`
	Sample     []PostingResponse  `json:"sample"`
}

type SummaryResponse struct {
	TotalPostings   int     `json:"total_postings"`
	UniqueCompanies int     `json:"unique_companies"`
	UniqueSkills    int     `json:"unique_skills"`
	RemotePercent   float64 `json:"remote_percent"`
	SalaryPercent   float64 `json:"salary_percent"`
}

type ChartsResponse struct {
	TopSkills       *chart.Config `json:"top_skills"`
	WorkSplit       *chart.Config `json:"work_split"`
	TopCompanies    *chart.Config `json:"top_companies"`
	Categories      *chart.Config `json:"categories"`
	OnsiteLocations *chart.Config `json:"onsite_locations"`
}

type InsightResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}
