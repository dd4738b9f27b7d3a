package chart

import (
	"sync"
	"testing"

	"jobpulse/internal/analytics"
)

func TestBuildBar(t *testing.T) {
	buckets := []analytics.Bucket{
		{Label: "go", Count: 5, Percent: 50},
		{Label: "aws", Count: 3, Percent: 30},
	}

	cfg := Build(buckets, Bar, "Top Skills", analytics.BySkill)

	if cfg.Empty {
		t.Fatal("non-empty buckets produced an empty chart")
	}
	if cfg.Type != Bar {
		t.Errorf("type = %q, want bar", cfg.Type)
	}
	if cfg.XAxis != "Skill" || cfg.YAxis != "Postings" {
		t.Errorf("axes = %q/%q", cfg.XAxis, cfg.YAxis)
	}
	if len(cfg.Series) != 1 || len(cfg.Series[0].Data) != 2 {
		t.Fatalf("unexpected series shape: %+v", cfg.Series)
	}
	if cfg.Series[0].Data[0].Label != "go" || cfg.Series[0].Data[0].Value != 5 {
		t.Errorf("first point = %+v", cfg.Series[0].Data[0])
	}
	if !cfg.ShowGrid || cfg.ShowLegend {
		t.Error("bar charts show a grid and hide the legend")
	}
	if len(cfg.Colors) != 2 {
		t.Errorf("got %d colors, want 2", len(cfg.Colors))
	}
}

func TestBuildPie(t *testing.T) {
	buckets := []analytics.Bucket{
		{Label: "On-site", Count: 7, Percent: 70},
		{Label: "Remote", Count: 3, Percent: 30},
	}

	cfg := Build(buckets, Pie, "Remote vs On-site", analytics.ByRemote)

	if cfg.Type != Pie {
		t.Errorf("type = %q, want pie", cfg.Type)
	}
	if !cfg.ShowLegend || cfg.ShowGrid {
		t.Error("pie charts show a legend and hide the grid")
	}
}

func TestBuildConcurrent(t *testing.T) {
	buckets := []analytics.Bucket{
		{Label: "go", Count: 5, Percent: 50},
		{Label: "aws", Count: 3, Percent: 30},
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				cfg := Build(buckets, Bar, "Top Skills", analytics.BySkill)
				if cfg.XAxis != "Skill" {
					t.Errorf("XAxis = %q, want Skill", cfg.XAxis)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestBuildEmptyResult(t *testing.T) {
	cfg := Build(nil, Bar, "Top Skills", analytics.BySkill)

	if cfg == nil {
		t.Fatal("empty result must yield an empty chart description, not nil")
	}
	if !cfg.Empty {
		t.Error("Empty flag not set")
	}
	if len(cfg.Series) != 0 {
		t.Errorf("empty chart has %d series", len(cfg.Series))
	}
	if cfg.Title != "Top Skills" {
		t.Errorf("title = %q, want preserved", cfg.Title)
	}
}
