package app

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"jobpulse/internal/config"
	"jobpulse/internal/dataset"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func testConfig() config.Config {
	return config.Config{
		App: config.AppConfig{AppName: "jobpulse-test", Environment: "test", HTTPPort: "0"},
	}
}

func loadedApp(t *testing.T) *App {
	t.Helper()
	table := dataset.NewTable([]dataset.JobPosting{
		{Company: "Acme", Category: "Backend", Location: "NYC", Skills: []string{"go", "aws"}},
		{Company: "Globex", Category: "Data", Location: "Remote", Remote: true, Skills: []string{"python"}},
		{Company: "Acme", Category: "Backend", Location: "NYC", Skills: []string{"go"}},
	})
	return New(testConfig(), table, nil, nil)
}

func TestDashboardEndpoint(t *testing.T) {
	app := loadedApp(t)

	req := httptest.NewRequest("GET", "/api/v1/dashboard", nil)
	resp, err := app.Fiber.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var envelope semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}

	var body struct {
		Summary struct {
			TotalPostings int `json:"total_postings"`
		} `json:"summary"`
		Charts struct {
			TopSkills struct {
				Empty  bool `json:"empty"`
				Series []struct {
					Data []struct {
						Label string  `json:"label"`
						Value float64 `json:"value"`
					} `json:"data"`
				} `json:"series"`
			} `json:"top_skills"`
		} `json:"charts"`
		Sample []json.RawMessage `json:"sample"`
	}
	if err := json.Unmarshal(envelope.Data, &body); err != nil {
		t.Fatalf("decode data: %v", err)
	}

	if body.Summary.TotalPostings != 3 {
		t.Errorf("total_postings = %d, want 3", body.Summary.TotalPostings)
	}
	if body.Charts.TopSkills.Empty || len(body.Charts.TopSkills.Series) != 1 {
		t.Errorf("unexpected top skills chart: %+v", body.Charts.TopSkills)
	}
	if got := body.Charts.TopSkills.Series[0].Data[0].Label; got != "go" {
		t.Errorf("top skill = %q, want go", got)
	}
	if len(body.Sample) != 3 {
		t.Errorf("sample rows = %d, want 3", len(body.Sample))
	}
}

func TestDashboardEndpointWithFilters(t *testing.T) {
	app := loadedApp(t)

	req := httptest.NewRequest("GET", "/api/v1/dashboard?work=remote&category=Data", nil)
	resp, err := app.Fiber.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var envelope semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	var body struct {
		Summary struct {
			TotalPostings int `json:"total_postings"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(envelope.Data, &body); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if body.Summary.TotalPostings != 1 {
		t.Errorf("total_postings = %d, want 1", body.Summary.TotalPostings)
	}
}

func TestPostingsEndpointRejectsBadLimit(t *testing.T) {
	app := loadedApp(t)

	req := httptest.NewRequest("GET", "/api/v1/postings?limit=abc", nil)
	resp, err := app.Fiber.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 400 {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDegradedAppServesErrorPageAnd503(t *testing.T) {
	loadErr := errors.New("dataset exploded")
	app := New(testConfig(), nil, loadErr, nil)

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Fiber.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 503 {
		t.Errorf("page status = %d, want 503", resp.StatusCode)
	}
	page, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(page), "Dataset unavailable") {
		t.Error("error page should explain the dataset failure")
	}

	apiReq := httptest.NewRequest("GET", "/api/v1/dashboard", nil)
	apiResp, err := app.Fiber.Test(apiReq)
	if err != nil {
		t.Fatalf("api request failed: %v", err)
	}
	defer apiResp.Body.Close()

	if apiResp.StatusCode != 503 {
		t.Errorf("api status = %d, want 503", apiResp.StatusCode)
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := loadedApp(t)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Fiber.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestPageServesDashboard(t *testing.T) {
	app := loadedApp(t)

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Fiber.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	page, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(page), "JobPulse") {
		t.Error("dashboard page not served")
	}
}

func TestListenAddr(t *testing.T) {
	tests := []struct {
		port    string
		want    string
		wantErr bool
	}{
		{"8080", ":8080", false},
		{":8080", ":8080", false},
		{"  9000 ", ":9000", false},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ListenAddr(tt.port)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ListenAddr(%q) should fail", tt.port)
			}
			continue
		}
		if err != nil {
			t.Errorf("ListenAddr(%q): %v", tt.port, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ListenAddr(%q) = %q, want %q", tt.port, got, tt.want)
		}
	}
}
