package sampledata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Arun1457/olympics-dashboard/pkg/logger"
)

// httpClient wraps http.Client so every smoke check shares the
// configured timeout and carries the caller's context.
type httpClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *httpClient {
	return &httpClient{client: &http.Client{Timeout: timeout}}
}

func (c *httpClient) get(ctx context.Context, url string) ([]byte, string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	return body, resp.Header.Get("Content-Type"), resp.StatusCode, nil
}

// Response shapes the checks decode. Only the fields under test are
// declared.
type domainsPayload struct {
	Years   []int    `json:"years"`
	Regions []string `json:"regions"`
	Sports  []string `json:"sports"`
	Medals  []string `json:"medals"`
}

type tallyPayload struct {
	Kind  string `json:"kind"`
	Tally []struct {
		Region string `json:"region"`
		Total  int    `json:"total"`
	} `json:"tally"`
}

type summaryPayload struct {
	Athletes  int `json:"athletes"`
	Events    int `json:"events"`
	MedalRows int `json:"medalRows"`
}

// verifyService runs the smoke checks against a running dashboard.
// Every check failure is logged and counted; the first transport-level
// error aborts the run.
func verifyService(ctx context.Context, cfg *Config, stats *Stats) error {
	logger.Get().Info(ctx, "verifying running service", logger.String("baseURL", cfg.BaseURL))

	client := newHTTPClient(cfg.Timeout)

	checks := []struct {
		name string
		run  func(ctx context.Context) error
	}{
		{name: "health", run: func(ctx context.Context) error { return checkHealth(ctx, client, cfg) }},
		{name: "domains", run: func(ctx context.Context) error { return checkDomains(ctx, client, cfg) }},
		{name: "tally ordering", run: func(ctx context.Context) error { return checkTally(ctx, client, cfg) }},
		{name: "summary", run: func(ctx context.Context) error { return checkSummary(ctx, client, cfg) }},
		{name: "tally export", run: func(ctx context.Context) error { return checkTallyExport(ctx, client, cfg) }},
	}

	for _, check := range checks {
		stats.ChecksRun++
		if err := check.run(ctx); err != nil {
			stats.ChecksFailed++
			logger.Get().Error(ctx, "check failed",
				logger.String("check", check.name),
				logger.Error(err))
			continue
		}
		logger.Get().Info(ctx, "check passed", logger.String("check", check.name))
	}

	if stats.ChecksFailed > 0 {
		return fmt.Errorf("%d of %d checks failed", stats.ChecksFailed, stats.ChecksRun)
	}
	return nil
}

func checkHealth(ctx context.Context, client *httpClient, cfg *Config) error {
	_, _, status, err := client.get(ctx, cfg.BaseURL+"/healthz")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("health check returned status %d", status)
	}
	return nil
}

func checkDomains(ctx context.Context, client *httpClient, cfg *Config) error {
	body, _, status, err := client.get(ctx, cfg.BaseURL+"/domains")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("domains returned status %d", status)
	}

	var payload domainsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("failed to decode domains: %w", err)
	}

	if len(payload.Years) == 0 || len(payload.Regions) == 0 || len(payload.Sports) == 0 {
		return fmt.Errorf("domains has empty dimensions: years=%d regions=%d sports=%d",
			len(payload.Years), len(payload.Regions), len(payload.Sports))
	}
	if len(payload.Medals) == 0 {
		return fmt.Errorf("domains has no medal options")
	}
	return nil
}

func checkTally(ctx context.Context, client *httpClient, cfg *Config) error {
	body, _, status, err := client.get(ctx, cfg.BaseURL+"/views/tally?overall=true")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("tally returned status %d", status)
	}

	var payload tallyPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("failed to decode tally: %w", err)
	}

	if len(payload.Tally) == 0 {
		return fmt.Errorf("overall tally is empty")
	}
	for i := 1; i < len(payload.Tally); i++ {
		if payload.Tally[i].Total > payload.Tally[i-1].Total {
			return fmt.Errorf("tally not sorted: %s (%d) ranks above %s (%d)",
				payload.Tally[i-1].Region, payload.Tally[i-1].Total,
				payload.Tally[i].Region, payload.Tally[i].Total)
		}
	}
	return nil
}

func checkSummary(ctx context.Context, client *httpClient, cfg *Config) error {
	body, _, status, err := client.get(ctx, cfg.BaseURL+"/views/summary?overall=true")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("summary returned status %d", status)
	}

	var payload summaryPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("failed to decode summary: %w", err)
	}

	if payload.Athletes <= 0 || payload.Events <= 0 {
		return fmt.Errorf("summary reports an empty table: athletes=%d events=%d",
			payload.Athletes, payload.Events)
	}
	return nil
}

func checkTallyExport(ctx context.Context, client *httpClient, cfg *Config) error {
	body, contentType, status, err := client.get(ctx, cfg.BaseURL+"/export/tally.csv?overall=true")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("tally export returned status %d", status)
	}
	if !strings.Contains(contentType, "text/csv") {
		return fmt.Errorf("tally export content type is %q", contentType)
	}

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) < 2 {
		return fmt.Errorf("tally export has no data rows")
	}
	if !strings.HasPrefix(lines[0], "region,Gold,Silver,Bronze,Total") {
		return fmt.Errorf("unexpected tally export header: %q", lines[0])
	}
	return nil
}
