// Package fetcher retrieves the raw HTML of a target page over plain HTTP.
//
// One fetch = one GET with an identifying User-Agent and a hard timeout.
// Any transport error, timeout, or non-2xx status is reported as a
// *models.AnalyzeError with code FETCH_FAILED so callers can substitute
// a degraded result instead of failing the whole request.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/use-agent/siteadvisor/config"
	"github.com/use-agent/siteadvisor/models"
)

// Result holds a successfully fetched page.
type Result struct {
	// HTML is the raw response body.
	HTML string

	// StatusCode is the HTTP status of the response.
	StatusCode int

	// LoadTimeMs is the elapsed wall-clock time of the fetch in
	// milliseconds, used as the load-time input to the analyzer.
	LoadTimeMs int64
}

// Fetcher performs single-page GET requests.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBody   int64
}

// New creates a Fetcher from configuration.
func New(cfg config.FetcherConfig) *Fetcher {
	return &Fetcher{
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
		maxBody:   cfg.MaxBodyBytes,
	}
}

// Fetch retrieves targetURL and returns the body with timing.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, models.NewAnalyzeError(models.ErrCodeFetchFailed, "build request for "+targetURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, models.NewAnalyzeError(models.ErrCodeFetchFailed, "fetch "+targetURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, models.NewAnalyzeError(models.ErrCodeFetchFailed,
			fmt.Sprintf("fetch %s: HTTP %d", targetURL, resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody))
	if err != nil {
		return nil, models.NewAnalyzeError(models.ErrCodeFetchFailed, "read body from "+targetURL, err)
	}

	return &Result{
		HTML:       string(body),
		StatusCode: resp.StatusCode,
		LoadTimeMs: time.Since(start).Milliseconds(),
	}, nil
}
