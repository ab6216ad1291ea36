package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/use-agent/siteadvisor/config"
	"github.com/use-agent/siteadvisor/models"
)

func testConfig() config.FetcherConfig {
	return config.FetcherConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "WordPress.com Website Analyzer Bot",
		MaxBodyBytes: 1024 * 1024,
	}
}

func TestFetch_Success(t *testing.T) {
	const page = "<html><body>ok</body></html>"

	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	f := New(testConfig())
	res, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}

	if res.HTML != page {
		t.Errorf("HTML = %q, want %q", res.HTML, page)
	}
	if res.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", res.StatusCode)
	}
	if res.LoadTimeMs < 0 {
		t.Errorf("LoadTimeMs = %d, want >= 0", res.LoadTimeMs)
	}
	if gotUA != "WordPress.com Website Analyzer Bot" {
		t.Errorf("User-Agent = %q, want the analyzer bot UA", gotUA)
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"forbidden", http.StatusForbidden},
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			f := New(testConfig())
			_, err := f.Fetch(context.Background(), srv.URL)

			var fetchErr *models.AnalyzeError
			if !errors.As(err, &fetchErr) {
				t.Fatalf("error = %v, want *models.AnalyzeError", err)
			}
			if fetchErr.Code != models.ErrCodeFetchFailed {
				t.Errorf("code = %q, want %q", fetchErr.Code, models.ErrCodeFetchFailed)
			}
		})
	}
}

func TestFetch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := srv.URL
	srv.Close()

	f := New(testConfig())
	_, err := f.Fetch(context.Background(), deadURL)

	var fetchErr *models.AnalyzeError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error = %v, want *models.AnalyzeError", err)
	}
	if fetchErr.Code != models.ErrCodeFetchFailed {
		t.Errorf("code = %q, want %q", fetchErr.Code, models.ErrCodeFetchFailed)
	}
	if fetchErr.Unwrap() == nil {
		t.Error("transport failure should wrap the underlying error")
	}
}

func TestFetch_BodyCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for i := 0; i < 100; i++ {
			w.Write(make([]byte, 1024))
		}
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.MaxBodyBytes = 4096

	f := New(cfg)
	res, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if len(res.HTML) != 4096 {
		t.Errorf("body length = %d, want capped at 4096", len(res.HTML))
	}
}
