package models

import "strings"

// AnalyzeRequest is the payload for POST /api/v1/analyze.
type AnalyzeRequest struct {
	// URL is the page to analyze. Required. A missing http:// or
	// https:// prefix is normalized to https:// before fetching.
	URL string `json:"url" binding:"required"`
}

// NormalizedURL returns the target URL with an https:// prefix prepended
// when the input carries no scheme.
func (r *AnalyzeRequest) NormalizedURL() string {
	if strings.HasPrefix(r.URL, "http://") || strings.HasPrefix(r.URL, "https://") {
		return r.URL
	}
	return "https://" + r.URL
}
