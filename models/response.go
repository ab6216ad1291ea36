package models

// Advisory is a single improvement suggestion with its rationale.
type Advisory struct {
	// Text is the human-readable recommendation.
	Text string `json:"text"`

	// Source cites where the recommendation comes from.
	Source string `json:"source"`
}

// Priority levels for output groups.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// OutputGroup is one presentation-ready category of advisories.
type OutputGroup struct {
	// Category is the display label, e.g. "SEO Optimization".
	Category string `json:"category"`

	// Icon is the display emoji for the category.
	Icon string `json:"icon"`

	// Priority is "high", "medium", or "low".
	Priority string `json:"priority"`

	// Items holds the advisories in check-evaluation order.
	Items []Advisory `json:"items"`
}

// AnalyzeResponse is the response for POST /api/v1/analyze.
type AnalyzeResponse struct {
	// URL is the analyzed URL after scheme normalization.
	URL string `json:"url"`

	// Improvements holds the non-empty advisory groups in fixed
	// category order.
	Improvements []OutputGroup `json:"improvements"`
}

// ErrorResponse is the body of every non-200 response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the response for GET /api/v1/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
