package analyzer

import "github.com/use-agent/siteadvisor/models"

// Report collects the advisories produced by one analysis run, grouped
// into six fixed buckets. Each bucket preserves check-evaluation order.
// A Report is built once per request and never mutated afterwards.
type Report struct {
	SEO           []models.Advisory
	Performance   []models.Advisory
	WordPress     []models.Advisory
	UX            []models.Advisory
	Accessibility []models.Advisory
	Content       []models.Advisory
}
