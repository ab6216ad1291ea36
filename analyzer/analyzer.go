// Package analyzer runs a fixed set of heuristic checks over one HTML
// document and groups the resulting advisories into six category
// buckets (SEO, Performance, WordPress, UX, Accessibility, Content).
//
// Checks are independent: each appends zero or more advisories to its
// bucket and never reads another bucket. Element and attribute lookups
// go through goquery; the word-count check walks the raw HTML with the
// x/net tokenizer so scripts and styles don't inflate the count.
package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/use-agent/siteadvisor/models"
)

// Source citations attached to advisories.
const (
	sourceSEO           = "Google SEO Starter Guide"
	sourceSocial        = "Open Graph protocol"
	sourceStructured    = "Google Search rich results"
	sourceWordPress     = "WordPress.com best practices"
	sourcePerformance   = "Google Core Web Vitals"
	sourceUX            = "UX best practices"
	sourceContent       = "Search quality guidelines"
	sourceAccessibility = "WCAG 2.1"
)

// Title and description length policy, in characters.
const (
	titleMaxLen = 60
	titleMinLen = 30
	descMaxLen  = 160
	urlMaxLen   = 60
	minWords    = 300
	slowLoadMs  = 3000
)

// Analyze evaluates every check against the fetched HTML and returns
// the populated report. loadTimeMs is the observed fetch duration.
func Analyze(rawHTML, pageURL string, loadTimeMs int64) (*Report, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, models.NewAnalyzeError(models.ErrCodeInternal, "parse document", err)
	}

	r := &Report{}
	r.checkSEO(doc, rawHTML, pageURL)
	r.checkWordPress(doc, rawHTML)
	r.checkPerformance(loadTimeMs)
	r.checkUX(doc, rawHTML)
	r.checkContent(rawHTML)
	r.checkAccessibility(doc)
	return r, nil
}

func (r *Report) checkSEO(doc *goquery.Document, rawHTML, pageURL string) {
	if !strings.HasPrefix(pageURL, "https://") {
		r.SEO = append(r.SEO, models.Advisory{
			Text:   "Switch to HTTPS — secure sites rank higher and browsers flag plain HTTP as not secure.",
			Source: sourceSEO,
		})
	}

	if len(pageURL) > urlMaxLen {
		r.SEO = append(r.SEO, models.Advisory{
			Text:   "Your URL is quite long — shorter URLs are easier to share and perform better in search.",
			Source: sourceSEO,
		})
	}

	// Title checks are mutually exclusive: missing, too long, too short.
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if doc.Find("title").Length() == 0 {
		r.SEO = append(r.SEO, models.Advisory{
			Text:   "Add a <title> tag — pages without titles are hard to index and look broken in search results.",
			Source: sourceSEO,
		})
	} else if n := utf8.RuneCountInString(title); n > titleMaxLen {
		r.SEO = append(r.SEO, models.Advisory{
			Text:   fmt.Sprintf("Your title is %d characters — keep it under 60 so it doesn't get cut off in search results.", n),
			Source: sourceSEO,
		})
	} else if n < titleMinLen {
		r.SEO = append(r.SEO, models.Advisory{
			Text:   "Your title is too short — aim for 30-60 characters to improve click-through rates.",
			Source: sourceSEO,
		})
	}

	desc, hasDesc := doc.Find(`meta[name="description"]`).First().Attr("content")
	if !hasDesc {
		r.SEO = append(r.SEO, models.Advisory{
			Text:   "Add a meta description — it's the snippet searchers see under your title.",
			Source: sourceSEO,
		})
	} else if n := utf8.RuneCountInString(desc); n > descMaxLen {
		r.SEO = append(r.SEO, models.Advisory{
			Text:   fmt.Sprintf("Your meta description is %d characters — keep it under 160 to avoid truncation.", n),
			Source: sourceSEO,
		})
	}

	switch h1s := doc.Find("h1").Length(); {
	case h1s == 0:
		r.SEO = append(r.SEO, models.Advisory{
			Text:   "No H1 heading found — add one main heading that describes the page.",
			Source: sourceSEO,
		})
	case h1s > 1:
		r.SEO = append(r.SEO, models.Advisory{
			Text:   fmt.Sprintf("Found %d H1 headings — use exactly one per page and demote the rest.", h1s),
			Source: sourceSEO,
		})
	}

	ogTitle := doc.Find(`meta[property="og:title"]`).Length()
	ogDesc := doc.Find(`meta[property="og:description"]`).Length()
	if ogTitle == 0 || ogDesc == 0 {
		r.SEO = append(r.SEO, models.Advisory{
			Text:   "Add Open Graph tags (og:title, og:description) so shared links get rich previews on social media.",
			Source: sourceSocial,
		})
	}

	if !strings.Contains(rawHTML, "schema.org") &&
		doc.Find(`script[type="application/ld+json"]`).Length() == 0 {
		r.SEO = append(r.SEO, models.Advisory{
			Text:   "No structured data found — add schema.org markup to qualify for rich search results.",
			Source: sourceStructured,
		})
	}
}

func (r *Report) checkPerformance(loadTimeMs int64) {
	if loadTimeMs > slowLoadMs {
		r.Performance = append(r.Performance, models.Advisory{
			Text:   fmt.Sprintf("Page loaded in %.1f seconds — aim for under 3 seconds to keep visitors from leaving.", float64(loadTimeMs)/1000.0),
			Source: sourcePerformance,
		})
	}

	// Generic fallback when no specific performance issue fired.
	if len(r.Performance) == 0 {
		r.Performance = append(r.Performance, models.Advisory{
			Text:   "Implement image optimization and caching to keep load times fast as the site grows.",
			Source: sourcePerformance,
		})
	}
}

func (r *Report) checkUX(doc *goquery.Document, rawHTML string) {
	if doc.Find(`meta[name="viewport"]`).Length() == 0 {
		r.UX = append(r.UX, models.Advisory{
			Text:   "Add a viewport meta tag so the page renders correctly on mobile devices.",
			Source: sourceUX,
		})
	}

	lower := strings.ToLower(rawHTML)
	if !strings.Contains(lower, "contact") &&
		!strings.Contains(lower, "email") &&
		!strings.Contains(lower, "@") {
		r.UX = append(r.UX, models.Advisory{
			Text:   "No contact information found — make it easy for visitors to reach you.",
			Source: sourceUX,
		})
	}

	if len(r.UX) == 0 {
		r.UX = append(r.UX, models.Advisory{
			Text:   "Add clear calls-to-action to guide visitors toward what you want them to do next.",
			Source: sourceUX,
		})
	}
}

func (r *Report) checkContent(rawHTML string) {
	if words := wordCount(VisibleText(rawHTML)); words < minWords {
		r.Content = append(r.Content, models.Advisory{
			Text:   "This page has limited content — aim for at least 300 words to give search engines enough context.",
			Source: sourceContent,
		})
	}
}

func (r *Report) checkAccessibility(doc *goquery.Document) {
	missing := 0
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if _, ok := s.Attr("alt"); !ok {
			missing++
		}
	})
	if missing > 0 {
		r.Accessibility = append(r.Accessibility, models.Advisory{
			Text:   fmt.Sprintf("%d image(s) are missing alt text — add descriptive alt attributes for screen readers.", missing),
			Source: sourceAccessibility,
		})
	}
}
