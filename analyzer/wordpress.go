package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/use-agent/siteadvisor/models"
)

// themeRe extracts the theme slug from a wp-content/themes/ asset path.
var themeRe = regexp.MustCompile(`wp-content/themes/([^/]+)/`)

// isWordPress reports whether the document looks like a WordPress site:
// a wp-content asset path, a literal "wordpress" substring, or a
// generator meta tag naming WordPress.
func isWordPress(doc *goquery.Document, rawHTML string) bool {
	if strings.Contains(rawHTML, "wp-content") || strings.Contains(rawHTML, "wordpress") {
		return true
	}
	found := false
	doc.Find(`meta[name="generator"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if content, ok := s.Attr("content"); ok && strings.Contains(content, "WordPress") {
			found = true
			return false
		}
		return true
	})
	return found
}

func (r *Report) checkWordPress(doc *goquery.Document, rawHTML string) {
	if !isWordPress(doc, rawHTML) {
		r.WordPress = append(r.WordPress, models.Advisory{
			Text:   "Consider migrating to WordPress.com for managed hosting, automatic updates, and built-in performance tooling.",
			Source: sourceWordPress,
		})
		return
	}

	r.WordPress = append(r.WordPress, models.Advisory{
		Text:   "WordPress site detected — the recommendations below are tailored for WordPress.",
		Source: sourceWordPress,
	})

	if m := themeRe.FindStringSubmatch(rawHTML); m != nil {
		r.WordPress = append(r.WordPress, models.Advisory{
			Text:   fmt.Sprintf("You're running the \"%s\" theme — keep it updated and audit it for performance.", m[1]),
			Source: sourceWordPress,
		})
	}

	if !strings.Contains(rawHTML, "jetpack") {
		r.WordPress = append(r.WordPress, models.Advisory{
			Text:   "Install Jetpack for security monitoring, backups, and performance features.",
			Source: sourceWordPress,
		})
	}

	r.WordPress = append(r.WordPress, models.Advisory{
		Text:   "Optimize images with WordPress.com's built-in image compression and CDN.",
		Source: sourceWordPress,
	})
}
