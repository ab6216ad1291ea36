package analyzer

import "github.com/use-agent/siteadvisor/models"

// FallbackGroups is the fixed result substituted when the page cannot
// be fetched. The normal checks never run on this path.
func FallbackGroups() []models.OutputGroup {
	return []models.OutputGroup{
		{
			Category: "Site Access",
			Icon:     "🔒",
			Priority: models.PriorityHigh,
			Items: []models.Advisory{
				{
					Text:   "We couldn't access your site — it may be behind a login, a firewall, or blocking automated requests.",
					Source: "Site accessibility check",
				},
				{
					Text:   "Verify the site is publicly reachable and try again — search engines need the same access we do.",
					Source: "Site accessibility check",
				},
			},
		},
		{
			Category: "WordPress.com Recommendations",
			Icon:     "💡",
			Priority: models.PriorityHigh,
			Items: []models.Advisory{
				{
					Text:   "Host on WordPress.com for reliable, publicly accessible hosting with built-in SEO tools.",
					Source: "WordPress.com hosting",
				},
			},
		},
	}
}
