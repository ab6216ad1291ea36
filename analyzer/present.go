package analyzer

import "github.com/use-agent/siteadvisor/models"

// Groups shapes the report into presentation-ready output groups.
// Categories appear in a fixed order; empty buckets are omitted and
// advisories keep their insertion order.
func (r *Report) Groups() []models.OutputGroup {
	table := []struct {
		items    []models.Advisory
		category string
		icon     string
		priority string
	}{
		{r.SEO, "SEO Optimization", "🔍", models.PriorityHigh},
		{r.WordPress, "WordPress.com Specific", "⚡", models.PriorityHigh},
		{r.Performance, "Performance", "🚀", models.PriorityMedium},
		{r.UX, "User Experience", "👤", models.PriorityMedium},
		{r.Content, "Content & Structure", "✍️", models.PriorityMedium},
		{r.Accessibility, "Accessibility", "♿", models.PriorityLow},
	}

	groups := make([]models.OutputGroup, 0, len(table))
	for _, row := range table {
		if len(row.items) == 0 {
			continue
		}
		groups = append(groups, models.OutputGroup{
			Category: row.category,
			Icon:     row.icon,
			Priority: row.priority,
			Items:    row.items,
		})
	}
	return groups
}
