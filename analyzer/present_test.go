package analyzer

import (
	"testing"

	"github.com/use-agent/siteadvisor/models"
)

func TestGroups_OrderAndOmission(t *testing.T) {
	r := &Report{
		SEO:           []models.Advisory{{Text: "s1"}, {Text: "s2"}},
		WordPress:     []models.Advisory{{Text: "w1"}},
		Accessibility: []models.Advisory{{Text: "a1"}},
		// Performance, UX, Content left empty on purpose.
	}

	groups := r.Groups()

	wantCategories := []string{"SEO Optimization", "WordPress.com Specific", "Accessibility"}
	if len(groups) != len(wantCategories) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantCategories))
	}
	for i, want := range wantCategories {
		if groups[i].Category != want {
			t.Errorf("group %d category = %q, want %q", i, groups[i].Category, want)
		}
	}
}

func TestGroups_TableAttributes(t *testing.T) {
	one := []models.Advisory{{Text: "x"}}
	r := &Report{
		SEO:           one,
		WordPress:     one,
		Performance:   one,
		UX:            one,
		Content:       one,
		Accessibility: one,
	}

	groups := r.Groups()
	if len(groups) != 6 {
		t.Fatalf("got %d groups, want 6", len(groups))
	}

	tests := []struct {
		category string
		icon     string
		priority string
	}{
		{"SEO Optimization", "🔍", models.PriorityHigh},
		{"WordPress.com Specific", "⚡", models.PriorityHigh},
		{"Performance", "🚀", models.PriorityMedium},
		{"User Experience", "👤", models.PriorityMedium},
		{"Content & Structure", "✍️", models.PriorityMedium},
		{"Accessibility", "♿", models.PriorityLow},
	}

	for i, tt := range tests {
		g := groups[i]
		if g.Category != tt.category || g.Icon != tt.icon || g.Priority != tt.priority {
			t.Errorf("group %d = {%q %q %q}, want {%q %q %q}",
				i, g.Category, g.Icon, g.Priority, tt.category, tt.icon, tt.priority)
		}
	}
}

func TestGroups_PreservesInsertionOrder(t *testing.T) {
	r := &Report{SEO: []models.Advisory{{Text: "first"}, {Text: "second"}, {Text: "third"}}}

	groups := r.Groups()
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	for i, want := range []string{"first", "second", "third"} {
		if groups[0].Items[i].Text != want {
			t.Errorf("item %d = %q, want %q", i, groups[0].Items[i].Text, want)
		}
	}
}

func TestFallbackGroups(t *testing.T) {
	groups := FallbackGroups()

	if len(groups) != 2 {
		t.Fatalf("got %d fallback groups, want 2", len(groups))
	}
	if groups[0].Category != "Site Access" {
		t.Errorf("first group = %q, want %q", groups[0].Category, "Site Access")
	}
	if groups[1].Category != "WordPress.com Recommendations" {
		t.Errorf("second group = %q, want %q", groups[1].Category, "WordPress.com Recommendations")
	}
	for _, g := range groups {
		if g.Priority != models.PriorityHigh {
			t.Errorf("group %q priority = %q, want high", g.Category, g.Priority)
		}
		if len(g.Items) == 0 {
			t.Errorf("group %q has no items", g.Category)
		}
	}
	if len(groups[0].Items) != 2 {
		t.Errorf("Site Access should carry 2 advisories, got %d", len(groups[0].Items))
	}
}
