package analysis

import (
	"fmt"
	"testing"
	"time"

	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/suggestions"
)

func mkSuggestion(id, title, description string, createdAt time.Time) suggestions.Suggestion {
	return suggestions.Suggestion{
		ID:          id,
		UserID:      "user-" + id,
		Title:       title,
		Description: description,
		Status:      suggestions.StatusPending,
		CreatedAt:   createdAt,
	}
}

func TestBuildExactCluster(t *testing.T) {
	base := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	items := []suggestions.Suggestion{
		mkSuggestion("a", "Add dark mode", "", base),
		mkSuggestion("b", "add DARK mode!!", "", base.Add(time.Hour)),
		mkSuggestion("c", "Export data", "", base),
	}

	clusters := ClusterBuilder{}.Build(items)
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	c := clusters[0]
	if c.Type != ClusterExact {
		t.Fatalf("expected exact cluster, got %s", c.Type)
	}
	if len(c.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(c.Members))
	}
	if c.Confidence != 1.0 || c.AverageSimilarity != 1.0 {
		t.Fatalf("expected confidence and similarity 1.0, got %v / %v", c.Confidence, c.AverageSimilarity)
	}
	if c.DateRange.Oldest != base || c.DateRange.Newest != base.Add(time.Hour) {
		t.Fatalf("unexpected date range: %+v", c.DateRange)
	}
}

func TestBuildSemanticCluster(t *testing.T) {
	base := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	// Same token multiset in different order: not byte-identical after
	// normalization, but cosine-identical.
	items := []suggestions.Suggestion{
		mkSuggestion("a", "Page load slow", "", base),
		mkSuggestion("b", "Slow page load", "", base),
		mkSuggestion("c", "Export data as CSV", "", base),
	}

	clusters := ClusterBuilder{}.Build(items)
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	c := clusters[0]
	if c.Type != ClusterSemantic {
		t.Fatalf("expected semantic cluster, got %s", c.Type)
	}
	if len(c.Members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(c.Members))
	}
	if c.Confidence != semanticMaxConfidence {
		t.Fatalf("expected confidence capped at %v, got %v", semanticMaxConfidence, c.Confidence)
	}
	if c.AverageSimilarity < 0.99 {
		t.Fatalf("expected near-identical similarity, got %v", c.AverageSimilarity)
	}
}

func TestBuildThemeCluster(t *testing.T) {
	base := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	// "page" appears in every document, so its idf (and cosine contribution)
	// is zero; only the shared-keyword fallback can group these.
	items := []suggestions.Suggestion{
		mkSuggestion("a", "Profile page broken", "", base),
		mkSuggestion("b", "Page colors ugly everywhere", "", base),
	}

	clusters := ClusterBuilder{}.Build(items)
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	c := clusters[0]
	if c.Type != ClusterTheme {
		t.Fatalf("expected theme cluster, got %s", c.Type)
	}
	if c.Confidence != themeConfidence || c.AverageSimilarity != themeSimilarity {
		t.Fatalf("unexpected theme scores: %v / %v", c.Confidence, c.AverageSimilarity)
	}
	if len(c.TopKeywords) == 0 || c.TopKeywords[0] != "page" {
		t.Fatalf("expected page as top keyword, got %v", c.TopKeywords)
	}
}

func TestBuildSortsBySizeDescending(t *testing.T) {
	base := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	items := []suggestions.Suggestion{
		mkSuggestion("e1", "Add dark mode", "", base),
		mkSuggestion("e2", "Add dark mode", "", base),
		mkSuggestion("b1", "Billing invoice wrong", "", base),
		mkSuggestion("b2", "Billing receipt missing", "", base),
		mkSuggestion("b3", "Billing overcharge happened", "", base),
	}

	clusters := ClusterBuilder{}.Build(items)
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	if len(clusters[0].Members) != 3 || clusters[0].Type != ClusterTheme {
		t.Fatalf("expected 3-member theme cluster first, got %d members of %s", len(clusters[0].Members), clusters[0].Type)
	}
	if len(clusters[1].Members) != 2 || clusters[1].Type != ClusterExact {
		t.Fatalf("expected 2-member exact cluster second, got %d members of %s", len(clusters[1].Members), clusters[1].Type)
	}
}

func TestBuildMembershipIsUnique(t *testing.T) {
	base := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	items := []suggestions.Suggestion{}
	for i := 0; i < 4; i++ {
		items = append(items, mkSuggestion(fmt.Sprintf("d%d", i), "Add dark mode", "", base))
	}
	items = append(items,
		mkSuggestion("s1", "Page load slow", "", base),
		mkSuggestion("s2", "Slow page load", "", base),
	)

	clusters := ClusterBuilder{}.Build(items)
	seen := map[string]bool{}
	for _, c := range clusters {
		if len(c.Members) < 2 {
			t.Fatalf("cluster with fewer than 2 members: %+v", c)
		}
		for _, m := range c.Members {
			if seen[m.ID] {
				t.Fatalf("suggestion %s appears in more than one cluster", m.ID)
			}
			seen[m.ID] = true
		}
	}
}

func TestBuildNoClustersForUnrelatedSuggestions(t *testing.T) {
	base := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)
	items := []suggestions.Suggestion{
		mkSuggestion("a", "Export spreadsheets", "", base),
		mkSuggestion("b", "Darker sidebar", "", base),
	}

	clusters := ClusterBuilder{}.Build(items)
	if len(clusters) != 0 {
		t.Fatalf("expected no clusters, got %d", len(clusters))
	}
}
