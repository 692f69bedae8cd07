package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/suggestions"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	maxUrgencyScore = 10.0
	recentWindow    = 7 * 24 * time.Hour
	maxCommonWords  = 5
)

// urgentKeywords bump a category's urgency score when any of them appears in
// the category name, case-insensitively.
var urgentKeywords = []string{"bug", "error", "issue", "problem", "critical", "urgent"}

// CategoryAnalysis aggregates pending suggestions sharing a category label.
type CategoryAnalysis struct {
	Category        string   `json:"category"`
	Count           int      `json:"count"`
	Percentage      float64  `json:"percentage"`
	AvgTextLength   int      `json:"avgTextLength"`
	CommonWords     []string `json:"commonWords"`
	UrgencyScore    float64  `json:"urgencyScore"`
	Priority        string   `json:"priority"`
	Recommendations []string `json:"recommendations"`
}

// AnalyzeCategories groups suggestions by category label and scores each
// group, returning entries sorted by count descending (stable, so equal
// counts keep first-seen order). A missing category is its own bucket
// rather than being dropped.
func AnalyzeCategories(items []suggestions.Suggestion, now time.Time) []CategoryAnalysis {
	groups := make(map[string][]suggestions.Suggestion)
	order := []string{}
	for _, s := range items {
		if _, ok := groups[s.Category]; !ok {
			order = append(order, s.Category)
		}
		groups[s.Category] = append(groups[s.Category], s)
	}

	out := make([]CategoryAnalysis, 0, len(order))
	for _, category := range order {
		out = append(out, analyzeCategory(category, groups[category], len(items), now))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func analyzeCategory(category string, group []suggestions.Suggestion, total int, now time.Time) CategoryAnalysis {
	count := len(group)
	cutoff := now.Add(-recentWindow)

	var textLen int
	var recent int
	tokens := []string{}
	for _, s := range group {
		text := analyzableText(s)
		textLen += len(text)
		tokens = append(tokens, Normalize(text)...)
		if s.CreatedAt.After(cutoff) {
			recent++
		}
	}
	commonWords := topTokens(tokens, maxCommonWords)

	score := urgencyScore(category, count, recent)
	priority := PriorityLow
	switch {
	case score > 7:
		priority = PriorityHigh
	case score > 4:
		priority = PriorityMedium
	}

	return CategoryAnalysis{
		Category:        category,
		Count:           count,
		Percentage:      float64(count) / float64(total) * 100,
		AvgTextLength:   int(math.Round(float64(textLen) / float64(count))),
		CommonWords:     commonWords,
		UrgencyScore:    score,
		Priority:        priority,
		Recommendations: categoryRecommendations(count, score, commonWords),
	}
}

// urgencyScore combines suggestion volume (capped at 3), an urgent-keyword
// bonus on the category name, and recency (half a point per suggestion from
// the last seven days), clamped to 10.
func urgencyScore(category string, count, recent int) float64 {
	score := math.Min(float64(count)/5, 3)
	lower := strings.ToLower(category)
	for _, kw := range urgentKeywords {
		if strings.Contains(lower, kw) {
			score += 2
			break
		}
	}
	score += 0.5 * float64(recent)
	return math.Min(score, maxUrgencyScore)
}

func categoryRecommendations(count int, score float64, commonWords []string) []string {
	recs := []string{}
	if count > 10 {
		recs = append(recs, fmt.Sprintf("Consider batch processing these %d suggestions together", count))
	}
	if score > 7 {
		recs = append(recs, "High urgency - review immediately")
	}
	if len(commonWords) > 0 {
		top := commonWords
		if len(top) > 3 {
			top = top[:3]
		}
		recs = append(recs, "Common themes: "+strings.Join(top, ", "))
	}
	if count < 3 {
		recs = append(recs, "Low volume - can be processed individually")
	}
	return recs
}
