package analysis

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/suggestions"
)

const (
	maxTopCategories = 3
	maxCommonThemes  = 8
	minThemeRunes    = 4 // corpus-wide themes keep tokens of length > 3
)

// Report is the read-only analysis result returned to admins. It is
// assembled per request and never persisted.
type Report struct {
	TotalPending          int                `json:"totalPending"`
	Categories            []CategoryAnalysis `json:"categories"`
	TopCategories         []string           `json:"topCategories"`
	UrgentCategories      []string           `json:"urgentCategories"`
	CommonThemes          []string           `json:"commonThemes"`
	ActionRecommendations []string           `json:"actionRecommendations"`
	Clusters              []Cluster          `json:"clusters"`
	Message               string             `json:"message,omitempty"`
}

// Engine runs the full analysis pipeline over an immutable suggestion
// snapshot. It holds no mutable state; concurrent BuildReport calls are
// independent. Now is overridable so recency scoring is testable.
type Engine struct {
	Clusters ClusterBuilder
	Now      func() time.Time
}

// BuildReport drops suggestions from blocked submitters, then runs the
// category analyzer and cluster builder independently over the surviving
// set and assembles corpus-level insights. With zero survivors it returns
// an explicitly-labeled empty report without invoking either branch, so
// callers can tell "nothing to analyze" from a failed computation.
func (e Engine) BuildReport(all []suggestions.Suggestion, blocked map[string]struct{}) Report {
	surviving := make([]suggestions.Suggestion, 0, len(all))
	for _, s := range all {
		if _, ok := blocked[s.UserID]; ok {
			continue
		}
		surviving = append(surviving, s)
	}

	if len(surviving) == 0 {
		return Report{
			Categories:            []CategoryAnalysis{},
			TopCategories:         []string{},
			UrgentCategories:      []string{},
			CommonThemes:          []string{},
			ActionRecommendations: []string{},
			Clusters:              []Cluster{},
			Message:               "no pending suggestions to analyze",
		}
	}

	now := time.Now().UTC()
	if e.Now != nil {
		now = e.Now()
	}

	categories := AnalyzeCategories(surviving, now)
	clusters := e.Clusters.Build(surviving)

	topCategories := []string{}
	for _, c := range categories {
		if len(topCategories) == maxTopCategories {
			break
		}
		topCategories = append(topCategories, c.Category)
	}

	urgent := []string{}
	highVolume := 0
	for _, c := range categories {
		if c.Priority == PriorityHigh {
			urgent = append(urgent, c.Category)
		}
		if c.Count > 5 {
			highVolume++
		}
	}

	return Report{
		TotalPending:          len(surviving),
		Categories:            categories,
		TopCategories:         topCategories,
		UrgentCategories:      urgent,
		CommonThemes:          commonThemes(surviving),
		ActionRecommendations: actionRecommendations(len(surviving), len(urgent), highVolume),
		Clusters:              clusters,
	}
}

// commonThemes returns the most frequent tokens of length > 3 across all
// surviving suggestions, a coarser corpus-wide variant of the per-category
// common words.
func commonThemes(items []suggestions.Suggestion) []string {
	tokens := []string{}
	for _, s := range items {
		for _, tok := range Normalize(analyzableText(s)) {
			if utf8.RuneCountInString(tok) >= minThemeRunes {
				tokens = append(tokens, tok)
			}
		}
	}
	return topTokens(tokens, maxCommonThemes)
}

func actionRecommendations(total, urgent, highVolume int) []string {
	recs := []string{}
	if urgent > 0 {
		recs = append(recs, fmt.Sprintf("Focus on %d high-priority categories first", urgent))
	}
	if highVolume > 0 {
		recs = append(recs, fmt.Sprintf("Batch process %d categories with high volume", highVolume))
	}
	if total > 20 {
		recs = append(recs, "Consider automated categorization to handle suggestion volume")
	}
	return recs
}
