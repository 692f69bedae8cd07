package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/suggestions"
)

// ClusterType identifies which phase produced a cluster.
type ClusterType string

const (
	ClusterExact    ClusterType = "exact"
	ClusterSemantic ClusterType = "semantic"
	ClusterTheme    ClusterType = "theme"
)

const (
	semanticThreshold     = 0.6
	semanticMaxConfidence = 0.95
	themeConfidence       = 0.7
	themeSimilarity       = 0.6
	maxThemes             = 10
	maxClusterKeywords    = 5
)

// DateRange spans the creation times of a cluster's members.
type DateRange struct {
	Oldest time.Time `json:"oldest"`
	Newest time.Time `json:"newest"`
}

// Cluster groups two or more related suggestions. Members keep their
// original title and description for display.
type Cluster struct {
	Members           []suggestions.Suggestion `json:"members"`
	Type              ClusterType              `json:"clusterType"`
	Confidence        float64                  `json:"confidence"`
	AverageSimilarity float64                  `json:"averageSimilarity"`
	TopKeywords       []string                 `json:"topKeywords"`
	DateRange         DateRange                `json:"dateRange"`
}

// ClusterBuilder partitions suggestions into similarity clusters using three
// phases in strict sequence: exact duplicates, semantic (tf-idf cosine) and
// keyword-theme fallback. A suggestion consumed by an earlier phase is
// excluded from all later phases, so each appears in at most one cluster.
type ClusterBuilder struct {
	Vectorizer Vectorizer
}

// Build returns the clusters sorted by member count descending. The sort is
// stable, so equal-sized clusters keep emission order (exact before semantic
// before theme).
func (b ClusterBuilder) Build(items []suggestions.Suggestion) []Cluster {
	consumed := make([]bool, len(items))

	clusters := b.exactClusters(items, consumed)
	clusters = append(clusters, b.semanticClusters(items, consumed)...)
	clusters = append(clusters, b.themeClusters(items, consumed)...)

	sort.SliceStable(clusters, func(i, j int) bool {
		return len(clusters[i].Members) > len(clusters[j].Members)
	})
	return clusters
}

// analyzableText is the text a suggestion is scored and clustered on.
func analyzableText(s suggestions.Suggestion) string {
	return s.Title + " " + s.Description
}

// exactClusters groups suggestions whose normalized, rejoined text is
// byte-identical. Suggestions normalizing to zero tokens share the empty key
// and can still form an exact cluster together.
func (b ClusterBuilder) exactClusters(items []suggestions.Suggestion, consumed []bool) []Cluster {
	groups := make(map[string][]int)
	keys := make([]string, 0, len(items))
	for i, s := range items {
		key := NormalizedText(analyzableText(s))
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], i)
	}

	clusters := []Cluster{}
	for _, key := range keys {
		idx := groups[key]
		if len(idx) < 2 {
			continue
		}
		for _, i := range idx {
			consumed[i] = true
		}
		clusters = append(clusters, newCluster(items, idx, ClusterExact, 1.0, 1.0))
	}
	return clusters
}

// semanticClusters greedily groups the unconsumed suggestions by tf-idf
// cosine similarity. Membership is seed-relative, not transitive: each
// candidate is compared only against the seed, in stable input order. Seeds
// whose group stays a singleton are not emitted but remain available to the
// theme phase.
func (b ClusterBuilder) semanticClusters(items []suggestions.Suggestion, consumed []bool) []Cluster {
	remaining := unconsumed(consumed)
	if len(remaining) < 2 {
		return nil
	}

	docs := make([][]string, len(remaining))
	for k, i := range remaining {
		docs[k] = Normalize(analyzableText(items[i]))
	}
	vectors := b.Vectorizer.Vectorize(docs)

	clusters := []Cluster{}
	visited := make([]bool, len(remaining))
	for seed := range remaining {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		group := []int{seed}
		for cand := range remaining {
			if visited[cand] {
				continue
			}
			if CosineSimilarity(vectors[seed], vectors[cand]) > semanticThreshold {
				visited[cand] = true
				group = append(group, cand)
			}
		}
		if len(group) < 2 {
			continue
		}

		avg := meanPairwiseSimilarity(vectors, group)
		confidence := math.Min(avg*1.2, semanticMaxConfidence)
		idx := make([]int, len(group))
		for k, g := range group {
			idx[k] = remaining[g]
			consumed[remaining[g]] = true
		}
		clusters = append(clusters, newCluster(items, idx, ClusterSemantic, confidence, avg))
	}
	return clusters
}

// meanPairwiseSimilarity recomputes the mean cosine similarity over all
// pairs in the final group, not just seed-relative pairs.
func meanPairwiseSimilarity(vectors []TermVector, group []int) float64 {
	var sum float64
	var pairs int
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			sum += CosineSimilarity(vectors[group[i]], vectors[group[j]])
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return sum / float64(pairs)
}

// themeClusters groups the leftovers by shared keyword. Themes are the most
// frequent normalized tokens occurring in more than one remaining
// suggestion, capped at ten, visited in descending frequency order; a
// suggestion joins at most one theme.
func (b ClusterBuilder) themeClusters(items []suggestions.Suggestion, consumed []bool) []Cluster {
	remaining := unconsumed(consumed)
	if len(remaining) < 2 {
		return nil
	}

	tokenSets := make([]map[string]struct{}, len(remaining))
	freq := make(map[string]int)
	docCount := make(map[string]int)
	order := []string{}
	for k, i := range remaining {
		tokens := Normalize(analyzableText(items[i]))
		set := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := freq[tok]; !ok {
				order = append(order, tok)
			}
			freq[tok]++
			if _, ok := set[tok]; !ok {
				set[tok] = struct{}{}
				docCount[tok]++
			}
		}
		tokenSets[k] = set
	}

	themes := []string{}
	for _, tok := range order {
		if docCount[tok] > 1 {
			themes = append(themes, tok)
		}
	}
	sort.SliceStable(themes, func(i, j int) bool {
		return freq[themes[i]] > freq[themes[j]]
	})
	if len(themes) > maxThemes {
		themes = themes[:maxThemes]
	}

	clusters := []Cluster{}
	visited := make([]bool, len(remaining))
	for _, theme := range themes {
		group := []int{}
		for k := range remaining {
			if visited[k] {
				continue
			}
			if _, ok := tokenSets[k][theme]; ok {
				group = append(group, k)
			}
		}
		if len(group) < 2 {
			continue
		}
		idx := make([]int, len(group))
		for n, k := range group {
			visited[k] = true
			idx[n] = remaining[k]
			consumed[remaining[k]] = true
		}
		clusters = append(clusters, newCluster(items, idx, ClusterTheme, themeConfidence, themeSimilarity))
	}
	return clusters
}

func unconsumed(consumed []bool) []int {
	out := []int{}
	for i, done := range consumed {
		if !done {
			out = append(out, i)
		}
	}
	return out
}

func newCluster(items []suggestions.Suggestion, idx []int, t ClusterType, confidence, avgSim float64) Cluster {
	members := make([]suggestions.Suggestion, len(idx))
	oldest := items[idx[0]].CreatedAt
	newest := oldest
	tokens := []string{}
	for k, i := range idx {
		members[k] = items[i]
		if items[i].CreatedAt.Before(oldest) {
			oldest = items[i].CreatedAt
		}
		if items[i].CreatedAt.After(newest) {
			newest = items[i].CreatedAt
		}
		tokens = append(tokens, Normalize(analyzableText(items[i]))...)
	}
	return Cluster{
		Members:           members,
		Type:              t,
		Confidence:        confidence,
		AverageSimilarity: avgSim,
		TopKeywords:       topTokens(tokens, maxClusterKeywords),
		DateRange:         DateRange{Oldest: oldest, Newest: newest},
	}
}
