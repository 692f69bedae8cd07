package analysis

import "math"

// TermVector maps a token to its tf-idf weight for one document.
type TermVector map[string]float64

// TermStatsFunc computes the per-term denominator used for idf. The strategy
// is swappable so the vectorizer does not need restructuring if the counting
// scheme changes.
type TermStatsFunc func(docs [][]string) map[string]int

// CorpusOccurrences counts every occurrence of a term across the corpus.
// This is the engine's default idf denominator. It diverges from textbook
// tf-idf (which uses document frequency) and inflates idf for terms that
// repeat heavily inside few documents; kept for output compatibility.
func CorpusOccurrences(docs [][]string) map[string]int {
	counts := make(map[string]int)
	for _, doc := range docs {
		for _, term := range doc {
			counts[term]++
		}
	}
	return counts
}

// DocumentFrequency counts the number of distinct documents containing each
// term, the textbook idf denominator.
func DocumentFrequency(docs [][]string) map[string]int {
	counts := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, term := range doc {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			counts[term]++
		}
	}
	return counts
}

// Vectorizer builds per-document tf-idf vectors over a normalized corpus.
// The zero value uses CorpusOccurrences.
type Vectorizer struct {
	Stats TermStatsFunc
}

// Vectorize returns one TermVector per input document, index-aligned with
// docs. A document with no surviving tokens gets an empty vector.
func (v Vectorizer) Vectorize(docs [][]string) []TermVector {
	stats := v.Stats
	if stats == nil {
		stats = CorpusOccurrences
	}
	termCounts := stats(docs)
	total := float64(len(docs))

	vectors := make([]TermVector, len(docs))
	for i, doc := range docs {
		vec := make(TermVector, len(doc))
		vectors[i] = vec
		if len(doc) == 0 {
			continue
		}
		tf := make(map[string]int, len(doc))
		for _, term := range doc {
			tf[term]++
		}
		for term, count := range tf {
			idf := math.Log(total / float64(termCounts[term]))
			vec[term] = float64(count) / float64(len(doc)) * idf
		}
	}
	return vectors
}
