package analysis

import "math"

// CosineSimilarity returns the cosine of the angle between two sparse term
// vectors, in [0, 1] for non-negative weights. Terms absent from one vector
// contribute zero. If either vector has zero norm the similarity is 0;
// degenerate documents never divide by zero.
func CosineSimilarity(a, b TermVector) float64 {
	var dot, normA, normB float64
	for term, wa := range a {
		normA += wa * wa
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	for _, wb := range b {
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / math.Sqrt(normA*normB)
}
