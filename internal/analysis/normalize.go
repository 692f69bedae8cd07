package analysis

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// stopWords is the fixed filter set applied by Normalize: English articles,
// pronouns, auxiliary verbs and a short list of generic verbs that carry no
// signal ("get", "use", "make"). Tokens of length <= 2 are dropped before
// this check, so two-letter function words never reach it. The list is part
// of the engine's observable behavior: changing it changes similarity and
// theme output.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "and", "but", "for", "nor", "with", "from", "into", "onto",
		"over", "under", "about", "above", "below", "after", "before",
		"between", "during", "through", "than", "then", "there", "here",
		"where", "when", "while", "because", "this", "that", "these", "those",
		"out", "off", "again", "once", "only", "same", "some", "such", "very",
		"too", "also", "just", "more", "most", "both", "each", "few", "any",
		"all", "not",
		"you", "your", "yours", "our", "ours", "their", "theirs", "his",
		"her", "hers", "its", "him", "she", "they", "them", "who", "whom",
		"which", "what", "how", "why",
		"are", "was", "were", "been", "being", "have", "has", "had", "having",
		"does", "did", "doing", "will", "would", "shall", "should", "can",
		"could", "may", "might", "must",
		"get", "got", "use", "used", "using", "make", "made", "want", "need",
		"like",
	} {
		stopWords[w] = struct{}{}
	}
}

// nonWord matches every run of characters that is neither a word character
// nor whitespace; Normalize replaces such runs with a single space.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// Normalize lowercases text, strips punctuation and stop-words and drops
// tokens of length <= 2. Token order is preserved so callers can rejoin the
// sequence for exact-duplicate comparison. No stemming is applied: "submit"
// and "submitted" stay distinct, trading recall for precision.
func Normalize(text string) []string {
	cleaned := nonWord.ReplaceAllString(strings.ToLower(text), " ")
	fields := strings.Fields(cleaned)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		if _, ok := stopWords[tok]; ok {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// NormalizedText rejoins the normalized token sequence with single spaces.
// Two suggestions are exact duplicates when their normalized texts are
// byte-identical.
func NormalizedText(text string) string {
	return strings.Join(Normalize(text), " ")
}

// topTokens returns the n most frequent tokens, ties broken by first
// appearance in the input sequence.
func topTokens(tokens []string, n int) []string {
	freq := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := freq[tok]; !ok {
			order = append(order, tok)
		}
		freq[tok]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}
