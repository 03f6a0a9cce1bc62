package textutil

import (
	"cmp"
	"slices"
)

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 if either fingerprint is nil or has zero norm.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.tokens {
		if other, ok := b.tokens[token]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}

// Match is one ranked candidate.
type Match struct {
	Text  string
	Score float64
}

// Rank scores candidates against query and returns those with a positive
// score, best first. Ties keep candidate order. limit <= 0 returns all.
func Rank(query string, candidates []string, limit int) []Match {
	q := NewFingerprint(query)
	if q == nil || len(candidates) == 0 {
		return nil
	}

	corpus := NewCorpus()
	prints := make([]*Fingerprint, len(candidates))
	for i, text := range candidates {
		prints[i] = NewFingerprint(text)
		corpus.Add(prints[i])
	}
	idf := corpus.IDF()
	q = q.WithIDF(idf)

	matches := make([]Match, 0, len(candidates))
	for i, fp := range prints {
		score := CosineSimilarity(q, fp.WithIDF(idf))
		if score <= 0 {
			continue
		}
		matches = append(matches, Match{Text: candidates[i], Score: score})
	}
	slices.SortStableFunc(matches, func(a, b Match) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
