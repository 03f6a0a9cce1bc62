// Package textutil ranks stored release titles against a search query.
//
// Titles are folded (lowercased, accents removed) and split into tokens. A
// fingerprint is the term-frequency vector of those tokens, weighted by inverse
// document frequency over the candidate set so common words like "the" count
// for little. Candidates are ordered by cosine similarity to the query.
package textutil
