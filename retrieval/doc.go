// Package retrieval implements the evidence selection policy over the
// embedding index: overfetched similarity search, a hard score floor, and
// per-unit deduplication, yielding the bounded evidence set that downstream
// answer composition is allowed to cite.
package retrieval
