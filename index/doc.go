// Package index provides an immutable in-memory embedding index over
// retrievable units, built by embedding unit texts concurrently and searched
// by cosine similarity. Rebuilds construct a fresh Index and publish it
// through a Handle, so concurrent searches never observe partial state.
package index
