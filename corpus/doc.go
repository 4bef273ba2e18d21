// Package corpus loads and validates the authoritative list of employee
// records backing the staffing search engine.
//
// The corpus is read once at startup from a JSON file and is immutable for
// the process lifetime. There is no update or delete path: when the corpus
// changes, the process reloads it and rebuilds the embedding index
// wholesale. A malformed or empty corpus is a startup-fatal condition
// reported as ErrDataSource.
package corpus
