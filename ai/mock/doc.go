// Package mock provides deterministic test doubles for the ai package
// interfaces. The mock embedder produces word-overlap sensitive vectors and
// the mock generator echoes its prompt, which together let retrieval and
// answer composition be tested end to end without network services.
package mock
