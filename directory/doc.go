// Package directory provides structured, exact-match filtering over employee
// records. It complements semantic retrieval: where retrieval answers "who
// fits this request", directory answers "who literally has these attributes".
package directory
