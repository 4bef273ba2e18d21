package retrieval

import "github.com/poiesic/staffsearch/core"

// RetrievalMonitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps during retrieval.
type RetrievalMonitor interface {
	Start(query string, maxHits int)
	AfterIndexSearch(hits core.EvidenceSet)
	BelowFloor(unit core.EvidenceUnit, floor float32)
	Duplicate(unit core.EvidenceUnit)
	Finish(results core.EvidenceSet)
}

// noopMonitor is a no-op implementation of RetrievalMonitor
type noopMonitor struct{}

var _ RetrievalMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ int)                     {}
func (n *noopMonitor) AfterIndexSearch(_ core.EvidenceSet)       {}
func (n *noopMonitor) BelowFloor(_ core.EvidenceUnit, _ float32) {}
func (n *noopMonitor) Duplicate(_ core.EvidenceUnit)             {}
func (n *noopMonitor) Finish(_ core.EvidenceSet)                 {}
