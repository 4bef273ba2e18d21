package index

import "sync/atomic"

// Handle holds the current index snapshot and allows atomic replacement.
// Readers always see either the previous complete index or the new complete
// index, never a partially built one. The zero value is ready to use and
// reports not-ready until the first Swap.
type Handle struct {
	current atomic.Pointer[Index]
}

// Snapshot returns the current index, or nil if none has been installed.
func (h *Handle) Snapshot() *Index {
	return h.current.Load()
}

// Swap installs a new index snapshot and returns the previous one.
func (h *Handle) Swap(idx *Index) *Index {
	return h.current.Swap(idx)
}

// Ready reports whether an index snapshot has been installed.
func (h *Handle) Ready() bool {
	return h.current.Load() != nil
}
