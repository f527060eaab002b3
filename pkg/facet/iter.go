package facet

import "iter"

// Iteration grants for-range iteration over a host's fields. Each call
// to Iter snapshots the store: the returned sequence is finite,
// restartable, and unaffected by later store mutation. A host with no
// store yields an empty sequence.
// Implements: prd002-capabilities R4.
type Iteration struct{}

// ID returns "iter".
func (Iteration) ID() string { return FlagIter }

// Iter returns a sequence over a snapshot of the host's fields, in key
// insertion order.
func (Iteration) Iter(h Host) iter.Seq2[string, any] {
	var items []Item
	if s := h.Fields(); s != nil {
		items = s.Items()
	}
	return func(yield func(string, any) bool) {
		for _, it := range items {
			if !yield(it.Key, it.Value) {
				return
			}
		}
	}
}
