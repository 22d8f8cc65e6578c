package nnf

import "sort"

// canonicalize deduplicates children by structural Equal and orders the
// survivors by hash, giving And/Or a canonical child representation so two
// separately-built nodes with the same child set land on an identical
// slice (and therefore compare positionally-equal in Equal, and serialize
// deterministically). Dedup is O(n^2) in the number of children, which is
// fine at the arities these formulas actually have, clauses and terms
// with thousands of distinct literals aren't a target use case here.
func canonicalize(children []Node) []Node {
	if len(children) == 0 {
		return nil
	}
	deduped := make([]Node, 0, len(children))
	for _, c := range children {
		dup := false
		for _, s := range deduped {
			if Equal(c, s) {
				dup = true
				break
			}
		}
		if !dup {
			deduped = append(deduped, c)
		}
	}
	sort.Slice(deduped, func(i, j int) bool {
		if deduped[i].hash() != deduped[j].hash() {
			return deduped[i].hash() < deduped[j].hash()
		}
		// Tie-break on string form for a total order even in the
		// (extremely unlikely) case of a hash collision between two
		// already-known-distinct children.
		return deduped[i].String() < deduped[j].String()
	})
	return deduped
}
