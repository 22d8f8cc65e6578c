package nnf

// Decomposable reports whether every And reachable from n has children
// with pairwise-disjoint variable sets, the defining property of DNNF.
// Memoized per node.
func Decomposable(n Node) bool {
	return memoBool(&n.cacheSlot().decomposableOnce, &n.cacheSlot().decomposable, func() bool {
		for _, node := range Walk(n) {
			in, ok := node.(*internalNode)
			if !ok || in.kind != KindAnd {
				continue
			}
			if !pairwiseDisjointVars(in.children) {
				return false
			}
		}
		return true
	})
}

func pairwiseDisjointVars(children []Node) bool {
	for i := 0; i < len(children); i++ {
		vi := varSet(children[i])
		for j := i + 1; j < len(children); j++ {
			vj := varSet(children[j])
			for name := range vi {
				if _, ok := vj[name]; ok {
					return false
				}
			}
		}
	}
	return true
}

// Deterministic reports whether every Or reachable from n has pairwise
// logically-contradictory children, the defining property of d-DNNF
// (together with Decomposable). Memoized per node.
func Deterministic(n Node) bool {
	return memoBool(&n.cacheSlot().deterministicOnce, &n.cacheSlot().deterministic, func() bool {
		for _, node := range Walk(n) {
			in, ok := node.(*internalNode)
			if !ok || in.kind != KindOr {
				continue
			}
			for i := 0; i < len(in.children); i++ {
				for j := i + 1; j < len(in.children); j++ {
					if !Contradicts(in.children[i], in.children[j]) {
						return false
					}
				}
			}
		}
		return true
	})
}

// Smooth reports whether every Or reachable from n has children that all
// share the same variable set. Memoized per node.
func Smooth(n Node) bool {
	return memoBool(&n.cacheSlot().smoothOnce, &n.cacheSlot().smooth, func() bool {
		for _, node := range Walk(n) {
			in, ok := node.(*internalNode)
			if !ok || in.kind != KindOr || len(in.children) == 0 {
				continue
			}
			want := varSet(in.children[0])
			for _, c := range in.children[1:] {
				if !sameVarSet(varSet(c), want) {
					return false
				}
			}
		}
		return true
	})
}
