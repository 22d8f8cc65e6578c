package nnf

import (
	"sort"

	"github.com/xDarkicex/nnf/internal/stack"
)

// Children returns n's child set if n is And/Or (nil, possibly empty, for
// True/False), or nil if n is a Var.
func Children(n Node) []Node {
	if in, ok := n.(*internalNode); ok {
		return in.children
	}
	return nil
}

// VarName reports n's variable name; ok is false if n is not a Var.
func VarName(n Node) (name string, ok bool) {
	if v, ok2 := n.(*varNode); ok2 {
		return v.name, true
	}
	return "", false
}

// VarPolarity reports n's polarity; ok is false if n is not a Var.
func VarPolarity(n Node) (polarity bool, ok bool) {
	if v, ok2 := n.(*varNode); ok2 {
		return v.polarity, true
	}
	return false, false
}

// IsLeaf reports whether n is a Var or a constant (True/False).
func IsLeaf(n Node) bool {
	switch in := n.(type) {
	case *varNode:
		return true
	case *internalNode:
		return len(in.children) == 0
	}
	return false
}

// IsInternal reports whether n is a non-constant And/Or.
func IsInternal(n Node) bool {
	in, ok := n.(*internalNode)
	return ok && len(in.children) > 0
}

// Walk yields each distinct Node reachable from n exactly once, n itself
// included, with DAG sharing respected rather than tree-expanded: a Node
// reachable via two different paths is yielded only on its first
// encounter. Traversal uses an explicit stack, not native recursion, since
// formula height can run into the hundreds for compiled d-DNNF input.
func Walk(n Node) []Node {
	seen := make(map[Node]bool)
	var order []Node
	s := stack.New[Node](16)
	s.Push(n)
	for {
		cur, ok := s.Pop()
		if !ok {
			break
		}
		if seen[cur] {
			continue
		}
		seen[cur] = true
		order = append(order, cur)
		for _, c := range Children(cur) {
			if !seen[c] {
				s.Push(c)
			}
		}
	}
	return order
}

// Size is the sum, over internal nodes reachable from n, of their child
// count (i.e. the number of edges in the DAG below n). A leaf contributes
// 0. Memoized per node.
func Size(n Node) int {
	return memoInt(&n.cacheSlot().sizeOnce, &n.cacheSlot().size, func() int {
		total := 0
		for _, node := range Walk(n) {
			total += len(Children(node))
		}
		return total
	})
}

// Vars is the set of variable names appearing anywhere under n, returned
// as a sorted slice for deterministic iteration (model and child order is
// otherwise unspecified; callers needing determinism, including this
// package's own tests, sort).
func Vars(n Node) []string {
	set := varSet(n)
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// varSet is the memoized unordered backing for Vars.
func varSet(n Node) map[string]struct{} {
	return memoVars(&n.cacheSlot().varsOnce, &n.cacheSlot().vars, func() map[string]struct{} {
		set := make(map[string]struct{})
		for _, node := range Walk(n) {
			if name, ok := VarName(node); ok {
				set[name] = struct{}{}
			}
		}
		return set
	})
}

// Leaves returns the Var nodes under n (Atoms is a synonym, matching the
// source's naming of the same query under two names).
func Leaves(n Node) []Node {
	var out []Node
	for _, node := range Walk(n) {
		if _, ok := VarName(node); ok {
			out = append(out, node)
		}
	}
	return out
}

// Atoms is a synonym for Leaves.
func Atoms(n Node) []Node {
	return Leaves(n)
}

// SimplyConjunct reports whether n is a conjunction of leaves only (a
// term): n is And and every child is a Var or constant.
func SimplyConjunct(n Node) bool {
	in, ok := n.(*internalNode)
	if !ok || in.kind != KindAnd {
		return false
	}
	for _, c := range in.children {
		if !IsLeaf(c) {
			return false
		}
	}
	return true
}

// SimplyDisjunct reports whether n is a disjunction of leaves only (a
// clause): n is Or and every child is a Var or constant.
func SimplyDisjunct(n Node) bool {
	in, ok := n.(*internalNode)
	if !ok || in.kind != KindOr {
		return false
	}
	for _, c := range in.children {
		if !IsLeaf(c) {
			return false
		}
	}
	return true
}

// Flat reports whether n has depth at most 2: n is internal, and every
// child is either a leaf or a single-level internal node whose own
// children are all leaves.
func Flat(n Node) bool {
	return memoBool(&n.cacheSlot().flatOnce, &n.cacheSlot().flat, func() bool {
		if !IsInternal(n) {
			return false
		}
		for _, c := range Children(n) {
			if IsLeaf(c) {
				continue
			}
			if !IsInternal(c) {
				return false
			}
			for _, gc := range Children(c) {
				if !IsLeaf(gc) {
					return false
				}
			}
		}
		return true
	})
}

// IsCNF reports whether n is And, every child is Or, every grandchild is
// Var, and every clause (Or child) is non-empty.
func IsCNF(n Node) bool {
	return memoBool(&n.cacheSlot().cnfOnce, &n.cacheSlot().isCNF, func() bool {
		in, ok := n.(*internalNode)
		if !ok || in.kind != KindAnd {
			return false
		}
		for _, clause := range in.children {
			clauseNode, ok := clause.(*internalNode)
			if !ok || clauseNode.kind != KindOr || len(clauseNode.children) == 0 {
				return false
			}
			for _, lit := range clauseNode.children {
				if _, ok := VarName(lit); !ok {
					return false
				}
			}
		}
		return true
	})
}

// IsDNF reports whether n is Or, every child is And, every grandchild is
// Var, and every term (And child) is non-empty. The dual of IsCNF.
func IsDNF(n Node) bool {
	return memoBool(&n.cacheSlot().dnfOnce, &n.cacheSlot().isDNF, func() bool {
		in, ok := n.(*internalNode)
		if !ok || in.kind != KindOr {
			return false
		}
		for _, term := range in.children {
			termNode, ok := term.(*internalNode)
			if !ok || termNode.kind != KindAnd || len(termNode.children) == 0 {
				return false
			}
			for _, lit := range termNode.children {
				if _, ok := VarName(lit); !ok {
					return false
				}
			}
		}
		return true
	})
}

// IsMODS reports whether n is a disjunction of full models: n is Or, every
// child is an And of Vars covering exactly the same variable set (a
// "model term"), and no two children are the same term.
func IsMODS(n Node) bool {
	return memoBool(&n.cacheSlot().modsOnce, &n.cacheSlot().isMODS, func() bool {
		in, ok := n.(*internalNode)
		if !ok || in.kind != KindOr {
			return false
		}
		if len(in.children) == 0 {
			return true
		}
		var wantVars map[string]struct{}
		for i, term := range in.children {
			if !SimplyConjunct(term) {
				return false
			}
			tv := varSet(term)
			if len(tv) != len(Children(term)) {
				// A term holding a constant, or both polarities of one
				// name (a ∧ ¬a), has fewer variables than children and
				// breaks the "one literal per variable" requirement of
				// a model term. Canonicalization removes only exact
				// duplicate literals, so this check is what rejects
				// those terms.
				return false
			}
			if i == 0 {
				wantVars = tv
			} else if !sameVarSet(tv, wantVars) {
				return false
			}
		}
		// Or's canonicalization already deduplicates equal children, so
		// every term here is already distinct from every other.
		return true
	})
}

func sameVarSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
