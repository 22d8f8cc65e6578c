package nnf

import "sort"

// Model is a (possibly partial) assignment from variable name to boolean
// value.
type Model map[string]bool

// SatisfiedBy evaluates n under model using standard boolean semantics.
// model may be partial; if n needs a variable model doesn't assign, err is
// an IncompleteModel Error.
func SatisfiedBy(n Node, model Model) (bool, error) {
	return satisfiedBy(n, model)
}

func satisfiedBy(n Node, model Model) (bool, error) {
	if name, ok := VarName(n); ok {
		v, present := model[name]
		if !present {
			return false, newError("SatisfiedBy", IncompleteModel,
				"model has no assignment for variable "+name)
		}
		polarity, _ := VarPolarity(n)
		return v == polarity, nil
	}
	in := n.(*internalNode)
	if in.kind == KindAnd {
		for _, c := range in.children {
			ok, err := satisfiedBy(c, model)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	}
	for _, c := range in.children {
		ok, err := satisfiedBy(c, model)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Condition substitutes each Var whose name is in partial with True/False
// (honoring its polarity), leaving other Vars untouched. The result is
// typically simpler than n, but Condition never simplifies the And/Or
// structure itself, call Simplify afterward for that.
func Condition(n Node, partial Model) Node {
	if len(partial) == 0 {
		return n
	}
	if name, ok := VarName(n); ok {
		v, present := partial[name]
		if !present {
			return n
		}
		polarity, _ := VarPolarity(n)
		if v == polarity {
			return True
		}
		return False
	}
	in := n.(*internalNode)
	if len(in.children) == 0 {
		return n
	}
	children := make([]Node, len(in.children))
	for i, c := range in.children {
		children[i] = Condition(c, partial)
	}
	return newInternal(in.kind, canonicalize(children))
}

// Simplify applies a fixed point of the normalization rules (drop
// identity children, short-circuit on absorbing children,
// collapse single-child internals, merge same-connective children when
// mergeNodes is set, and collapse contradictory/tautological literal
// pairs) until no rule fires. Simplify preserves the set of models of n;
// Simplify is idempotent: Simplify(Simplify(n, m), m) == Simplify(n, m).
func Simplify(n Node, mergeNodes bool) Node {
	cur := n
	for {
		next := simplifyOnce(cur, mergeNodes)
		if Equal(next, cur) {
			return next
		}
		cur = next
	}
}

func simplifyOnce(n Node, mergeNodes bool) Node {
	in, ok := n.(*internalNode)
	if !ok {
		return n
	}
	if len(in.children) == 0 {
		return n
	}

	children := make([]Node, len(in.children))
	for i, c := range in.children {
		children[i] = simplifyOnce(c, mergeNodes)
	}

	absorbing := False
	identity := True
	if in.kind == KindOr {
		absorbing, identity = True, False
	}

	var kept []Node
	for _, c := range children {
		if Equal(c, absorbing) {
			return absorbing
		}
		if Equal(c, identity) {
			continue
		}
		if mergeNodes {
			if childInternal, ok := c.(*internalNode); ok && childInternal.kind == in.kind {
				kept = append(kept, childInternal.children...)
				continue
			}
		}
		kept = append(kept, c)
	}

	kept = canonicalize(kept)

	if len(kept) == 0 {
		return identity
	}
	if len(kept) == 1 {
		return kept[0]
	}
	if hasComplementaryPair(kept) {
		return absorbing
	}
	return newInternal(in.kind, kept)
}

// hasComplementaryPair reports whether kept contains both Var(x,+) and
// Var(x,-) for some x.
func hasComplementaryPair(kept []Node) bool {
	pos := make(map[string]bool)
	neg := make(map[string]bool)
	for _, c := range kept {
		name, ok := VarName(c)
		if !ok {
			continue
		}
		polarity, _ := VarPolarity(c)
		if polarity {
			pos[name] = true
		} else {
			neg[name] = true
		}
	}
	for name := range pos {
		if neg[name] {
			return true
		}
	}
	return false
}

// MakeSmooth returns a sentence logically equivalent to n in which every
// Or's children all share the same variable set: each child missing a
// variable x gets padded with the tautology Var(x,+) ∨ Var(x,-). MakeSmooth
// is idempotent.
func MakeSmooth(n Node) Node {
	if _, ok := VarName(n); ok {
		return n
	}
	in := n.(*internalNode)
	if len(in.children) == 0 {
		return n
	}
	children := make([]Node, len(in.children))
	for i, c := range in.children {
		children[i] = MakeSmooth(c)
	}
	if in.kind == KindAnd {
		return newInternal(KindAnd, canonicalize(children))
	}

	allVars := make(map[string]struct{})
	for _, c := range children {
		for name := range varSet(c) {
			allVars[name] = struct{}{}
		}
	}
	padded := make([]Node, len(children))
	for i, c := range children {
		cv := varSet(c)
		var missing []string
		for name := range allVars {
			if _, ok := cv[name]; !ok {
				missing = append(missing, name)
			}
		}
		if len(missing) == 0 {
			padded[i] = c
			continue
		}
		sort.Strings(missing)
		taut := make([]Node, 0, len(missing)+1)
		taut = append(taut, c)
		for _, name := range missing {
			taut = append(taut, Or(Var(name), Neg(Var(name))))
		}
		padded[i] = And(taut...)
	}
	return newInternal(KindOr, canonicalize(padded))
}

// Negate returns a Node whose models are exactly the complement of n's
// models over Vars(n), built via De Morgan's laws with leaf polarity
// flipped, no negation appears above a leaf in the result, so NNF is
// preserved.
func Negate(n Node) Node {
	if _, ok := VarName(n); ok {
		return Neg(n)
	}
	in := n.(*internalNode)
	children := make([]Node, len(in.children))
	for i, c := range in.children {
		children[i] = Negate(c)
	}
	dual := KindOr
	if in.kind == KindOr {
		dual = KindAnd
	}
	return newInternal(dual, canonicalize(children))
}

// AllModels enumerates every total boolean assignment over names: 2^len
// (names) models, each a complete map from every name in names to a bool.
// An empty names list yields exactly the single empty model.
func AllModels(names []string) []Model {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	count := 1 << uint(len(sorted))
	out := make([]Model, 0, count)
	for mask := 0; mask < count; mask++ {
		m := make(Model, len(sorted))
		for i, name := range sorted {
			m[name] = mask&(1<<uint(i)) != 0
		}
		out = append(out, m)
	}
	return out
}

// ToModel converts a term (an And of literals, as SimplyConjunct reports)
// into the Model it represents. It returns an Unsupported error if n isn't
// such a term.
func ToModel(n Node) (Model, error) {
	if !SimplyConjunct(n) {
		return nil, newError("ToModel", Unsupported, "node is not a simple conjunction of literals")
	}
	m := make(Model)
	for _, lit := range Children(n) {
		name, ok := VarName(lit)
		if !ok {
			return nil, newError("ToModel", Unsupported, "node is not a simple conjunction of literals")
		}
		polarity, _ := VarPolarity(lit)
		m[name] = polarity
	}
	return m, nil
}

// ToMODS returns a MODS sentence (a disjunction of full models) logically
// equivalent to n, built by enumerating n's models over Vars(n) and
// assembling an Or of And-of-literal terms, one per satisfying model.
// Only practical when len(Vars(n)) is small, since it materializes up to
// 2^len(Vars(n)) terms. The terms and their literals are canonicalized
// like the children of any And/Or, so their order in the result does not
// follow Vars(n).
func ToMODS(n Node) (Node, error) {
	return ToMODSOrder(n, Vars(n))
}

// ToMODSOrder is ToMODS with a caller-supplied variable list: each term
// holds one literal for every name in order, and names of Vars(n) that
// order leaves out are left out of the terms. The sequence of names in
// order does not affect the result, since the children of every And/Or
// are canonicalized.
func ToMODSOrder(n Node, order []string) (Node, error) {
	models, err := Models(n, ModelOptions{})
	if err != nil {
		return nil, err
	}
	terms := make([]Node, 0, len(models))
	for _, m := range models {
		lits := make([]Node, 0, len(order))
		for _, name := range order {
			v, ok := m[name]
			if !ok {
				continue
			}
			if v {
				lits = append(lits, Var(name))
			} else {
				lits = append(lits, Neg(Var(name)))
			}
		}
		terms = append(terms, And(lits...))
	}
	return OrSet(terms), nil
}
