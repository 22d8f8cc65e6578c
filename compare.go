package nnf

// Satisfiable reports whether n has at least one model. On a decomposable
// sentence this is cheap: simplify(n) != False. On general NNF it falls
// back to brute enumeration over Vars(n), since this package delegates
// full SAT solving to an external compiler rather than implementing one.
func Satisfiable(n Node) bool {
	if Decomposable(n) {
		return !Equal(Simplify(n, true), False)
	}
	for _, m := range AllModels(Vars(n)) {
		ok, _ := SatisfiedBy(n, m)
		if ok {
			return true
		}
	}
	return false
}

// Valid reports whether every assignment satisfies n, i.e. Negate(n) is
// unsatisfiable. On a formula the caller asserts is d-DNNF, ValidCount is
// the cheaper equivalent via ModelCount.
func Valid(n Node) bool {
	return !Satisfiable(Negate(n))
}

// ValidCount is Valid computed via ModelCount instead of negation and
// enumeration: n is valid iff it has exactly 2^len(Vars(n)) models. Only
// correct when n is (or becomes, after MakeSmooth) d-DNNF; ModelCount
// itself reports Unsupported otherwise.
func ValidCount(n Node) (bool, error) {
	count, err := ModelCount(n)
	if err != nil {
		return false, err
	}
	return count == 1<<uint(len(Vars(n))), nil
}

// Contradicts reports whether a ∧ b is unsatisfiable. False contradicts
// every sentence.
func Contradicts(a, b Node) bool {
	return !Satisfiable(And(a, b))
}

// Equivalent reports whether a and b have exactly the same models:
// ¬(a ⊕ b) is valid, equivalently (a ∧ ¬b) ∨ (¬a ∧ b) is unsatisfiable.
func Equivalent(a, b Node) bool {
	diff := Or(And(a, Negate(b)), And(Negate(a), b))
	return !Satisfiable(diff)
}
