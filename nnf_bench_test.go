package nnf_test

import (
	"testing"

	"github.com/xDarkicex/nnf"
)

func bigCNF(clauses, width int) nnf.Node {
	terms := make([]nnf.Node, clauses)
	for i := 0; i < clauses; i++ {
		lits := make([]nnf.Node, width)
		for j := 0; j < width; j++ {
			name := string(rune('a' + (i+j)%20))
			if (i+j)%2 == 0 {
				lits[j] = nnf.Var(name)
			} else {
				lits[j] = nnf.Neg(nnf.Var(name))
			}
		}
		terms[i] = nnf.Or(lits...)
	}
	return nnf.And(terms...)
}

func BenchmarkSimplify(b *testing.B) {
	n := bigCNF(200, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nnf.Simplify(n, true)
	}
}

func BenchmarkWalk(b *testing.B) {
	n := bigCNF(200, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nnf.Walk(n)
	}
}

func BenchmarkDecomposable(b *testing.B) {
	n := bigCNF(200, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nnf.Decomposable(n)
	}
}
