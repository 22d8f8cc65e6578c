package nnf_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/nnf"
)

// satisfied_by and satisfiability on basic conjunctions and clauses.
func TestSatisfiedBy(t *testing.T) {
	a, b := nnf.Var("a"), nnf.Var("b")
	ok, err := nnf.SatisfiedBy(nnf.And(a, b), nnf.Model{"a": true, "b": true})
	require.NoError(t, err)
	assert.True(t, ok)

	assert.False(t, nnf.Satisfiable(nnf.And(a, nnf.Neg(a))))

	c := nnf.Var("c")
	assert.True(t, nnf.Satisfiable(nnf.And(nnf.Or(a, b), nnf.Or(b, c))))
}

func TestSatisfiedByIncompleteModel(t *testing.T) {
	_, err := nnf.SatisfiedBy(nnf.Var("a"), nnf.Model{})
	require.Error(t, err)
	assert.True(t, nnf.IsKind(err, nnf.IncompleteModel))
}

func TestCondition(t *testing.T) {
	a, b := nnf.Var("a"), nnf.Var("b")
	n := nnf.And(a, b)
	conditioned := nnf.Condition(n, nnf.Model{"a": true})
	assert.True(t, nnf.Equal(conditioned, nnf.And(nnf.True, b)))
}

// Simplify is idempotent for both values of mergeNodes.
func TestSimplifyIdempotent(t *testing.T) {
	a, b := nnf.Var("a"), nnf.Var("b")
	n := nnf.Or(nnf.Or(a, nnf.False), nnf.And(b, nnf.True))
	for _, merge := range []bool{false, true} {
		once := nnf.Simplify(n, merge)
		twice := nnf.Simplify(once, merge)
		assert.True(t, nnf.Equal(once, twice), "merge=%v", merge)
	}
}

// After simplify, no reachable node equals True/False except possibly the
// root itself.
func TestSimplifyNoStrayConstants(t *testing.T) {
	a, b := nnf.Var("a"), nnf.Var("b")
	n := nnf.And(nnf.Or(a, nnf.False), nnf.Or(b, nnf.True))
	simplified := nnf.Simplify(n, true)
	for _, node := range nnf.Walk(simplified) {
		if node == simplified {
			continue
		}
		assert.False(t, nnf.Equal(node, nnf.True))
		assert.False(t, nnf.Equal(node, nnf.False))
	}
}

func TestSimplifyComplementaryPair(t *testing.T) {
	a := nnf.Var("a")
	assert.True(t, nnf.Equal(nnf.Simplify(nnf.And(a, nnf.Neg(a)), true), nnf.False))
	assert.True(t, nnf.Equal(nnf.Simplify(nnf.Or(a, nnf.Neg(a)), true), nnf.True))
}

// MakeSmooth produces a smooth, equivalent, idempotent result.
func TestMakeSmooth(t *testing.T) {
	a, b := nnf.Var("a"), nnf.Var("b")
	n := nnf.Or(nnf.Neg(a), nnf.Neg(b))
	smoothed := nnf.MakeSmooth(n)

	assert.True(t, nnf.Smooth(smoothed))
	assert.True(t, nnf.Equivalent(n, smoothed))
	assert.True(t, nnf.Equal(nnf.MakeSmooth(smoothed), smoothed))
}

// models(n) and models(negate(n)) partition every assignment over Vars(n).
func TestNegateComplementsModels(t *testing.T) {
	a, b := nnf.Var("a"), nnf.Var("b")
	n := nnf.And(nnf.Or(a, b), nnf.Or(nnf.Neg(a), b))

	models, err := nnf.Models(n, nnf.ModelOptions{})
	require.NoError(t, err)
	negModels, err := nnf.Models(nnf.Negate(n), nnf.ModelOptions{})
	require.NoError(t, err)

	k := len(nnf.Vars(n))
	assert.Equal(t, 1<<uint(k), len(models)+len(negModels))

	seen := make(map[string]bool)
	for _, m := range models {
		seen[modelKeyForTest(m)] = true
	}
	for _, m := range negModels {
		assert.False(t, seen[modelKeyForTest(m)], "models(n) and models(negate(n)) must be disjoint")
	}
}

func modelKeyForTest(m nnf.Model) string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	s := ""
	for _, n := range names {
		if m[n] {
			s += n + "=1;"
		} else {
			s += n + "=0;"
		}
	}
	return s
}

// False contradicts everything; equivalent(n, n|False) always holds,
// equivalent(n, n&False) iff n is unsatisfiable.
func TestFalseContradictsEverything(t *testing.T) {
	a, b := nnf.Var("a"), nnf.Var("b")
	for _, n := range []nnf.Node{a, nnf.And(a, b), nnf.Or(a, nnf.Neg(b)), nnf.True} {
		assert.True(t, nnf.Contradicts(nnf.False, n))
	}
}

func TestEquivalentWithFalse(t *testing.T) {
	a, b := nnf.Var("a"), nnf.Var("b")
	n := nnf.Or(a, b)
	assert.True(t, nnf.Equivalent(n, nnf.Or(n, nnf.False)))

	assert.False(t, nnf.Equivalent(n, nnf.And(n, nnf.False)))

	unsat := nnf.And(a, nnf.Neg(a))
	assert.True(t, nnf.Equivalent(unsat, nnf.And(unsat, nnf.False)))
}

func TestToModelAndToMODS(t *testing.T) {
	a, b := nnf.Var("a"), nnf.Var("b")
	term := nnf.And(a, nnf.Neg(b))
	m, err := nnf.ToModel(term)
	require.NoError(t, err)
	assert.Equal(t, nnf.Model{"a": true, "b": false}, m)

	_, err = nnf.ToModel(nnf.Or(a, b))
	require.Error(t, err)
	assert.True(t, nnf.IsKind(err, nnf.Unsupported))

	n := nnf.And(nnf.Or(a, b), nnf.Or(nnf.Neg(a), b))
	mods, err := nnf.ToMODS(n)
	require.NoError(t, err)
	assert.True(t, nnf.IsMODS(mods))
	assert.True(t, nnf.Equivalent(n, mods))
}

// AllModels over zero, one, and several variables.
func TestAllModels(t *testing.T) {
	assert.Equal(t, []nnf.Model{{}}, nnf.AllModels(nil))

	one := nnf.AllModels([]string{"1"})
	assert.ElementsMatch(t, []nnf.Model{{"1": false}, {"1": true}}, one)

	names := make([]string, 10)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	assert.Len(t, nnf.AllModels(names), 1024)
}
