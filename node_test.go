package nnf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/nnf"
)

func TestVarAndNeg(t *testing.T) {
	a := nnf.Var("a")
	name, ok := nnf.VarName(a)
	require.True(t, ok)
	assert.Equal(t, "a", name)
	polarity, ok := nnf.VarPolarity(a)
	require.True(t, ok)
	assert.True(t, polarity)

	notA := nnf.Neg(a)
	polarity, ok = nnf.VarPolarity(notA)
	require.True(t, ok)
	assert.False(t, polarity)
}

func TestNegPanicsOnNonVar(t *testing.T) {
	assert.Panics(t, func() {
		nnf.Neg(nnf.And(nnf.Var("a"), nnf.Var("b")))
	})
}

// Children are a set: order and duplicates don't matter.
func TestSetSemantics(t *testing.T) {
	x, y := nnf.Var("x"), nnf.Var("y")
	assert.True(t, nnf.Equal(nnf.And(x, y), nnf.And(y, x)))
	assert.True(t, nnf.Equal(nnf.And(x, y, x), nnf.And(x, y)))
	assert.True(t, nnf.Equal(nnf.Or(x, y), nnf.Or(y, x)))
}

func TestTrueFalseIdentity(t *testing.T) {
	assert.True(t, nnf.Equal(nnf.True, nnf.And()))
	assert.True(t, nnf.Equal(nnf.False, nnf.Or()))
	assert.False(t, nnf.Equal(nnf.True, nnf.False))
	assert.False(t, nnf.Equal(nnf.True, nnf.Var("a")))
}

func TestFromKindRejectsAbstractKinds(t *testing.T) {
	_, err := nnf.FromKind(nnf.KindNode, nil)
	require.Error(t, err)
	assert.True(t, nnf.IsKind(err, nnf.AbstractInstantiation))

	_, err = nnf.FromKind(nnf.KindInternal, nil)
	require.Error(t, err)
	assert.True(t, nnf.IsKind(err, nnf.AbstractInstantiation))

	n, err := nnf.FromKind(nnf.KindAnd, []nnf.Node{nnf.Var("a")})
	require.NoError(t, err)
	assert.True(t, nnf.Equal(n, nnf.And(nnf.Var("a"))))
}

// Walk is DAG-unique and bounded by size(n)+1.
func TestWalkUniqueAndBounded(t *testing.T) {
	a := nnf.Var("a")
	shared := nnf.And(a, nnf.Neg(a))
	n := nnf.Or(shared, shared) // both children identical, collapses to one via set semantics

	walked := nnf.Walk(n)
	seen := make(map[nnf.Node]bool)
	for _, w := range walked {
		assert.False(t, seen[w], "walk must not repeat a node")
		seen[w] = true
	}
	assert.LessOrEqual(t, len(walked), nnf.Size(n)+1)
}

func TestSizeAndVars(t *testing.T) {
	a, b, c := nnf.Var("a"), nnf.Var("b"), nnf.Var("c")
	n := nnf.And(nnf.Or(a, b), nnf.Or(b, c))
	assert.ElementsMatch(t, []string{"a", "b", "c"}, nnf.Vars(n))
	assert.Equal(t, 0, nnf.Size(a))
	assert.Greater(t, nnf.Size(n), 0)
}
