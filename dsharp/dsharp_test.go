package dsharp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/nnf"
	"github.com/xDarkicex/nnf/dsharp"
)

// A small hand-compiled d-DNNF: (a ∧ b) ∨ (¬a ∧ c), decomposable and
// deterministic by construction, with the OR's split variable recorded
// as 1 (branching on a).
func TestLoadsBasic(t *testing.T) {
	doc := `nnf 7 8 3
L 1
L 2
A 2 0 1
L -1
L 3
A 2 3 4
O 1 2 2 5
`
	result, err := dsharp.Loads(doc)
	require.NoError(t, err)

	a, b, c := nnf.Var("1"), nnf.Var("2"), nnf.Var("3")
	want := nnf.Or(nnf.And(a, b), nnf.And(nnf.Neg(a), c))
	assert.True(t, nnf.Equal(result.Root, want))

	splitVar, ok := result.SplitVar[6]
	require.True(t, ok)
	assert.Equal(t, 1, splitVar)

	assert.True(t, nnf.Decomposable(result.Root))
	assert.True(t, nnf.Deterministic(result.Root))
}

func TestLoadsRejectsOutOfRangeIndex(t *testing.T) {
	doc := "nnf 2 1 1\nA 1 5\n"
	_, err := dsharp.Loads(doc)
	require.Error(t, err)
	assert.True(t, nnf.IsKind(err, nnf.ParseError))
}

func TestLoadsRejectsMalformedHeader(t *testing.T) {
	_, err := dsharp.Loads("not a header\nL 1\n")
	require.Error(t, err)
	assert.True(t, nnf.IsKind(err, nnf.ParseError))
}

func TestLoadsRejectsBadOpcode(t *testing.T) {
	doc := "nnf 1 0 1\nX 1\n"
	_, err := dsharp.Loads(doc)
	require.Error(t, err)
	assert.True(t, nnf.IsKind(err, nnf.ParseError))
}
