package dimacs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xDarkicex/nnf"
	"github.com/xDarkicex/nnf/dimacs"
)

// A clause may span lines, and a line may hold more than one clause,
// split wherever a 0 separator appears.
func TestLoadsCNFSplitClause(t *testing.T) {
	n, err := dimacs.Loads("p cnf 4 3\n1 3 -4 0\n4 0 2\n-3")
	require.NoError(t, err)

	want := nnf.And(
		nnf.Or(nnf.Var("1"), nnf.Var("3"), nnf.Neg(nnf.Var("4"))),
		nnf.Or(nnf.Var("4")),
		nnf.Or(nnf.Var("2"), nnf.Neg(nnf.Var("3"))),
	)
	assert.True(t, nnf.Equal(n, want))
}

// The p sat surface format.
func TestLoadsSAT(t *testing.T) {
	n, err := dimacs.Loads("p sat 4\n(*(+(1 3 -4) +(4) +(2 3)))")
	require.NoError(t, err)

	want := nnf.And(
		nnf.Or(nnf.Var("1"), nnf.Var("3"), nnf.Neg(nnf.Var("4"))),
		nnf.Or(nnf.Var("4")),
		nnf.Or(nnf.Var("2"), nnf.Var("3")),
	)
	assert.True(t, nnf.Equal(n, want))
}

func TestLoadsIgnoresComments(t *testing.T) {
	n, err := dimacs.Loads("c this is a comment\np cnf 2 1\nc another comment\n1 -2 0")
	require.NoError(t, err)
	assert.True(t, nnf.Equal(n, nnf.And(nnf.Or(nnf.Var("1"), nnf.Neg(nnf.Var("2"))))))
}

func TestLoadsRejectsNonIntegerLiteral(t *testing.T) {
	_, err := dimacs.Loads("p cnf 2 1\n1 x 0")
	require.Error(t, err)
	assert.True(t, nnf.IsKind(err, nnf.ParseError))
}

func TestLoadsRejectsMissingHeader(t *testing.T) {
	_, err := dimacs.Loads("1 2 0")
	require.Error(t, err)
	assert.True(t, nnf.IsKind(err, nnf.ParseError))
}

// Round-trip holds for SAT mode on any n, and for CNF mode on
// CNF n.
func TestRoundTripSAT(t *testing.T) {
	n := nnf.And(
		nnf.Or(nnf.Var("1"), nnf.Neg(nnf.Var("2"))),
		nnf.Or(nnf.Var("2"), nnf.Var("3")),
	)
	out, err := dimacs.Dumps(n, "sat")
	require.NoError(t, err)
	back, err := dimacs.Loads(out)
	require.NoError(t, err)
	assert.True(t, nnf.Equal(back, n))
}

func TestRoundTripCNF(t *testing.T) {
	n := nnf.And(
		nnf.Or(nnf.Var("1"), nnf.Neg(nnf.Var("2"))),
		nnf.Or(nnf.Var("2"), nnf.Var("3")),
	)
	require.True(t, nnf.IsCNF(n))

	out, err := dimacs.Dumps(n, "cnf")
	require.NoError(t, err)
	back, err := dimacs.Loads(out)
	require.NoError(t, err)
	assert.True(t, nnf.Equal(back, n))
}

func TestDumpsCNFRejectsNonCNF(t *testing.T) {
	n := nnf.Or(nnf.Var("1"), nnf.And(nnf.Var("2"), nnf.Var("3")))
	_, err := dimacs.Dumps(n, "cnf")
	require.Error(t, err)
	assert.True(t, nnf.IsKind(err, nnf.FormatError))
}

func TestDumpsUnknownMode(t *testing.T) {
	_, err := dimacs.Dumps(nnf.Var("1"), "wat")
	require.Error(t, err)
	assert.True(t, nnf.IsKind(err, nnf.FormatError))
}
