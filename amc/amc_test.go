package amc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xDarkicex/nnf"
	"github.com/xDarkicex/nnf/amc"
)

// A formula that is already smooth: NumSat equals the true model count.
func TestNumSatFig1a(t *testing.T) {
	a, b := nnf.Var("a"), nnf.Var("b")
	fig1a := nnf.Or(nnf.And(nnf.Neg(a), b), nnf.And(a, nnf.Neg(b)))
	assert.Equal(t, 2, amc.NumSat(fig1a))
}

// An unsmoothed formula: NumSat overcounts to 4 by folding the
// literal-level Or's directly, exactly as the example calls for.
func TestNumSatFig1bUnsmoothedOvercounts(t *testing.T) {
	a, b := nnf.Var("a"), nnf.Var("b")
	fig1b := nnf.And(nnf.Or(nnf.Neg(a), nnf.Neg(b)), nnf.Or(a, b))
	assert.Equal(t, 4, amc.NumSat(fig1b))
}

// On a d-DNNF sentence (decomposable and deterministic, unlike fig1b),
// NumSat after explicit smoothing agrees with model counting by
// recursion and with brute enumeration, the fold is only trustworthy
// once the caller has actually met its precondition.
func TestNumSatOnDDNNFMatchesModelCount(t *testing.T) {
	a, b := nnf.Var("a"), nnf.Var("b")
	n := nnf.Or(nnf.And(nnf.Neg(a), b), nnf.And(a, nnf.Neg(b)))
	require := func(cond bool, msg string) {
		if !cond {
			t.Fatal(msg)
		}
	}
	require(nnf.Decomposable(n), "n must be decomposable for this test")
	require(nnf.Deterministic(n), "n must be deterministic for this test")

	smoothed := nnf.MakeSmooth(n)
	models, err := nnf.Models(n, nnf.ModelOptions{})
	require(err == nil, "Models must not error")
	count, err := nnf.ModelCount(n)
	require(err == nil, "ModelCount must not error")

	assert.Equal(t, len(models), amc.NumSat(smoothed))
	assert.Equal(t, count, amc.NumSat(smoothed))
}

// Grad on a single positive literal.
func TestGradSeedScenario(t *testing.T) {
	a := nnf.Var("a")
	value, deriv := amc.Grad(a, map[string]float64{"a": 0.5}, "a")
	assert.Equal(t, 0.5, value)
	assert.Equal(t, 1.0, deriv)
}

func TestGradNegativeLiteral(t *testing.T) {
	a := nnf.Neg(nnf.Var("a"))
	value, deriv := amc.Grad(a, map[string]float64{"a": 0.5}, "a")
	assert.Equal(t, 0.5, value) // 1 - 0.5
	assert.Equal(t, -1.0, deriv)
}

func TestGradUnrelatedVariable(t *testing.T) {
	a := nnf.Var("a")
	value, deriv := amc.Grad(a, map[string]float64{"a": 0.5}, "b")
	assert.Equal(t, 0.5, value)
	assert.Equal(t, 0.0, deriv)
}

func TestEvalCustomSemiring(t *testing.T) {
	a, b := nnf.Var("a"), nnf.Var("b")
	n := nnf.And(a, b)
	// A boolean semiring (Or, And, false, true), every literal true.
	sem := amc.Semiring[bool]{
		Zero:     func() bool { return false },
		One:      func() bool { return true },
		Add:      func(x, y bool) bool { return x || y },
		Multiply: func(x, y bool) bool { return x && y },
		Leaf:     func(name string, polarity bool) bool { return true },
	}
	assert.True(t, amc.Eval(n, sem))
}
