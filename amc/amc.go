// Package amc implements Algebraic Model Counting: folding a commutative
// semiring over a smooth, decomposable NNF sentence. NumSat specializes
// the fold to plain model counting; Grad specializes it to a dual-number
// fold that yields a value together with its derivative with respect to a
// chosen variable's weight.
//
// Eval's correctness depends on its input being smooth (so a Semiring's
// Add is always combining values over the same variable set) and
// decomposable (so Multiply is always combining values over independent
// variable subsets). Eval does not call nnf.MakeSmooth itself, the
// precondition is the caller's, and folding an unsmoothed sentence
// silently produces the wrong number rather than an error.
package amc

import "github.com/xDarkicex/nnf"

// Semiring is a commutative semiring (S, ⊕, ⊗, 0, 1) together with a
// leaf-labeling function, everything Eval needs to fold a sentence into a
// value of S.
type Semiring[S any] struct {
	// Zero is the additive identity, combined across an Or's children.
	Zero func() S
	// One is the multiplicative identity, combined across an And's
	// children.
	One func() S
	// Add combines two Or children.
	Add func(a, b S) S
	// Multiply combines two And children.
	Multiply func(a, b S) S
	// Leaf labels a literal by name and polarity.
	Leaf func(name string, polarity bool) S
}

// Eval folds sem over n: a leaf yields sem.Leaf(name, polarity), an And
// combines its children with sem.Multiply (starting from sem.One for the
// empty And, True), an Or combines its children with sem.Add (starting
// from sem.Zero for the empty Or, False).
func Eval[S any](n nnf.Node, sem Semiring[S]) S {
	if name, ok := nnf.VarName(n); ok {
		polarity, _ := nnf.VarPolarity(n)
		return sem.Leaf(name, polarity)
	}
	children := nnf.Children(n)
	if n.Kind() == nnf.KindAnd {
		acc := sem.One()
		for _, c := range children {
			acc = sem.Multiply(acc, Eval(c, sem))
		}
		return acc
	}
	acc := sem.Zero()
	for _, c := range children {
		acc = sem.Add(acc, Eval(c, sem))
	}
	return acc
}

// NumSat is the (ℕ, +, ×, 0, 1) semiring with every literal labeled 1: it
// folds n into the number of models, provided n is smooth and
// decomposable. Folding a sentence that isn't smooth silently
// overcounts, see the package doc.
func NumSat(n nnf.Node) int {
	return Eval(n, Semiring[int]{
		Zero:     func() int { return 0 },
		One:      func() int { return 1 },
		Add:      func(a, b int) int { return a + b },
		Multiply: func(a, b int) int { return a * b },
		Leaf:     func(name string, polarity bool) int { return 1 },
	})
}

// dual is a dual number (value, derivative) for forward-mode
// differentiation of a weighted model count with respect to one
// variable's weight.
type dual struct {
	value float64
	deriv float64
}

// Grad folds n under the weights in w (variable name -> probability that
// the positive literal holds) and returns the weighted model count
// together with its derivative with respect to wrt's weight. A positive
// literal for wrt contributes derivative +1, a negative literal
// contributes -1, and any other literal contributes 0, the sum/product
// rules then propagate these through Add/Multiply exactly as calculus
// requires.
func Grad(n nnf.Node, w map[string]float64, wrt string) (value float64, derivative float64) {
	result := Eval(n, Semiring[dual]{
		Zero: func() dual { return dual{value: 0, deriv: 0} },
		One:  func() dual { return dual{value: 1, deriv: 0} },
		Add: func(a, b dual) dual {
			return dual{value: a.value + b.value, deriv: a.deriv + b.deriv}
		},
		Multiply: func(a, b dual) dual {
			return dual{
				value: a.value * b.value,
				deriv: a.value*b.deriv + b.value*a.deriv,
			}
		},
		Leaf: func(name string, polarity bool) dual {
			v := w[name]
			if !polarity {
				v = 1 - v
			}
			d := 0.0
			if name == wrt {
				if polarity {
					d = 1
				} else {
					d = -1
				}
			}
			return dual{value: v, deriv: d}
		},
	})
	return result.value, result.deriv
}
