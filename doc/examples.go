// Package main demonstrates usage of the nnf module: building sentences,
// querying their structure, running the semantic operations, enumerating
// and counting models, folding AMC semirings, and round-tripping through
// the DIMACS codec.
package main

import (
	"fmt"
	"strings"

	"github.com/xDarkicex/nnf"
	"github.com/xDarkicex/nnf/amc"
	"github.com/xDarkicex/nnf/dimacs"
)

// ExampleBasicOperations builds a small sentence and inspects its shape.
func ExampleBasicOperations() {
	fmt.Println("=== Basic Sentence Construction ===")

	a, b := nnf.Var("a"), nnf.Var("b")
	n := nnf.Or(nnf.And(a, b), nnf.And(nnf.Neg(a), nnf.Neg(b)))

	fmt.Printf("n = %s\n", n)
	fmt.Printf("size(n) = %d\n", nnf.Size(n))
	fmt.Printf("vars(n) = %v\n", nnf.Vars(n))
	fmt.Printf("decomposable(n) = %v\n", nnf.Decomposable(n))
	fmt.Printf("deterministic(n) = %v\n", nnf.Deterministic(n))
	fmt.Println()
}

// ExampleSimplify shows identity/absorbing collapse and complementary
// pair detection.
func ExampleSimplify() {
	fmt.Println("=== Simplify ===")

	a := nnf.Var("a")
	n := nnf.And(a, nnf.Neg(a), nnf.True)
	fmt.Printf("%s simplifies to %s\n", n, nnf.Simplify(n, true))

	m := nnf.Or(nnf.False, nnf.And(a))
	fmt.Printf("%s simplifies to %s\n", m, nnf.Simplify(m, true))
	fmt.Println()
}

// ExampleModels enumerates and counts models of a small formula.
func ExampleModels() {
	fmt.Println("=== Models ===")

	a, b, c := nnf.Var("a"), nnf.Var("b"), nnf.Var("c")
	n := nnf.And(nnf.Or(a, b), nnf.Or(b, c))

	models, _ := nnf.Models(n, nnf.ModelOptions{})
	fmt.Printf("%s has %d models\n", n, len(models))
	fmt.Printf("satisfiable(n) = %v\n", nnf.Satisfiable(n))
	fmt.Printf("valid(n) = %v\n", nnf.Valid(n))
	fmt.Println()
}

// ExampleAMC folds the NUM_SAT and GRAD semirings over a smoothed DNNF.
func ExampleAMC() {
	fmt.Println("=== AMC ===")

	a, b := nnf.Var("a"), nnf.Var("b")
	fig1a := nnf.Or(nnf.And(nnf.Neg(a), b), nnf.And(a, nnf.Neg(b)))
	fmt.Printf("NUM_SAT(%s) = %d\n", fig1a, amc.NumSat(fig1a))

	value, deriv := amc.Grad(a, map[string]float64{"a": 0.5}, "a")
	fmt.Printf("GRAD(a, {a: 0.5}, a) = (%v, %v)\n", value, deriv)
	fmt.Println()
}

// ExampleDIMACS parses the liberal-separator DIMACS CNF format and
// renders it back out.
func ExampleDIMACS() {
	fmt.Println("=== DIMACS ===")

	input := "p cnf 4 3\n1 3 -4 0\n4 0 2\n-3"
	n, err := dimacs.Loads(input)
	if err != nil {
		fmt.Printf("parse error: %v\n", err)
		return
	}
	fmt.Printf("parsed: %s\n", n)

	out, err := dimacs.Dumps(n, "cnf")
	if err != nil {
		fmt.Printf("dump error: %v\n", err)
		return
	}
	fmt.Print(strings.ReplaceAll(out, "\n", "\\n\n"))
	fmt.Println()
}

// ExampleErrorHandling shows the Error/Kind taxonomy surfaced by the
// public API.
func ExampleErrorHandling() {
	fmt.Println("=== Error Handling ===")

	_, err := nnf.SatisfiedBy(nnf.Var("a"), nnf.Model{})
	if err != nil {
		fmt.Printf("error: %v\n", err)
		fmt.Printf("is IncompleteModel: %v\n", nnf.IsKind(err, nnf.IncompleteModel))
	}

	_, err = nnf.FromKind(nnf.KindNode, nil)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		fmt.Printf("is AbstractInstantiation: %v\n", nnf.IsKind(err, nnf.AbstractInstantiation))
	}
	fmt.Println()
}

func main() {
	fmt.Println("nnf examples")
	fmt.Println("============")
	fmt.Println()

	ExampleBasicOperations()
	ExampleSimplify()
	ExampleModels()
	ExampleAMC()
	ExampleDIMACS()
	ExampleErrorHandling()

	fmt.Println("done")
}
