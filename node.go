// Package nnf implements an algebra and query engine for propositional
// sentences in Negation Normal Form: immutable DAGs of variables, their
// negations, conjunctions and disjunctions, with recognizers and
// operations for the well-known subclasses (CNF, DNF, DNNF, d-DNNF,
// smooth NNF, MODS).
//
// Every Node is built once and never mutated; transformations such as
// Condition, Simplify, MakeSmooth and Negate all return fresh Nodes. Two
// Nodes compare equal, via Equal, when they have the same variant and the
// same child set, And and Or children are unordered sets, not sequences,
// so construction order never affects equality.
package nnf

import "fmt"

// Kind identifies which DAG variant a Node is.
type Kind int

const (
	// KindVar identifies a literal (a variable or its negation).
	KindVar Kind = iota
	// KindAnd identifies a conjunction, including the empty conjunction
	// True.
	KindAnd
	// KindOr identifies a disjunction, including the empty disjunction
	// False.
	KindOr

	// KindNode is the abstract base kind, never constructible. It exists
	// only so FromKind has something concrete to reject, matching the
	// source algebra's sealed abstract Node class.
	KindNode
	// KindInternal is the abstract base kind for And/Or, never
	// constructible on its own.
	KindInternal
)

// String renders the Kind as it appears in error messages and Node debug
// output.
func (k Kind) String() string {
	switch k {
	case KindVar:
		return "Var"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindNode:
		return "Node"
	case KindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Node is a node of the NNF DAG. It is a sealed interface: the only
// implementations are the unexported types backing Var, And and Or, built
// exclusively through this package's constructors, so the abstract
// Node/Internal roots can never be constructed directly from outside the
// package.
type Node interface {
	// Kind reports which DAG variant this Node is.
	Kind() Kind

	// String returns a human-readable rendering of the Node.
	String() string

	// hash returns the precomputed structural hash of the Node. Hashing
	// is structural (variant + children), not identity-based, so that
	// DAG sharing is behavioral, never observable.
	hash() uint64

	// cacheSlot returns this Node's lazily-populated memoization cache.
	cacheSlot() *nodeCache

	// sealed prevents types outside this package from implementing Node.
	sealed()
}

// varNode is a literal: a variable name together with its polarity.
type varNode struct {
	name     string
	polarity bool
	h        uint64
	cache    *nodeCache
}

func (v *varNode) Kind() Kind             { return KindVar }
func (v *varNode) hash() uint64           { return v.h }
func (v *varNode) cacheSlot() *nodeCache  { return v.cache }
func (v *varNode) sealed()                {}
func (v *varNode) String() string {
	if v.polarity {
		return v.name
	}
	return "¬" + v.name
}

// internalNode is an And or Or: a conjunction or disjunction over a
// canonicalized, deduplicated, order-independent slice of children. The
// empty And is True; the empty Or is False.
type internalNode struct {
	kind     Kind // KindAnd or KindOr
	children []Node
	h        uint64
	cache    *nodeCache
}

func (n *internalNode) Kind() Kind            { return n.kind }
func (n *internalNode) hash() uint64          { return n.h }
func (n *internalNode) cacheSlot() *nodeCache { return n.cache }
func (n *internalNode) sealed()               {}

func (n *internalNode) String() string {
	if len(n.children) == 0 {
		if n.kind == KindAnd {
			return "True"
		}
		return "False"
	}
	sep := " ∧ "
	if n.kind == KindOr {
		sep = " ∨ "
	}
	s := "("
	for i, c := range n.children {
		if i > 0 {
			s += sep
		}
		s += c.String()
	}
	return s + ")"
}

func newVar(name string, polarity bool) Node {
	return &varNode{
		name:     name,
		polarity: polarity,
		h:        hashVar(name, polarity),
		cache:    &nodeCache{},
	}
}

func newInternal(kind Kind, children []Node) Node {
	hashes := make([]uint64, len(children))
	for i, c := range children {
		hashes[i] = c.hash()
	}
	return &internalNode{
		kind:     kind,
		children: children,
		h:        hashInternal(kind, hashes),
		cache:    &nodeCache{},
	}
}

// Var returns the positive literal for name.
func Var(name string) Node {
	return newVar(name, true)
}

// Neg returns the negation of the Var v: the same name with polarity
// flipped. Neg panics if v is not a Var, unlike the data-driven failures
// the rest of this package reports as errors, passing a non-Var here is a
// caller bug caught at construction time, the same class of misuse
// FromKind rejects for abstract kinds.
func Neg(v Node) Node {
	vn, ok := v.(*varNode)
	if !ok {
		panic(fmt.Sprintf("nnf: Neg requires a Var node, got %s", v.Kind()))
	}
	return newVar(vn.name, !vn.polarity)
}

// And returns the conjunction of children, deduplicated and order-
// independent. And() with no arguments is True.
func And(children ...Node) Node {
	return AndSet(children)
}

// AndSet is And over a slice, for callers building children
// programmatically.
func AndSet(children []Node) Node {
	return newInternal(KindAnd, canonicalize(children))
}

// Or returns the disjunction of children, deduplicated and order-
// independent. Or() with no arguments is False.
func Or(children ...Node) Node {
	return OrSet(children)
}

// OrSet is Or over a slice, for callers building children
// programmatically.
func OrSet(children []Node) Node {
	return newInternal(KindOr, canonicalize(children))
}

// True is the empty conjunction, the identity for And.
var True Node = newInternal(KindAnd, nil)

// False is the empty disjunction, the identity for Or.
var False Node = newInternal(KindOr, nil)

// FromKind builds a Node generically from a Kind and a child list, for
// callers that hold a Kind value and must dispatch to And or Or without a
// literal call site for each; passing anything other than KindAnd or KindOr, including the
// abstract KindNode/KindInternal sentinels, returns an
// AbstractInstantiation error, the same failure the source's sealed base
// classes produce when instantiated directly.
func FromKind(kind Kind, children []Node) (Node, error) {
	switch kind {
	case KindAnd, KindOr:
		return newInternal(kind, canonicalize(children)), nil
	default:
		return nil, newError("FromKind", AbstractInstantiation,
			fmt.Sprintf("cannot construct abstract %s node directly", kind))
	}
}

// Equal reports whether a and b have the same variant and the same child
// set (recursively), per the DAG's value-equality invariant. Construction
// order of And/Or children never affects Equal. The structural hash is
// checked first so unequal large subtrees short-circuit in O(1).
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() || a.hash() != b.hash() {
		return false
	}
	switch av := a.(type) {
	case *varNode:
		bv := b.(*varNode)
		return av.name == bv.name && av.polarity == bv.polarity
	case *internalNode:
		bv := b.(*internalNode)
		if len(av.children) != len(bv.children) {
			return false
		}
		// Both sides are canonicalized the same way (sorted by hash), so
		// a positional walk after canonicalization is enough, no need
		// to search for a matching partner per child.
		for i := range av.children {
			if !Equal(av.children[i], bv.children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
