// Package dsharp loads the line-oriented d-DNNF output of the DSHARP
// knowledge compiler into the term model. The format declares every node
// once, in dependency order, and references earlier nodes by their
// 0-based position, this package builds the DAG in a single pass,
// sharing each declared node by index exactly as the file does.
package dsharp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/xDarkicex/nnf"
)

// SplitVar is metadata DSHARP attaches to an OR node: the decision
// variable the compiler branched on to produce that OR's two children,
// or 0 if none was recorded. The term model itself has no place to carry
// this (an nnf.Node is just And/Or/Var), so Load returns it alongside
// the parsed root, keyed by the node's position in the declaration
// order, the same indexing the wire format uses.
type SplitVar map[int]int

// Result is what Load returns: the compiled sentence's root node, plus
// the split-variable metadata for every OR line the file declared.
type Result struct {
	Root     nnf.Node
	SplitVar SplitVar
}

// Load reads a DSHARP d-DNNF file from r.
func Load(r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, err
	}
	return Loads(string(data))
}

// Loads parses a DSHARP d-DNNF document already in memory: a header
// `nnf V E R` (node count, edge count, variable count) followed by V
// node lines, `L <lit>`, `A <k> <i1>…<ik>`, or `O <split_var> <k>
// <i1>…<ik>`, each referencing earlier lines by 0-based index. The
// root of the resulting sentence is the last declared node.
func Loads(s string) (Result, error) {
	scanner := bufio.NewScanner(strings.NewReader(s))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var header []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		header = strings.Fields(line)
		break
	}
	if len(header) != 4 || header[0] != "nnf" {
		return Result{}, parseErr("expected 'nnf V E R' header, got %q", strings.Join(header, " "))
	}
	declared, err := strconv.Atoi(header[1])
	if err != nil {
		return Result{}, parseErr("node count must be an integer, got %q", header[1])
	}

	nodes := make([]nnf.Node, 0, declared)
	splits := make(SplitVar)
	var errs *multierror.Error

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, split, hasSplit, err := parseNodeLine(line, nodes)
		if err != nil {
			errs = multierror.Append(errs, err)
			nodes = append(nodes, nil) // keep indices aligned despite the error
			continue
		}
		if hasSplit {
			splits[len(nodes)] = split
		}
		nodes = append(nodes, n)
	}
	if err := scanner.Err(); err != nil {
		return Result{}, err
	}
	if err := errs.ErrorOrNil(); err != nil {
		return Result{}, wrapParseErr(err)
	}
	if len(nodes) == 0 {
		return Result{}, parseErr("no node lines declared")
	}
	return Result{Root: nodes[len(nodes)-1], SplitVar: splits}, nil
}

func parseNodeLine(line string, nodes []nnf.Node) (n nnf.Node, split int, hasSplit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, 0, false, fmt.Errorf("empty node line")
	}
	switch fields[0] {
	case "L":
		if len(fields) != 2 {
			return nil, 0, false, fmt.Errorf("'L' line wants exactly one literal, got %q", line)
		}
		lit, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, 0, false, fmt.Errorf("'L' literal must be an integer, got %q", fields[1])
		}
		if lit < 0 {
			return nnf.Neg(nnf.Var(strconv.Itoa(-lit))), 0, false, nil
		}
		return nnf.Var(strconv.Itoa(lit)), 0, false, nil

	case "A":
		children, err := parseRefs(fields[1:], nodes)
		if err != nil {
			return nil, 0, false, err
		}
		return nnf.AndSet(children), 0, false, nil

	case "O":
		if len(fields) < 2 {
			return nil, 0, false, fmt.Errorf("'O' line missing split variable, got %q", line)
		}
		splitVar, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, 0, false, fmt.Errorf("'O' split variable must be an integer, got %q", fields[1])
		}
		children, err := parseRefs(fields[2:], nodes)
		if err != nil {
			return nil, 0, false, err
		}
		return nnf.OrSet(children), splitVar, true, nil

	default:
		return nil, 0, false, fmt.Errorf("unknown node line opcode %q", fields[0])
	}
}

// parseRefs parses a `<k> <i1>…<ik>` child-count-then-indices tail and
// resolves each index against already-declared nodes.
func parseRefs(fields []string, nodes []nnf.Node) ([]nnf.Node, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("missing child count")
	}
	k, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("child count must be an integer, got %q", fields[0])
	}
	refs := fields[1:]
	if len(refs) != k {
		return nil, fmt.Errorf("declared %d children but found %d indices", k, len(refs))
	}
	children := make([]nnf.Node, 0, k)
	for _, ref := range refs {
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("child index must be an integer, got %q", ref)
		}
		if idx < 0 || idx >= len(nodes) || nodes[idx] == nil {
			return nil, fmt.Errorf("child index %d out of range (only %d nodes declared so far)", idx, len(nodes))
		}
		children = append(children, nodes[idx])
	}
	return children, nil
}

func parseErr(format string, a ...any) error {
	return &nnf.Error{Op: "dsharp.Loads", Kind: nnf.ParseError, Message: fmt.Sprintf(format, a...)}
}

func wrapParseErr(cause error) error {
	return &nnf.Error{Op: "dsharp.Loads", Kind: nnf.ParseError, Message: "malformed DSHARP input", Err: cause}
}
