// Package dimacs loads and renders the two DIMACS wire formats the SAT
// community uses to exchange propositional formulas: `p cnf` (a clause
// list of signed integer literals) and `p sat` (a fully parenthesized
// AND/OR/NOT expression over integer variables). Variables round-trip as
// decimal-digit names ("1", "2", …) matching the wire format's own
// integer numbering. This codec has no notion of symbolic variable
// names: Dumps rejects a formula whose variable names are not positive
// integers.
package dimacs

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/xDarkicex/nnf"
)

// Load reads a DIMACS document (either surface format) from r.
func Load(r io.Reader) (nnf.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Loads(string(data))
}

// Loads parses a DIMACS document already in memory. `c` lines are
// comments wherever they appear; the first non-comment, non-blank line
// must be the `p cnf V C` or `p sat V` header.
func Loads(s string) (nnf.Node, error) {
	header, body, err := splitHeader(s)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(header)
	switch fields[1] {
	case "cnf":
		return loadCNF(fields, body)
	case "sat":
		return loadSAT(fields, body)
	default:
		return nil, parseErr("unknown DIMACS format %q", fields[1])
	}
}

func splitHeader(s string) (header string, body []string, err error) {
	found := false
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "c") {
			continue
		}
		if !found {
			if !strings.HasPrefix(trimmed, "p ") {
				return "", nil, parseErr("expected DIMACS header, got %q", trimmed)
			}
			header = trimmed
			found = true
			continue
		}
		body = append(body, trimmed)
	}
	if !found {
		return "", nil, parseErr("missing DIMACS header line")
	}
	fields := strings.Fields(header)
	if len(fields) < 3 {
		return "", nil, parseErr("malformed header %q", header)
	}
	return header, body, nil
}

// loadCNF reads clauses with a liberal clause separator: `0` ends a
// clause wherever it appears in the
// literal stream, regardless of line breaks, so a clause may span lines
// and a line may hold several clauses. The final clause's trailing `0`
// may be omitted entirely, end of input implicitly terminates it, the
// same way a last line without a trailing newline is still a line.
func loadCNF(fields []string, body []string) (nnf.Node, error) {
	if len(fields) < 4 {
		return nil, parseErr("p cnf header needs variable and clause counts")
	}
	if _, err := strconv.Atoi(fields[2]); err != nil {
		return nil, parseErr("p cnf variable count must be an integer, got %q", fields[2])
	}
	if _, err := strconv.Atoi(fields[3]); err != nil {
		return nil, parseErr("p cnf clause count must be an integer, got %q", fields[3])
	}

	var errs *multierror.Error
	var clauses []nnf.Node
	var current []nnf.Node
	for _, line := range body {
		for _, tok := range strings.Fields(line) {
			lit, err := strconv.Atoi(tok)
			if err != nil {
				errs = multierror.Append(errs, fmt.Errorf("non-integer literal %q", tok))
				continue
			}
			if lit == 0 {
				clauses = append(clauses, nnf.OrSet(current))
				current = nil
				continue
			}
			current = append(current, literalNode(lit))
		}
	}
	if len(current) != 0 {
		clauses = append(clauses, nnf.OrSet(current))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, wrapParseErr(err)
	}
	return nnf.AndSet(clauses), nil
}

func literalNode(lit int) nnf.Node {
	if lit < 0 {
		return nnf.Neg(nnf.Var(strconv.Itoa(-lit)))
	}
	return nnf.Var(strconv.Itoa(lit))
}

// loadSAT parses the `p sat V` body: a single expression over `*(…)`
// (AND), `+(…)` (OR), `-(…)` (NOT, literal-level only), bare integers as
// literals (a leading `-` is a negative literal, equivalent to wrapping
// the positive literal in `-(…)`), and parentheses around a literal.
func loadSAT(fields []string, body []string) (nnf.Node, error) {
	if len(fields) < 3 {
		return nil, parseErr("p sat header needs a variable count")
	}
	if _, err := strconv.Atoi(fields[2]); err != nil {
		return nil, parseErr("p sat variable count must be an integer, got %q", fields[2])
	}
	p := &satParser{s: strings.Join(body, " ")}
	n, err := p.expr()
	if err != nil {
		return nil, wrapParseErr(err)
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, wrapParseErr(fmt.Errorf("unexpected trailing input at position %d", p.pos))
	}
	return n, nil
}

// satParser is a small recursive-descent parser over the `p sat`
// expression grammar, operating directly on byte offsets since the
// grammar's alphabet is ASCII.
type satParser struct {
	s   string
	pos int
}

func (p *satParser) skipSpace() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *satParser) expr() (nnf.Node, error) {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	switch c := p.s[p.pos]; {
	case c == '*' || c == '+':
		p.pos++
		p.skipSpace()
		if p.pos >= len(p.s) || p.s[p.pos] != '(' {
			return nil, fmt.Errorf("expected '(' after %q", string(c))
		}
		p.pos++
		children, err := p.exprList()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		if c == '*' {
			return nnf.AndSet(children), nil
		}
		return nnf.OrSet(children), nil
	case c == '-':
		p.pos++
		p.skipSpace()
		if p.pos < len(p.s) && p.s[p.pos] == '(' {
			p.pos++
			inner, err := p.expr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(')'); err != nil {
				return nil, err
			}
			return negateLiteral(inner)
		}
		return p.integer(true)
	case c == '(':
		p.pos++
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return inner, nil
	case c >= '0' && c <= '9':
		return p.integer(false)
	default:
		return nil, fmt.Errorf("unexpected character %q at position %d", string(c), p.pos)
	}
}

func (p *satParser) exprList() ([]nnf.Node, error) {
	var out []nnf.Node
	for {
		p.skipSpace()
		if p.pos >= len(p.s) || p.s[p.pos] == ')' {
			return out, nil
		}
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
}

func (p *satParser) integer(negative bool) (nnf.Node, error) {
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return nil, fmt.Errorf("expected integer literal at position %d", start)
	}
	name := p.s[start:p.pos]
	if negative {
		return nnf.Neg(nnf.Var(name)), nil
	}
	return nnf.Var(name), nil
}

func (p *satParser) expect(c byte) error {
	if p.pos >= len(p.s) || p.s[p.pos] != c {
		return fmt.Errorf("unmatched parenthesis at position %d", p.pos)
	}
	p.pos++
	return nil
}

// negateLiteral implements `-(…)`'s restriction to literal-level
// negation: the operand must itself be a literal, not a compound
// subexpression.
func negateLiteral(n nnf.Node) (nnf.Node, error) {
	name, ok := nnf.VarName(n)
	if !ok {
		return nil, fmt.Errorf("'-' only negates a literal, not a compound expression")
	}
	polarity, _ := nnf.VarPolarity(n)
	if polarity {
		return nnf.Neg(nnf.Var(name)), nil
	}
	return nnf.Var(name), nil
}

// Dump writes n to w in the given mode, "cnf" or "sat".
func Dump(w io.Writer, n nnf.Node, mode string) error {
	s, err := Dumps(n, mode)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Dumps renders n in the given DIMACS mode. "cnf" requires n to already
// be a non-empty CNF (nnf.IsCNF(n)); any NNF may render in "sat" mode.
// Both modes require every variable name under n to parse as a positive
// decimal integer, the DIMACS wire format has no other way to name a
// variable.
func Dumps(n nnf.Node, mode string) (string, error) {
	switch mode {
	case "cnf":
		return dumpCNF(n)
	case "sat":
		return dumpSAT(n)
	default:
		return "", formatErr("unknown DIMACS mode %q", mode)
	}
}

func dumpCNF(n nnf.Node) (string, error) {
	if !nnf.IsCNF(n) || len(nnf.Children(n)) == 0 {
		return "", formatErr("node is not a non-empty CNF")
	}
	clauses := nnf.Children(n)
	var sb strings.Builder
	fmt.Fprintf(&sb, "p cnf %d %d\n", len(nnf.Vars(n)), len(clauses))
	for _, clause := range clauses {
		for _, lit := range nnf.Children(clause) {
			idx, err := literalInt(lit)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&sb, "%d ", idx)
		}
		sb.WriteString("0\n")
	}
	return sb.String(), nil
}

func dumpSAT(n nnf.Node) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "p sat %d\n", len(nnf.Vars(n)))
	body, err := renderSAT(n)
	if err != nil {
		return "", err
	}
	sb.WriteString(body)
	sb.WriteByte('\n')
	return sb.String(), nil
}

func renderSAT(n nnf.Node) (string, error) {
	if name, ok := nnf.VarName(n); ok {
		if idx, err := strconv.Atoi(name); err != nil || idx <= 0 {
			return "", formatErr("variable names must be positive integers, got %q", name)
		}
		polarity, _ := nnf.VarPolarity(n)
		if polarity {
			return name, nil
		}
		return "-" + name, nil
	}
	children := nnf.Children(n)
	op := "*"
	if n.Kind() == nnf.KindOr {
		op = "+"
	}
	parts := make([]string, len(children))
	for i, c := range children {
		part, err := renderSAT(c)
		if err != nil {
			return "", err
		}
		parts[i] = part
	}
	return op + "(" + strings.Join(parts, " ") + ")", nil
}

func parseErr(format string, a ...any) error {
	return &nnf.Error{Op: "dimacs.Loads", Kind: nnf.ParseError, Message: fmt.Sprintf(format, a...)}
}

func wrapParseErr(cause error) error {
	return &nnf.Error{Op: "dimacs.Loads", Kind: nnf.ParseError, Message: "malformed DIMACS input", Err: cause}
}

func formatErr(format string, a ...any) error {
	return &nnf.Error{Op: "dimacs.Dumps", Kind: nnf.FormatError, Message: fmt.Sprintf(format, a...)}
}

func literalInt(lit nnf.Node) (int, error) {
	name, ok := nnf.VarName(lit)
	if !ok {
		return 0, formatErr("cnf mode requires clauses of literals, found a non-literal child")
	}
	polarity, _ := nnf.VarPolarity(lit)
	idx, err := strconv.Atoi(name)
	if err != nil || idx <= 0 {
		return 0, formatErr("cnf mode requires positive integer variable names, got %q", name)
	}
	if !polarity {
		idx = -idx
	}
	return idx, nil
}
