package nnf

import (
	"iter"
	"sort"
	"strings"
)

// ModelOptions selects which model-enumeration strategy Models and
// ModelCount use. Both flags are assertions by the caller about n's
// structure, not requests for this package to verify them: setting them
// when they don't actually hold produces undefined (but never panicking)
// results, the same trust relationship applies here as to the
// deterministic/decomposable flags anywhere else in the model engine.
type ModelOptions struct {
	// Deterministic asserts every Or reachable from n has pairwise
	// contradictory children, enabling the deterministic recursive
	// enumeration strategy.
	Deterministic bool
	// Decomposable asserts every And reachable from n has children with
	// pairwise-disjoint variable sets, enabling the DNNF fast path.
	Decomposable bool
}

// Models returns every total model of n over Vars(n), deduplicated. Models
// are built recursively from the leaves up. With neither flag set the
// result is always correct. Deterministic only skips the per-Or
// deduplication; the final result is deduplicated either way. With
// Decomposable set, And children are combined by straight merge instead
// of a join, which is only correct when their variable sets are actually
// disjoint: on a sentence that is not decomposable the result can hold
// assignments that are not models of n.
func Models(n Node, opts ModelOptions, options ...Option) ([]Model, error) {
	o := resolveOptions(options...)
	o.Log.Trace("nnf: enumerating models", "deterministic", opts.Deterministic, "decomposable", opts.Decomposable, "vars", len(Vars(n)))
	// modelsOf already extends every sub-result up to n's own variable
	// set as it recurses (each Or node extends its children's models up
	// to its own Vars before unioning), so the raw result already covers
	// Vars(n) exactly; only deduplication remains.
	raw := modelsOf(n, opts)
	return dedupeModels(raw), nil
}

// ModelsSeq is Models as a lazy, restartable sequence: each call to the
// returned iter.Seq walks n afresh, yielding models as they're assembled
// rather than enumerating all of them up front, so a caller that breaks
// out early (e.g. to check satisfiability) skips the rest of the walk.
func ModelsSeq(n Node, opts ModelOptions) iter.Seq[Model] {
	return func(yield func(Model) bool) {
		modelsSeqOf(n, opts, yield)
	}
}

// modelsSeqOf streams models of n restricted to Vars(n) to yield, stopping
// as soon as yield returns false. It mirrors modelsOf's strategy choices
// but builds each model incrementally instead of collecting a slice.
func modelsSeqOf(n Node, opts ModelOptions, yield func(Model) bool) bool {
	if name, ok := VarName(n); ok {
		polarity, _ := VarPolarity(n)
		return yield(Model{name: polarity})
	}
	in := n.(*internalNode)
	if len(in.children) == 0 {
		if in.kind == KindAnd {
			return yield(Model{}) // True: the single empty model
		}
		return true // False: no models
	}

	full := varSet(n)
	if in.kind == KindOr {
		var seen map[string]bool
		if !opts.Deterministic {
			seen = make(map[string]bool)
		}
		for _, c := range in.children {
			childVars := varSet(c)
			cont := modelsSeqOf(c, opts, func(m Model) bool {
				for _, ext := range extendModels([]Model{m}, childVars, full) {
					if seen != nil {
						k := modelKey(ext)
						if seen[k] {
							continue
						}
						seen[k] = true
					}
					if !yield(ext) {
						return false
					}
				}
				return true
			})
			if !cont {
				return false
			}
		}
		return true
	}

	// And: stream the cross product of children's models, short-circuiting
	// the whole recursion the moment yield (at any depth) returns false.
	return andModelsSeq(in.children, 0, Model{}, opts, yield)
}

func andModelsSeq(children []Node, idx int, base Model, opts ModelOptions, yield func(Model) bool) bool {
	if idx == len(children) {
		return yield(base)
	}
	cont := true
	modelsSeqOf(children[idx], opts, func(cm Model) bool {
		var combined Model
		var ok bool
		if opts.Decomposable {
			combined, ok = mergeModels(base, cm), true
		} else {
			combined, ok = joinModels(base, cm)
		}
		if !ok {
			return true // inconsistent combination, try the next cm
		}
		if !andModelsSeq(children, idx+1, combined, opts, yield) {
			cont = false
			return false
		}
		return true
	})
	return cont
}

// modelsOf computes models of n restricted to Vars(n), using the fast
// paths opts opts into.
func modelsOf(n Node, opts ModelOptions) []Model {
	if name, ok := VarName(n); ok {
		polarity, _ := VarPolarity(n)
		return []Model{{name: polarity}}
	}
	in := n.(*internalNode)
	if len(in.children) == 0 {
		if in.kind == KindAnd {
			return []Model{{}} // True: the single empty model
		}
		return nil // False: no models
	}

	full := varSet(n)
	if in.kind == KindOr {
		var out []Model
		for _, c := range in.children {
			childModels := modelsOf(c, opts)
			out = append(out, extendModels(childModels, varSet(c), full)...)
		}
		if !opts.Deterministic {
			out = dedupeModels(out)
		}
		return out
	}

	// And: combine children pairwise. A plain merge (no consistency
	// check) is only safe when the caller has asserted Decomposable; a
	// join filters out combinations that disagree on a shared variable,
	// which is what makes this correct even when children's variable
	// sets overlap.
	combos := []Model{{}}
	for _, c := range in.children {
		childModels := modelsOf(c, opts)
		var next []Model
		for _, base := range combos {
			for _, cm := range childModels {
				if opts.Decomposable {
					next = append(next, mergeModels(base, cm))
					continue
				}
				if merged, ok := joinModels(base, cm); ok {
					next = append(next, merged)
				}
			}
		}
		combos = next
	}
	return combos
}

func extendModels(models []Model, from, to map[string]struct{}) []Model {
	var missing []string
	for name := range to {
		if _, ok := from[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return models
	}
	sort.Strings(missing)
	out := make([]Model, 0, len(models)*(1<<uint(len(missing))))
	for _, m := range models {
		for mask := 0; mask < 1<<uint(len(missing)); mask++ {
			nm := make(Model, len(m)+len(missing))
			for k, v := range m {
				nm[k] = v
			}
			for i, name := range missing {
				nm[name] = mask&(1<<uint(i)) != 0
			}
			out = append(out, nm)
		}
	}
	return out
}

func mergeModels(a, b Model) Model {
	m := make(Model, len(a)+len(b))
	for k, v := range a {
		m[k] = v
	}
	for k, v := range b {
		m[k] = v
	}
	return m
}

func joinModels(a, b Model) (Model, bool) {
	m := make(Model, len(a)+len(b))
	for k, v := range a {
		m[k] = v
	}
	for k, v := range b {
		if existing, ok := m[k]; ok && existing != v {
			return nil, false
		}
		m[k] = v
	}
	return m, true
}

func modelKey(m Model) string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(name)
		if m[name] {
			sb.WriteString("=1;")
		} else {
			sb.WriteString("=0;")
		}
	}
	return sb.String()
}

func dedupeModels(models []Model) []Model {
	seen := make(map[string]bool, len(models))
	out := make([]Model, 0, len(models))
	for _, m := range models {
		k := modelKey(m)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, m)
	}
	return out
}

// ModelCount counts n's models by recursion, without enumerating them:
// And multiplies its children's counts, Or sums pairwise-contradictory
// children's counts. This is only correct when n is d-DNNF (Decomposable
// and Deterministic) and smooth, so ModelCount calls MakeSmooth on n
// first, silently wrong counts on an unsmoothed fold are worse than the
// modest cost of smoothing. If n (after smoothing) isn't both decomposable
// and deterministic, ModelCount returns an Unsupported error rather than
// guess.
func ModelCount(n Node, options ...Option) (int, error) {
	o := resolveOptions(options...)
	smooth := MakeSmooth(n)
	if !Decomposable(smooth) || !Deterministic(smooth) {
		return 0, newError("ModelCount", Unsupported,
			"node is not d-DNNF; model counting by recursion requires decomposability and determinism")
	}
	o.Log.Trace("nnf: counting models by recursion", "vars", len(Vars(smooth)))
	return modelCount(smooth), nil
}

func modelCount(n Node) int {
	if _, ok := VarName(n); ok {
		return 1
	}
	in := n.(*internalNode)
	if len(in.children) == 0 {
		if in.kind == KindAnd {
			return 1 // True
		}
		return 0 // False
	}
	if in.kind == KindAnd {
		total := 1
		for _, c := range in.children {
			total *= modelCount(c)
		}
		return total
	}
	total := 0
	for _, c := range in.children {
		total += modelCount(c)
	}
	return total
}
