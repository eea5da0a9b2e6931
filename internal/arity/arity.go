// Package arity implements the static arity analyzer from spec.md §4.5,
// grounded on original_source/pancake/src/arity.rs (the arity_atom/arity_fn
// pair: a running (in, out) composition over a quotation's body, with cond
// special-cased to look back at its two already-processed branch
// quotations). The Go composition loop mirrors that Rust function's
// three-way in1-vs-numOut comparison almost line for line.
package arity

import (
	"github.com/quill-lang/quill/internal/atom"
	"github.com/quill-lang/quill/internal/diagnostics"
)

// Arity is the statically estimated stack effect of a quotation or
// function body: In atoms consumed, Out atoms produced. Known is false
// when any atom in the body has an unknown or combinator-dependent effect
// that the analyzer cannot resolve.
type Arity struct {
	In    int
	Out   int
	Known bool
}

// Unknown is the zero-information result.
var Unknown = Arity{Known: false}

// Analyze computes the arity of a Function or Quotation atom. It panics if
// given anything else: callers (internal/eval's keep handler) are
// responsible for checking Kind() first.
func Analyze(a atom.Atom) Arity {
	switch v := a.(type) {
	case atom.Function:
		return analyzeBody(len(v.Params), v.Body)
	case atom.Quotation:
		return analyzeBody(0, v.Body)
	default:
		panic("arity: Analyze called on a non-callable atom")
	}
}

// analyzeBody runs the composition algorithm over body, seeded with
// paramsIn inputs already consumed by parameter binding.
//
// It first collects one Arity contribution per body atom into contribs,
// exactly as original_source/pancake/src/arity.rs accumulates its own
// `arities` vector. cond is special: rather than folding its contribution
// alongside the two branch-quotation pushes that precede it, it pops those
// two entries back out of contribs (mirroring the Rust file's
// `arities.pop()` calls) and substitutes its own combined contribution in
// their place, so the two branch pushes' supply is never double-counted
// against cond's own (in+1, out). Only after this per-atom pass is
// complete does the running (numIn, numOut) composition fold over the
// finalized contributions.
func analyzeBody(paramsIn int, body []atom.Atom) Arity {
	contribs := make([]Arity, 0, len(body))

	for i := range body {
		op, isOp := body[i].(atom.Op)
		if isOp && op.Name == "cond" {
			condContrib, ok := condStep(body, i, len(contribs))
			if !ok {
				return Unknown
			}
			contribs = append(contribs[:len(contribs)-2], condContrib)
			continue
		}

		contrib := literalStep(body[i])
		if !contrib.Known {
			return Unknown
		}
		contribs = append(contribs, contrib)
	}

	numIn, numOut := paramsIn, 0
	for _, contrib := range contribs {
		if contrib.In > numOut {
			numIn += contrib.In - numOut
			numOut = contrib.Out
		} else if contrib.In == numOut {
			numOut = contrib.Out
		} else {
			numOut -= contrib.In
			numOut += contrib.Out
		}
	}

	return Arity{In: numIn, Out: numOut, Known: true}
}

// condStep computes cond's own contribution by looking back at the two
// quotations immediately preceding it in body (builtCount is how many
// contributions have been accumulated so far, i.e. how many preceding body
// atoms actually produced an entry in contribs) and recursively analyzing
// each branch, per spec.md §4.5 and §9 "Arity of cond". The returned Arity
// is cond's replacement for the two contributions it is about to retire;
// the caller (analyzeBody) is responsible for popping them.
func condStep(body []atom.Atom, i int, builtCount int) (Arity, bool) {
	if i < 2 || builtCount < 2 {
		return Unknown, false
	}
	trueBranch, ok1 := body[i-2].(atom.Quotation)
	elseBranch, ok2 := body[i-1].(atom.Quotation)
	if !ok1 || !ok2 {
		return Unknown, false
	}

	a := analyzeBody(0, trueBranch.Body)
	b := analyzeBody(0, elseBranch.Body)

	var branch Arity
	switch {
	case a.Known && b.Known:
		if a != b {
			diagnostics.Raise(diagnostics.PhaseCombinator,
				"cond branches have incompatible arities: (%d,%d) vs (%d,%d)", a.In, a.Out, b.In, b.Out)
		}
		branch = a
	case a.Known:
		branch = a
	case b.Known:
		branch = b
	default:
		return Unknown, false
	}

	return Arity{In: branch.In + 1, Out: branch.Out, Known: true}, true
}

// literalStep returns an atom's flat contribution: its own static Op
// arity, or (0,1) for anything that merely pushes itself (including a
// Quotation/Function value used as an ordinary operand rather than
// consumed by cond).
func literalStep(a atom.Atom) Arity {
	if op, ok := a.(atom.Op); ok {
		if !op.Known {
			return Unknown
		}
		return Arity{In: op.In, Out: op.Out, Known: true}
	}
	return Arity{In: 0, Out: 1, Known: true}
}
