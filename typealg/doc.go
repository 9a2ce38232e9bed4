// Package typealg implements the result-type algebra that decides how two
// possible result types of an elementwise operation collapse into the
// narrowest representation: a single concrete type, a two-branch dual type,
// or a hard capacity error when a third distinct type would be required.
//
// 🚀 What is typealg?
//
//	A pure, stateless descriptor algebra over reflect.Type values:
//	  • Result(x, y) — collapse two result descriptors into one
//	  • Fold(...)    — collapse any number of candidates pairwise
//	  • Promote(a,b) — the numeric promotion table used by unknown-value
//	    arithmetic (Go has no implicit promotion, so the table is explicit)
//
// ✨ Rules of Result (first match wins):
//
//  1. Result(T, T) = T                       — identical types collapse
//  2. Result(A, B) = dual[A|B]               — distinct concrete types pair up
//  3. Result(dual[A|B], A) = dual[A|B]       — a dual absorbs its own branch
//     (and symmetrically, in either argument order)
//  4. Result(dual[A|B], dual[A|B]) = dual[A|B]
//  5. Result(dual[A|B], dual[B|A]) = dual[A|B] — branch order is insignificant
//  6. anything else → ErrCapacity            — two branches is a hard limit
//
// Descriptors are plain values; the algebra never inspects runtime
// discriminants and has no state. Result and Fold are argument-order
// insensitive up to branch order: any fold order over the same candidates
// that does not error agrees with any other.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/twofold/typealg"
//
//	t, err := typealg.Result(typealg.ScalarFor[int](), typealg.ScalarFor[float64]())
//	// t = dual[int|float64], err = nil
//
//	_, err = typealg.Fold(typealg.ScalarFor[int](),
//	    typealg.ScalarFor[float64](), typealg.ScalarFor[string]())
//	// errors.Is(err, typealg.ErrCapacity) — three distinct concrete types
//
// Complexity: every operation is O(1) (pairwise comparisons of at most two
// branch descriptors); Fold is O(n) in the number of candidates.
package typealg
