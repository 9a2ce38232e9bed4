// Package dual provides an immutable two-branch value container and its
// elementwise ("broadcast") application protocol, with the output
// representation decided by the result-type algebra in package typealg.
//
// 🚀 What is a dual value?
//
//	Dual[A, B] holds exactly one value of type A or of type B, selected by a
//	discriminant. It is the Go sum-type rendition of "O(1), allocation-free
//	storage for exactly one of two possible types": the inactive slot is a
//	zero value that no public operation ever exposes.
//
// ✨ Two broadcast layers:
//
//   - Monomorphized fast path — Map, MapBoth, Zip, ZipBoth, ZipWith, WithZip
//     (and the ...Both forms). The result type is fixed at instantiation and
//     the runtime work compiles down to a single conditional per operand.
//     Use these when the call site already knows whether the result
//     collapses.
//
//   - Representation-computing path — Apply, Apply2, ApplyWith, WithApply.
//     The output shape is computed by typealg over the candidate result
//     types of every branch combination: when all candidates agree the
//     result is a plain scalar, otherwise it is wrapped under a dual type.
//     Because collapse-vs-wrap is decided per instantiation, these return
//     the erased Value, recovered with As / AsDual. The representation
//     depends only on the instantiated types, never on which branch was
//     active at runtime.
//
// Construction is branch-tagged (Left, Right): Go selects no constructor by
// argument type, so the tag, not the type, picks the branch, and Dual[T, T]
// stays well-defined. Extraction is checked: the inactive branch yields
// ErrWrongBranch (or a panic from the Must variants), never a zero value.
//
// Capacity errors from the algebra surface only on Apply2, the one shape
// with more than two candidate result types.
//
// ⚙️ Usage:
//
//	x := dual.Left[int, float64](1)
//
//	v := dual.Apply(x,
//	    func(a int) int { return a + 1 },
//	    func(b float64) float64 { return b + 1 })
//	// v.Type() = dual[int|float64]; the branch results stay distinct.
//
//	w := dual.Apply(x,
//	    func(a int) float64 { return float64(a) + 1 },
//	    func(b float64) float64 { return b + 1 })
//	// w.Type() = float64; both branches produce the same type, so the
//	// representation collapses to a plain scalar.
//
// All values are immutable and every operation is pure; sharing across
// goroutines needs no synchronization.
package dual
