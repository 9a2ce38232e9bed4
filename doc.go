// Package twofold is a small algebra of two-branch values: containers that
// hold exactly one of two possible typed values, broadcast application whose
// result representation is inferred by a result-type algebra, and
// three-valued logic with unknown-value arithmetic on top.
//
// 🚀 What is twofold?
//
//	A pure, immutable-value library built from three layers:
//		• typealg — the result-type algebra: collapse two candidate result
//		  types into one concrete type, a two-branch dual type, or a hard
//		  capacity error; plus the explicit numeric promotion table
//		• dual    — the Dual[A, B] container with checked extraction, a
//		  monomorphized broadcast fast path, and a representation-computing
//		  broadcast whose collapse-vs-wrap decision comes from typealg
//		• tvl     — Optional[T] = "a T exists but is not known", three-valued
//		  boolean logic (Kleene tables with determined short-circuits) and
//		  unknown-propagating arithmetic
//
// ✨ Why choose twofold?
//
//   - Two runtime shapes, one conditional — generics resolve the result
//     representation at instantiation, so dispatch never goes virtual
//   - Hard capacity limit — a dual value never silently grows a third branch
//   - Checked by construction — the inactive branch is a defined failure,
//     never a silent zero value
//   - Pure values — no locks, no I/O, no mutation; share freely across
//     goroutines
//
// Dependency order of the subpackages (leaves first):
//
//	typealg → dual → tvl
//
// Quick taste:
//
//	x := dual.Left[int, float64](1)
//	dual.Apply(x, incInt, incFloat)        // dual[int|float64](2)
//	dual.Apply(x, toFloat, incFloat)       // float64(2) — collapsed
//	tvl.And(tvl.False(), tvl.UnknownBool()) // known false, despite the unknown
//
// See each subpackage's doc.go for the full contract and examples.
package twofold
