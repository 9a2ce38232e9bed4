// Package tvl builds three-valued logic and unknown-value arithmetic on top
// of the dual container: an Optional[T] is a dual value whose second branch
// is the marker "a T exists but its identity is not known to the program" —
// deliberately distinct from absence-of-value.
//
// 🚀 The three logical states of Bool = Optional[bool]:
//
//	Known(true), Known(false), Unknown — two branches realize three states:
//	the discriminant separates known from unknown, the known branch carries
//	the boolean.
//
// ✨ Propagation rules (Kleene logic):
//
//	NOT  unknown            = unknown
//	AND  false  ⊗ anything  = false      (determined regardless of the unknown)
//	AND  true   ⊗ unknown   = unknown
//	OR   true   ⊗ anything  = true       (determined regardless of the unknown)
//	OR   false  ⊗ unknown   = unknown
//	XOR  anything ⊗ unknown = unknown
//
// A result that is determined no matter what the unknown value turns out to
// be short-circuits to a known value; every other unknown-involving
// combination stays unknown. All operators return Bool even when the result
// is known — the result's container type never depends on the runtime
// branch taken.
//
// Arithmetic propagates the same way through Lift and Lift2: a known⊗known
// application evaluates the operator; any unknown operand yields an unknown
// of the result type without evaluating anything. The result type of a
// mixed-type lift is chosen at instantiation (Go promotes nothing
// implicitly); the descriptor-level promotion table lives in
// typealg.Promote.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/twofold/tvl"
//
//	tvl.And(tvl.False(), tvl.UnknownBool())   // Known(false)
//	tvl.Or(tvl.True(), tvl.UnknownBool())     // Known(true)
//	tvl.Add(tvl.Known(2), tvl.UnknownOf[int]()) // unknown int
//
//	mixed := tvl.Lift2(func(a int, b float64) float64 { return float64(a) + b })
//	mixed(tvl.UnknownOf[int](), tvl.Known(2.0)) // unknown float64
//
// Everything here is expressed through dual's constructors and broadcast;
// tvl adds no container machinery of its own.
package tvl
