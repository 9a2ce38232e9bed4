package tvl_test

import (
	"testing"

	"github.com/katalvlaran/twofold/tvl"
	"github.com/stretchr/testify/assert"
)

// The truth tables are checked exhaustively over the three states.
// T, F, U index the states in table order.
const (
	T = iota
	F
	U
)

var states = [3]tvl.Bool{tvl.True(), tvl.False(), tvl.UnknownBool()}
var names = [3]string{"true", "false", "unknown"}

// TestNot checks the full NOT column.
func TestNot(t *testing.T) {
	want := [3]int{F, T, U}
	for i, x := range states {
		assert.Equal(t, states[want[i]], tvl.Not(x), "NOT %s", names[i])
	}
}

// TestAnd checks the full 3×3 AND table, including the determined
// short-circuit false ∧ unknown = false.
func TestAnd(t *testing.T) {
	want := [3][3]int{
		//        true false unknown
		/*true*/ {T, F, U},
		/*false*/ {F, F, F},
		/*unknown*/ {U, F, U},
	}
	for i, x := range states {
		for j, y := range states {
			assert.Equal(t, states[want[i][j]], tvl.And(x, y), "%s AND %s", names[i], names[j])
		}
	}
}

// TestOr checks the full 3×3 OR table, including the determined
// short-circuit true ∨ unknown = true.
func TestOr(t *testing.T) {
	want := [3][3]int{
		//        true false unknown
		/*true*/ {T, T, T},
		/*false*/ {T, F, U},
		/*unknown*/ {T, U, U},
	}
	for i, x := range states {
		for j, y := range states {
			assert.Equal(t, states[want[i][j]], tvl.Or(x, y), "%s OR %s", names[i], names[j])
		}
	}
}

// TestXor checks the full 3×3 XOR table: any unknown operand stays unknown.
func TestXor(t *testing.T) {
	want := [3][3]int{
		//        true false unknown
		/*true*/ {F, T, U},
		/*false*/ {T, F, U},
		/*unknown*/ {U, U, U},
	}
	for i, x := range states {
		for j, y := range states {
			assert.Equal(t, states[want[i][j]], tvl.Xor(x, y), "%s XOR %s", names[i], names[j])
		}
	}
}

// TestLogic_TypeStability verifies that operators return the container type
// regardless of the runtime outcome: a determined AND result is still a
// Bool, equal to Known(false), not a bare bool.
func TestLogic_TypeStability(t *testing.T) {
	got := tvl.And(tvl.False(), tvl.UnknownBool())

	assert.Equal(t, tvl.False(), got)
	assert.True(t, tvl.HasValue(got), "the short-circuited result is a known value")

	v, ok := tvl.Get(got)
	assert.True(t, ok)
	assert.False(t, v)
}

// TestLogic_Commutativity spot-checks that the binary operators do not
// depend on operand order anywhere in the table.
func TestLogic_Commutativity(t *testing.T) {
	for i, x := range states {
		for j, y := range states {
			assert.Equal(t, tvl.And(x, y), tvl.And(y, x), "AND %s,%s", names[i], names[j])
			assert.Equal(t, tvl.Or(x, y), tvl.Or(y, x), "OR %s,%s", names[i], names[j])
			assert.Equal(t, tvl.Xor(x, y), tvl.Xor(y, x), "XOR %s,%s", names[i], names[j])
		}
	}
}
