// Package semiring implements the tropical weight algebra (min, +, +Inf, 0)
// used throughout the WFST engine.
package semiring

import (
	"math"

	"github.com/wfstlib/wfst/pkg/types"
)

// Plus is the tropical ⊕: min(a, b). +Inf is the identity.
func Plus(a, b types.Weight) types.Weight {
	if a < b {
		return a
	}
	return b
}

// Times is the tropical ⊗: a + b. +Inf is annihilating (Inf + x == Inf for
// any finite x, and Inf + Inf == Inf).
func Times(a, b types.Weight) types.Weight {
	return a + b
}

// Minus residuates Times: given w = Times(a, b), Minus(w, a) recovers b.
// Used by determinize to normalize subset residuals by their common divisor.
// Minus(Inf, Inf) is defined as Inf (removing an annihilated contribution
// leaves it annihilated).
func Minus(w, a types.Weight) types.Weight {
	if math.IsInf(w, 1) && math.IsInf(a, 1) {
		return types.Zero
	}
	return w - a
}

// IsZero reports whether w is the additive identity (+Inf, i.e. no path).
func IsZero(w types.Weight) bool {
	return math.IsInf(w, 1)
}

// IsOne reports whether w is the multiplicative identity (0).
func IsOne(w types.Weight) bool {
	return w == types.One
}

// Member validates w as a legal tropical weight: not NaN, and not -Inf
// (-Inf is never produced by any legal construction and would break the
// Zero/absorbing invariants).
func Member(w types.Weight) bool {
	if math.IsNaN(w) {
		return false
	}
	if math.IsInf(w, -1) {
		return false
	}
	return true
}

// Less defines the natural order induced by ⊕: a "less than" b iff
// Plus(a, b) == a and a != b. Shortest-path's priority queue and minimize's
// final-weight partition compare weights directly rather than through Less.
func Less(a, b types.Weight) bool {
	return a < b
}

// Equal is exact bitwise equality on finite doubles, as required for
// determinization/minimization state equivalence. Two +Inf values compare
// equal; NaN is never a legal weight so it is not handled specially here.
func Equal(a, b types.Weight) bool {
	return a == b
}
