package types

import "math"

// Label is an arc's input or output symbol. 0 (Epsilon) is reserved.
type Label = uint32

// Weight is a tropical-semiring value: a finite real, or +Inf for "no path".
type Weight = float64

const (
	// Epsilon is the reserved empty-label value.
	Epsilon Label = 0

	// NoState is the sentinel for "no start state set" / "not found".
	NoState uint32 = math.MaxUint32

	// InvalidHandle is the sentinel returned by handle-producing calls on failure.
	InvalidHandle uint32 = math.MaxUint32
)

// Zero is the tropical additive identity (0̄ = +∞): absorbing for ⊕, annihilating for ⊗.
var Zero Weight = math.Inf(1)

// One is the tropical multiplicative identity (1̄ = 0).
const One Weight = 0

// Side selects which label sequence Project operates on.
type Side int

const (
	SideInput Side = iota
	SideOutput
)

// ClosureType selects the Kleene-closure variant Closure builds.
type ClosureType int

const (
	ClosureStar ClosureType = iota
	ClosurePlus
	ClosureQuestion
)

// CDRewriteMode selects obligatory vs. optional marker application for
// context-dependent rewrite.
type CDRewriteMode int

const (
	// CDRewriteObligatory rewrites every matching position; no unrewritten
	// alternative survives. This is the default.
	CDRewriteObligatory CDRewriteMode = iota
	// CDRewriteOptional keeps both the rewritten and unrewritten paths.
	CDRewriteOptional
)

// EpsFilterState is the 3-state epsilon-matching filter used by Compose.
// Exported so internal/ops shares the same vocabulary as pkg/types without
// an import cycle.
//
// f=0 (FilterBoth): either epsilon-only move is allowed.
// f=1 (FilterForbidEps2): forbids eps2 (the "A advances alone" move) next.
// f=2 (FilterForbidEps1): forbids eps1 (the "B advances alone" move) next.
//
// Taking an eps2 move (A advances alone, keeping B) transitions to f=2, so
// chains of further eps2 moves remain legal while the symmetric eps1 move
// is blocked until a real match resets the filter to f=0; eps1 is the
// mirror image.
type EpsFilterState int

const (
	FilterBoth EpsFilterState = iota
	FilterForbidEps2
	FilterForbidEps1
)
