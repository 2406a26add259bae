package types

// DeterminizeOptions controls the weighted subset construction.
type DeterminizeOptions struct {
	// Limits bounds subset-table growth rather than looping forever on a
	// non-determinizable input: more than MaxStates output states reports
	// OOM (ErrLimitExceeded), residual divergence past MaxSubsetRevisits
	// reports InvalidState (ErrUnboundedResidual).
	Limits Limits
}

// DefaultDeterminizeOptions returns the standard bound set.
func DefaultDeterminizeOptions() DeterminizeOptions {
	return DeterminizeOptions{Limits: DefaultLimits()}
}

// ComposeOptions holds composition settings. Compose takes no options and
// reads none of these fields: it always applies the 3-state filter.
type ComposeOptions struct {
	// ConnectOnly names a connect pass (dropping states unreachable from
	// the start or unable to reach a final state). Compose does not read
	// it and performs no such pass.
	ConnectOnly bool
}

// DefaultComposeOptions returns the standard options (ConnectOnly set).
func DefaultComposeOptions() ComposeOptions {
	return ComposeOptions{ConnectOnly: true}
}

// ShortestPathOptions controls N-best extraction.
type ShortestPathOptions struct {
	// N is the number of best paths to extract. N=1 uses plain Dijkstra.
	N int
	// Unique, when true, suppresses duplicate (input, output) strings so
	// that N counts distinct transductions rather than distinct paths.
	Unique bool
}

// DefaultShortestPathOptions returns N=1, no uniqueness filtering.
func DefaultShortestPathOptions() ShortestPathOptions {
	return ShortestPathOptions{N: 1}
}

// CDRewriteOptions controls context-dependent rewrite construction.
type CDRewriteOptions struct {
	Mode CDRewriteMode
}

// DefaultCDRewriteOptions returns the obligatory-rewrite default.
func DefaultCDRewriteOptions() CDRewriteOptions {
	return CDRewriteOptions{Mode: CDRewriteObligatory}
}
