package types

// Code classifies errors so callers can branch on intent rather than text,
// and doubles as the boundary API's numeric error code.
type Code int

const (
	OK Code = iota
	OOM
	InvalidArg
	InvalidState
	IOError
)

// String implements fmt.Stringer.
func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case OOM:
		return "OOM"
	case InvalidArg:
		return "INVALID_ARG"
	case InvalidState:
		return "INVALID_STATE"
	case IOError:
		return "IO_ERROR"
	default:
		return "UNKNOWN_CODE"
	}
}

// Error is a typed error with an optional underlying cause, returned by the
// ergonomic facade (pkg/fst). The boundary API (pkg/fstapi) returns
// sentinels from its calls and exposes the Error of the most recent call
// through Engine.LastError.
type Error struct {
	Code Code
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with no wrapped cause.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

// Wrap builds an *Error wrapping a lower-level cause.
func Wrap(code Code, msg string, err error) *Error {
	return &Error{Code: code, Msg: msg, Err: err}
}

// Sentinels commonly returned by implementations.
var (
	ErrBadHandle         = New(InvalidArg, "handle does not resolve to a transducer of the expected kind")
	ErrBadState          = New(InvalidArg, "state index out of range")
	ErrNaNWeight         = New(InvalidArg, "weight is NaN")
	ErrNegativeCycle     = New(InvalidState, "negative-weight epsilon cycle")
	ErrNonFunctional     = New(InvalidState, "input is not functional; cannot determinize")
	ErrNotDeterministic  = New(InvalidState, "input is not deterministic and epsilon-free; cannot minimize")
	ErrRecursiveReplace  = New(InvalidState, "replace: nonterminal recursion would produce an infinite expansion")
	ErrNegativeWeight    = New(InvalidState, "shortest-path requires non-negative weights")
	ErrNotLinear         = New(InvalidArg, "transducer is not a linear acceptor chain")
	ErrTruncated         = New(IOError, "truncated or malformed binary stream")
	ErrBadMagic          = New(IOError, "bad magic header")
	ErrUnboundedResidual = New(InvalidState, "determinize: unbounded residual divergence")
	ErrLimitExceeded     = New(OOM, "operation exceeded its configured resource limits")
)
