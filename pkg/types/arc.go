package types

// Arc is the plain host-facing arc record: four fields, no hidden state.
// Label 0 is Epsilon. Weight is +Inf for "unreachable" -- an arc itself is
// never +Inf-weighted by construction, but the type does not forbid it.
type Arc struct {
	ILabel    Label
	OLabel    Label
	Weight    Weight
	NextState uint32
}

// IsEpsilon reports whether both labels of a are Epsilon.
func (a Arc) IsEpsilon() bool {
	return a.ILabel == Epsilon && a.OLabel == Epsilon
}
