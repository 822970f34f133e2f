package claim

// Status is the claim's position in its evaluation lifecycle.
// The machine is Requested → Fetching → Matching → Evaluating → Decided;
// Decided is terminal.
type Status string

const (
	StatusRequested  Status = "requested"
	StatusFetching   Status = "fetching"
	StatusMatching   Status = "matching"
	StatusEvaluating Status = "evaluating"
	StatusDecided    Status = "decided"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusFetching, StatusMatching, StatusEvaluating, StatusDecided:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusDecided
}

// next reports whether a transition from s to target is legal.
func (s Status) next(target Status) bool {
	switch s {
	case StatusRequested:
		return target == StatusFetching || target == StatusDecided
	case StatusFetching:
		return target == StatusMatching || target == StatusDecided
	case StatusMatching:
		return target == StatusEvaluating || target == StatusDecided
	case StatusEvaluating:
		return target == StatusDecided
	default:
		return false
	}
}
