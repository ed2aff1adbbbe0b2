package match

// Phase names a sub-interval of match time with an associated elixir
// generation rate.
type Phase int

const (
	PhaseInactive Phase = iota
	PhaseNormal
	PhaseDouble
	PhaseOvertimeDouble
	PhaseOvertimeTriple
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseInactive:
		return "inactive"
	case PhaseNormal:
		return "normal"
	case PhaseDouble:
		return "double"
	case PhaseOvertimeDouble:
		return "overtime_double"
	case PhaseOvertimeTriple:
		return "overtime_triple"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}
