package domain

// Phase is a category's position in its yearly lifecycle. Phases form a
// strict total order and only ever advance: Nomination < Vote < Closed.
type Phase string

const (
	PhaseNomination Phase = "NOMINATION"
	PhaseVote       Phase = "VOTE"
	PhaseClosed     Phase = "CLOSED"
)

func (p Phase) String() string { return string(p) }

func (p Phase) IsValid() bool {
	switch p {
	case PhaseNomination, PhaseVote, PhaseClosed:
		return true
	}
	return false
}

// Next returns the immediate successor phase. The second return value is
// false for PhaseClosed (terminal) and for invalid phases.
func (p Phase) Next() (Phase, bool) {
	switch p {
	case PhaseNomination:
		return PhaseVote, true
	case PhaseVote:
		return PhaseClosed, true
	}
	return "", false
}

// Before reports whether p strictly precedes other in the phase order.
func (p Phase) Before(other Phase) bool {
	return p.rank() < other.rank()
}

func (p Phase) rank() int {
	switch p {
	case PhaseNomination:
		return 0
	case PhaseVote:
		return 1
	case PhaseClosed:
		return 2
	}
	return -1
}
