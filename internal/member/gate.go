package member

import (
	"github.com/Babismam/gym-frontend/internal/schedule"
)

// GateState is the booking affordance for one schedule cell.
type GateState string

const (
	GateInactive  GateState = "INACTIVE"
	GatePaused    GateState = "PAUSED"
	GateBooked    GateState = "BOOKED"
	GateFull      GateState = "FULL"
	GateAvailable GateState = "AVAILABLE"
)

// Action is what the cell's button does, if anything.
type Action string

const (
	ActionNone   Action = ""
	ActionBook   Action = "book"
	ActionCancel Action = "cancel"
)

// EvaluateGate derives the gate state for one session. The priority order is
// strict: an inactive or paused membership suppresses booking affordances
// even on available classes, and a held booking stays cancellable after the
// class fills up from other members.
func EvaluateGate(m Membership, s *schedule.ClassSession, booked bool) GateState {
	if !m.IsActive {
		return GateInactive
	}
	if m.MembershipStatus == StatusPaused {
		return GatePaused
	}
	if booked {
		return GateBooked
	}
	if s.IsFull() {
		return GateFull
	}
	return GateAvailable
}

func (g GateState) Action() Action {
	switch g {
	case GateBooked:
		return ActionCancel
	case GateAvailable:
		return ActionBook
	default:
		return ActionNone
	}
}

// Enabled reports whether the cell's button is clickable.
func (g GateState) Enabled() bool {
	return g.Action() != ActionNone
}
