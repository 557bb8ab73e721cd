package member

import (
	"github.com/Babismam/gym-frontend/internal/schedule"
)

type MembershipStatus string

const (
	StatusActive    MembershipStatus = "ACTIVE"
	StatusPaused    MembershipStatus = "PAUSED"
	StatusExpired   MembershipStatus = "EXPIRED"
	StatusCancelled MembershipStatus = "CANCELLED"
)

// Membership is the member's eligibility state as the gym API reports it.
// It is fetched fresh on every dashboard load and after every mutating
// action; gym-side state changes independently of this client, so it is
// never cached across render cycles.
type Membership struct {
	ID               int              `json:"id"`
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	IsActive         bool             `json:"isActive"`
	MembershipStatus MembershipStatus `json:"membershipStatus"`
	MembershipType   string           `json:"membershipType"`
	PauseEndDate     *string          `json:"pauseEndDate"`
}

// AttendanceRecord is one row of the member's attendance history. Schedule
// is nil when the underlying class session has been deleted; such records
// still show up in history but never count as a live booking.
type AttendanceRecord struct {
	ID          int                    `json:"id"`
	AttendedOn  string                 `json:"attendedOn"`
	Status      string                 `json:"status"`
	ProgramName string                 `json:"programName"`
	Schedule    *schedule.ClassSession `json:"schedule"`
}
