package booking

import (
	"context"

	"github.com/Babismam/gym-frontend/internal/member"
	"github.com/Babismam/gym-frontend/internal/schedule"
)

// API is the slice of the gym API the coordinator needs. Implemented by
// gymapi.Client; mocked in tests.
type API interface {
	FullSchedule(ctx context.Context) ([]schedule.ClassSession, error)
	MemberAttendance(ctx context.Context, memberID int) ([]member.AttendanceRecord, error)
	OpeningHours(ctx context.Context) ([]schedule.OpeningHourInterval, error)
	MemberDetails(ctx context.Context, memberID int) (*member.Membership, error)
	BookClass(ctx context.Context, memberID, scheduleID int) error
	CancelClass(ctx context.Context, memberID, scheduleID int) error
}

// Notifier delivers user-facing feedback messages. Implemented by
// notify.Service.
type Notifier interface {
	Publish(ctx context.Context, memberID int, severity, message string) error
}
