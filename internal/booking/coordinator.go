package booking

import (
	"context"
	"errors"
	"sync"

	"github.com/Babismam/gym-frontend/internal/auth"
	"github.com/Babismam/gym-frontend/internal/gymapi"
	"github.com/Babismam/gym-frontend/internal/logger"
	"github.com/Babismam/gym-frontend/internal/member"
	"github.com/Babismam/gym-frontend/internal/metrics"
	"github.com/Babismam/gym-frontend/internal/schedule"
)

var (
	ErrNotLoaded      = errors.New("schedule not loaded")
	ErrSessionUnknown = errors.New("class session not found in schedule")
	ErrDeclined       = errors.New("action declined by user")
)

const (
	msgBookSuccess   = "Booked successfully!"
	msgBookFailed    = "Booking failed."
	msgCancelSuccess = "Cancelled successfully!"
	msgCancelFailed  = "Cancellation failed."
	msgLoadFailed    = "Unable to load the schedule."
)

// Confirmer answers the "are you sure?" prompt before a book or cancel
// action. Declining leaves all state untouched and skips the network call.
type Confirmer interface {
	Confirm(action member.Action, s *schedule.ClassSession) bool
}

type ConfirmerFunc func(action member.Action, s *schedule.ClassSession) bool

func (f ConfirmerFunc) Confirm(action member.Action, s *schedule.ClassSession) bool {
	return f(action, s)
}

// AlwaysConfirm is used by the HTTP layer: the client shows its own dialog,
// so a declined prompt never reaches the server.
var AlwaysConfirm = ConfirmerFunc(func(member.Action, *schedule.ClassSession) bool {
	return true
})

// Coordinator owns one member's view of the weekly schedule: the grid, the
// booking set, the membership state, and the opening hours. Reads rebuild
// everything from fresh server data. Book and Cancel patch the grid and the
// set optimistically before the remote call and roll back with a full
// refetch on failure; no undo arithmetic, so a partial failure can never
// compound into a client-invented state.
//
// The coordinator and the indexers are the only mutators of this state.
type Coordinator struct {
	mu sync.Mutex

	session   auth.Session
	api       API
	notifier  Notifier
	confirmer Confirmer

	grid       *schedule.Grid
	hours      schedule.Hours
	bookings   BookingSet
	membership member.Membership
	loaded     bool
}

func NewCoordinator(session auth.Session, api API, notifier Notifier, confirmer Confirmer) *Coordinator {
	if confirmer == nil {
		confirmer = AlwaysConfirm
	}
	return &Coordinator{
		session:   session,
		api:       api,
		notifier:  notifier,
		confirmer: confirmer,
	}
}

// Refresh replaces all derived state with fresh server data. Membership is
// refetched every time; gym-side state changes independently of this client
// and must never survive a render cycle. Opening hours change rarely and are
// only fetched on the first load, as the source page does.
func (c *Coordinator) Refresh(ctx context.Context) error {
	memberID := c.session.UserID

	sessions, err := c.api.FullSchedule(ctx)
	if err != nil {
		return err
	}

	records, err := c.api.MemberAttendance(ctx, memberID)
	if err != nil {
		return err
	}

	membership, err := c.api.MemberDetails(ctx, memberID)
	if err != nil {
		return err
	}

	c.mu.Lock()
	needHours := c.hours == nil
	c.mu.Unlock()

	var hours schedule.Hours
	if needHours {
		hourRecords, err := c.api.OpeningHours(ctx)
		if err != nil {
			return err
		}
		hours = schedule.BuildHours(hourRecords)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if hours != nil {
		c.hours = hours
	}
	c.grid = schedule.BuildGrid(sessions)
	c.bookings = DeriveBookings(records)
	c.membership = *membership
	c.loaded = true

	metrics.RecordScheduleRefresh()
	return nil
}

// Book registers the member for a class. The local mutation happens before
// the remote call so the view reflects intent immediately; the server
// remains the authority and a rejection is undone by a full refetch.
func (c *Coordinator) Book(ctx context.Context, scheduleID int) error {
	return c.mutate(ctx, scheduleID, member.ActionBook)
}

// Cancel removes the member's booking for a class. Mirrors Book.
func (c *Coordinator) Cancel(ctx context.Context, scheduleID int) error {
	return c.mutate(ctx, scheduleID, member.ActionCancel)
}

func (c *Coordinator) mutate(ctx context.Context, scheduleID int, action member.Action) error {
	memberID := c.session.UserID

	c.mu.Lock()
	if !c.loaded {
		c.mu.Unlock()
		return ErrNotLoaded
	}

	s := c.grid.FindByID(scheduleID)
	if s == nil {
		c.mu.Unlock()
		return ErrSessionUnknown
	}

	if !c.confirmer.Confirm(action, s) {
		c.mu.Unlock()
		return ErrDeclined
	}

	// Optimistic patch. On cancel the count may transiently go negative when
	// the local view is stale; the server's answer corrects it either way.
	if action == member.ActionBook {
		c.bookings.Add(scheduleID)
		s.AttendanceCount++
	} else {
		c.bookings.Remove(scheduleID)
		s.AttendanceCount--
	}
	c.mu.Unlock()

	var err error
	if action == member.ActionBook {
		err = c.api.BookClass(ctx, memberID, scheduleID)
	} else {
		err = c.api.CancelClass(ctx, memberID, scheduleID)
	}

	if err != nil {
		return c.rollback(ctx, scheduleID, action, err)
	}

	metrics.RecordBookingAction(string(action), "success")
	message := msgBookSuccess
	if action == member.ActionCancel {
		message = msgCancelSuccess
	}
	c.notify(ctx, severitySuccess, message)
	return nil
}

// rollback discards the optimistic patch by refetching everything. The
// refetch always reflects the server state at the time of the call, so it
// supersedes whatever the patch invented.
func (c *Coordinator) rollback(ctx context.Context, scheduleID int, action member.Action, cause error) error {
	outcome := "failed"
	fallback := msgBookFailed
	if action == member.ActionCancel {
		fallback = msgCancelFailed
	}
	if gymapi.IsDomainRejection(cause) {
		outcome = "rejected"
	}
	metrics.RecordBookingAction(string(action), outcome)

	logger.Error("Booking action failed, rolling back",
		"action", string(action),
		"schedule_id", scheduleID,
		"member_id", c.session.UserID,
		"error", cause.Error(),
	)

	c.notify(ctx, severityError, gymapi.RejectionMessage(cause, fallback))

	metrics.RecordRollbackRefresh()
	if err := c.Refresh(ctx); err != nil {
		logger.Error("Rollback refresh failed", "error", err.Error())
		c.notify(ctx, severityError, msgLoadFailed)
	}

	return cause
}

const (
	severitySuccess = "success"
	severityError   = "error"
)

func (c *Coordinator) notify(ctx context.Context, severity, message string) {
	if c.notifier == nil {
		return
	}
	if err := c.notifier.Publish(ctx, c.session.UserID, severity, message); err != nil {
		logger.Errorf("Failed to publish notification: %v", err)
	}
}
