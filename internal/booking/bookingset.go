package booking

import (
	"sort"

	"github.com/Babismam/gym-frontend/internal/member"
)

// BookingSet holds the schedule IDs the current member has booked. It is
// rebuilt from attendance records on every fetch; the coordinator patches it
// optimistically between fetches.
type BookingSet map[int]struct{}

// DeriveBookings projects attendance records to their schedule IDs. Records
// whose session was deleted carry a nil Schedule and are skipped; they are
// history, not live bookings.
func DeriveBookings(records []member.AttendanceRecord) BookingSet {
	set := make(BookingSet)
	for _, r := range records {
		if r.Schedule == nil {
			continue
		}
		set[r.Schedule.ID] = struct{}{}
	}
	return set
}

func (s BookingSet) Has(scheduleID int) bool {
	_, ok := s[scheduleID]
	return ok
}

func (s BookingSet) Add(scheduleID int) {
	s[scheduleID] = struct{}{}
}

func (s BookingSet) Remove(scheduleID int) {
	delete(s, scheduleID)
}

func (s BookingSet) Len() int {
	return len(s)
}

// IDs returns the booked schedule IDs in ascending order.
func (s BookingSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
