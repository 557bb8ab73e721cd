package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Babismam/gym-frontend/internal/member"
	"github.com/Babismam/gym-frontend/internal/schedule"
)

func TestDeriveBookings_SkipsDeletedSessions(t *testing.T) {
	records := []member.AttendanceRecord{
		{ID: 1, Status: "BOOKED", Schedule: &schedule.ClassSession{ID: 5}},
		{ID: 2, Status: "ATTENDED", Schedule: nil},
		{ID: 3, Status: "BOOKED", Schedule: &schedule.ClassSession{ID: 9}},
	}

	set := DeriveBookings(records)

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Has(5))
	assert.True(t, set.Has(9))
	assert.False(t, set.Has(2))
	assert.Equal(t, []int{5, 9}, set.IDs())
}

func TestDeriveBookings_Empty(t *testing.T) {
	set := DeriveBookings(nil)

	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Has(1))
	assert.Empty(t, set.IDs())
}

func TestBookingSet_AddRemove(t *testing.T) {
	set := DeriveBookings(nil)

	set.Add(5)
	assert.True(t, set.Has(5))

	set.Remove(5)
	assert.False(t, set.Has(5))

	// removing an absent id is a no-op
	set.Remove(5)
	assert.Equal(t, 0, set.Len())
}
