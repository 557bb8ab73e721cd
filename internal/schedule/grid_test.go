package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func session(id int, day Weekday, start string) ClassSession {
	return ClassSession{
		ID:        id,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   "23:59",
		Program:   Program{ID: 1, Name: "CrossFit", MaxParticipants: 10},
		Instructor: Instructor{
			FirstName: "Maria",
			LastName:  "Papadopoulou",
		},
	}
}

func TestBuildGrid_TimeSlotsSortedDistinct(t *testing.T) {
	sessions := []ClassSession{
		session(1, Monday, "18:00"),
		session(2, Tuesday, "09:00"),
		session(3, Wednesday, "18:00"),
		session(4, Friday, "07:30"),
		session(5, Monday, "09:00"),
	}

	grid := BuildGrid(sessions)

	assert.Equal(t, []string{"07:30", "09:00", "18:00"}, grid.TimeSlots)
}

func TestBuildGrid_CellLookup(t *testing.T) {
	sessions := []ClassSession{
		session(1, Monday, "09:00"),
		session(2, Tuesday, "10:00"),
	}

	grid := BuildGrid(sessions)

	got := grid.Cell(Monday, "09:00")
	require.NotNil(t, got)
	assert.Equal(t, 1, got.ID)

	assert.Nil(t, grid.Cell(Monday, "10:00"))
	assert.Nil(t, grid.Cell(Sunday, "09:00"))
}

func TestBuildGrid_DuplicateCellLastWins(t *testing.T) {
	first := session(1, Monday, "09:00")
	second := session(2, Monday, "09:00")

	grid := BuildGrid([]ClassSession{first, second})

	got := grid.Cell(Monday, "09:00")
	require.NotNil(t, got)
	assert.Equal(t, 2, got.ID)
	assert.Equal(t, []string{"09:00"}, grid.TimeSlots)
}

func TestBuildGrid_Empty(t *testing.T) {
	grid := BuildGrid(nil)

	assert.Empty(t, grid.TimeSlots)
	assert.Nil(t, grid.Cell(Monday, "09:00"))
	assert.Empty(t, grid.Sessions())
}

func TestGrid_Sessions_CanonicalOrder(t *testing.T) {
	sessions := []ClassSession{
		session(3, Friday, "09:00"),
		session(1, Monday, "18:00"),
		session(2, Monday, "09:00"),
	}

	grid := BuildGrid(sessions)

	var ids []int
	for _, s := range grid.Sessions() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int{2, 1, 3}, ids)
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	grid := BuildGrid([]ClassSession{session(1, Monday, "09:00")})

	clone := grid.Clone()
	clone.Cell(Monday, "09:00").AttendanceCount = 7

	assert.Equal(t, 0, grid.Cell(Monday, "09:00").AttendanceCount)
	assert.Equal(t, 7, clone.Cell(Monday, "09:00").AttendanceCount)
}

func TestBuildTrainerGrid(t *testing.T) {
	s := session(1, Monday, "09:00")
	s.AttendanceCount = 4

	grid := BuildTrainerGrid([]ClassSession{s})

	cell, ok := grid.Cell(Monday, "09:00")
	require.True(t, ok)
	assert.Equal(t, "CrossFit", cell.ProgramName)
	assert.Equal(t, 4, cell.AttendanceCount)
	assert.Equal(t, 10, cell.MaxParticipants)

	_, ok = grid.Cell(Tuesday, "09:00")
	assert.False(t, ok)
}
