package schedule

// TrainerCell is the read-only capacity view for one of a trainer's own
// classes. No booking state, no membership gate.
type TrainerCell struct {
	ProgramName     string `json:"programName"`
	AttendanceCount int    `json:"attendanceCount"`
	MaxParticipants int    `json:"maxParticipants"`
}

type TrainerGrid struct {
	TimeSlots []string
	cells     map[Weekday]map[string]TrainerCell
}

// BuildTrainerGrid indexes a single trainer's sessions the same way
// BuildGrid does, keeping only what the trainer dashboard shows.
func BuildTrainerGrid(sessions []ClassSession) *TrainerGrid {
	grid := BuildGrid(sessions)

	t := &TrainerGrid{
		TimeSlots: grid.TimeSlots,
		cells:     make(map[Weekday]map[string]TrainerCell),
	}
	for _, day := range Days {
		for _, time := range grid.TimeSlots {
			s := grid.Cell(day, time)
			if s == nil {
				continue
			}
			if _, ok := t.cells[day]; !ok {
				t.cells[day] = make(map[string]TrainerCell)
			}
			t.cells[day][time] = TrainerCell{
				ProgramName:     s.Program.Name,
				AttendanceCount: s.AttendanceCount,
				MaxParticipants: s.Program.MaxParticipants,
			}
		}
	}
	return t
}

// Cell returns the trainer's class at (day, time), if any.
func (t *TrainerGrid) Cell(day Weekday, time string) (TrainerCell, bool) {
	row, ok := t.cells[day]
	if !ok {
		return TrainerCell{}, false
	}
	c, ok := row[time]
	return c, ok
}
