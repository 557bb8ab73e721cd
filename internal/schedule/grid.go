package schedule

import "sort"

// Grid is the weekly day-by-time lookup built from a flat session list.
// It is rebuilt in full on every fetch; the booking coordinator is the only
// caller allowed to patch it in place, and only through Cell.
type Grid struct {
	TimeSlots []string
	cells     map[Weekday]map[string]*ClassSession
}

// BuildGrid indexes sessions by (day, startTime) and collects the distinct
// start times in ascending order. If two sessions share a cell the later one
// in the input wins; the server is expected to prevent duplicates. An empty
// input produces an empty grid, which renders as "no classes scheduled".
func BuildGrid(sessions []ClassSession) *Grid {
	g := &Grid{
		cells: make(map[Weekday]map[string]*ClassSession),
	}

	seen := make(map[string]bool)
	for i := range sessions {
		s := sessions[i]
		if _, ok := g.cells[s.DayOfWeek]; !ok {
			g.cells[s.DayOfWeek] = make(map[string]*ClassSession)
		}
		g.cells[s.DayOfWeek][s.StartTime] = &s

		if !seen[s.StartTime] {
			seen[s.StartTime] = true
			g.TimeSlots = append(g.TimeSlots, s.StartTime)
		}
	}

	sort.Strings(g.TimeSlots)
	return g
}

// Cell returns the session at (day, time), or nil when the cell is empty.
func (g *Grid) Cell(day Weekday, time string) *ClassSession {
	row, ok := g.cells[day]
	if !ok {
		return nil
	}
	return row[time]
}

// FindByID locates a session anywhere in the grid.
func (g *Grid) FindByID(id int) *ClassSession {
	for _, row := range g.cells {
		for _, s := range row {
			if s.ID == id {
				return s
			}
		}
	}
	return nil
}

// Sessions returns all sessions in the grid, day-major in canonical order.
func (g *Grid) Sessions() []ClassSession {
	var out []ClassSession
	for _, day := range Days {
		row, ok := g.cells[day]
		if !ok {
			continue
		}
		for _, time := range g.TimeSlots {
			if s, ok := row[time]; ok {
				out = append(out, *s)
			}
		}
	}
	return out
}

// Clone deep-copies the grid so an optimistic patch never leaks into a
// snapshot already handed to the presentation layer.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		TimeSlots: append([]string(nil), g.TimeSlots...),
		cells:     make(map[Weekday]map[string]*ClassSession, len(g.cells)),
	}
	for day, row := range g.cells {
		clone.cells[day] = make(map[string]*ClassSession, len(row))
		for time, s := range row {
			copied := *s
			clone.cells[day][time] = &copied
		}
	}
	return clone
}
