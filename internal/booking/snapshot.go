package booking

import (
	"github.com/Babismam/gym-frontend/internal/member"
	"github.com/Babismam/gym-frontend/internal/schedule"
)

// Cell is one rendered grid position. Empty cells carry no session; Closed
// marks the ones falling outside opening hours so the page can print
// "Closed" instead of leaving a blank.
type Cell struct {
	Session *schedule.ClassSession `json:"session,omitempty"`
	Gate    member.GateState       `json:"gate,omitempty"`
	Action  member.Action          `json:"action,omitempty"`
	Closed  bool                   `json:"closed,omitempty"`
}

type Row struct {
	Time  string                    `json:"time"`
	Cells map[schedule.Weekday]Cell `json:"cells"`
}

// Snapshot is the immutable render view handed to the presentation layer.
// Later optimistic patches never reach a snapshot already handed out.
type Snapshot struct {
	TimeSlots  []string           `json:"timeSlots"`
	Days       []schedule.Weekday `json:"days"`
	Rows       []Row              `json:"rows"`
	Bookings   []int              `json:"bookings"`
	Membership member.Membership  `json:"membership"`
}

// Snapshot renders the current state: every (day, time) position annotated
// with its session, gate state and available action. Positions without a
// session never error; they render empty or closed.
func (c *Coordinator) Snapshot() (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		return nil, ErrNotLoaded
	}

	grid := c.grid.Clone()

	snap := &Snapshot{
		TimeSlots:  grid.TimeSlots,
		Days:       schedule.Days,
		Bookings:   c.bookings.IDs(),
		Membership: c.membership,
	}

	for _, time := range grid.TimeSlots {
		row := Row{Time: time, Cells: make(map[schedule.Weekday]Cell, len(schedule.Days))}
		for _, day := range schedule.Days {
			s := grid.Cell(day, time)
			if s == nil {
				row.Cells[day] = Cell{Closed: !c.hours.IsOpen(day, time)}
				continue
			}

			gate := member.EvaluateGate(c.membership, s, c.bookings.Has(s.ID))
			row.Cells[day] = Cell{
				Session: s,
				Gate:    gate,
				Action:  gate.Action(),
			}
		}
		snap.Rows = append(snap.Rows, row)
	}

	return snap, nil
}
