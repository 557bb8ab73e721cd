package schedule

// Weekday matches the day names the gym API uses.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// Days is the canonical column order for the weekly grid.
var Days = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Weekday) Valid() bool {
	for _, day := range Days {
		if d == day {
			return true
		}
	}
	return false
}

type Program struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	MaxParticipants int    `json:"maxParticipants"`
}

type Instructor struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ClassSession is one scheduled class occurrence as the gym API reports it.
// StartTime and EndTime are zero-padded "HH:MM" strings, so lexical
// comparison orders them correctly.
type ClassSession struct {
	ID              int        `json:"id"`
	DayOfWeek       Weekday    `json:"dayOfWeek"`
	StartTime       string     `json:"startTime"`
	EndTime         string     `json:"endTime"`
	AttendanceCount int        `json:"attendanceCount"`
	Program         Program    `json:"program"`
	Instructor      Instructor `json:"instructor"`
}

func (s *ClassSession) IsFull() bool {
	return s.AttendanceCount >= s.Program.MaxParticipants
}

type OpeningHourInterval struct {
	DayOfWeek Weekday `json:"dayOfWeek"`
	OpenTime  string  `json:"openTime"`
	CloseTime string  `json:"closeTime"`
}
