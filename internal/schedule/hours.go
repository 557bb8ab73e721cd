package schedule

// Interval is one open stretch within a day.
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Hours maps each day to its open intervals. A day may have zero, one, or
// several disjoint intervals (split morning/evening shifts). Interval order
// follows the input; it is never sorted.
type Hours map[Weekday][]Interval

func BuildHours(records []OpeningHourInterval) Hours {
	hours := make(Hours)
	for _, r := range records {
		hours[r.DayOfWeek] = append(hours[r.DayOfWeek], Interval{
			Start: r.OpenTime,
			End:   r.CloseTime,
		})
	}
	return hours
}

// IsOpen reports whether the gym is open at (day, time). Intervals are
// half-open: a class starting exactly at closing time is outside hours.
// Only used to decide whether an empty cell renders as "Closed".
func (h Hours) IsOpen(day Weekday, time string) bool {
	for _, iv := range h[day] {
		if time >= iv.Start && time < iv.End {
			return true
		}
	}
	return false
}
