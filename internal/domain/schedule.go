package domain

import (
	"encoding/json"
)

// ScheduleExtraction is the /parse_schedule result: either a structured
// calendar event or an error variant, never both. The union stays tagged
// on the wire via MarshalJSON.
type ScheduleExtraction struct {
	Title     string
	StartTime string // HH:MM, 24h
	EndTime   string // HH:MM, 24h
	DayOfWeek int    // 0=Sunday .. 6=Saturday
	Location  *string
	Err       string
}

// ScheduleError builds the error variant of the union.
func ScheduleError(msg string) ScheduleExtraction {
	return ScheduleExtraction{Err: msg}
}

// IsError reports whether this is the error variant.
func (s ScheduleExtraction) IsError() bool {
	return s.Err != ""
}

type scheduleEventJSON struct {
	Title     string  `json:"title"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	DayOfWeek int     `json:"day_of_week"`
	Location  *string `json:"location"`
}

type scheduleErrorJSON struct {
	Error string `json:"error"`
}

// MarshalJSON emits exactly one side of the union. A valid event always
// carries "location", null when the command named none.
func (s ScheduleExtraction) MarshalJSON() ([]byte, error) {
	if s.Err != "" {
		return json.Marshal(scheduleErrorJSON{Error: s.Err})
	}
	return json.Marshal(scheduleEventJSON{
		Title:     s.Title,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		DayOfWeek: s.DayOfWeek,
		Location:  s.Location,
	})
}
