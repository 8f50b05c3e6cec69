package domain

// ScheduleEntry maps a screening date to the movies shown that day.
type ScheduleEntry struct {
	Date   string   `json:"date" bson:"date"`
	Movies []string `json:"movies" bson:"movies"`
}

// Contains reports whether movieID is scheduled on this entry.
func (s ScheduleEntry) Contains(movieID string) bool {
	for _, id := range s.Movies {
		if id == movieID {
			return true
		}
	}
	return false
}

// DateNotScheduledMessage is reported for a date without a schedule entry.
const DateNotScheduledMessage = "No movies found for this date"

// ScheduledDay is a schedule entry with movie ids resolved to full detail.
type ScheduledDay struct {
	Date   string
	Movies []Movie
}
