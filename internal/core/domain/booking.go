package domain

// Booking groups every reservation of one user.
type Booking struct {
	UserID string        `json:"userid" bson:"userid"`
	Dates  []BookingDate `json:"dates" bson:"dates"`
}

// BookingDate lists the movies booked by a user on one date.
type BookingDate struct {
	Date   string   `json:"date" bson:"date"`
	Movies []string `json:"movies" bson:"movies"`
}

// Has reports whether the booking holds movieID on date.
func (b Booking) Has(date, movieID string) bool {
	for _, d := range b.Dates {
		if d.Date != date {
			continue
		}
		for _, m := range d.Movies {
			if m == movieID {
				return true
			}
		}
	}
	return false
}

// HasDate reports whether the booking has an entry for date.
func (b Booking) HasDate(date string) bool {
	for _, d := range b.Dates {
		if d.Date == date {
			return true
		}
	}
	return false
}
