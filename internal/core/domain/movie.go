package domain

// Movie is a catalogue entry owned by the Movie service.
type Movie struct {
	ID       string  `json:"id" bson:"id"`
	Title    string  `json:"title" bson:"title"`
	Rating   float64 `json:"rating" bson:"rating"`
	Director string  `json:"director" bson:"director"`
}
