package models

// Location is a named point resolved from a city-name lookup.
// Immutable once geocoded.
type Location struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
}
