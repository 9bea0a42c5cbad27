package models

// Location is where an entry was collected. Coordinates are pointers so that
// 0,0 stays distinguishable from "not recorded".
type Location struct {
	Name      string   `json:"name,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are present
func (l Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}
