package models

// Location represents a stored target point whose distance to the reference
// point may not have been computed yet.
type Location struct {
	ID     int64       // ID is the unique identifier for the location row.
	Name   string      // Name is a human-readable label for the location.
	Coords Coordinates // Coords is the position of the location.
}
