package domain

// Represents an interpolated great-circle path between two places.
// Points holds Segments+1 coordinates, starting at From and ending at To.
// An Arc is computed data and carries no side effects.
type Arc struct {
	From       Place
	To         Place
	Segments   int
	DistanceKm float64
	Points     []Coordinates
}

// Return the number of points on the arc.
func (a Arc) Len() int { return len(a.Points) }
