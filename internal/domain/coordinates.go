package domain

import "fmt"

// Immutable geographic coordinates in decimal degrees.
// Latitude is expected in [-90, 90] and longitude in [-180, 180]; range checks are the caller's job.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as [lon, lat] for GeoJSON compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

func (c Coordinates) String() string { return fmt.Sprintf("(%.6f, %.6f)", c.Lat, c.Lon) }
