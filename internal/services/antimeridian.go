package services

import (
	"great-circle-arcs/internal/domain"
	"math"
)

// Split a polyline wherever it crosses the ±180° meridian.
//
// Consecutive points whose longitudes differ by more than 180° are treated as a seam
// crossing: the current part is closed at the seam and a new part is opened on the
// other side, with the crossing latitude interpolated linearly. Each returned part is
// continuous in longitude and safe to draw as a single polyline on a flat map.
func SplitAtAntimeridian(points []domain.Coordinates) [][]domain.Coordinates {
	if len(points) == 0 {
		return nil
	}

	parts := [][]domain.Coordinates{}
	current := []domain.Coordinates{points[0]}

	for i := 1; i < len(points); i++ {
		prev, next := points[i-1], points[i]

		if math.Abs(next.Lon-prev.Lon) <= 180 {
			current = append(current, next)
			continue
		}

		// Unwrap next onto prev's side of the seam so the crossing can be interpolated.
		seam, unwrapped := 180.0, next.Lon+360
		if prev.Lon < 0 {
			seam, unwrapped = -180.0, next.Lon-360
		}

		t := (seam - prev.Lon) / (unwrapped - prev.Lon)
		lat := prev.Lat + t*(next.Lat-prev.Lat)

		if t > 0 {
			current = append(current, domain.Coordinates{Lat: lat, Lon: seam})
		}
		parts = append(parts, current)

		current = []domain.Coordinates{{Lat: lat, Lon: -seam}}
		if t < 1 {
			current = append(current, next)
		}
	}

	return append(parts, current)
}
