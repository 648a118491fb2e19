package services

import (
	"errors"
	"fmt"
	"great-circle-arcs/internal/domain"
	"math"
)

// Resolution used when callers do not pick one.
const DefaultSegments = 100

// Central angles (radians) at or below coincidentEpsilon are treated as the same point.
// Haversine loses precision near π (asin is flat there), so antipodal detection needs a wider band.
const (
	coincidentEpsilon = 1e-12
	antipodalEpsilon  = 1e-6
)

var (
	ErrInvalidSegments = errors.New("segments must be at least 1")
	ErrAntipodalArc    = errors.New("arc between antipodal points is undefined")
)

// CentralAngle returns the great-circle angular distance between a and b, in radians,
// using the haversine formula.
func CentralAngle(a, b domain.Coordinates) float64 {
	lat1, lon1 := toRadians(a.Lat), toRadians(a.Lon)
	lat2, lon2 := toRadians(b.Lat), toRadians(b.Lon)

	sinDLat := math.Sin((lat1 - lat2) / 2)
	sinDLon := math.Sin((lon1 - lon2) / 2)

	h := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon
	// Rounding can push h just past 1 for near-antipodal points.
	if h > 1 {
		h = 1
	}

	return 2 * math.Asin(math.Sqrt(h))
}

// ArcDistanceKm returns the surface distance along the great circle on a spherical Earth.
func ArcDistanceKm(a, b domain.Coordinates) float64 {
	return CentralAngle(a, b) * EarthRadiusKm
}

// DefaultArcPoints is ArcPoints with DefaultSegments.
func DefaultArcPoints(start, end domain.Coordinates) ([]domain.Coordinates, error) {
	return ArcPoints(start, end, DefaultSegments)
}

// Interpolate segments+1 points along the minor great-circle arc from start to end.
//
// Points are produced by spherical linear interpolation on the unit sphere with the
// fraction stepping linearly from 0 to 1, so they are equally spaced by arc length.
// Coincident endpoints yield start repeated; antipodal endpoints have no unique minor
// arc and return ErrAntipodalArc.
func ArcPoints(start, end domain.Coordinates, segments int) ([]domain.Coordinates, error) {
	if segments < 1 {
		return nil, fmt.Errorf("arc points: segments=%d: %w", segments, ErrInvalidSegments)
	}

	lat1, lon1 := toRadians(start.Lat), toRadians(start.Lon)
	lat2, lon2 := toRadians(end.Lat), toRadians(end.Lon)

	d := CentralAngle(start, end)

	points := make([]domain.Coordinates, 0, segments+1)

	if d <= coincidentEpsilon {
		for i := 0; i <= segments; i++ {
			points = append(points, start)
		}
		return points, nil
	}

	sinD := math.Sin(d)
	if math.Pi-d <= antipodalEpsilon || sinD == 0 {
		return nil, fmt.Errorf("arc points: from %v to %v: %w", start, end, ErrAntipodalArc)
	}

	for i := 0; i <= segments; i++ {
		f := float64(i) / float64(segments)
		a := math.Sin((1-f)*d) / sinD
		b := math.Sin(f*d) / sinD

		x := a*math.Cos(lat1)*math.Cos(lon1) + b*math.Cos(lat2)*math.Cos(lon2)
		y := a*math.Cos(lat1)*math.Sin(lon1) + b*math.Cos(lat2)*math.Sin(lon2)
		z := a*math.Sin(lat1) + b*math.Sin(lat2)

		points = append(points, domain.Coordinates{
			Lat: toDegrees(math.Atan2(z, math.Sqrt(x*x+y*y))),
			Lon: toDegrees(math.Atan2(y, x)),
		})
	}

	return points, nil
}
