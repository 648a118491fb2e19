package places

import (
	"context"
	"fmt"
	"great-circle-arcs/internal/domain"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature property used as a place name, in order of preference.
var nameProperties = []string{"name", "ip", "id"}

// GeoJSONPlaceSource reads places from a GeoJSON FeatureCollection file of Point features.
// The file is read on every call, so edits between runs are picked up.
type GeoJSONPlaceSource struct {
	path string
}

func NewGeoJSONPlaceSource(path string) (*GeoJSONPlaceSource, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("new geojson place source: path must be non-empty")
	}
	return &GeoJSONPlaceSource{path: path}, nil
}

func (s *GeoJSONPlaceSource) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bytes, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("list places: read %q: %w", s.path, err)
	}

	places, err := ParseFeatureCollection(bytes)
	if err != nil {
		return nil, fmt.Errorf("list places: %q: %w", s.path, err)
	}

	return places, nil
}

// ParseFeatureCollection converts the Point features of a GeoJSON FeatureCollection into places.
// Non-point features are rejected so a malformed input is noticed rather than silently thinned.
func ParseFeatureCollection(data []byte) ([]domain.Place, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse feature collection: %w", err)
	}

	places := make([]domain.Place, 0, len(fc.Features))
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("parse feature collection: feature #%d: want Point geometry, got %T", i+1, f.Geometry)
		}

		props := map[string]any(f.Properties)
		if props == nil {
			props = map[string]any{}
		}

		places = append(places, domain.Place{
			Name:       placeName(f, i),
			Coords:     domain.Coordinates{Lat: pt.Lat(), Lon: pt.Lon()},
			Properties: props,
		})
	}

	return places, nil
}

func placeName(f *geojson.Feature, index int) string {
	for _, key := range nameProperties {
		if v := strings.TrimSpace(f.Properties.MustString(key, "")); v != "" {
			return v
		}
	}
	if f.ID != nil {
		return fmt.Sprint(f.ID)
	}
	return fmt.Sprintf("place-%d", index+1)
}
