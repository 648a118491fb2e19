package export

import (
	"context"
	"encoding/json"
	"fmt"
	"great-circle-arcs/internal/domain"
	"great-circle-arcs/internal/services"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ArcWriter encodes arcs as a GeoJSON FeatureCollection, one feature per arc.
type ArcWriter struct {
	w io.Writer
	// When set, arcs crossing ±180° are emitted as MultiLineStrings cut at the seam.
	splitAntimeridian bool
	indent            string
}

type Option func(*ArcWriter)

// WithAntimeridianSplit cuts arcs that cross ±180° into MultiLineStrings.
func WithAntimeridianSplit(enabled bool) Option {
	return func(a *ArcWriter) { a.splitAntimeridian = enabled }
}

// WithIndent pretty-prints the output.
func WithIndent(indent string) Option {
	return func(a *ArcWriter) { a.indent = indent }
}

func NewArcWriter(w io.Writer, opts ...Option) *ArcWriter {
	a := &ArcWriter{w: w}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *ArcWriter) WriteArcs(ctx context.Context, arcs []domain.Arc) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fc := FeatureCollection(arcs, a.splitAntimeridian)

	enc := json.NewEncoder(a.w)
	if a.indent != "" {
		enc.SetIndent("", a.indent)
	}
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("write arcs: encode %d arcs: %w", len(arcs), err)
	}

	return nil
}

// FeatureCollection builds the GeoJSON representation of arcs.
func FeatureCollection(arcs []domain.Arc, splitAntimeridian bool) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, arc := range arcs {
		fc.Append(arcFeature(arc, splitAntimeridian))
	}
	return fc
}

func arcFeature(arc domain.Arc, splitAntimeridian bool) *geojson.Feature {
	var geom orb.Geometry = lineString(arc.Points)

	if splitAntimeridian {
		parts := services.SplitAtAntimeridian(arc.Points)
		if len(parts) > 1 {
			mls := make(orb.MultiLineString, 0, len(parts))
			for _, p := range parts {
				mls = append(mls, lineString(p))
			}
			geom = mls
		}
	}

	f := geojson.NewFeature(geom)
	f.Properties["from"] = arc.From.Name
	f.Properties["to"] = arc.To.Name
	f.Properties["segments"] = arc.Segments
	f.Properties["distance_km"] = arc.DistanceKm
	if len(arc.To.Properties) > 0 {
		f.Properties["to_properties"] = arc.To.Properties
	}

	return f
}

func lineString(points []domain.Coordinates) orb.LineString {
	ls := make(orb.LineString, 0, len(points))
	for _, p := range points {
		ls = append(ls, orb.Point{p.Lon, p.Lat})
	}
	return ls
}
