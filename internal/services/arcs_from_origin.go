package services

import (
	"context"
	"errors"
	"fmt"
	"great-circle-arcs/internal/domain"
	"great-circle-arcs/internal/platform/obs"
	"great-circle-arcs/internal/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var ErrNoPlaces = errors.New("no places to draw arcs to")

type ArcsFromOriginRequest struct {
	Origin   domain.Place
	Segments int
	// Upper bound on arcs computed concurrently. Values below 1 mean 1.
	Workers int
	// Drop places antipodal to the origin instead of failing the batch.
	SkipDegenerate bool
}

// Compute one arc from the origin to every place the source returns.
//
// Arcs are returned in source order. Each arc is an independent call to ArcPoints,
// so the work is fanned out over a bounded worker group; the first failure cancels
// the rest.
func ArcsFromOrigin(
	ctx context.Context,
	req ArcsFromOriginRequest,
	source ports.PlaceSource,
) (arcs []domain.Arc, err error) {
	defer obs.Time(ctx, "arcs_from_origin")(&err)

	if req.Segments < 1 {
		return nil, fmt.Errorf("arcs from origin: segments=%d: %w", req.Segments, ErrInvalidSegments)
	}

	places, err := source.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("arcs from origin: list places: %w", err)
	}
	if len(places) == 0 {
		return nil, fmt.Errorf("arcs from origin: %w", ErrNoPlaces)
	}

	workers := req.Workers
	if workers < 1 {
		workers = 1
	}

	logger := zerolog.Ctx(ctx)
	results := make([]*domain.Arc, len(places))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, place := range places {
		i, place := i, place
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			points, err := ArcPoints(req.Origin.Coords, place.Coords, req.Segments)
			if err != nil {
				if req.SkipDegenerate && errors.Is(err, ErrAntipodalArc) {
					logger.Warn().
						Str("from", req.Origin.Name).
						Str("to", place.Name).
						Msg("skipping antipodal place")
					return nil
				}
				return fmt.Errorf("place #%d %q: %w", i+1, place.Name, err)
			}

			results[i] = &domain.Arc{
				From:       req.Origin,
				To:         place,
				Segments:   req.Segments,
				DistanceKm: ArcDistanceKm(req.Origin.Coords, place.Coords),
				Points:     points,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("arcs from origin: %w", err)
	}

	arcs = make([]domain.Arc, 0, len(results))
	for _, a := range results {
		if a != nil {
			arcs = append(arcs, *a)
		}
	}

	logger.Info().
		Str("origin", req.Origin.Name).
		Int("places", len(places)).
		Int("arcs", len(arcs)).
		Msg("arcs computed")

	return arcs, nil
}
