package ports

import (
	"context"
	"great-circle-arcs/internal/domain"
)

// Port: a boundary for retrieving the places arcs should be drawn to.
type PlaceSource interface {
	// Return all places in source order.
	ListPlaces(ctx context.Context) ([]domain.Place, error)
}
