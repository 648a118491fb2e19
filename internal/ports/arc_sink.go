package ports

import (
	"context"
	"great-circle-arcs/internal/domain"
)

// Port: a boundary for emitting computed arcs to a consumer (e.g., a map renderer).
type ArcSink interface {
	WriteArcs(ctx context.Context, arcs []domain.Arc) error
}
