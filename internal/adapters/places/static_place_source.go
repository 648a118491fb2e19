package places

import (
	"context"
	"great-circle-arcs/internal/domain"
)

// StaticPlaceSource serves a fixed list of places from memory.
type StaticPlaceSource struct {
	places []domain.Place
}

func NewStaticPlaceSource(places []domain.Place) *StaticPlaceSource {
	cp := make([]domain.Place, len(places))
	copy(cp, places)
	return &StaticPlaceSource{places: cp}
}

func (s *StaticPlaceSource) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Place, len(s.places))
	copy(out, s.places)
	return out, nil
}
