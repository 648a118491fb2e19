package services

import (
	"great-circle-arcs/internal/domain"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitAtAntimeridian(t *testing.T) {
	tests := []struct {
		name   string
		points []domain.Coordinates
		want   [][]domain.Coordinates
	}{
		{
			name:   "empty",
			points: nil,
			want:   nil,
		},
		{
			name:   "no crossing",
			points: []domain.Coordinates{{Lat: 0, Lon: 10}, {Lat: 5, Lon: 20}},
			want:   [][]domain.Coordinates{{{Lat: 0, Lon: 10}, {Lat: 5, Lon: 20}}},
		},
		{
			name:   "eastward crossing",
			points: []domain.Coordinates{{Lat: 0, Lon: 170}, {Lat: 10, Lon: -170}},
			want: [][]domain.Coordinates{
				{{Lat: 0, Lon: 170}, {Lat: 5, Lon: 180}},
				{{Lat: 5, Lon: -180}, {Lat: 10, Lon: -170}},
			},
		},
		{
			name:   "westward crossing",
			points: []domain.Coordinates{{Lat: 10, Lon: -175}, {Lat: 20, Lon: 175}},
			want: [][]domain.Coordinates{
				{{Lat: 10, Lon: -175}, {Lat: 15, Lon: -180}},
				{{Lat: 15, Lon: 180}, {Lat: 20, Lon: 175}},
			},
		},
		{
			name:   "point on the seam",
			points: []domain.Coordinates{{Lat: 3, Lon: 180}, {Lat: 4, Lon: -179}},
			want: [][]domain.Coordinates{
				{{Lat: 3, Lon: 180}},
				{{Lat: 3, Lon: -180}, {Lat: 4, Lon: -179}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitAtAntimeridian(tt.points)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				require.Len(t, got[i], len(tt.want[i]), "part %d", i)
				for j := range tt.want[i] {
					assertCoordsNear(t, tt.want[i][j], got[i][j], "part %d point %d", i, j)
				}
			}
		})
	}
}

func TestSplitAtAntimeridianPacificArc(t *testing.T) {
	points, err := ArcPoints(tokyo, sfo, 100)
	require.NoError(t, err)

	parts := SplitAtAntimeridian(points)
	require.Len(t, parts, 2)

	assert.Equal(t, 103, len(parts[0])+len(parts[1]))
	assert.Equal(t, 180.0, parts[0][len(parts[0])-1].Lon)
	assert.Equal(t, -180.0, parts[1][0].Lon)
	assert.InDelta(t, parts[0][len(parts[0])-1].Lat, parts[1][0].Lat, coordTolerance)

	for pi, part := range parts {
		for i := 1; i < len(part); i++ {
			assert.LessOrEqual(t, math.Abs(part[i].Lon-part[i-1].Lon), 180.0, "part %d point %d", pi, i)
		}
	}
}
