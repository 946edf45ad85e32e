package measure

import (
	"errors"
	"sort"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
)

// ErrEmptyInput means there were no usable points, so there is nothing to
// plot.
var ErrEmptyInput = errors.New("no usable data points")

type groupKey struct {
	Condition string
	Stage     DoseStage
}

type coordinates struct {
	x, y, z stats.Float64Data
}

// Aggregate averages the coordinates of points sharing a Condition and Stage.
// The output is ordered by Condition, then by stage name.
func Aggregate(points []Point) ([]AggregatedPoint, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}

	groups := make(map[groupKey]*coordinates)
	for _, p := range points {
		key := groupKey{Condition: p.Condition, Stage: p.Stage}
		g, exists := groups[key]
		if !exists {
			g = &coordinates{}
			groups[key] = g
		}
		g.x = append(g.x, p.X)
		g.y = append(g.y, p.Y)
		g.z = append(g.z, p.Z)
	}

	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Condition != keys[j].Condition {
			return keys[i].Condition < keys[j].Condition
		}
		return keys[i].Stage.String() < keys[j].Stage.String()
	})

	out := make([]AggregatedPoint, 0, len(keys))
	for _, k := range keys {
		g := groups[k]

		x, err := g.x.Mean()
		if err != nil {
			return nil, pfx.Err(err)
		}
		y, err := g.y.Mean()
		if err != nil {
			return nil, pfx.Err(err)
		}
		z, err := g.z.Mean()
		if err != nil {
			return nil, pfx.Err(err)
		}

		out = append(out, AggregatedPoint{
			X:         x,
			Y:         y,
			Z:         z,
			Condition: k.Condition,
			Stage:     k.Stage,
			N:         g.z.Len(),
		})
	}

	return out, nil
}
