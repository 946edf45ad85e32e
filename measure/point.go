package measure

// Point is one measured row of one sheet. Condition is the sheet it came
// from.
type Point struct {
	X, Y, Z   float64
	Condition string
	Stage     DoseStage
}

// AggregatedPoint holds the mean coordinates of all Points sharing a
// Condition and Stage. N is the number of Points averaged.
type AggregatedPoint struct {
	X, Y, Z   float64
	Condition string
	Stage     DoseStage
	N         int
}

// Stages lists the dose stages present in points, in order of first
// appearance.
func Stages(points []Point) []DoseStage {
	seen := make(map[DoseStage]struct{})
	out := make([]DoseStage, 0, len(stageNames))
	for _, p := range points {
		if _, exists := seen[p.Stage]; exists {
			continue
		}
		seen[p.Stage] = struct{}{}
		out = append(out, p.Stage)
	}

	return out
}

// StagesOfAggregates is Stages for aggregated points.
func StagesOfAggregates(points []AggregatedPoint) []DoseStage {
	seen := make(map[DoseStage]struct{})
	out := make([]DoseStage, 0, len(stageNames))
	for _, p := range points {
		if _, exists := seen[p.Stage]; exists {
			continue
		}
		seen[p.Stage] = struct{}{}
		out = append(out, p.Stage)
	}

	return out
}

// ByStage returns the points measured at stage, preserving order.
func ByStage(points []Point, stage DoseStage) []Point {
	out := make([]Point, 0)
	for _, p := range points {
		if p.Stage == stage {
			out = append(out, p)
		}
	}

	return out
}

// AggregatesByStage returns the aggregated points of stage, preserving order.
func AggregatesByStage(points []AggregatedPoint, stage DoseStage) []AggregatedPoint {
	out := make([]AggregatedPoint, 0)
	for _, p := range points {
		if p.Stage == stage {
			out = append(out, p)
		}
	}

	return out
}

// ZValues extracts the Z coordinate of each point.
func ZValues(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Z
	}

	return out
}

// AggregateZValues extracts the mean Z of each aggregated point.
func AggregateZValues(points []AggregatedPoint) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Z
	}

	return out
}
