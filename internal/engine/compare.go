package engine

import (
	"github.com/piwi3910/GridPlace/internal/model"
)

// ComparisonResult holds an arrangement and the statistics shown next to
// it when strategies are compared side by side.
type ComparisonResult struct {
	Arrangement   Arrangement
	Extent        int
	GridHeight    int
	FillPercent   float64
	UnplacedCount int
}

// CompareStrategies arranges the items once per strategy and returns the
// results in strategy order.
func CompareStrategies(grid model.GridSize, items []model.Item, strategies []Strategy) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(strategies))
	for _, s := range strategies {
		a, err := Arrange(grid, items, s)
		if err != nil {
			continue
		}
		l := model.Layout{Grid: a.Grid, Items: a.Items}
		results = append(results, ComparisonResult{
			Arrangement:   a,
			Extent:        a.Extent(),
			GridHeight:    a.Grid.Height,
			FillPercent:   l.Fill(),
			UnplacedCount: len(a.Unplaced),
		})
	}
	return results
}

// BestComparison returns the index of the tightest arrangement, preferring
// the earlier strategy on ties. It returns -1 for no results.
func BestComparison(results []ComparisonResult) int {
	best := -1
	for i, r := range results {
		if best < 0 || r.Arrangement.Better(results[best].Arrangement) {
			best = i
		}
	}
	return best
}
