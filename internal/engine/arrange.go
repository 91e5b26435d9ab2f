package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/GridPlace/internal/model"
)

// Strategy names an ordering in which items are re-placed by Arrange.
type Strategy string

const (
	StrategyInsertion  Strategy = "insertion"
	StrategyAreaDesc   Strategy = "area"
	StrategyHeightDesc Strategy = "height"
	StrategyWidthDesc  Strategy = "width"
	StrategyGenetic    Strategy = "genetic"
)

// Strategies lists every arrangement strategy in display order.
func Strategies() []Strategy {
	return []Strategy{StrategyInsertion, StrategyAreaDesc, StrategyHeightDesc, StrategyWidthDesc, StrategyGenetic}
}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown arrangement strategy %q", name)
}

// String returns a human readable name.
func (s Strategy) String() string {
	switch s {
	case StrategyInsertion:
		return "Insertion Order"
	case StrategyAreaDesc:
		return "Largest Area First"
	case StrategyHeightDesc:
		return "Tallest First"
	case StrategyWidthDesc:
		return "Widest First"
	case StrategyGenetic:
		return "Genetic Search"
	}
	return string(s)
}

// Arrangement is the result of re-placing a set of items first fit in
// some order, starting from an empty grid.
type Arrangement struct {
	Strategy Strategy
	Grid     model.GridSize
	Items    []model.Item
	Unplaced []model.Item
}

// Extent returns the number of rows down to the lowest item edge.
func (a Arrangement) Extent() int {
	extent := 0
	for _, it := range a.Items {
		if b := it.Bottom(); b > extent {
			extent = b
		}
	}
	return extent
}

// Better reports whether a packs tighter than other: fewer unplaced
// items, then a smaller extent, then a smaller grid.
func (a Arrangement) Better(other Arrangement) bool {
	if len(a.Unplaced) != len(other.Unplaced) {
		return len(a.Unplaced) < len(other.Unplaced)
	}
	if a.Extent() != other.Extent() {
		return a.Extent() < other.Extent()
	}
	return a.Grid.Height < other.Grid.Height
}

// Arrange re-places items on an empty grid in the order the strategy
// picks. Items keep their IDs, labels and sizes; only positions change.
// The grid height grows the same way it does for AddItem.
func Arrange(grid model.GridSize, items []model.Item, strategy Strategy) (Arrangement, error) {
	switch strategy {
	case StrategyGenetic:
		return ArrangeGenetic(grid, items, DefaultGeneticConfig()), nil
	case StrategyInsertion, StrategyAreaDesc, StrategyHeightDesc, StrategyWidthDesc:
		order := orderItems(items, strategy)
		a := replace(grid, items, order)
		a.Strategy = strategy
		return a, nil
	}
	return Arrangement{}, fmt.Errorf("unknown arrangement strategy %q", strategy)
}

// orderItems returns the indices of items in strategy order. Ties keep
// insertion order.
func orderItems(items []model.Item, strategy Strategy) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}

	var key func(it model.Item) int
	switch strategy {
	case StrategyAreaDesc:
		key = func(it model.Item) int { return it.Area() }
	case StrategyHeightDesc:
		key = func(it model.Item) int { return it.Height }
	case StrategyWidthDesc:
		key = func(it model.Item) int { return it.Width }
	default:
		return order
	}
	sort.SliceStable(order, func(i, j int) bool {
		return key(items[order[i]]) > key(items[order[j]])
	})
	return order
}

// replace places items in the given index order on an empty copy of grid.
func replace(grid model.GridSize, items []model.Item, order []int) Arrangement {
	a := Arrangement{Grid: grid, Items: make([]model.Item, 0, len(items))}
	for _, idx := range order {
		it := items[idx]
		p, err := FindPosition(a.Grid, a.Items, it.Size())
		if err != nil {
			a.Unplaced = append(a.Unplaced, it)
			continue
		}
		it.X, it.Y = p.Position.X, p.Position.Y
		a.Items = append(a.Items, it)
		if it.Bottom() > a.Grid.Height {
			a.Grid = p.Grid
		}
	}
	return a
}
