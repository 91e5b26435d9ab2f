package engine

import (
	"math/rand"
	"testing"

	"github.com/piwi3910/GridPlace/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arrangeItems places three items whose insertion order wastes a row.
func arrangeItems(t *testing.T) []model.Item {
	t.Helper()
	var items []model.Item
	for _, it := range []struct {
		label string
		size  model.Size
	}{
		{"A", model.Size{Width: 4, Height: 1}},
		{"B", model.Size{Width: 12, Height: 2}},
		{"C", model.Size{Width: 8, Height: 2}},
	} {
		p, err := FindPosition(defaultGrid, items, it.size)
		require.NoError(t, err)
		items = append(items, p.Item(it.label, it.size))
	}
	return items
}

func positionsByLabel(items []model.Item) map[string]model.Position {
	out := make(map[string]model.Position, len(items))
	for _, it := range items {
		out[it.Label] = it.Position()
	}
	return out
}

func TestArrange_InsertionOrderReproducesFirstFit(t *testing.T) {
	items := arrangeItems(t)

	a, err := Arrange(defaultGrid, items, StrategyInsertion)
	require.NoError(t, err)
	assert.Equal(t, items, a.Items)
	assert.Equal(t, 5, a.Extent())
	assert.Empty(t, a.Unplaced)
}

func TestArrange_AreaDescPacksTighter(t *testing.T) {
	items := arrangeItems(t)

	a, err := Arrange(defaultGrid, items, StrategyAreaDesc)
	require.NoError(t, err)
	assert.Equal(t, StrategyAreaDesc, a.Strategy)
	assert.Equal(t, 4, a.Extent())
	assert.Equal(t, map[string]model.Position{
		"B": {X: 0, Y: 0},
		"C": {X: 0, Y: 2},
		"A": {X: 8, Y: 2},
	}, positionsByLabel(a.Items))

	_, err = BuildOccupancy(a.Grid, a.Items)
	assert.NoError(t, err, "arranged items never overlap")
}

func TestArrange_KeepsIdentity(t *testing.T) {
	items := arrangeItems(t)
	a, err := Arrange(defaultGrid, items, StrategyWidthDesc)
	require.NoError(t, err)

	byID := map[string]model.Item{}
	for _, it := range items {
		byID[it.ID] = it
	}
	require.Len(t, a.Items, len(items))
	for _, it := range a.Items {
		orig, ok := byID[it.ID]
		require.True(t, ok)
		assert.Equal(t, orig.Label, it.Label)
		assert.Equal(t, orig.Size(), it.Size())
	}
}

func TestArrange_UnplaceableItems(t *testing.T) {
	grid := model.GridSize{Width: 4, Height: 2}
	items := []model.Item{
		{ID: "a", Label: "Fits", Width: 2, Height: 1},
		{ID: "b", Label: "Too wide", Width: 6, Height: 1},
	}
	a, err := Arrange(grid, items, StrategyInsertion)
	require.NoError(t, err)
	require.Len(t, a.Unplaced, 1)
	assert.Equal(t, "b", a.Unplaced[0].ID)
	require.Len(t, a.Items, 1)
}

func TestArrange_UnknownStrategy(t *testing.T) {
	_, err := Arrange(defaultGrid, nil, Strategy("spiral"))
	assert.Error(t, err)

	_, err = ParseStrategy("spiral")
	assert.Error(t, err)

	s, err := ParseStrategy("area")
	require.NoError(t, err)
	assert.Equal(t, StrategyAreaDesc, s)
}

func TestArrange_EmptyInput(t *testing.T) {
	for _, s := range Strategies() {
		a, err := Arrange(defaultGrid, nil, s)
		require.NoError(t, err, s)
		assert.Empty(t, a.Items)
		assert.Equal(t, 0, a.Extent())
		assert.Equal(t, defaultGrid, a.Grid)
	}
}

func TestArrangeGenetic_NeverWorseThanGreedy(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	grid := defaultGrid
	var items []model.Item
	for i := 0; i < 12; i++ {
		size := model.Size{Width: 1 + rng.Intn(6), Height: 1 + rng.Intn(3)}
		p, err := FindPosition(grid, items, size)
		require.NoError(t, err)
		it := p.Item("", size)
		items = append(items, it)
		if it.Bottom() > grid.Height {
			grid = p.Grid
		}
	}

	greedy, err := Arrange(defaultGrid, items, StrategyAreaDesc)
	require.NoError(t, err)

	config := DefaultGeneticConfig()
	config.Generations = 20
	ga := ArrangeGenetic(defaultGrid, items, config)

	assert.Equal(t, StrategyGenetic, ga.Strategy)
	assert.Empty(t, ga.Unplaced)
	assert.Len(t, ga.Items, len(items))
	assert.LessOrEqual(t, ga.Extent(), greedy.Extent())
	_, err = BuildOccupancy(ga.Grid, ga.Items)
	assert.NoError(t, err)
}

func TestArrangeGenetic_Deterministic(t *testing.T) {
	items := arrangeItems(t)
	config := DefaultGeneticConfig()
	config.Generations = 10

	first := ArrangeGenetic(defaultGrid, items, config)
	second := ArrangeGenetic(defaultGrid, items, config)
	assert.Equal(t, first, second)
	assert.Equal(t, 4, first.Extent())
}

func TestArrangeGenetic_SingleItem(t *testing.T) {
	items := []model.Item{{ID: "x", Label: "X", Width: 3, Height: 2, X: 5, Y: 3}}
	a := ArrangeGenetic(defaultGrid, items, DefaultGeneticConfig())
	require.Len(t, a.Items, 1)
	assert.Equal(t, model.Position{X: 0, Y: 0}, a.Items[0].Position())
	assert.Equal(t, StrategyGenetic, a.Strategy)
}

func TestArrangementBetter(t *testing.T) {
	short := Arrangement{Grid: defaultGrid, Items: []model.Item{{Width: 1, Height: 2}}}
	tall := Arrangement{Grid: defaultGrid, Items: []model.Item{{Width: 1, Height: 3}}}
	incomplete := Arrangement{Grid: defaultGrid, Unplaced: []model.Item{{Width: 1, Height: 1}}}

	assert.True(t, short.Better(tall))
	assert.False(t, tall.Better(short))
	assert.True(t, tall.Better(incomplete))
	assert.False(t, short.Better(short))
}

func TestCompareStrategies(t *testing.T) {
	items := arrangeItems(t)

	results := CompareStrategies(defaultGrid, items, Strategies())
	require.Len(t, results, len(Strategies()))

	assert.Equal(t, StrategyInsertion, results[0].Arrangement.Strategy)
	assert.Equal(t, 5, results[0].Extent)
	assert.Equal(t, 4, results[1].Extent)
	assert.Equal(t, 6, results[1].GridHeight)
	assert.InDelta(t, 44.0/72.0*100, results[1].FillPercent, 0.001)

	assert.Equal(t, 1, BestComparison(results), "earliest of the tightest strategies")
	assert.Equal(t, -1, BestComparison(nil))
}

func TestCompareStrategies_SkipsUnknown(t *testing.T) {
	results := CompareStrategies(defaultGrid, arrangeItems(t), []Strategy{"spiral", StrategyHeightDesc})
	require.Len(t, results, 1)
	assert.Equal(t, StrategyHeightDesc, results[0].Arrangement.Strategy)
}
