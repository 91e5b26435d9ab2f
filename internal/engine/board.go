package engine

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/piwi3910/GridPlace/internal/model"
)

// MaxGridHeight caps the rows a placed item or restored layout may reach.
const MaxGridHeight = 1 << 16

// Board owns a grid and the items committed to it. All mutations go
// through a single lock so a placement search and the commit of its
// result cannot interleave with another insertion.
type Board struct {
	mu     sync.Mutex
	name   string
	grid   model.GridSize
	items  []model.Item
	limits model.GridLimits
	logger *slog.Logger
}

// BoardOption configures a Board.
type BoardOption func(*Board)

// WithLogger sets the logger used for board events.
func WithLogger(l *slog.Logger) BoardOption {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithLimits sets the limits SetGrid validates against.
func WithLimits(limits model.GridLimits) BoardOption {
	return func(b *Board) {
		b.limits = limits
	}
}

// NewBoard creates an empty board on the given grid.
func NewBoard(grid model.GridSize, opts ...BoardOption) (*Board, error) {
	b := &Board{
		name:   "Untitled",
		limits: model.DefaultGridLimits(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if fe := model.ValidateGridSize(grid, b.limits); fe != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGrid, fe)
	}
	b.grid = grid
	return b, nil
}

// AddItem finds a position for an item of the given size, commits it and
// adopts the grown grid height when the item ends below the current grid.
// A rejected candidate leaves the board unchanged.
func (b *Board) AddItem(label string, size model.Size) (model.Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, err := FindPosition(b.grid, b.items, size)
	if err != nil {
		b.logger.Debug("item rejected", "size", sizeString(size), "grid", b.grid.String(), "error", err)
		return model.Item{}, err
	}

	if label == "" {
		label = fmt.Sprintf("Item %d", len(b.items)+1)
	}
	item := p.Item(label, size)
	b.items = append(b.items, item)

	if item.Bottom() > b.grid.Height {
		b.logger.Info("grid grown", "from", b.grid.Height, "to", p.Grid.Height)
		b.grid = p.Grid
	}
	b.logger.Info("item placed", "id", item.ID, "size", sizeString(size), "x", item.X, "y", item.Y)
	return item, nil
}

// Place commits an item at its own position, e.g. when loading a saved
// layout. The grid height is doubled until the item fits; it must not be
// wider than the grid, end below MaxGridHeight nor overlap a committed item.
func (b *Board) Place(item model.Item) (model.Item, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if item.Width <= 0 || item.Height <= 0 || item.X < 0 || item.Y < 0 {
		return model.Item{}, fmt.Errorf("%w: %s at %s", ErrInvalidItem, sizeString(item.Size()), item.PositionLabel())
	}
	if item.X > b.grid.Width-item.Width || item.Y > MaxGridHeight-item.Height {
		return model.Item{}, fmt.Errorf("%w: %s at %s", ErrItemOutOfGrid, sizeString(item.Size()), item.PositionLabel())
	}
	for _, other := range b.items {
		if other.Overlaps(item) {
			return model.Item{}, fmt.Errorf("%w: %s overlaps %s", ErrItemsOverlap, item.PositionLabel(), other.PositionLabel())
		}
	}

	if item.ID == "" {
		item.ID = model.NewItem("", item.Size(), item.Position()).ID
	}
	if item.Label == "" {
		item.Label = fmt.Sprintf("Item %d", len(b.items)+1)
	}
	for item.Bottom() > b.grid.Height {
		b.grid.Height *= 2
	}
	b.items = append(b.items, item)
	b.logger.Debug("item restored", "id", item.ID, "x", item.X, "y", item.Y)
	return item, nil
}

// SetGrid replaces the grid and removes all items.
func (b *Board) SetGrid(grid model.GridSize) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if fe := model.ValidateGridSize(grid, b.limits); fe != nil {
		return fmt.Errorf("%w: %w", ErrInvalidGrid, fe)
	}
	b.grid = grid
	b.items = nil
	b.logger.Info("grid set", "grid", grid.String())
	return nil
}

// SetLimits replaces the limits later SetGrid calls validate against.
// The current grid and items are kept even if they exceed the new limits.
func (b *Board) SetLimits(limits model.GridLimits) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.limits = limits
}

// Reset removes all items and keeps the grid.
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = nil
	b.logger.Info("board reset", "grid", b.grid.String())
}

// Remove deletes the item with the given ID. The grid keeps its height.
func (b *Board) Remove(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, it := range b.items {
		if it.ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the committed items in insertion order.
func (b *Board) Items() []model.Item {
	b.mu.Lock()
	defer b.mu.Unlock()
	return copyItems(b.items)
}

// Grid returns the current grid size.
func (b *Board) Grid() model.GridSize {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.grid
}

// Limits returns the limits the board validates grids against.
func (b *Board) Limits() model.GridLimits {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.limits
}

// SetName renames the board.
func (b *Board) SetName(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.name = name
}

// Layout returns a snapshot of the board.
func (b *Board) Layout() model.Layout {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := copyItems(b.items)
	if items == nil {
		items = []model.Item{}
	}
	return model.Layout{Name: b.name, Grid: b.grid, Items: items}
}

// Restore replaces the board with a saved layout. The layout's grid may be
// taller than the limits allow, since heights grow during placement, but
// its width must be within them, its height at most MaxGridHeight and its
// items must be valid.
func (b *Board) Restore(l model.Layout) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if l.Grid.Width <= 0 || l.Grid.Width > b.limits.MaxWidth || l.Grid.Height <= 0 || l.Grid.Height > MaxGridHeight {
		return fmt.Errorf("%w: %s", ErrInvalidGrid, l.Grid)
	}
	if _, err := BuildOccupancy(l.Grid, l.Items); err != nil {
		return err
	}

	b.grid = l.Grid
	b.items = copyItems(l.Items)
	if l.Name != "" {
		b.name = l.Name
	}
	b.logger.Info("layout restored", "name", b.name, "grid", b.grid.String(), "items", len(b.items))
	return nil
}

// Arrange re-places every item in the order the strategy picks and
// commits the result. The board is unchanged when an item cannot be
// re-placed or the strategy is unknown.
func (b *Board) Arrange(strategy Strategy) (Arrangement, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	a, err := Arrange(b.grid, b.items, strategy)
	if err != nil {
		return Arrangement{}, err
	}
	if len(a.Unplaced) > 0 {
		return a, fmt.Errorf("%w: %d of %d", ErrArrangeIncomplete, len(a.Unplaced), len(b.items))
	}
	b.grid = a.Grid
	b.items = copyItems(a.Items)
	b.logger.Info("items arranged", "strategy", string(strategy), "extent", a.Extent(), "grid", b.grid.String())
	return a, nil
}

// Occupancy builds the occupancy matrix of the current board.
func (b *Board) Occupancy() (*OccupancyMatrix, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return BuildOccupancy(b.grid, b.items)
}

func copyItems(items []model.Item) []model.Item {
	if items == nil {
		return nil
	}
	cp := make([]model.Item, len(items))
	copy(cp, items)
	return cp
}
