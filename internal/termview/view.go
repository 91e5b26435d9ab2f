// Package termview renders a placement board in the terminal and lets the
// user add items from the keyboard.
package termview

import (
	"fmt"
	"log/slog"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/piwi3910/GridPlace/internal/engine"
	"github.com/piwi3910/GridPlace/internal/model"
)

// Styles
var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite)
	styleFree    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleMsgInfo = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleMsgErr  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const (
	gridTop   = 2 // first screen row of the grid
	cellWidth = 2 // screen columns per grid cell
	freeRune  = '.'
)

// View draws a board on a tcell screen.
type View struct {
	screen tcell.Screen
	board  *engine.Board
	logger *slog.Logger

	next       model.Size
	message    string
	messageErr bool
}

// New creates a view of board on screen. The next item size starts at 1x1.
func New(screen tcell.Screen, board *engine.Board, logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.Default()
	}
	return &View{
		screen: screen,
		board:  board,
		logger: logger,
		next:   model.Size{Width: 1, Height: 1},
	}
}

// NextSize returns the size of the item Enter will add.
func (v *View) NextSize() model.Size {
	return v.next
}

// Message returns the current status message and whether it reports an error.
func (v *View) Message() (string, bool) {
	return v.message, v.messageErr
}

// Run draws and processes events until the user quits or the screen is finalized.
func (v *View) Run() {
	for {
		v.Draw()
		v.screen.Show()

		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if v.HandleKey(ev) {
				return
			}
		}
	}
}

// HandleKey applies a key press and reports whether the view should exit.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	limits := v.board.Limits()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.next.Width = max(1, v.next.Width-1)
	case tcell.KeyRight:
		v.next.Width = min(limits.MaxWidth, v.next.Width+1)
	case tcell.KeyUp:
		v.next.Height = min(limits.MaxHeight, v.next.Height+1)
	case tcell.KeyDown:
		v.next.Height = max(1, v.next.Height-1)
	case tcell.KeyEnter:
		v.addItem()
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'q':
			return true
		case 'r':
			v.board.Reset()
			v.setMessage("Grid cleared", false)
		case 'u':
			v.removeLast()
		case 'a':
			v.arrange()
		}
	}
	return false
}

func (v *View) addItem() {
	item, err := v.board.AddItem("", v.next)
	if err != nil {
		if fe := engine.FieldErrorFor(err); fe != nil {
			v.setMessage(fe.Message, true)
		} else {
			v.setMessage(err.Error(), true)
		}
		v.logger.Debug("terminal add rejected", "size", v.next, "error", err)
		return
	}
	v.setMessage(fmt.Sprintf("Placed %s at %s", item.Label, item.PositionLabel()), false)
}

func (v *View) removeLast() {
	items := v.board.Items()
	if len(items) == 0 {
		v.setMessage("Nothing to remove", true)
		return
	}
	last := items[len(items)-1]
	v.board.Remove(last.ID)
	v.setMessage(fmt.Sprintf("Removed %s", last.Label), false)
}

// arrange re-places the items with whichever strategy packs them tightest.
func (v *View) arrange() {
	items := v.board.Items()
	if len(items) < 2 {
		v.setMessage("Nothing to arrange", true)
		return
	}
	results := engine.CompareStrategies(v.board.Grid(), items, engine.Strategies())
	best := engine.BestComparison(results)
	if best < 0 {
		v.setMessage("Nothing to arrange", true)
		return
	}
	a, err := v.board.Arrange(results[best].Arrangement.Strategy)
	if err != nil {
		v.setMessage(err.Error(), true)
		return
	}
	v.setMessage(fmt.Sprintf("Arranged by %s: %d rows used", a.Strategy, a.Extent()), false)
}

func (v *View) setMessage(msg string, isErr bool) {
	v.message = msg
	v.messageErr = isErr
}

// Draw renders the title, grid, status and help lines into the screen buffer.
func (v *View) Draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	layout := v.board.Layout()

	title := fmt.Sprintf("GridPlace  %s  items: %d  fill: %.1f%%",
		layout.Grid, len(layout.Items), layout.Fill())
	v.drawString(0, 0, title, styleTitle)

	v.drawGrid(layout)

	statusY := gridTop + layout.Grid.Height + 1
	if statusY > h-3 {
		statusY = h - 3
	}
	status := fmt.Sprintf(" Next item: %dx%d ", v.next.Width, v.next.Height)
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, statusY, ' ', nil, styleStatus)
	}
	v.drawString(0, statusY, status, styleStatus)

	if v.message != "" {
		style := styleMsgInfo
		if v.messageErr {
			style = styleMsgErr
		}
		v.drawString(0, statusY+1, v.message, style)
	}
	v.drawString(0, statusY+2, "arrows: size  enter: add  a: arrange  u: remove last  r: reset  q: quit", styleHelp)
}

func (v *View) drawGrid(layout model.Layout) {
	grid := layout.Grid
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			x := col * cellWidth
			v.screen.SetContent(x, gridTop+row, freeRune, nil, styleFree)
			v.screen.SetContent(x+1, gridTop+row, ' ', nil, styleDefault)
		}
	}

	for i, it := range layout.Items {
		style := itemStyle(i)
		for row := it.Y; row < it.Y+it.Height; row++ {
			for col := it.X; col < it.X+it.Width; col++ {
				x := col * cellWidth
				v.screen.SetContent(x, gridTop+row, ' ', nil, style)
				v.screen.SetContent(x+1, gridTop+row, ' ', nil, style)
			}
		}
		v.screen.SetContent(it.X*cellWidth, gridTop+it.Y, itemRune(it), nil, style)
	}
}

func (v *View) drawString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// itemStyle colors an item's cells with its palette color.
func itemStyle(index int) tcell.Style {
	c := model.ItemColor(index)
	return tcell.StyleDefault.
		Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Foreground(tcell.ColorBlack)
}

// itemRune is the marker drawn in an item's top-left cell.
func itemRune(it model.Item) rune {
	for _, r := range it.Label {
		return unicode.ToUpper(r)
	}
	return '#'
}
