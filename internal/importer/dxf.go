package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/GridPlace/internal/model"
)

// point is a 2D drawing coordinate.
type point struct {
	x, y float64
}

// box is an axis-aligned bounding box in drawing units.
type box struct {
	minX, minY, maxX, maxY float64
}

func (b box) area() float64 { return (b.maxX - b.minX) * (b.maxY - b.minY) }

func (b box) contains(o box, tolerance float64) bool {
	return o.minX >= b.minX-tolerance && o.maxX <= b.maxX+tolerance &&
		o.minY >= b.minY-tolerance && o.maxY <= b.maxY+tolerance
}

func (b box) containsPoint(p point) bool {
	return p.x >= b.minX && p.x <= b.maxX && p.y >= b.minY && p.y <= b.maxY
}

type dxfLabel struct {
	at    point
	value string
}

// ImportDXF reads item rectangles from a DXF drawing. Closed outlines made
// of consecutive LINE entities or a LWPOLYLINE are reduced to their bounding
// boxes. When the largest box encloses all others it is taken as the grid
// boundary. Boxes are snapped to cells of cellSize drawing units, with row 0
// at the top of the drawing. TEXT entities inside a box become its label.
func ImportDXF(path string, cellSize float64) ImportResult {
	result := ImportResult{}
	if cellSize <= 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Cell size must be positive, got %g", cellSize))
		return result
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	tolerance := cellSize * 0.01
	var (
		boxes  []box
		labels []dxfLabel
		chain  []point
	)
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			if len(e.Vertices) < 3 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 3 vertices")
				continue
			}
			pts := make([]point, len(e.Vertices))
			for i, v := range e.Vertices {
				pts[i] = point{v[0], v[1]}
			}
			boxes = append(boxes, boundingBox(pts))

		case *entity.Line:
			start := point{e.Start[0], e.Start[1]}
			end := point{e.End[0], e.End[1]}
			switch {
			case len(chain) == 0:
				chain = []point{start, end}
			case pointsClose(chain[len(chain)-1], start, tolerance):
				chain = append(chain, end)
			case pointsClose(chain[len(chain)-1], end, tolerance):
				chain = append(chain, start)
			default:
				result.Warnings = append(result.Warnings, "Skipped open outline of LINE entities")
				chain = []point{start, end}
			}
			if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
				boxes = append(boxes, boundingBox(chain[:len(chain)-1]))
				chain = nil
			}

		case *entity.Text:
			if len(e.Coord1) >= 2 && e.Value != "" {
				labels = append(labels, dxfLabel{at: point{e.Coord1[0], e.Coord1[1]}, value: e.Value})
			}
		}
	}
	if len(chain) > 0 {
		result.Warnings = append(result.Warnings, "Skipped open outline of LINE entities")
	}

	if len(boxes) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	largest := 0
	for i, b := range boxes {
		if b.area() > boxes[largest].area() {
			largest = i
		}
	}
	others := make([]box, 0, len(boxes)-1)
	others = append(others, boxes[:largest]...)
	others = append(others, boxes[largest+1:]...)

	frame := boxes[largest]
	itemBoxes := boxes
	if len(others) > 0 && enclosesAll(frame, others, tolerance) {
		itemBoxes = others
		result.Grid = model.GridSize{
			Width:  toCells(frame.maxX-frame.minX, cellSize),
			Height: toCells(frame.maxY-frame.minY, cellSize),
		}
	} else {
		for _, b := range others {
			frame.minX = math.Min(frame.minX, b.minX)
			frame.maxY = math.Max(frame.maxY, b.maxY)
		}
	}

	for i, b := range itemBoxes {
		w := toCells(b.maxX-b.minX, cellSize)
		h := toCells(b.maxY-b.minY, cellSize)
		if w <= 0 || h <= 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped shape smaller than one cell (%.2f x %.2f)", b.maxX-b.minX, b.maxY-b.minY))
			continue
		}

		label := labelFor(b, itemBoxes, labels)
		if label == "" {
			label = fmt.Sprintf("DXF Item %d", i+1)
		}
		result.Items = append(result.Items, ImportedItem{
			Label: label,
			Size:  model.Size{Width: w, Height: h},
			Position: &model.Position{
				X: toCells(b.minX-frame.minX, cellSize),
				Y: toCells(frame.maxY-b.maxY, cellSize),
			},
		})
	}

	if len(result.Items) == 0 {
		result.Errors = append(result.Errors, "No item outlines found in DXF file")
	}
	return result
}

func boundingBox(pts []point) box {
	b := box{minX: pts[0].x, minY: pts[0].y, maxX: pts[0].x, maxY: pts[0].y}
	for _, p := range pts[1:] {
		b.minX = math.Min(b.minX, p.x)
		b.minY = math.Min(b.minY, p.y)
		b.maxX = math.Max(b.maxX, p.x)
		b.maxY = math.Max(b.maxY, p.y)
	}
	return b
}

func enclosesAll(outer box, inner []box, tolerance float64) bool {
	for _, b := range inner {
		if !outer.contains(b, tolerance) {
			return false
		}
	}
	return true
}

// labelFor returns the text of the first label inside b that is not also
// inside a smaller item box.
func labelFor(b box, items []box, labels []dxfLabel) string {
	for _, l := range labels {
		if !b.containsPoint(l.at) {
			continue
		}
		inner := false
		for _, o := range items {
			if o != b && o.area() < b.area() && o.containsPoint(l.at) {
				inner = true
				break
			}
		}
		if !inner {
			return l.value
		}
	}
	return ""
}

func toCells(v, cellSize float64) int {
	return int(math.Round(v / cellSize))
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	return math.Hypot(a.x-b.x, a.y-b.y) <= tolerance
}
