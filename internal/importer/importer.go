// Package importer provides CSV, Excel and DXF import functionality for item lists.
// It supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/GridPlace/internal/engine"
	"github.com/piwi3910/GridPlace/internal/model"
)

// ImportedItem is one item read from a file. Position is nil when the file
// gives no coordinates and the item has to be placed by the engine.
type ImportedItem struct {
	Label    string
	Size     model.Size
	Position *model.Position
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Items    []ImportedItem
	// Grid is the grid boundary found in a drawing; zero when the file has none.
	Grid     model.GridSize
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label    int
	Width    int
	Height   int
	Quantity int
	X        int
	Y        int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":    {"label", "name", "item", "item name", "description", "desc", "title"},
	"width":    {"width", "w", "cols", "columns"},
	"height":   {"height", "h", "rows"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs"},
	"x":        {"x", "col", "column", "left"},
	"y":        {"y", "row", "top"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping (Label, Width, Height, Quantity, X, Y) and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Width: -1, Height: -1, Quantity: -1, X: -1, Y: -1}
	roles := map[string]*int{
		"label":    &mapping.Label,
		"width":    &mapping.Width,
		"height":   &mapping.Height,
		"quantity": &mapping.Quantity,
		"x":        &mapping.X,
		"y":        &mapping.Y,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if idx := roles[role]; *idx == -1 {
					*idx = i
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Label: 0, Width: 1, Height: 2, Quantity: 3, X: 4, Y: 5}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseCount parses a whole number of cells. Spreadsheet values such as
// "3.0" are accepted; fractional values are not.
func parseCount(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}
	return int(f), nil
}

// parseRow extracts an item from a row using the given column mapping.
// Returns the item, its quantity, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, itemCount int) (ImportedItem, int, string, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Item %d", itemCount+1)
	}

	widthStr := getCell(row, mapping.Width)
	if widthStr == "" {
		return ImportedItem{}, 0, fmt.Sprintf("%s: Missing width value", rowLabel), ""
	}
	width, err := parseCount(widthStr)
	if err != nil {
		return ImportedItem{}, 0, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), ""
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr == "" {
		return ImportedItem{}, 0, fmt.Sprintf("%s: Missing height value", rowLabel), ""
	}
	height, err := parseCount(heightStr)
	if err != nil {
		return ImportedItem{}, 0, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr), ""
	}

	qty := 1
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		qty, err = parseCount(qtyStr)
		if err != nil {
			return ImportedItem{}, 0, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), ""
		}
	}

	if width <= 0 || height <= 0 || qty <= 0 {
		return ImportedItem{}, 0, fmt.Sprintf("%s: Width, height, and quantity must be positive", rowLabel), ""
	}

	item := ImportedItem{Label: label, Size: model.Size{Width: width, Height: height}}

	// Optional position: both coordinates or none.
	var warning string
	xStr, yStr := getCell(row, mapping.X), getCell(row, mapping.Y)
	switch {
	case xStr == "" && yStr == "":
	case xStr == "" || yStr == "":
		warning = fmt.Sprintf("%s: Position needs both x and y, item will be auto-placed", rowLabel)
	default:
		x, errX := parseCount(xStr)
		y, errY := parseCount(yStr)
		if errX != nil || errY != nil || x < 0 || y < 0 {
			warning = fmt.Sprintf("%s: Invalid position '%s, %s', item will be auto-placed", rowLabel, xStr, yStr)
			break
		}
		if qty > 1 {
			warning = fmt.Sprintf("%s: Position ignored for quantity %d, items will be auto-placed", rowLabel, qty)
			break
		}
		item.Position = &model.Position{X: x, Y: y}
	}

	return item, qty, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports items from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports items from a CSV reader with a specific delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports items from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		// Unrecognized header: the first column after the label is not numeric
		if _, err := parseCount(strings.TrimSpace(rows[0][1])); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		item, qty, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Items))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		for n := 0; n < qty; n++ {
			cp := item
			if qty > 1 {
				cp.Label = fmt.Sprintf("%s #%d", item.Label, n+1)
			}
			result.Items = append(result.Items, cp)
		}
	}

	return result
}

// Apply commits the imported items to a board in file order. Items with a
// position are placed there; the rest are auto-placed. Items the board
// rejects are reported as messages and skipped. An empty board first takes
// the imported grid, if any.
func (r ImportResult) Apply(b *engine.Board) ([]model.Item, []string) {
	var placed []model.Item
	var problems []string

	if r.Grid.Width > 0 && r.Grid.Height > 0 && len(b.Items()) == 0 && r.Grid != b.Grid() {
		if err := b.SetGrid(r.Grid); err != nil {
			problems = append(problems, fmt.Sprintf("grid %s: %v", r.Grid, err))
		}
	}

	for _, imp := range r.Items {
		var (
			it  model.Item
			err error
		)
		if imp.Position != nil {
			it, err = b.Place(model.Item{
				Label:  imp.Label,
				Width:  imp.Size.Width,
				Height: imp.Size.Height,
				X:      imp.Position.X,
				Y:      imp.Position.Y,
			})
		} else {
			it, err = b.AddItem(imp.Label, imp.Size)
		}
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", imp.Label, err))
			continue
		}
		placed = append(placed, it)
	}
	return placed, problems
}
