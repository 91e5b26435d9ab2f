package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/GridPlace/internal/engine"
	"github.com/piwi3910/GridPlace/internal/model"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "Label,Width,Height\nShelf,6,2\nLamp,1,3\n", ','},
		{"semicolon", "Label;Width;Height\nShelf;6;2\nLamp;1;3\n", ';'},
		{"tab", "Label\tWidth\tHeight\nShelf\t6\t2\nLamp\t1\t3\n", '\t'},
		{"pipe", "Label|Width|Height\nShelf|6|2\nLamp|1|3\n", '|'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCSVDelimiter([]byte(tt.data)); got != tt.want {
				t.Errorf("expected %q delimiter, got %q", tt.want, got)
			}
		})
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Label", "Width", "Height", "Quantity", "X", "Y"})

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	want := ColumnMapping{Label: 0, Width: 1, Height: 2, Quantity: 3, X: 4, Y: 5}
	if mapping != want {
		t.Errorf("expected %+v, got %+v", want, mapping)
	}
}

func TestDetectColumns_AlternativeNamesAndOrder(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{" ROWS ", "cols", "Name", "Top", "Left"})

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	want := ColumnMapping{Label: 2, Width: 1, Height: 0, Quantity: -1, X: 4, Y: 3}
	if mapping != want {
		t.Errorf("expected %+v, got %+v", want, mapping)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Shelf", "6", "2"})

	if isHeader {
		t.Error("expected no header")
	}
	want := ColumnMapping{Label: 0, Width: 1, Height: 2, Quantity: 3, X: 4, Y: 5}
	if mapping != want {
		t.Errorf("expected positional mapping %+v, got %+v", want, mapping)
	}
}

// ─── ImportCSVFromReader Tests ─────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	csv := "Label,Width,Height,Qty\nShelf,6,2,1\nLamp,1,3,2\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 3 {
		t.Fatalf("expected 3 items (quantity expanded), got %d", len(result.Items))
	}
	if result.Items[0].Label != "Shelf" || result.Items[0].Size != (model.Size{Width: 6, Height: 2}) {
		t.Errorf("unexpected first item: %+v", result.Items[0])
	}
	if result.Items[1].Label != "Lamp #1" || result.Items[2].Label != "Lamp #2" {
		t.Errorf("expected numbered copies, got %q and %q", result.Items[1].Label, result.Items[2].Label)
	}
	for _, it := range result.Items {
		if it.Position != nil {
			t.Errorf("expected no position for %q", it.Label)
		}
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Shelf,6,2\nLamp,1,3\n"), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
}

func TestImportCSVFromReader_Positions(t *testing.T) {
	csv := "Label,Width,Height,X,Y\nA,6,2,0,0\nB,5,2,7,0\nC,1,1,,\nD,1,1,3,\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(result.Items))
	}
	if p := result.Items[1].Position; p == nil || *p != (model.Position{X: 7, Y: 0}) {
		t.Errorf("expected B at 7, 0, got %v", p)
	}
	if result.Items[2].Position != nil {
		t.Error("expected C without position")
	}
	if result.Items[3].Position != nil {
		t.Error("expected D without position when y is missing")
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "both x and y") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a warning about the half position, got %v", result.Warnings)
	}
}

func TestImportCSVFromReader_PositionDroppedForQuantity(t *testing.T) {
	csv := "Label,Width,Height,Qty,X,Y\nShelf,2,1,3,0,0\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(result.Items))
	}
	for _, it := range result.Items {
		if it.Position != nil {
			t.Errorf("expected %q to be auto-placed, got position %v", it.Label, *it.Position)
		}
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "Position ignored for quantity 3") {
		t.Errorf("expected a warning about the ignored position, got %v", result.Warnings)
	}

	b, err := engine.NewBoard(model.GridSize{Width: 12, Height: 6})
	if err != nil {
		t.Fatal(err)
	}
	placed, problems := result.Apply(b)
	if len(placed) != 3 || len(problems) != 0 {
		t.Errorf("expected all copies placed, got %d placed and problems %v", len(placed), problems)
	}
}

func TestImportCSVFromReader_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{"invalid width", "Shelf,abc,2", "Invalid width"},
		{"fractional height", "Shelf,2,1.5", "Invalid height"},
		{"missing height", "Shelf,2,", "Missing height"},
		{"negative width", "Shelf,-2,2", "must be positive"},
		{"zero quantity", "Shelf,2,2,0", "must be positive"},
		{"invalid quantity", "Shelf,2,2,x", "Invalid quantity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ImportCSVFromReader(strings.NewReader("Label,Width,Height,Qty\n"+tt.row+"\n"), ',')
			if len(result.Errors) != 1 {
				t.Fatalf("expected 1 error, got %v", result.Errors)
			}
			if !strings.Contains(result.Errors[0], tt.want) {
				t.Errorf("expected error containing %q, got %q", tt.want, result.Errors[0])
			}
		})
	}
}

func TestImportCSVFromReader_WholeDecimalsAccepted(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Shelf,6.0,2\n"), ',')
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Items[0].Size.Width != 6 {
		t.Errorf("expected width 6, got %d", result.Items[0].Size.Width)
	}
}

func TestImportCSVFromReader_EmptyRowsAndLabels(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Label,Width,Height\n,2,2\n\n , , \nNamed,1,1\n"), ',')

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[0].Label != "Item 1" {
		t.Errorf("expected generated label 'Item 1', got %q", result.Items[0].Label)
	}
}

func TestImportCSVFromReader_MissingRequiredColumn(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("Label,Width,Qty\nShelf,2,1\n"), ',')

	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Height") {
		t.Errorf("expected missing Height error, got %v", result.Errors)
	}
}

func TestImportCSVFromReader_EmptyInput(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')
	if len(result.Errors) == 0 {
		t.Error("expected error for empty input")
	}
}

// ─── ImportCSV File Tests ──────────────────────────────────

func TestImportCSV_SemicolonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.csv")
	if err := os.WriteFile(path, []byte("Label;Width;Height\nShelf;6;2\nLamp;1;3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 2 {
		t.Errorf("expected 2 items, got %d", len(result.Items))
	}
	if len(result.Warnings) == 0 || !strings.Contains(result.Warnings[0], "semicolon") {
		t.Errorf("expected semicolon warning, got %v", result.Warnings)
	}
}

func TestImportCSV_FileErrors(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	result = ImportCSV(path)
	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Name", "Width", "Height", "X", "Y"},
		{"Monitor", 12, 5, 0, 0},
		{"Lamp", 2, 3},
	})

	result := ImportExcel(path)
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	if result.Items[0].Position == nil {
		t.Error("expected Monitor to carry a position")
	}
	if result.Items[1].Position != nil {
		t.Error("expected Lamp without position")
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "missing.xlsx"))
	if len(result.Errors) == 0 {
		t.Error("expected error for missing file")
	}
}

// ─── Apply Tests ───────────────────────────────────────────

func TestApply_PlacesAndAutoPlaces(t *testing.T) {
	csv := "Label,Width,Height,X,Y\nLeft,6,2,0,0\nRight,5,2,7,0\nGap,1,1,,\nTall,2,3,,\nClash,2,2,0,0\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	b, err := engine.NewBoard(model.GridSize{Width: 12, Height: 6})
	if err != nil {
		t.Fatal(err)
	}
	placed, problems := result.Apply(b)

	if len(placed) != 4 {
		t.Fatalf("expected 4 placed items, got %d", len(placed))
	}
	if placed[2].Position() != (model.Position{X: 6, Y: 0}) {
		t.Errorf("expected Gap at 6, 0, got %v", placed[2].Position())
	}
	if placed[3].Position() != (model.Position{X: 0, Y: 2}) {
		t.Errorf("expected Tall at 0, 2, got %v", placed[3].Position())
	}
	if len(problems) != 1 || !strings.Contains(problems[0], "Clash") {
		t.Errorf("expected the clashing item to be reported, got %v", problems)
	}
}
