package cellscreen

import "math"

// Projection maps world coordinates (origin center, y up) to terminal cells
// The whole world rectangle fits on screen; cells are aspect times taller than wide
type Projection struct {
	Cols, Rows int
	CellW      float64 // world units per column
	CellH      float64 // world units per row
}

// NewProjection fits a worldW x worldH viewport into cols x rows cells
func NewProjection(cols, rows int, worldW, worldH, aspect float64) Projection {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	cw := math.Max(worldW/float64(cols), worldH/(float64(rows)*aspect))
	return Projection{
		Cols:  cols,
		Rows:  rows,
		CellW: cw,
		CellH: cw * aspect,
	}
}

// ToCell returns the cell containing world point (x, y), possibly off screen
func (p Projection) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor(float64(p.Cols)/2 + x/p.CellW))
	row = int(math.Floor(float64(p.Rows)/2 - y/p.CellH))
	return col, row
}

// CellCenter returns the world coordinates of the center of cell (col, row)
func (p Projection) CellCenter(col, row int) (x, y float64) {
	x = (float64(col) + 0.5 - float64(p.Cols)/2) * p.CellW
	y = (float64(p.Rows)/2 - float64(row) - 0.5) * p.CellH
	return x, y
}

// InBounds reports whether the cell is on screen
func (p Projection) InBounds(col, row int) bool {
	return col >= 0 && col < p.Cols && row >= 0 && row < p.Rows
}
