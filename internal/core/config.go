package core

// Rows reserved outside the playing field: the HUD line at the top and the
// help line at the bottom.
const (
	HUDRows  = 1
	HelpRows = 1
)

// RuntimeConfig contains configuration passed to the trainer at initialization.
// The field is simulated in pixels; CellW and CellH convert terminal cells
// to field pixels so target sizes keep their meaning across terminals.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Animation frames per second (default 60)
	Seed     int64 // RNG seed for deterministic placement
	CellW    int   // Field pixels per terminal column
	CellH    int   // Field pixels per terminal row
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		CellW:    8,
		CellH:    16,
	}
}

// FieldRows returns the number of terminal rows available to the field.
func (c RuntimeConfig) FieldRows() int {
	return max(c.ScreenH-HUDRows-HelpRows, 0)
}

// FieldWidth returns the field width in pixels.
func (c RuntimeConfig) FieldWidth() float64 {
	return float64(max(c.ScreenW, 0) * max(c.CellW, 1))
}

// FieldHeight returns the field height in pixels.
func (c RuntimeConfig) FieldHeight() float64 {
	return float64(c.FieldRows() * max(c.CellH, 1))
}

// CellToField converts a terminal cell to the field pixel at its centre.
// The second result is false when the cell lies outside the field rows.
func (c RuntimeConfig) CellToField(col, row int) (x, y float64, ok bool) {
	fieldRow := row - HUDRows
	if col < 0 || col >= c.ScreenW || fieldRow < 0 || fieldRow >= c.FieldRows() {
		return 0, 0, false
	}
	x = (float64(col) + 0.5) * float64(max(c.CellW, 1))
	y = (float64(fieldRow) + 0.5) * float64(max(c.CellH, 1))
	return x, y, true
}

// CellBox returns the field pixels covered by a terminal cell.
// The second result is false when the cell lies outside the field rows.
func (c RuntimeConfig) CellBox(col, row int) (Box, bool) {
	fieldRow := row - HUDRows
	if col < 0 || col >= c.ScreenW || fieldRow < 0 || fieldRow >= c.FieldRows() {
		return Box{}, false
	}
	w := float64(max(c.CellW, 1))
	h := float64(max(c.CellH, 1))
	return Box{X: float64(col) * w, Y: float64(fieldRow) * h, W: w, H: h}, true
}

// FieldToCell converts a field pixel to the terminal cell that shows it.
func (c RuntimeConfig) FieldToCell(x, y float64) (col, row int) {
	col = int(x / float64(max(c.CellW, 1)))
	row = int(y/float64(max(c.CellH, 1))) + HUDRows
	return col, row
}
