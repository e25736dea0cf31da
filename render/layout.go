package render

import (
	"github.com/lixenwraith/term-pong/config"
)

// Minimum terminal size that can show a playable court
const (
	MinCols = 40
	MinRows = 10
)

// Layout maps court coordinates onto terminal cells
// Row 0 holds the score, the last row the status bar, everything between is court
// Court Y grows upward while terminal rows grow downward
type Layout struct {
	Cols      int
	Rows      int
	CourtTop  int
	CourtRows int
	courtW    float64
	courtH    float64
}

// NewLayout computes the projection for a terminal of cols x rows
func NewLayout(cols, rows int, cfg *config.Config) Layout {
	return Layout{
		Cols:      cols,
		Rows:      rows,
		CourtTop:  1,
		CourtRows: max(rows-2, 0),
		courtW:    cfg.Court.Width,
		courtH:    cfg.Court.Height,
	}
}

// Fits reports whether the terminal is large enough to draw the court
func (l Layout) Fits() bool {
	return l.Cols >= MinCols && l.Rows >= MinRows
}

// Column projects a court X onto a terminal column
func (l Layout) Column(x float64) int {
	col := int(x / l.courtW * float64(l.Cols))
	return clampInt(col, 0, l.Cols-1)
}

// Row projects a court Y onto a terminal row inside the court band
func (l Layout) Row(y float64) int {
	row := l.CourtTop + int((l.courtH-y)/l.courtH*float64(l.CourtRows))
	return clampInt(row, l.CourtTop, l.CourtTop+l.CourtRows-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
