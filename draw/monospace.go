package draw

import (
	"fmt"

	"github.com/rivo/uniseg"
)

var _ = Font((*monospace)(nil))

// monospace is a fixed-cell font. Wide East Asian runes take two cells.
type monospace struct {
	cell, height int
}

// NewMonospace returns a Font whose cells are cellWidth pixels wide and
// height pixels high.
func NewMonospace(cellWidth, height int) Font {
	return &monospace{
		cell:   cellWidth,
		height: height,
	}
}

func (f *monospace) Name() string             { return fmt.Sprintf("monospace.%dx%d", f.cell, f.height) }
func (f *monospace) Height() int              { return f.height }
func (f *monospace) BytesWidth(b []byte) int  { return f.cell * uniseg.StringWidth(string(b)) }
func (f *monospace) RunesWidth(r []rune) int  { return f.cell * uniseg.StringWidth(string(r)) }
func (f *monospace) StringWidth(s string) int { return f.cell * uniseg.StringWidth(s) }
