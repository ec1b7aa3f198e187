package rich

// Box is a fragment of text laid out as a unit: a run of ordinary
// runes, or a single newline or tab.
type Box struct {
	Text  []byte // UTF-8 content (empty for newline/tab)
	Nrune int    // Rune count (-1 for special boxes)
	Bc    rune   // Box character: 0 for text, '\n' for newline, '\t' for tab

	Wid int // Width in pixels, set by layout
}

// IsNewline returns true if this is a newline box.
func (b *Box) IsNewline() bool {
	return b.Nrune < 0 && b.Bc == '\n'
}

// IsTab returns true if this is a tab box.
func (b *Box) IsTab() bool {
	return b.Nrune < 0 && b.Bc == '\t'
}

// Runes returns the number of runes b stands for.
func (b *Box) Runes() int {
	if b.Nrune < 0 {
		return 1
	}
	return b.Nrune
}

// PositionedBox is a Box placed on a Line.
type PositionedBox struct {
	Box   Box
	X     int // offset from the left edge of the view
	Start int // rune offset of the box's first rune in the text
}

// Line is one visual line: the runes in [Start, End), laid out at Y.
// A line broken by a newline includes it; a wrapped line does not.
type Line struct {
	Boxes  []PositionedBox
	Y      int
	Height int
	Start  int
	End    int
}
