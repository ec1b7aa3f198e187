// Package draw holds the font metrics a text host lays text out with.
package draw

// Font measures text.
type Font interface {
	Name() string
	Height() int
	BytesWidth(b []byte) int
	RunesWidth(r []rune) int
	StringWidth(s string) int
}
