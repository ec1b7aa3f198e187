package rich

import (
	"strings"
	"unicode/utf8"

	"github.com/rjkroege/axtoy/draw"
)

// contentToBoxes splits text into runs of ordinary runes separated by
// single newline and tab boxes.
func contentToBoxes(text string) []Box {
	var boxes []Box
	for text != "" {
		i := strings.IndexAny(text, "\n\t")
		if i < 0 {
			i = len(text)
		}
		if i > 0 {
			run := text[:i]
			boxes = append(boxes, Box{Text: []byte(run), Nrune: utf8.RuneCountInString(run)})
		}
		if i == len(text) {
			break
		}
		boxes = append(boxes, Box{Nrune: -1, Bc: rune(text[i])})
		text = text[i+1:]
	}
	return boxes
}

// tabBoxWidth returns the distance from x to the next tab stop.
func tabBoxWidth(x, maxtab int) int {
	if maxtab <= 0 {
		return 0
	}
	return maxtab - (x % maxtab)
}

// layout places boxes on lines. A width greater than zero wraps text
// that would cross it; a rune is only wrapped if it is not the first
// thing on its line. There is always at least one line.
func layout(boxes []Box, font draw.Font, width, maxtab int) []Line {
	h := font.Height()
	lines := []Line{{Height: h}}
	li, x, q := 0, 0, 0

	breakLine := func() {
		y := lines[li].Y + lines[li].Height
		lines = append(lines, Line{Y: y, Height: h, Start: q, End: q})
		li++
		x = 0
	}
	place := func(b Box) {
		lines[li].Boxes = append(lines[li].Boxes, PositionedBox{Box: b, X: x, Start: q})
		x += b.Wid
		q += b.Runes()
		lines[li].End = q
	}
	fits := func(w int) bool {
		return width <= 0 || x == 0 || x+w <= width
	}

	for _, b := range boxes {
		switch {
		case b.IsNewline():
			b.Wid = 0
			place(b)
			breakLine()
		case b.IsTab():
			b.Wid = tabBoxWidth(x, maxtab)
			if !fits(b.Wid) {
				breakLine()
				b.Wid = tabBoxWidth(x, maxtab)
			}
			place(b)
		default:
			text := b.Text
			for len(text) > 0 {
				n, nb, w := 0, 0, 0
				for nb < len(text) {
					_, size := utf8.DecodeRune(text[nb:])
					rw := font.BytesWidth(text[nb : nb+size])
					if width > 0 && x+w+rw > width && x+w > 0 {
						break
					}
					n++
					nb += size
					w += rw
				}
				if n == 0 {
					breakLine()
					continue
				}
				place(Box{Text: text[:nb], Nrune: n, Wid: w})
				text = text[nb:]
				if len(text) > 0 {
					breakLine()
				}
			}
		}
	}
	return lines
}

// runeAtX returns the index of the rune in text under pixel offset x.
func runeAtX(font draw.Font, text []byte, x int) int {
	cumWidth := 0
	runeIdx := 0
	for i := 0; i < len(text); {
		_, runeLen := utf8.DecodeRune(text[i:])
		runeWidth := font.BytesWidth(text[i : i+runeLen])
		if cumWidth+runeWidth > x {
			return runeIdx
		}
		cumWidth += runeWidth
		runeIdx++
		i += runeLen
	}
	return runeIdx
}

// widthOfRunes measures the first n runes of text.
func widthOfRunes(font draw.Font, text []byte, n int) int {
	nb := 0
	for i := 0; i < n && nb < len(text); i++ {
		_, size := utf8.DecodeRune(text[nb:])
		nb += size
	}
	return font.BytesWidth(text[:nb])
}
