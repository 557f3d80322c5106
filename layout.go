package fbtxt

// The rectangle within which text is laid out. X and Y are the top
// left corner of the first line's character cell, in target pixels.
//
// Notice that the wrap limit of every line is Width measured from the
// target's origin, not from X; in other words, the first column of
// text at X > 0 has Width - X usable pixels. This matches the layout
// behavior of classic framebuffer text writers, and keeping it makes
// layouts reproducible against them.
type Boundary struct {
	X      int
	Y      int
	Width  int
	Height int
}

// A word as seen by the layout algorithm: its code points plus its
// measured pixel extents. XExtent is the sum of the horizontal
// advances of its glyphs; YExtent is the line spacing implied by the
// face. Extents are computed once, before layout (see [MeasureWords]()),
// and never mutated afterwards.
type Word struct {
	CodePoints []rune
	XExtent    int
	YExtent    int
}

// One visual row of laid out text: an ordered subsequence of the
// input words plus the row's vertical pixel position.
type Line struct {
	Words []Word
	Y     int
}

// Returns the total pixel width of the line: the word extents plus
// one space advance between each pair of adjacent words.
func (self Line) Width(spaceAdvance int) int {
	if len(self.Words) == 0 { return 0 }
	width := (len(self.Words) - 1)*spaceAdvance
	for _, word := range self.Words {
		width += word.XExtent
	}
	return width
}

// Computes the pixel extents of each code point sequence through the
// given glyph source. The result is the input of [BreakLines]().
func MeasureWords(source GlyphSource, codePointWords [][]rune) []Word {
	metrics := source.Metrics()
	words := make([]Word, len(codePointWords))
	for i, codePoints := range codePointWords {
		var xExtent int
		for _, codePoint := range codePoints {
			xExtent += source.Measure(codePoint).Advance
		}
		words[i] = Word{
			CodePoints: codePoints,
			XExtent: xExtent,
			YExtent: metrics.LineSpacing,
		}
	}
	return words
}

// Greedily packs words into lines within the given boundary. This is
// a deterministic single pass over the words, in order:
//   - A word that no longer fits the width of a non-empty line starts
//     a new line. The fit test is strict (a line whose advance equals
//     the width exactly is not wrapped).
//   - A word wider than the whole boundary is still placed, alone on
//     its own line, rather than rejected.
//   - Lines are only produced while their vertical position plus one
//     line spacing remains strictly inside the boundary height. Once
//     the height is exhausted, the current word and every word after
//     it are dropped; the height check takes priority over wrapping,
//     so a word that would overflow both width and height is dropped,
//     not wrapped.
//
// The concatenation of the returned lines' words always preserves a
// prefix of the input in its original order. An empty word list or a
// degenerate boundary produce no lines.
func BreakLines(boundary Boundary, words []Word, metrics FaceMetrics) []Line {
	var lines []Line
	var lineWords []Word
	currX := boundary.X
	currY := boundary.Y
	maxY := boundary.Y + boundary.Height

	for _, word := range words {
		// stop if the next line spacing no longer fits the boundary
		if currY + metrics.LineSpacing >= maxY { return lines }

		// wrap if the word doesn't fit the current non-empty line
		if len(lineWords) > 0 && currX + word.XExtent + metrics.SpaceAdvance > boundary.Width {
			lines = append(lines, Line{Words: lineWords, Y: currY})
			lineWords = nil
			currX = boundary.X
			currY += metrics.LineSpacing

			// height exhaustion wins over wrapping
			if currY + metrics.LineSpacing >= maxY { return lines }
		}

		lineWords = append(lineWords, word)
		currX += word.XExtent + metrics.SpaceAdvance
	}

	// flush the line under construction
	if len(lineWords) > 0 {
		lines = append(lines, Line{Words: lineWords, Y: currY})
	}
	return lines
}
