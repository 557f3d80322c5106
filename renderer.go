package fbtxt

// The [Renderer] walks laid out lines and writes their glyphs onto a
// [Target], pixel by pixel. It keeps no state between draws beyond its
// configuration: a draw is a pure function of (boundary, words, align)
// producing pixel writes.
type Renderer struct {
	source  GlyphSource
	metrics FaceMetrics
	align   Align
}

// Creates a [Renderer] over the given glyph source. The source's face
// metrics are obtained once here and reused on every draw.
func NewRenderer(source GlyphSource) *Renderer {
	if source == nil { panic("can't create a Renderer with a nil GlyphSource") }
	return &Renderer{
		source: source,
		metrics: source.Metrics(),
	}
}

// Sets the horizontal alignment used on subsequent draws.
// The default is [Left].
func (self *Renderer) SetAlign(align Align) { self.align = align }

// Returns the current horizontal alignment.
func (self *Renderer) GetAlign() Align { return self.align }

// Returns the face metrics the renderer was created with.
func (self *Renderer) Metrics() FaceMetrics { return self.metrics }

// Measures the given words, breaks them into lines fitting the given
// boundary and draws the result onto the target. Words that don't fit
// the boundary height are dropped, never partially drawn; see
// [BreakLines]() for the exact layout rules.
func (self *Renderer) Draw(target Target, boundary Boundary, codePointWords [][]rune) {
	if target == nil { panic("can't draw on a nil Target") }
	words := MeasureWords(self.source, codePointWords)
	lines := BreakLines(boundary, words, self.metrics)
	self.DrawLines(target, boundary, lines)
}

// Draws lines previously produced by [BreakLines]() onto the target.
// The boundary must be the same one the lines were laid out with, as
// it determines each line's horizontal start position.
func (self *Renderer) DrawLines(target Target, boundary Boundary, lines []Line) {
	if target == nil { panic("can't draw on a nil Target") }
	for _, line := range lines {
		self.drawLine(target, boundary, line)
	}
}

func (self *Renderer) drawLine(target Target, boundary Boundary, line Line) {
	x := self.lineStartX(boundary, line)
	for _, word := range line.Words {
		for _, codePoint := range word.CodePoints {
			x = self.drawGlyph(target, codePoint, x, line.Y)
		}
		x += self.metrics.SpaceAdvance
	}
}

// Integer arithmetic throughout: centering uses truncating division
// on both the boundary width and the line width.
func (self *Renderer) lineStartX(boundary Boundary, line Line) int {
	switch self.align {
	case Center:
		return boundary.Width/2 - line.Width(self.metrics.SpaceAdvance)/2 + boundary.X
	default: // Left
		return boundary.X
	}
}

// Draws a single glyph with its pen position at penX and its line's
// character cell starting at lineY, returning the advanced pen
// position. The glyph ink is pulled down to the common baseline
// (AscentMax - BearingY) and centered within its advance cell.
// Coverage is written as a grayscale value on all three channels;
// zero coverage texels are left untouched.
func (self *Renderer) drawGlyph(target Target, codePoint rune, penX, lineY int) int {
	glyphMetrics := self.source.Measure(codePoint)
	yOffset := self.metrics.AscentMax - glyphMetrics.BearingY
	xOffset := (glyphMetrics.Advance - glyphMetrics.Width)/2

	bitmap := self.source.Rasterize(codePoint)
	if !bitmap.Empty() {
		for row := 0; row < bitmap.Rows; row++ {
			for col := 0; col < bitmap.Width; col++ {
				p := bitmap.Coverage[row*bitmap.Pitch + col]
				if p != 0 {
					target.SetPixel(penX + col + xOffset, lineY + row + yOffset, p, p, p)
				}
			}
		}
	}
	return penX + glyphMetrics.Advance
}
