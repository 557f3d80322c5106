package face

import "image"
import "image/draw"
import "strconv"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

import "github.com/fbtxt/fbtxt"

// Renders the outline of the given glyph into a tight 8-bit coverage
// bitmap. The bitmap's top row corresponds to the glyph's BearingY and
// its left column to the start of the glyph ink, matching the pixel
// cell that [Face.Measure]() reports.
func (self *Face) rasterize(index sfnt.GlyphIndex) fbtxt.GlyphBitmap {
	segments, err := self.font.LoadGlyph(&self.buffer, index, self.size, nil)
	if err != nil {
		panic("font.LoadGlyph(index = " + strconv.Itoa(int(index)) + ") error: " + err.Error())
	}
	if !hasInk(segments) { return fbtxt.GlyphBitmap{} }

	// figure out the tight pixel cell of the outline and the offset
	// that normalizes its coordinates to the positive quadrant, as
	// the x/image/vector rasterizer expects
	bounds := segments.Bounds()
	minX := bounds.Min.X.Floor()
	minY := bounds.Min.Y.Floor()
	width := bounds.Max.X.Ceil() - minX
	height := bounds.Max.Y.Ceil() - minY
	if width <= 0 || height <= 0 { return fbtxt.GlyphBitmap{} }
	offset := fixed.Point26_6{X: -fixed.I(minX), Y: -fixed.I(minY)}

	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src
	for _, segment := range segments {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			ax, ay := segmentCoords(segment.Args[0], offset)
			self.rasterizer.MoveTo(ax, ay)
		case sfnt.SegmentOpLineTo:
			ax, ay := segmentCoords(segment.Args[0], offset)
			self.rasterizer.LineTo(ax, ay)
		case sfnt.SegmentOpQuadTo:
			ax, ay := segmentCoords(segment.Args[0], offset)
			bx, by := segmentCoords(segment.Args[1], offset)
			self.rasterizer.QuadTo(ax, ay, bx, by)
		case sfnt.SegmentOpCubeTo:
			ax, ay := segmentCoords(segment.Args[0], offset)
			bx, by := segmentCoords(segment.Args[1], offset)
			cx, cy := segmentCoords(segment.Args[2], offset)
			self.rasterizer.CubeTo(ax, ay, bx, by, cx, cy)
		default:
			panic("unexpected segment op " + strconv.Itoa(int(segment.Op)))
		}
	}
	// the source texture is a uniform, so the sampling start point
	// (last parameter) is unimportant
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return fbtxt.GlyphBitmap{
		Rows: height,
		Width: width,
		Pitch: mask.Stride,
		Coverage: mask.Pix,
	}
}

func segmentCoords(point fixed.Point26_6, offset fixed.Point26_6) (float32, float32) {
	return float32(point.X + offset.X)/64, float32(point.Y + offset.Y)/64
}

// Whether the outline contains any lines or curves. Space glyphs and
// other empty glyphs only carry MoveTo ops, if anything.
func hasInk(segments sfnt.Segments) bool {
	for _, segment := range segments {
		if segment.Op != sfnt.SegmentOpMoveTo { return true }
	}
	return false
}
