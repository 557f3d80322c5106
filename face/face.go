// face implements the fbtxt glyph source collaborator on top of
// [golang.org/x/image/font/sfnt] fonts (.ttf / .otf).
//
// A [Face] fixes a font and a pixel size and converts the font's 26.6
// fixed point metrics down to the whole-pixel values that the layout
// and rendering core works with.
package face

import "errors"
import "strconv"

import "golang.org/x/image/font"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import "golang.org/x/image/vector"

import "github.com/fbtxt/fbtxt"

var _ fbtxt.GlyphSource = (*Face)(nil)

// A font face at a fixed pixel size, implementing [fbtxt.GlyphSource].
//
// Faces keep a per code point cache of measured metrics and rendered
// coverage bitmaps, so repeated glyphs are only measured and
// rasterized once. Faces can't be used concurrently.
type Face struct {
	font       *sfnt.Font
	buffer     sfnt.Buffer
	rasterizer vector.Rasterizer
	size       fixed.Int26_6
	metrics    fbtxt.FaceMetrics
	glyphs     map[rune]*faceGlyph
}

type faceGlyph struct {
	index     sfnt.GlyphIndex
	metrics   fbtxt.GlyphMetrics
	bitmap    fbtxt.GlyphBitmap
	hasBitmap bool
}

// Creates a [Face] of the given font at the given pixel size. The
// face-wide metrics (line spacing, space advance, bounding box
// ascent) are computed once here.
func New(sfntFont *sfnt.Font, sizePx int) (*Face, error) {
	if sfntFont == nil { return nil, errors.New("can't create a Face with a nil font") }
	if sizePx <= 0 {
		return nil, errors.New("face size must be positive, got " + strconv.Itoa(sizePx))
	}

	face := &Face{
		font: sfntFont,
		size: fixed.I(sizePx),
		glyphs: make(map[rune]*faceGlyph),
	}

	fontMetrics, err := sfntFont.Metrics(&face.buffer, face.size, font.HintingNone)
	if err != nil {
		return nil, errors.New("can't read font metrics: " + err.Error())
	}
	bounds, err := sfntFont.Bounds(&face.buffer, face.size, font.HintingNone)
	if err != nil {
		return nil, errors.New("can't read font bounding box: " + err.Error())
	}

	// sfnt uses y-down coordinates, so the bounding box ascent is
	// the negated minimum y
	face.metrics = fbtxt.FaceMetrics{
		LineSpacing: fontMetrics.Height.Floor(),
		AscentMax: (-bounds.Min.Y).Ceil(),
	}
	face.metrics.SpaceAdvance = face.glyph(' ').metrics.Advance
	return face, nil
}

// Satisfies the [fbtxt.GlyphSource] interface.
func (self *Face) Metrics() fbtxt.FaceMetrics { return self.metrics }

// Satisfies the [fbtxt.GlyphSource] interface.
//
// Code points without a glyph in the font are measured through the
// font's notdef glyph.
func (self *Face) Measure(codePoint rune) fbtxt.GlyphMetrics {
	return self.glyph(codePoint).metrics
}

// Satisfies the [fbtxt.GlyphSource] interface.
//
// Glyphs without any ink (e.g. spaces) return an empty bitmap.
func (self *Face) Rasterize(codePoint rune) fbtxt.GlyphBitmap {
	glyph := self.glyph(codePoint)
	if !glyph.hasBitmap {
		glyph.bitmap = self.rasterize(glyph.index)
		glyph.hasBitmap = true
	}
	return glyph.bitmap
}

// Returns the cached glyph entry for the given code point, measuring
// it first if this is the first time it's seen. Font-level failures
// beyond missing glyphs are programmer or font data errors and panic,
// there's no reasonable way to keep rendering through them.
func (self *Face) glyph(codePoint rune) *faceGlyph {
	glyph, found := self.glyphs[codePoint]
	if found { return glyph }

	// missing code points map to index 0, the notdef glyph
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil { index = 0 }

	bounds, advance, err := self.font.GlyphBounds(&self.buffer, index, self.size, font.HintingNone)
	if err != nil {
		panic("font.GlyphBounds(index = " + strconv.Itoa(int(index)) + ") error: " + err.Error())
	}

	glyph = &faceGlyph{
		index: index,
		metrics: fbtxt.GlyphMetrics{
			Advance: advance.Floor(),
			Width: bounds.Max.X.Ceil() - bounds.Min.X.Floor(),
			BearingY: (-bounds.Min.Y).Ceil(),
		},
	}
	self.glyphs[codePoint] = glyph
	return glyph
}
