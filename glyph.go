package fbtxt

// This file contains the contracts between the layout/rendering core
// and its two external collaborators: the glyph metrics source and
// the pixel target.

// Font-wide measurements computed once per face and size, and then
// threaded explicitly through layout and drawing calls.
//
// All values are in whole pixels.
type FaceMetrics struct {
	SpaceAdvance int // horizontal advance of a single space
	LineSpacing  int // baseline-to-baseline distance of adjacent lines
	AscentMax    int // height of the face bounding box above the baseline
}

// Per-glyph measurements, in whole pixels.
//
// Advance is the nominal horizontal spacing allocated to the glyph,
// Width is the pixel width of the glyph's ink, and BearingY is how
// far the top of the ink extends above the baseline.
type GlyphMetrics struct {
	Advance  int
	Width    int
	BearingY int
}

// A rendered glyph: a Rows x Width grid of 8-bit coverage values.
// Rows are Pitch bytes apart within Coverage; only the first Width
// bytes of each row hold texels.
//
// Zero coverage texels are never drawn, so empty glyphs (e.g. spaces)
// may simply have Rows == 0.
type GlyphBitmap struct {
	Rows     int
	Width    int
	Pitch    int
	Coverage []byte
}

// Whether the bitmap contains no drawable texels.
func (self GlyphBitmap) Empty() bool {
	return self.Rows == 0 || self.Width == 0
}

// The glyph rasterization collaborator. Implementations convert code
// points into pixel measurements and coverage bitmaps at a fixed face
// size; see [github.com/fbtxt/fbtxt/face.Face] for the sfnt-backed one.
//
// All returned values must be in whole pixels (implementations over
// 26.6 fixed point metrics are expected to divide by 64 themselves).
type GlyphSource interface {
	// Returns the font-wide metrics of the source.
	Metrics() FaceMetrics

	// Returns the metrics of the glyph for the given code point.
	// Code points without a glyph in the face fall back to the
	// font's notdef glyph.
	Measure(codePoint rune) GlyphMetrics

	// Returns the coverage bitmap of the glyph for the given
	// code point.
	Rasterize(codePoint rune) GlyphBitmap
}

// The pixel target collaborator. Renderers only need to write single
// pixels; [github.com/fbtxt/fbtxt/surface.Surface] is the packed-pixel
// implementation.
//
// SetPixel must tolerate out of bounds coordinates (ignoring them
// rather than failing), as glyphs are clipped against the target by
// the target itself.
type Target interface {
	SetPixel(x, y int, r, g, b byte)
}
