// fbtxt lays out and renders words onto raw packed-pixel buffers,
// such as a memory mapped Linux framebuffer.
//
// The core is split in three small pieces:
//   - [BreakLines]() greedily packs measured words into lines within
//     a [Boundary], wrapping on width and truncating on height.
//   - [Renderer] draws the resulting lines, left aligned or centered,
//     by asking a [GlyphSource] for coverage bitmaps and writing the
//     non-zero texels to a [Target].
//   - [github.com/fbtxt/fbtxt/surface.Surface] is the packed-pixel
//     [Target]: a byte region with arbitrary stride, bytes per pixel
//     and row padding, addressed by (x, y).
//
// Glyph rasterization and device access live in their own packages:
// [github.com/fbtxt/fbtxt/face] implements [GlyphSource] over sfnt
// fonts, and [github.com/fbtxt/fbtxt/fbdev] opens and maps /dev/fb*
// devices. A typical session looks like this:
//
//	device, err := fbdev.Open("/dev/fb0")
//	if err != nil { ... }
//	defer device.Close()
//	target, err := device.Surface()
//	if err != nil { ... }
//
//	font, _, err := face.ParseFromPath("some_font.ttf")
//	if err != nil { ... }
//	source, err := face.New(font, 20)
//	if err != nil { ... }
//
//	renderer := fbtxt.NewRenderer(source)
//	renderer.Draw(target, fbtxt.Boundary{X: 5, Y: 5, Width: 500, Height: 500},
//		fbtxt.SplitWords("hello framebuffer world"))
//
// Drawing assumes a black background: glyph coverage is written as
// grayscale directly, with no blending against existing content.
package fbtxt
