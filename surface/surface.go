// surface implements the packed-pixel buffer engine used as the
// drawing target of fbtxt renderers.
//
// A [Surface] wraps a linear byte region whose rows may carry padding
// bytes ("slop") beyond the pixel data, as memory mapped framebuffers
// commonly do. It only models sequential row ordering and direct
// color: no palette mapping, no non-linear layouts.
package surface

import "errors"
import "strconv"

// A packed-pixel buffer addressed by (x, y) pixel coordinates.
//
// The backing byte region is caller-owned: the surface never grows,
// shrinks or reallocates it, and the region must outlive every
// operation on the surface. Pixels are stored as (B, G, R) byte
// triples, plus one padding byte when there are 4 bytes per pixel.
type Surface struct {
	data   []byte
	width  int
	height int
	bpp    int // bytes per pixel, 3 or 4
	stride int // bytes between vertically adjacent rows
	slop   int // stride - width*bpp
}

// Binds a [Surface] to the given byte region. The stride is the byte
// distance between vertically adjacent rows and must be at least
// width*bytesPerPixel; whatever exceeds that is row slop and is never
// written by pixel operations. The region must hold at least
// stride*height bytes so that [Surface.Clear]() stays in bounds.
func New(data []byte, width, height, bytesPerPixel, stride int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New("surface dimensions must be positive")
	}
	if bytesPerPixel != 3 && bytesPerPixel != 4 {
		return nil, errors.New("surface requires 3 or 4 bytes per pixel, got " + strconv.Itoa(bytesPerPixel))
	}
	if stride < width*bytesPerPixel {
		return nil, errors.New(
			"surface stride (" + strconv.Itoa(stride) + ") smaller than row pixel data (" +
			strconv.Itoa(width*bytesPerPixel) + ")",
		)
	}
	if len(data) < stride*height {
		return nil, errors.New(
			"surface backing region too small: got " + strconv.Itoa(len(data)) +
			" bytes, need " + strconv.Itoa(stride*height),
		)
	}
	return &Surface{
		data: data,
		width: width,
		height: height,
		bpp: bytesPerPixel,
		stride: stride,
		slop: stride - width*bytesPerPixel,
	}, nil
}

// Returns the surface width in pixels.
func (self *Surface) Width() int { return self.width }

// Returns the surface height in pixels.
func (self *Surface) Height() int { return self.height }

// Returns the number of bytes per pixel (3 or 4).
func (self *Surface) BytesPerPixel() int { return self.bpp }

// Returns the byte distance between vertically adjacent rows.
func (self *Surface) Stride() int { return self.stride }

// Whether the coordinate survives the pixel operation bound check.
// The zero row and column are excluded along with the w/h edges;
// this asymmetric rule is kept intact from the original framebuffer
// writers this package models.
func (self *Surface) inBounds(x, y int) bool {
	return x > 0 && x < self.width && y > 0 && y < self.height
}

// Writes the color channels of the pixel at (x, y), plus a zero
// padding byte on 4-byte-per-pixel surfaces. Out of bounds
// coordinates are silently ignored; see [Surface.inBounds] for the
// exact rule.
func (self *Surface) SetPixel(x, y int, r, g, b byte) {
	if !self.inBounds(x, y) { return }
	index := (y*self.width + x)*self.bpp + y*self.slop
	self.data[index + 0] = b
	self.data[index + 1] = g
	self.data[index + 2] = r
	if self.bpp == 4 { self.data[index + 3] = 0 }
}

// Reads back the color channels of the pixel at (x, y). Out of
// bounds coordinates (same rule as [Surface.SetPixel]()) read as
// (0, 0, 0).
func (self *Surface) GetPixel(x, y int) (r, g, b byte) {
	if !self.inBounds(x, y) { return 0, 0, 0 }
	index := (y*self.width + x)*self.bpp + y*self.slop
	return self.data[index + 2], self.data[index + 1], self.data[index + 0]
}

// Zero-fills the full addressable region (stride*height bytes), slop
// included. A coarse but simple full wipe.
func (self *Surface) Clear() {
	region := self.data[ : self.stride*self.height]
	for i := range region {
		region[i] = 0
	}
}

// Exposes the backing byte region for bulk operations. Callers must
// independently know the surface layout to use it meaningfully.
func (self *Surface) Data() []byte { return self.data }
