package surface

import "testing"

func newTestSurface(t *testing.T, width, height, bpp, stride int) *Surface {
	t.Helper()
	target, err := New(make([]byte, stride*height), width, height, bpp, stride)
	if err != nil { t.Fatalf("unexpected surface error: %s", err.Error()) }
	return target
}

func TestNewValidation(t *testing.T) {
	buffer := make([]byte, 1024)
	_, err := New(buffer, 0, 8, 4, 32)
	if err == nil { t.Fatal("expected an error for zero width") }
	_, err = New(buffer, 8, -1, 4, 32)
	if err == nil { t.Fatal("expected an error for negative height") }
	_, err = New(buffer, 8, 8, 2, 32)
	if err == nil { t.Fatal("expected an error for 2 bytes per pixel") }
	_, err = New(buffer, 8, 8, 4, 31)
	if err == nil { t.Fatal("expected an error for a stride below the row pixel data") }
	_, err = New(make([]byte, 255), 8, 8, 4, 32)
	if err == nil { t.Fatal("expected an error for a backing region below stride*height") }

	target, err := New(buffer, 8, 8, 4, 32)
	if err != nil { t.Fatalf("unexpected error: %s", err.Error()) }
	if target.Width() != 8 || target.Height() != 8 { t.Fatal("unexpected dimensions") }
	if target.BytesPerPixel() != 4 || target.Stride() != 32 { t.Fatal("unexpected layout") }
}

func TestRoundTrip(t *testing.T) {
	for _, bpp := range []int{3, 4} {
		stride := 16*bpp + 7 // 7 bytes of row slop
		target := newTestSurface(t, 16, 16, bpp, stride)
		coords := [][2]int{{1, 1}, {7, 3}, {15, 15}, {1, 15}, {15, 1}}
		for _, coord := range coords {
			target.SetPixel(coord[0], coord[1], 10, 20, 30)
			r, g, b := target.GetPixel(coord[0], coord[1])
			if r != 10 || g != 20 || b != 30 {
				t.Fatalf(
					"bpp %d: round trip at (%d, %d) got (%d, %d, %d)",
					bpp, coord[0], coord[1], r, g, b,
				)
			}
		}
	}
}

func TestBoundExclusion(t *testing.T) {
	target := newTestSurface(t, 16, 16, 4, 64)

	// the zero row and column are excluded, as are x >= w and y >= h
	for _, coord := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {16, 5}, {5, 16}, {-1, 5}, {5, -1}} {
		target.SetPixel(coord[0], coord[1], 255, 255, 255)
		r, g, b := target.GetPixel(coord[0], coord[1])
		if r != 0 || g != 0 || b != 0 {
			t.Fatalf("expected (0, 0, 0) at excluded coordinate (%d, %d)", coord[0], coord[1])
		}
	}
	for _, value := range target.Data() {
		if value != 0 { t.Fatal("out of bounds writes must not touch the backing region") }
	}

	// ...but (w-1, h-1) is addressable
	target.SetPixel(15, 15, 1, 2, 3)
	r, g, b := target.GetPixel(15, 15)
	if r != 1 || g != 2 || b != 3 { t.Fatal("expected (w-1, h-1) to be writable") }
}

func TestPixelAddressing(t *testing.T) {
	// row base is y*(w*bpp) + y*slop; pixel bytes are (B, G, R, pad)
	target := newTestSurface(t, 8, 8, 4, 40) // slop 8
	target.SetPixel(2, 3, 9, 8, 7)
	data := target.Data()
	base := 3*40 + 2*4
	if data[base] != 7 || data[base+1] != 8 || data[base+2] != 9 || data[base+3] != 0 {
		t.Fatalf("unexpected bytes at row base: %v", data[base:base+4])
	}
}

func TestSlopNeverWritten(t *testing.T) {
	width, height, bpp, stride := 8, 8, 4, 40 // 8 bytes of slop per row
	data := make([]byte, stride*height)
	target, err := New(data, width, height, bpp, stride)
	if err != nil { t.Fatalf("unexpected surface error: %s", err.Error()) }

	// sentinel-fill the slop, write every addressable pixel
	for y := 0; y < height; y++ {
		for i := width*bpp; i < stride; i++ {
			data[y*stride + i] = 0xAA
		}
	}
	for y := 1; y < height; y++ {
		for x := 1; x < width; x++ {
			target.SetPixel(x, y, 255, 255, 255)
		}
	}
	for y := 0; y < height; y++ {
		for i := width*bpp; i < stride; i++ {
			if data[y*stride + i] != 0xAA {
				t.Fatalf("slop byte %d of row %d was written", i, y)
			}
		}
	}

	// Clear is the coarse exception: it wipes slop too
	target.Clear()
	for _, value := range data {
		if value != 0 { t.Fatal("expected Clear to zero the full region, slop included") }
	}
}

func TestThreeBytesPerPixelNoPad(t *testing.T) {
	// at 3 bytes per pixel no padding byte is written: two adjacent
	// pixels must not clobber each other
	target := newTestSurface(t, 8, 8, 3, 24)
	target.SetPixel(2, 1, 10, 20, 30)
	target.SetPixel(1, 1, 40, 50, 60)
	r, g, b := target.GetPixel(2, 1)
	if r != 10 || g != 20 || b != 30 {
		t.Fatalf("adjacent pixel clobbered: got (%d, %d, %d)", r, g, b)
	}
}
