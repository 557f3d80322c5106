//go:build linux

package fbdev

import "testing"
import "unsafe"

// The ioctl argument structs must match the kernel's <linux/fb.h>
// layout byte for byte, or the geometry reads will be garbage.

func TestVarScreenInfoLayout(t *testing.T) {
	if size := unsafe.Sizeof(varScreenInfo{}); size != 160 {
		t.Fatalf("fb_var_screeninfo must be 160 bytes, got %d", size)
	}
	var info varScreenInfo
	if offset := unsafe.Offsetof(info.BitsPerPixel); offset != 24 {
		t.Fatalf("bits_per_pixel must be at offset 24, got %d", offset)
	}
	if offset := unsafe.Offsetof(info.Red); offset != 32 {
		t.Fatalf("red bitfield must be at offset 32, got %d", offset)
	}
}

func TestFixScreenInfoLayout(t *testing.T) {
	if size := unsafe.Sizeof(fixScreenInfo{}); size != 80 {
		t.Fatalf("fb_fix_screeninfo must be 80 bytes, got %d", size)
	}
	var info fixScreenInfo
	if offset := unsafe.Offsetof(info.SmemLen); offset != 24 {
		t.Fatalf("smem_len must be at offset 24, got %d", offset)
	}
	if offset := unsafe.Offsetof(info.LineLength); offset != 48 {
		t.Fatalf("line_length must be at offset 48, got %d", offset)
	}
	if offset := unsafe.Offsetof(info.MmioStart); offset != 56 {
		t.Fatalf("mmio_start must be at offset 56, got %d", offset)
	}
}

func TestOpenErrors(t *testing.T) {
	_, err := Open("/definitely/not/a/framebuffer")
	if err == nil { t.Fatal("expected an error for a missing device") }

	// a regular file is not a framebuffer: the geometry ioctls fail
	_, err = Open("/dev/null")
	if err == nil { t.Fatal("expected an error for a non-framebuffer device") }
}
