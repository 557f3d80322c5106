//go:build linux

// fbdev opens Linux framebuffer devices (/dev/fb*) and exposes their
// memory mapped pixel regions as surfaces that fbtxt renderers can
// draw on.
//
// Only linear, direct color framebuffers with 3 or 4 bytes per pixel
// are supported; no panning, palettes or non-sequential row layouts.
// Opening a device usually requires write access to the device node
// (on most systems, membership in the video group or root).
package fbdev

import "fmt"
import "os"
import "unsafe"

import "golang.org/x/sys/unix"

import "github.com/fbtxt/fbtxt/surface"

// An open, memory mapped framebuffer device.
//
// The mapped region's lifetime strictly contains every operation on
// surfaces bound to it: using a surface after [Device.Close]() is
// undefined. Devices are exclusively owned by one rendering session;
// if multiple processes must share one, external synchronization is
// the caller's problem.
type Device struct {
	file   *os.File
	data   []byte
	width  int
	height int
	bpp    int
	stride int
}

// Opens the framebuffer device at the given path (e.g. "/dev/fb0"),
// queries its geometry and maps its pixel memory. Failures to open,
// query or map are returned as distinct wrapped errors.
func Open(path string) (*Device, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("can't open framebuffer device: %w", err)
	}

	var fixInfo fixScreenInfo
	var varInfo varScreenInfo
	err = ioctlPointer(file.Fd(), fbioGetFixScreenInfo, unsafe.Pointer(&fixInfo))
	if err == nil {
		err = ioctlPointer(file.Fd(), fbioGetVarScreenInfo, unsafe.Pointer(&varInfo))
	}
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("can't query framebuffer geometry of %s: %w", path, err)
	}

	width := int(varInfo.XRes)
	height := int(varInfo.YRes)
	bpp := int(varInfo.BitsPerPixel)/8
	if width <= 0 || height <= 0 || (bpp != 3 && bpp != 4) {
		_ = file.Close()
		return nil, fmt.Errorf(
			"unsupported framebuffer geometry on %s: %dx%d at %d bits per pixel",
			path, width, height, varInfo.BitsPerPixel,
		)
	}

	// the reported line length can exceed the pixel data per row
	// (row slop), but never sanely undercut it
	stride := int(fixInfo.LineLength)
	if stride < width*bpp { stride = width*bpp }

	size := stride*height
	if int(fixInfo.SmemLen) < size {
		_ = file.Close()
		return nil, fmt.Errorf(
			"framebuffer %s reports %d bytes of memory, geometry needs %d",
			path, fixInfo.SmemLen, size,
		)
	}

	data, err := unix.Mmap(int(file.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("can't map framebuffer memory of %s: %w", path, err)
	}

	return &Device{
		file: file,
		data: data,
		width: width,
		height: height,
		bpp: bpp,
		stride: stride,
	}, nil
}

// Returns the displayed width in pixels.
func (self *Device) Width() int { return self.width }

// Returns the displayed height in pixels.
func (self *Device) Height() int { return self.height }

// Returns the number of bytes per pixel (3 or 4).
func (self *Device) BytesPerPixel() int { return self.bpp }

// Returns the byte distance between vertically adjacent pixel rows.
func (self *Device) Stride() int { return self.stride }

// Binds a [surface.Surface] to the device's mapped pixel memory.
func (self *Device) Surface() (*surface.Surface, error) {
	if self.data == nil { return nil, fmt.Errorf("framebuffer device already closed") }
	return surface.New(self.data, self.width, self.height, self.bpp, self.stride)
}

// Unmaps the pixel memory and closes the device. Safe to call more
// than once. No surface bound to the device may be used afterwards.
func (self *Device) Close() error {
	var err error
	if self.data != nil {
		err = unix.Munmap(self.data)
		self.data = nil
	}
	if self.file != nil {
		closeErr := self.file.Close()
		if err == nil { err = closeErr }
		self.file = nil
	}
	return err
}

func ioctlPointer(fd uintptr, request uint32, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(request), uintptr(arg))
	if errno != 0 { return errno }
	return nil
}
