//go:build !linux

package fbdev

import "errors"

import "github.com/fbtxt/fbtxt/surface"

// Stub so that programs using fbdev still compile on systems without
// framebuffer devices. Open always fails there.

type Device struct{}

var errUnsupported = errors.New("framebuffer devices are only supported on linux")

func Open(path string) (*Device, error) { return nil, errUnsupported }

func (self *Device) Width() int { return 0 }
func (self *Device) Height() int { return 0 }
func (self *Device) BytesPerPixel() int { return 0 }
func (self *Device) Stride() int { return 0 }
func (self *Device) Surface() (*surface.Surface, error) { return nil, errUnsupported }
func (self *Device) Close() error { return nil }
