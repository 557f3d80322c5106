// Command fbtxt draws words onto a Linux framebuffer device using a
// TrueType or OpenType font, wrapping lines within a bounding box.
//
// Usage:
//
//	fbtxt [options] font_file word1 word2 ...
//
// All positions and sizes are in screen pixels. It only really works
// against a black background; there is no blending of the glyph
// antialiasing data with existing framebuffer content.
package main

import "flag"
import "fmt"
import "os"

import "golang.org/x/text/encoding/charmap"

import "github.com/fbtxt/fbtxt"
import "github.com/fbtxt/fbtxt/face"
import "github.com/fbtxt/fbtxt/fbdev"

const version = "1.0.0"

var (
	devPath   = flag.String("dev", "/dev/fb0", "framebuffer device")
	fontSize  = flag.Int("size", 20, "font height in pixels")
	initX     = flag.Int("x", 5, "initial X coordinate")
	initY     = flag.Int("y", 5, "initial Y coordinate")
	boxWidth  = flag.Int("width", 500, "width of the bounding box")
	boxHeight = flag.Int("height", 500, "height of the bounding box")
	alignName = flag.String("align", "left", "horizontal alignment (left or center)")
	clear     = flag.Bool("clear", false, "clear the screen before writing")
	latin1    = flag.Bool("latin1", false, "treat input words as ISO-8859-1 instead of UTF-8")
	verbosity = flag.Int("v", 0, "log verbosity (0..2)")
	showVer   = flag.Bool("version", false, "show version and exit")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *showVer {
		fmt.Printf("fbtxt version %s\n", version)
		return
	}
	if flag.NArg() < 2 {
		usage()
		os.Exit(2)
	}

	err := run(flag.Arg(0), flag.Args()[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "fbtxt: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] font_file word1 word2 ...\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "font_file is any TTF or OTF font file.\n")
	fmt.Fprintf(os.Stderr, "All positions and sizes are in screen pixels.\n")
	flag.PrintDefaults()
}

func run(fontPath string, words []string) error {
	logs := newLogs(*verbosity)

	alignment, err := fbtxt.ParseAlign(*alignName)
	if err != nil { return err }

	device, err := fbdev.Open(*devPath)
	if err != nil { return err }
	defer device.Close()
	logs.debugf(
		"framebuffer %s: %dx%d px, %d bytes/px, stride %d",
		*devPath, device.Width(), device.Height(), device.BytesPerPixel(), device.Stride(),
	)

	target, err := device.Surface()
	if err != nil { return err }

	sfntFont, fontName, err := face.ParseFromPath(fontPath)
	if err != nil { return fmt.Errorf("can't load font %s: %w", fontPath, err) }
	logs.infof("loaded font %q", fontName)

	source, err := face.New(sfntFont, *fontSize)
	if err != nil { return fmt.Errorf("can't size font to %d px: %w", *fontSize, err) }
	metrics := source.Metrics()
	logs.debugf(
		"face metrics: space %d px, line spacing %d px, ascent %d px",
		metrics.SpaceAdvance, metrics.LineSpacing, metrics.AscentMax,
	)

	if *clear {
		target.Clear()
	}

	codePointWords, err := decodeWords(words, *latin1)
	if err != nil { return err }
	logs.infof("drawing %d words at (%d, %d)", len(codePointWords), *initX, *initY)

	renderer := fbtxt.NewRenderer(source)
	renderer.SetAlign(alignment)
	renderer.Draw(target, fbtxt.Boundary{
		X: *initX,
		Y: *initY,
		Width: *boxWidth,
		Height: *boxHeight,
	}, codePointWords)
	return nil
}

// Converts the command line words to code point sequences. With
// latin1 set, the raw argument bytes are decoded as ISO-8859-1
// first; otherwise they are expected to already be UTF-8.
func decodeWords(words []string, latin1 bool) ([][]rune, error) {
	codePointWords := make([][]rune, len(words))
	for i, word := range words {
		if latin1 {
			decoded, err := charmap.ISO8859_1.NewDecoder().String(word)
			if err != nil {
				return nil, fmt.Errorf("can't decode word %q as ISO-8859-1: %w", word, err)
			}
			word = decoded
		}
		codePointWords[i] = []rune(word)
	}
	return codePointWords, nil
}

// ---- leveled stderr logging ----

type logs struct { level int }

func newLogs(level int) logs { return logs{level: level} }

func (self logs) infof(format string, args ...any) {
	if self.level >= 1 { fmt.Fprintf(os.Stderr, "info: " + format + "\n", args...) }
}

func (self logs) debugf(format string, args ...any) {
	if self.level >= 2 { fmt.Fprintf(os.Stderr, "debug: " + format + "\n", args...) }
}
