// Package sprite loads the player image asset and resamples it to the size
// it is drawn at.
package sprite

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"

	"github.com/vovakirdan/orca-arcade/internal/core"
)

// ErrEmpty is returned when the source image has no pixels.
var ErrEmpty = errors.New("sprite: image has no pixels")

// Sprite is an image resampled to a fixed size.
type Sprite struct {
	img *image.RGBA
}

// Load reads an image file and scales it to w x h.
func Load(path string, w, h int) (*Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sprite: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f, w, h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads any registered image format and scales it to w x h.
func Decode(r io.Reader, w, h int) (*Sprite, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("sprite: decode: %w", err)
	}
	return FromImage(img, w, h)
}

// FromImage scales src to w x h with Catmull-Rom resampling.
func FromImage(src image.Image, w, h int) (*Sprite, error) {
	if src.Bounds().Empty() {
		return nil, ErrEmpty
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("sprite: invalid target size %dx%d", w, h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return &Sprite{img: dst}, nil
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int {
	return s.img.Bounds().Dy()
}

// At returns the straight (non-premultiplied) color and alpha at (x, y).
// Coordinates outside the sprite are clamped to its edge.
func (s *Sprite) At(x, y int) (core.RGB, uint8) {
	x = core.Clamp(x, 0, s.Width()-1)
	y = core.Clamp(y, 0, s.Height()-1)

	c := s.img.RGBAAt(x, y)
	if c.A == 0 {
		return core.RGB{}, 0
	}
	if c.A == 0xff {
		return core.RGB{R: c.R, G: c.G, B: c.B}, c.A
	}

	// Undo alpha premultiplication
	unmul := func(v uint8) uint8 {
		return uint8(min(255, int(v)*255/int(c.A)))
	}
	return core.RGB{R: unmul(c.R), G: unmul(c.G), B: unmul(c.B)}, c.A
}
