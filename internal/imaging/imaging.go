// Package imaging loads images and scales them to fit the display box.
package imaging

import (
	"fmt"
	"image"
	_ "image/jpeg" // decoders for the accepted queue extensions
	_ "image/png"
	"os"

	"github.com/nfnt/resize"
)

// Load decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", path, err)
	}
	return img, nil
}

// FitWithin scales img down to fit within maxWidth x maxHeight, preserving
// aspect ratio. Images already inside the box are returned unchanged.
func FitWithin(img image.Image, maxWidth, maxHeight uint) image.Image {
	b := img.Bounds()
	if uint(b.Dx()) <= maxWidth && uint(b.Dy()) <= maxHeight {
		return img
	}
	return resize.Thumbnail(maxWidth, maxHeight, img, resize.Lanczos3)
}
