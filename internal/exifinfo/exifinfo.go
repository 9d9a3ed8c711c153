// Package exifinfo extracts capture metadata for display. Everything here is
// best-effort: most screenshots and exports carry no EXIF block at all.
package exifinfo

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// CaptureTime returns the EXIF capture time of the image at path.
// The second return is false when the file has no usable EXIF data.
func CaptureTime(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}
	t, err := x.DateTime()
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
