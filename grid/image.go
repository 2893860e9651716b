package grid

import (
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// NewGridFromImage decodes the raster at path, converts it to 8-bit
// grayscale, and classifies every pixel as Vacant or Occupied by comparing
// it against threshold according to occupied. The outermost ring of cells
// is forced Occupied regardless of image content, so the skeletonizer and
// extractor never read a foreground pixel on the border.
//
// Supported formats are whatever is registered with image.Decode: the
// stdlib's png/gif/jpeg plus bmp and tiff via blank import.
func NewGridFromImage(path string, occupied OccupiedColor, threshold uint8, cellSize float64) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrImageNotFound
	}
	defer f.Close()

	raw, _, err := image.Decode(f)
	if err != nil {
		return nil, ErrImageDecodeFailed
	}

	bounds := raw.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyImage
	}

	gray := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(gray, gray.Bounds(), raw, bounds.Min, draw.Src)

	g := &Grid{
		h:        h,
		w:        w,
		cells:    make([]State, h*w),
		cellSize: cellSize,
	}

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if r == 0 || c == 0 || r == h-1 || c == w-1 {
				g.set(r, c, Occupied)
				continue
			}

			v := gray.GrayAt(c, r).Y
			var s State
			switch {
			case occupied == Black && v < threshold:
				s = Occupied
			case occupied == White && v > threshold:
				s = Occupied
			default:
				s = Vacant
			}
			g.set(r, c, s)
		}
	}

	return g, nil
}
