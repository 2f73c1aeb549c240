package assets

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes any registered format (PNG, JPEG, GIF, BMP, TIFF, WebP)
// and returns width, height and tightly packed RGBA8 pixels, top row first.
func LoadImage(path string) (w, h int, rgba []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	w, h, rgba = Pixels(img)
	if w == 0 || h == 0 {
		return 0, 0, nil, fmt.Errorf("decode image %q: empty %s image", path, format)
	}
	return w, h, rgba, nil
}

// Pixels converts img to straight RGBA8 rows with stride 4*w.
func Pixels(img image.Image) (w, h int, rgba []byte) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return w, h, dst.Pix
}
