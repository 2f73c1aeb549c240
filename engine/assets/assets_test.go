package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/sprite2d/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

// textureGPU only implements the texture part of core.GPU.
type textureGPU struct {
	core.GPU
	created []core.TextureDesc
	deleted []core.Texture
}

func (g *textureGPU) CreateTexture(desc core.TextureDesc) (core.Texture, error) {
	g.created = append(g.created, desc)
	return core.Texture{Handle: uint32(len(g.created)), Width: desc.Width, Height: desc.Height}, nil
}

func (g *textureGPU) DeleteTexture(t core.Texture) { g.deleted = append(g.deleted, t) }

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{R: 255, A: 255})
			} else {
				img.Set(x, y, color.NRGBA{B: 255, A: 128})
			}
		}
	}
	return img
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestLoadImagePNG(t *testing.T) {
	path := writePNG(t, t.TempDir(), "c.png", checker(3, 2))

	w, h, pix, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	require.Len(t, pix, 3*2*4)
	assert.Equal(t, []byte{255, 0, 0, 255}, pix[0:4])
	assert.Equal(t, []byte{0, 0, 255, 128}, pix[4:8], "alpha is not premultiplied")
	// second row starts with the odd colour
	assert.Equal(t, []byte{0, 0, 255, 128}, pix[12:16])
}

func TestLoadImageBMP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.bmp")
	f, err := os.Create(path)
	require.NoError(t, err)
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.RGBA{G: 255, A: 255})
	require.NoError(t, bmp.Encode(f, img))
	require.NoError(t, f.Close())

	w, h, pix, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, []byte{0, 255, 0, 255}, pix[12:16])
}

func TestLoadImageErrors(t *testing.T) {
	dir := t.TempDir()
	_, _, _, err := LoadImage(filepath.Join(dir, "missing.png"))
	assert.ErrorContains(t, err, "open")

	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0o644))
	_, _, _, err = LoadImage(bad)
	assert.ErrorContains(t, err, "decode image")
}

func TestPixelsHonoursBoundsOffset(t *testing.T) {
	sub := checker(4, 4).SubImage(image.Rect(1, 1, 3, 3))
	w, h, pix := Pixels(sub)
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	// (1,1) is even, so red
	assert.Equal(t, []byte{255, 0, 0, 255}, pix[0:4])
}

func TestTexturesCachesByPath(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "p.png", checker(8, 4))
	gpu := &textureGPU{}
	cache := NewTextures(gpu)

	a, err := cache.Get(path)
	require.NoError(t, err)
	b, err := cache.Get(filepath.Join(dir, ".", "p.png"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, core.Texture{Handle: 1, Width: 8, Height: 4}, a)
	assert.Len(t, gpu.created, 1)
	assert.Equal(t, 1, cache.Len())

	_, err = cache.Get(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
	assert.Equal(t, 1, cache.Len(), "failures are not cached")
}

func TestTexturesFromImageAndRelease(t *testing.T) {
	gpu := &textureGPU{}
	cache := NewTextures(gpu)
	cache.SetSmooth(true)

	tex, err := cache.FromImage("checker", checker(2, 2))
	require.NoError(t, err)
	again, err := cache.FromImage("checker", checker(16, 16))
	require.NoError(t, err)
	assert.Equal(t, tex, again)
	require.Len(t, gpu.created, 1)
	assert.True(t, gpu.created[0].Smooth)

	cache.Release()
	assert.Equal(t, []core.Texture{tex}, gpu.deleted)
	assert.Zero(t, cache.Len())
}

func TestLoadShaderPair(t *testing.T) {
	dir := t.TempDir()
	vp := filepath.Join(dir, "s.vert")
	fp := filepath.Join(dir, "s.frag")
	require.NoError(t, os.WriteFile(vp, []byte("void main() {}"), 0o644))
	require.NoError(t, os.WriteFile(fp, []byte("void main() { }"), 0o644))

	src, err := LoadShaderPair(vp, fp)
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", src.Vertex)
	assert.Equal(t, "void main() { }", src.Fragment)

	_, err = LoadShaderPair(vp, filepath.Join(dir, "none.frag"))
	assert.ErrorContains(t, err, "none.frag")

	empty := filepath.Join(dir, "empty.vert")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = LoadShader(empty)
	assert.ErrorContains(t, err, "empty file")
}
