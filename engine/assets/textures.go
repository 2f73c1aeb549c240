package assets

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/hubastard/sprite2d/engine/core"
)

// Textures loads each texture file once and hands out the cached handle
// afterwards. Handles stay valid until Release.
type Textures struct {
	gpu    core.GPU
	smooth bool
	byKey  map[string]core.Texture
}

func NewTextures(gpu core.GPU) *Textures {
	return &Textures{gpu: gpu, byKey: make(map[string]core.Texture)}
}

// SetSmooth selects linear filtering for textures loaded afterwards.
func (t *Textures) SetSmooth(smooth bool) { t.smooth = smooth }

func (t *Textures) Len() int { return len(t.byKey) }

// Get returns the texture for path, loading and uploading it on first use.
func (t *Textures) Get(path string) (core.Texture, error) {
	key := filepath.Clean(path)
	if tex, ok := t.byKey[key]; ok {
		return tex, nil
	}
	w, h, pix, err := LoadImage(key)
	if err != nil {
		return core.Texture{}, err
	}
	slog.Debug("assets: texture loaded", "path", key, "w", w, "h", h)
	return t.upload(key, w, h, pix)
}

// FromImage uploads an in-memory image and caches it under name. An
// existing entry with the same name is returned unchanged.
func (t *Textures) FromImage(name string, img image.Image) (core.Texture, error) {
	if tex, ok := t.byKey[name]; ok {
		return tex, nil
	}
	w, h, pix := Pixels(img)
	return t.upload(name, w, h, pix)
}

func (t *Textures) upload(key string, w, h int, pix []byte) (core.Texture, error) {
	tex, err := t.gpu.CreateTexture(core.TextureDesc{
		Width:  w,
		Height: h,
		Pixels: pix,
		Smooth: t.smooth,
	})
	if err != nil {
		return core.Texture{}, fmt.Errorf("upload texture %q: %w", key, err)
	}
	t.byKey[key] = tex
	return tex, nil
}

// Release deletes every cached texture.
func (t *Textures) Release() {
	for key, tex := range t.byKey {
		t.gpu.DeleteTexture(tex)
		delete(t.byKey, key)
	}
}
