package assets

import (
	"fmt"
	"hash/fnv"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageLoader loads and caches images from disk. Token art and emote
// icons are regular files next to the table maps, not embedded: tables
// are user content.
type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

var defaultLoader = NewImageLoader()

// LoadImage loads through the shared process-wide cache.
func LoadImage(path string) (*ebiten.Image, error) {
	return defaultLoader.LoadImage(path)
}

// TokenPlaceholder builds a flat-colored stand-in for a token whose art
// is missing. The color is derived from the name so tokens stay
// distinguishable.
func TokenPlaceholder(name string, w, h int) *ebiten.Image {
	if w <= 0 {
		w = 48
	}
	if h <= 0 {
		h = 48
	}

	img := ebiten.NewImage(w, h)
	img.Fill(nameColor(name))

	// Thin border so adjacent placeholders read as separate tokens
	border := ebiten.NewImage(w, h)
	border.Fill(color.RGBA{20, 20, 26, 255})
	inner := ebiten.NewImage(w-4, h-4)
	inner.Fill(nameColor(name))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(2, 2)
	border.DrawImage(inner, op)

	img.DrawImage(border, nil)
	return img
}

func nameColor(name string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	v := h.Sum32()
	return color.RGBA{
		R: 96 + uint8(v)%128,
		G: 96 + uint8(v>>8)%128,
		B: 96 + uint8(v>>16)%128,
		A: 255,
	}
}
