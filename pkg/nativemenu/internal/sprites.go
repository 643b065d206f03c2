package internal

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed sprites
var spriteFS embed.FS

// ErrSpriteNotFound is returned when a dictionary/texture pair has no sprite.
var ErrSpriteNotFound = errors.New("sprite not found")

func spritePath(dictionary, texture string) string {
	return path.Join("sprites", dictionary, texture+".svg")
}

// HasSprite reports whether dictionary contains texture.
func HasSprite(dictionary, texture string) bool {
	_, err := fs.Stat(spriteFS, spritePath(dictionary, texture))
	return err == nil
}

// SpriteNames lists the textures of a dictionary.
func SpriteNames(dictionary string) ([]string, error) {
	entries, err := fs.ReadDir(spriteFS, path.Join("sprites", dictionary))
	if err != nil {
		return nil, fmt.Errorf("dictionary %s: %w", dictionary, ErrSpriteNotFound)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".svg" {
			continue
		}
		names = append(names, e.Name()[:len(e.Name())-len(".svg")])
	}
	return names, nil
}

// RasterizeSprite renders the SVG sprite into a w x h non-premultiplied
// image. Sprites are drawn white so they can be tinted at draw time.
func RasterizeSprite(dictionary, texture string, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("rasterize %s/%s: invalid size %dx%d", dictionary, texture, w, h)
	}

	data, err := spriteFS.ReadFile(spritePath(dictionary, texture))
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", dictionary, texture, ErrSpriteNotFound)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse %s/%s: %w", dictionary, texture, err)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	return img, nil
}
