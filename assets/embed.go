package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/tileworld/ecs/render"
)

//go:embed *.png
var assetsFS embed.FS

// LoadImage loads an image by assets-relative path. A file on disk wins over
// the embedded copy so edited sheets show up without a rebuild.
func LoadImage(path string) (*ebiten.Image, error) {
	if data, err := render.DecodeFile(path); err == nil {
		if img, ok := data.(image.Image); ok {
			return ebiten.NewImageFromImage(img), nil
		}
	}
	b, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// Loader adapts LoadImage to the sprite cache.
func Loader(path string) (any, error) {
	return LoadImage(path)
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

func cleanAssetPath(path string) string {
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, "./")
	s = strings.TrimPrefix(s, "assets/")
	return s
}
