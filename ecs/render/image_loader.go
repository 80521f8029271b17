package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
)

// DecodeFile is a Loader that decodes an image from disk into an image.Image.
// It tries the path as given, under assets/, and by base name.
func DecodeFile(path string) (any, error) {
	if path == "" {
		return nil, fmt.Errorf("empty image path")
	}
	tried := []string{path, filepath.Join("assets", path), filepath.Base(path)}
	for _, p := range tried {
		b, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode image %s: %w", p, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("failed to load image %s", path)
}
