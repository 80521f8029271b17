package render

import (
	"errors"
	"os"
	"testing"

	"github.com/milk9111/tileworld/logger"
)

func TestMain(m *testing.M) {
	logger.Silence()
	os.Exit(m.Run())
}

func TestSpriteCacheGet(t *testing.T) {
	loads := map[string]int{}
	cache := NewSpriteCache(func(path string) (any, error) {
		loads[path]++
		if path == "missing.png" {
			return nil, errors.New("not found")
		}
		return path + "-data", nil
	})

	cases := []struct {
		name      string
		path      string
		wantValid bool
	}{
		{"loads", "assets/player.png", true},
		{"failure_is_invalid", "missing.png", false},
		{"empty_path", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			first := cache.Get(c.path)
			second := cache.Get(c.path)
			if first != second {
				t.Fatalf("handles differ: %+v vs %+v", first, second)
			}
			if first.Valid() != c.wantValid {
				t.Fatalf("Valid = %v, want %v", first.Valid(), c.wantValid)
			}
			if c.path != "" && loads[c.path] != 1 {
				t.Fatalf("expected one load of %q, got %d", c.path, loads[c.path])
			}
		})
	}

	h := cache.Get("assets/player.png")
	data, ok := cache.Image(h)
	if !ok || data != "assets/player.png-data" {
		t.Fatalf("Image = %v, %v", data, ok)
	}
	if _, ok := cache.Image(cache.Get("missing.png")); ok {
		t.Fatalf("failed load must not yield image data")
	}
	if cache.Len() != 2 {
		t.Fatalf("expected 2 cached paths, got %d", cache.Len())
	}

	cache.Purge()
	if cache.Len() != 0 {
		t.Fatalf("Purge left %d entries", cache.Len())
	}
	if _, ok := cache.Image(h); ok {
		t.Fatalf("purged handle must not resolve")
	}
}

func TestSpriteCacheNilLoader(t *testing.T) {
	cache := NewSpriteCache(nil)
	h := cache.Get("assets/tiles.png")
	if h.Valid() || h.ID == 0 || h.Path != "assets/tiles.png" {
		t.Fatalf("unexpected handle %+v", h)
	}
}

func TestDecodeFileMissing(t *testing.T) {
	if _, err := DecodeFile("definitely/not/here.png"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
