package levels

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/tileworld/ecs"
	"github.com/milk9111/tileworld/ecs/component"
	"github.com/milk9111/tileworld/ecs/render"
	"github.com/milk9111/tileworld/logger"
	"github.com/sirupsen/logrus"
)

// ErrNoWorld is returned when a world file cannot be opened.
var ErrNoWorld = errors.New("levels: world file not found")

// Field counts of the world line layouts. The full layout is
//
//	srcX,srcY,screenX,screenY,category,spritePath,isAnimated,frameCount,frameTotal,animSpeed
//
// Older files end after the sprite path, or omit frameCount.
const (
	fieldsStatic = 6
	fieldsLegacy = 9
	fieldsFull   = 10
)

// LoadResult summarises one world load.
type LoadResult struct {
	Loaded     int
	Skipped    int
	ByCategory [component.CategoryCount]int
}

// TileLine is one parsed world line before its sprite is resolved.
type TileLine struct {
	Src        cp.Vector
	Pos        cp.Vector
	Category   component.Category
	SpritePath string
	Animated   bool
	FrameCount int
	FrameTotal int
	AnimSpeed  int
}

// Tile builds the stored tile, resolving the sprite through sprites.
func (l TileLine) Tile(sprites *render.SpriteCache) component.Tile {
	t := component.NewTile(l.Category, l.Src, l.Pos, sprites.Get(l.SpritePath))
	t.Animated = l.Animated
	t.Animation = component.Animation{
		Counter: l.FrameCount,
		Frames:  l.FrameTotal,
		Speed:   l.AnimSpeed,
	}
	return t
}

// ParseTile parses one world line.
func ParseTile(line string) (TileLine, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	switch len(fields) {
	case fieldsStatic, fieldsLegacy, fieldsFull:
	default:
		return TileLine{}, fmt.Errorf("%w: %d fields", component.ErrMalformedLine, len(fields))
	}

	nums := make([]int, 0, len(fields)-1)
	for i, f := range fields {
		if i == 5 {
			continue
		}
		n, err := parseInt(f)
		if err != nil {
			return TileLine{}, fmt.Errorf("%w: field %d: %v", component.ErrMalformedLine, i+1, err)
		}
		nums = append(nums, n)
	}

	cat, err := component.ParseCategory(nums[4])
	if err != nil {
		return TileLine{}, fmt.Errorf("%w: %v", component.ErrMalformedLine, err)
	}
	path := strings.TrimSpace(fields[5])
	if path == "" {
		return TileLine{}, fmt.Errorf("%w: empty sprite path", component.ErrMalformedLine)
	}

	tl := TileLine{
		Src:        cp.Vector{X: float64(nums[0]), Y: float64(nums[1])},
		Pos:        cp.Vector{X: float64(nums[2]), Y: float64(nums[3])},
		Category:   cat,
		SpritePath: path,
	}
	switch len(fields) {
	case fieldsLegacy:
		tl.Animated = nums[5] != 0
		tl.FrameTotal = nums[6]
		tl.AnimSpeed = nums[7]
	case fieldsFull:
		tl.Animated = nums[5] != 0
		tl.FrameCount = nums[6]
		tl.FrameTotal = nums[7]
		tl.AnimSpeed = nums[8]
	}
	return tl, nil
}

// parseInt reads an integer field. Decimal values are truncated toward zero.
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return int(f), nil
}

// FormatTile renders t in the full layout.
func FormatTile(t *component.Tile) string {
	animated := 0
	if t.Animated {
		animated = 1
	}
	return fmt.Sprintf("%d,%d,%d,%d,%d,%s,%d,%d,%d,%d",
		int(t.Src.X), int(t.Src.Y), int(t.Pos.X), int(t.Pos.Y),
		int(t.Category), t.Sprite.Path, animated,
		t.Animation.Counter, t.Animation.Frames, t.Animation.Speed)
}

// Load reads world lines from r into layers. Malformed lines of any length
// are logged and skipped; only a read error aborts the load.
func Load(r io.Reader, layers *ecs.Layers, sprites *render.SpriteCache) (LoadResult, error) {
	var res LoadResult
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		text, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return res, fmt.Errorf("levels: read world: %w", readErr)
		}
		if text != "" {
			lineNo++
			loadLine(&res, layers, sprites, lineNo, text)
		}
		if readErr == io.EOF {
			return res, nil
		}
	}
}

func loadLine(res *LoadResult, layers *ecs.Layers, sprites *render.SpriteCache, lineNo int, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	tl, err := ParseTile(text)
	if err != nil {
		res.Skipped++
		logger.Log.WithFields(logrus.Fields{
			"component": "levels",
			"line":      lineNo,
		}).WithError(err).Warn("skipping world line")
		return
	}
	if err := layers.AddTile(tl.Category, tl.Tile(sprites)); err != nil {
		res.Skipped++
		return
	}
	res.Loaded++
	res.ByCategory[tl.Category]++
}

// LoadFile loads the world file at path into w, replacing its tiles.
func LoadFile(w *ecs.World, path string) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return LoadResult{}, fmt.Errorf("%w: %s", ErrNoWorld, path)
		}
		return LoadResult{}, fmt.Errorf("levels: open world: %w", err)
	}
	defer f.Close()

	w.Layers().Clear()
	res, err := Load(f, w.Layers(), w.Sprites())
	if err != nil {
		return res, err
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "levels",
		"path":      path,
		"loaded":    res.Loaded,
		"skipped":   res.Skipped,
	}).Info("world loaded")
	return res, nil
}

// AppendLayer writes every active tile of cat to out, one line each. The
// format has no active flag, so consumed tiles are left out.
func AppendLayer(out io.Writer, layers *ecs.Layers, cat component.Category) error {
	var err error
	layers.Each(cat, func(_ int, t *component.Tile) {
		if err != nil || !t.Active {
			return
		}
		_, err = fmt.Fprintln(out, FormatTile(t))
	})
	return err
}

// Write writes every category in tag order, Wall first.
func Write(out io.Writer, layers *ecs.Layers) error {
	for _, cat := range component.Categories() {
		if err := AppendLayer(out, layers, cat); err != nil {
			return fmt.Errorf("levels: write %s: %w", cat, err)
		}
	}
	return nil
}

// Save truncates path and appends each category in tag order.
func Save(path string, layers *ecs.Layers) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("levels: create world: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := Write(bw, layers); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("levels: flush world: %w", err)
	}
	return f.Close()
}
