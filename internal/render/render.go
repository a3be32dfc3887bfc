package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/rook-computer/appicon/internal/render/layout"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoSizes       = errors.New("no icon sizes requested")
	ErrInvalidSize   = errors.New("icon size must be positive")
	ErrDuplicateSize = errors.New("duplicate icon size")
)

// RenderedSet is the ordered collection of canvases, largest first.
type RenderedSet []*image.NRGBA

// Primary returns the largest canvas, or nil for an empty set.
func (s RenderedSet) Primary() *image.NRGBA {
	if len(s) == 0 {
		return nil
	}
	return s[0]
}

// Sizes returns the side length of every canvas in set order.
func (s RenderedSet) Sizes() []int {
	out := make([]int, len(s))
	for i, img := range s {
		out[i] = img.Bounds().Dx()
	}
	return out
}

// Images returns the canvases as generic images for encoders.
func (s RenderedSet) Images() []image.Image {
	out := make([]image.Image, len(s))
	for i, img := range s {
		out[i] = img
	}
	return out
}

// IconRenderer draws the application icon at a list of resolutions.
type IconRenderer struct {
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewIconRenderer() *IconRenderer { return &IconRenderer{} }

// Render draws one canvas per size and returns them ordered largest first.
// Sizes are drawn concurrently; each canvas is owned by exactly one goroutine.
func (r *IconRenderer) Render(ctx context.Context, sizes []int) (RenderedSet, error) {
	ordered, err := orderSizes(sizes)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("render", "invalid sizes %v: %v", sizes, err)
		}
		return nil, err
	}

	set := make(RenderedSet, len(ordered))
	g, gctx := errgroup.WithContext(ctx)
	for i, size := range ordered {
		i, size := i, size
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			set[i] = DrawIcon(size)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if r.Logger != nil {
		r.Logger.Infof("render", "rendered %d canvases, sizes=%v", len(set), set.Sizes())
	}
	return set, nil
}

// orderSizes validates sizes and returns a descending copy.
func orderSizes(sizes []int) ([]int, error) {
	if len(sizes) == 0 {
		return nil, ErrNoSizes
	}
	seen := make(map[int]bool, len(sizes))
	out := make([]int, 0, len(sizes))
	for _, s := range sizes {
		if s <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidSize, s)
		}
		if seen[s] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateSize, s)
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out, nil
}

// DrawIcon draws the icon onto a fresh transparent canvas of side size.
func DrawIcon(size int) *image.NRGBA {
	g := layout.ForSize(size)
	canvas := image.NewNRGBA(g.Bounds())

	fillEllipse(canvas, g.OuterDisc(), Background)
	fillEllipse(canvas, g.InnerDisc(), Inner)
	fillTriangle(canvas, g.ArrowTriangle(), Arrow)
	fillRect(canvas, g.GlyphRect(), Glyph)
	if g.HasMountain() {
		fillTriangle(canvas, g.MountainTriangle(), Inner)
	}
	return canvas
}
