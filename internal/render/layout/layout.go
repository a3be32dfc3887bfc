package layout

import "image"

// MountainMinSize is the smallest icon size that still gets the mountain motif.
const MountainMinSize = 32

// Geometry holds the proportional layout of an icon of a given side length.
// Every value is derived from Size by integer division.
type Geometry struct {
	Size         int
	Padding      int
	InnerPadding int
	Center       int
	ArrowSize    int
	RectSize     int
	RectX        int
	RectY        int
}

// ForSize derives the icon geometry for a square canvas of side size.
func ForSize(size int) Geometry {
	g := Geometry{
		Size:         size,
		Padding:      size / 16,
		InnerPadding: size / 6,
		Center:       size / 2,
		ArrowSize:    size / 4,
		RectSize:     size / 5,
	}
	g.RectX = g.Center - g.ArrowSize - g.RectSize/2
	g.RectY = g.Center - g.RectSize/2
	return g
}

// Bounds is the full canvas rectangle.
func (g Geometry) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Size, g.Size)
}

// OuterDisc is the bounding box of the background disc. The far edge at
// Size-Padding is part of the disc.
func (g Geometry) OuterDisc() image.Rectangle {
	return Closed(Inset(g.Bounds(), g.Padding))
}

// InnerDisc is the bounding box of the inner disc, far edge included.
func (g Geometry) InnerDisc() image.Rectangle {
	return Closed(Inset(g.Bounds(), g.InnerPadding))
}

// ArrowTriangle returns the vertices of the right-pointing arrow.
func (g Geometry) ArrowTriangle() [3]image.Point {
	half := g.ArrowSize / 2
	third := g.ArrowSize / 3
	return [3]image.Point{
		{X: g.Center - half, Y: g.Center - third},
		{X: g.Center + half, Y: g.Center},
		{X: g.Center - half, Y: g.Center + third},
	}
}

// GlyphRect is the square "image" glyph left of the arrow. Both the
// RectX and RectX+RectSize columns (and rows) are filled.
func (g Geometry) GlyphRect() image.Rectangle {
	return Closed(image.Rect(g.RectX, g.RectY, g.RectX+g.RectSize, g.RectY+g.RectSize))
}

// HasMountain reports whether the glyph is large enough for the mountain motif.
func (g Geometry) HasMountain() bool { return g.Size >= MountainMinSize }

// MountainTriangle returns the vertices of the mountain inside the glyph.
func (g Geometry) MountainTriangle() [3]image.Point {
	rs := g.RectSize
	return [3]image.Point{
		{X: g.RectX + rs/4, Y: g.RectY + rs*3/4},
		{X: g.RectX + rs/2, Y: g.RectY + rs/3},
		{X: g.RectX + rs*3/4, Y: g.RectY + rs*3/4},
	}
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Closed grows rect by one pixel on its Max edges, turning an inclusive
// [Min, Max] pixel box into a half-open image.Rectangle.
func Closed(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X+1, rect.Max.Y+1)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}
