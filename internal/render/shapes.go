package render

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four arcs approximate a quarter ellipse each.
const kappa = 0.5522847498

// coverageThreshold is the minimum mask coverage for a pixel to be painted.
// Shapes are hard-edged: every pixel is either untouched or the fill color.
const coverageThreshold = 0x80

// fillEllipse draws a filled ellipse inscribed in rect.
func fillEllipse(dst *image.NRGBA, rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	cx := float32(rect.Min.X+rect.Max.X) / 2
	cy := float32(rect.Min.Y+rect.Max.Y) / 2
	rx := float32(rect.Dx()) / 2
	ry := float32(rect.Dy()) / 2
	kx, ky := rx*kappa, ry*kappa

	z := newRasterizer(dst)
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
	paint(dst, z, c)
}

// fillTriangle draws a filled triangle whose vertices are pixel positions,
// so each vertex sits at the center of its pixel.
func fillTriangle(dst *image.NRGBA, pts [3]image.Point, c color.Color) {
	at := func(p image.Point) (float32, float32) {
		return float32(p.X) + 0.5, float32(p.Y) + 0.5
	}
	z := newRasterizer(dst)
	z.MoveTo(at(pts[0]))
	z.LineTo(at(pts[1]))
	z.LineTo(at(pts[2]))
	z.ClosePath()
	paint(dst, z, c)
}

// fillRect fills rect with a solid color, replacing whatever is underneath.
func fillRect(dst *image.NRGBA, rect image.Rectangle, c color.Color) {
	xdraw.Draw(dst, rect.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, xdraw.Src)
}

func newRasterizer(dst *image.NRGBA) *vector.Rasterizer {
	b := dst.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

// paint rasterizes z into a coverage mask, snaps it to fully on or off and
// composites c through it.
func paint(dst *image.NRGBA, z *vector.Rasterizer, c color.Color) {
	mask := image.NewAlpha(dst.Bounds())
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	for i, a := range mask.Pix {
		if a >= coverageThreshold {
			mask.Pix[i] = 0xFF
		} else {
			mask.Pix[i] = 0
		}
	}
	xdraw.DrawMask(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, mask, mask.Bounds().Min, xdraw.Over)
}
