package wallframe

import "math"

// warpPad is the safety margin, in pixels, added past the destination
// quad's bounding box when sizing the warp buffer.
const warpPad = 20

// WarpPerspective resamples the front image into the destination quad of
// the resolved geometry. The returned buffer is sized to the quad's
// bounding box plus a safety pad; pixels that map outside the front
// image are left transparent.
//
// The function is pure: it reads the front image and writes only the
// returned buffer.
func WarpPerspective(front *Pixmap, geom Geometry, mode InterpolationMode) *Pixmap {
	_, _, maxX, maxY := geom.Dst.Bounds()
	bw := int(math.Ceil(maxX)) + warpPad
	bh := int(math.Ceil(maxY)) + warpPad

	// Inverse mapping: for every output pixel, find where it came from
	// in the front image. The source quad is the front image's own
	// rectangle, so any front size maps onto the placement-derived quad.
	srcQuad := QuadFromRect(float64(front.width), float64(front.height))
	inv := QuadToQuad(geom.Dst, srcQuad)

	out := NewPixmap(bw, bh)
	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			src := inv.Apply(Pt(float64(x), float64(y)))
			c := sample(front, src.X, src.Y, mode)
			if c.A == 0 {
				continue
			}
			out.SetPixel(x, y, c)
		}
	}
	return out
}

// compositeOver draws src onto dst at (ox, oy) with source-over alpha
// blending. Fully transparent source pixels are skipped; pixels falling
// outside dst are clipped.
func compositeOver(dst, src *Pixmap, ox, oy int) {
	for y := 0; y < src.height; y++ {
		dy := oy + y
		if dy < 0 || dy >= dst.height {
			continue
		}
		for x := 0; x < src.width; x++ {
			dx := ox + x
			if dx < 0 || dx >= dst.width {
				continue
			}
			s := src.GetPixel(x, y)
			if s.A == 0 {
				continue
			}
			if s.A >= 1 {
				dst.SetPixel(dx, dy, s)
				continue
			}
			d := dst.GetPixel(dx, dy)
			a := s.A + d.A*(1-s.A)
			if a == 0 {
				continue
			}
			dst.SetPixel(dx, dy, RGBA{
				R: (s.R*s.A + d.R*d.A*(1-s.A)) / a,
				G: (s.G*s.A + d.G*d.A*(1-s.A)) / a,
				B: (s.B*s.A + d.B*d.A*(1-s.A)) / a,
				A: a,
			})
		}
	}
}
