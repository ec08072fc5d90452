package wallframe

import (
	"fmt"
	"math"
)

// Geometry holds the resolved quads and offsets for one render.
//
// The destination quad's corners are deliberately asymmetric: the left
// edge shifts right and the right edge shifts further right while the
// top-right corner stays put, producing a frame viewed from below-left
// rather than a symmetric scale.
type Geometry struct {
	// Src is the axis-aligned front-face rectangle anchored at the origin.
	Src Quad

	// Dst is the perspective-skewed destination quad, in coordinates
	// relative to the frame placement origin.
	Dst Quad

	// XOffset and YOffset are the per-axis skew displacements derived
	// from the style's depth and angle.
	XOffset int
	YOffset int
}

// ResolveGeometry computes the source and destination quads for a frame
// of the given size under the given style parameters.
func ResolveGeometry(width, height int, p StyleParams) (Geometry, error) {
	if width <= 0 || height <= 0 {
		return Geometry{}, fmt.Errorf("%w: frame size %dx%d", ErrInvalidGeometry, width, height)
	}

	xOffset := int(math.Round(float64(p.Depth3D) * p.PerspectiveAngle))
	yOffset := int(math.Round(float64(p.Depth3D) * p.PerspectiveAngle * 0.6))

	w := float64(width)
	h := float64(height)
	xo := float64(xOffset)
	yo := float64(yOffset)

	dst := Quad{
		TL: Pt(xo, yo),
		TR: Pt(w+xo, 0),
		BR: Pt(w+2*xo, h-yo),
		BL: Pt(2*xo, h),
	}

	_, _, maxX, maxY := dst.Bounds()
	if maxX <= 0 || maxY <= 0 || h-yo <= 0 {
		return Geometry{}, fmt.Errorf("%w: offsets %d,%d collapse a %dx%d frame", ErrInvalidGeometry, xOffset, yOffset, width, height)
	}

	return Geometry{
		Src:     QuadFromRect(w, h),
		Dst:     dst,
		XOffset: xOffset,
		YOffset: yOffset,
	}, nil
}
