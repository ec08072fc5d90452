package wallframe

import "math"

// InterpolationMode defines how the warp samples the front image.
// Nearest-neighbor is deliberately absent: it aliases visibly along the
// skewed edges of the destination quad.
type InterpolationMode uint8

const (
	// InterpBilinear performs linear interpolation between 4 neighboring
	// pixels. Good balance between quality and performance.
	InterpBilinear InterpolationMode = iota

	// InterpBicubic performs cubic interpolation using a 4x4 pixel
	// neighborhood. Highest quality but slower than bilinear.
	InterpBicubic
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// sample interpolates the pixmap at continuous pixel coordinates (x, y).
// Coordinates outside the pixel grid return Transparent rather than
// clamping: warp output must not smear the source's edge pixels across
// the unmapped region.
func sample(pm *Pixmap, x, y float64, mode InterpolationMode) RGBA {
	if x < 0 || y < 0 || x > float64(pm.width-1) || y > float64(pm.height-1) {
		return Transparent
	}
	switch mode {
	case InterpBicubic:
		return sampleBicubic(pm, x, y)
	default:
		return sampleBilinear(pm, x, y)
	}
}

// sampleBilinear interpolates between the 4 pixels surrounding (x, y).
func sampleBilinear(pm *Pixmap, x, y float64) RGBA {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	x1 := clampInt(x0+1, 0, pm.width-1)
	y1 := clampInt(y0+1, 0, pm.height-1)

	c00 := pm.GetPixel(x0, y0)
	c10 := pm.GetPixel(x1, y0)
	c01 := pm.GetPixel(x0, y1)
	c11 := pm.GetPixel(x1, y1)

	top := c00.Lerp(c10, tx)
	bottom := c01.Lerp(c11, tx)
	return top.Lerp(bottom, ty)
}

// sampleBicubic interpolates a 4x4 neighborhood with Catmull-Rom weights.
func sampleBicubic(pm *Pixmap, x, y float64) RGBA {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	tx := x - float64(x0)
	ty := y - float64(y0)

	wx := [4]float64{
		cubicWeight(tx + 1),
		cubicWeight(tx),
		cubicWeight(tx - 1),
		cubicWeight(tx - 2),
	}
	wy := [4]float64{
		cubicWeight(ty + 1),
		cubicWeight(ty),
		cubicWeight(ty - 1),
		cubicWeight(ty - 2),
	}

	var out RGBA
	for j := 0; j < 4; j++ {
		py := clampInt(y0+j-1, 0, pm.height-1)
		for i := 0; i < 4; i++ {
			px := clampInt(x0+i-1, 0, pm.width-1)
			c := pm.GetPixel(px, py)
			w := wx[i] * wy[j]
			out.R += c.R * w
			out.G += c.G * w
			out.B += c.B * w
			out.A += c.A * w
		}
	}
	out.R = clamp01(out.R)
	out.G = clamp01(out.G)
	out.B = clamp01(out.B)
	out.A = clamp01(out.A)
	return out
}

// cubicWeight computes the Catmull-Rom cubic weight for distance t.
func cubicWeight(t float64) float64 {
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}

// clampInt clamps an integer value to [minVal, maxVal].
func clampInt(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
