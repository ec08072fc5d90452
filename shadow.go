package wallframe

import "math"

// Shadows fall only to the right of and below the frame: the light is
// assumed to arrive from above-left, and no shadow pixel is ever written
// left of the frame origin or above it. Both regions fade exponentially
// away from the frame edge and are clipped, never wrapped, at the
// canvas boundary.

// shadowExtents returns the maximum extents of the right and bottom
// shadow regions for the given frame depth.
func shadowExtents(depth3D int) (widthRight, heightBottom int) {
	return int(float64(depth3D) * 0.8), int(float64(depth3D) * 0.6)
}

// drawShadows blends the right and bottom shadow regions onto the
// canvas. Exactly two regions are produced, never more.
func drawShadows(canvas *Pixmap, frameX, frameY, width, height int, p StyleParams) {
	strength := 0.15 * p.ShadowIntensity
	widthRight, heightBottom := shadowExtents(p.Depth3D)

	drawRightShadow(canvas, frameX, frameY, width, height, widthRight, strength)
	drawBottomShadow(canvas, frameX, frameY, width, height, heightBottom, strength)
}

// drawRightShadow darkens the columns just right of the frame, strictly
// bounded to the frame's vertical extent.
func drawRightShadow(canvas *Pixmap, frameX, frameY, width, height, widthRight int, strength float64) {
	for i := 0; i < widthRight; i++ {
		x := frameX + width + i
		if x >= canvas.width {
			break
		}
		fade := clamp01(math.Exp(-3.0*float64(i)/float64(widthRight)) * strength)

		yEnd := frameY + height
		if yEnd > canvas.height {
			yEnd = canvas.height
		}
		for y := frameY; y < yEnd; y++ {
			blendTowardBlack(canvas, x, y, fade)
		}
	}
}

// drawBottomShadow darkens the rows just below the frame. Each row
// bleeds slightly rightward as it descends, and a horizontal taper
// peaks at the frame's midpoint so the cast edge stays soft.
func drawBottomShadow(canvas *Pixmap, frameX, frameY, width, height, heightBottom int, strength float64) {
	centerX := float64(frameX) + float64(width)/2
	halfWidth := float64(width) / 2

	for i := 0; i < heightBottom; i++ {
		y := frameY + height + i
		if y >= canvas.height {
			break
		}
		fade := math.Exp(-3.0*float64(i)/float64(heightBottom)) * strength

		xEnd := frameX + width + int(math.Round(float64(i)*0.3))
		if xEnd > canvas.width {
			xEnd = canvas.width
		}
		for x := frameX; x < xEnd; x++ {
			distFromCenter := math.Abs(float64(x)-centerX) / halfWidth
			f := clamp01(fade * (1 - distFromCenter*0.4))
			if f == 0 {
				continue
			}
			blendTowardBlack(canvas, x, y, f)
		}
	}
}

// blendTowardBlack blends the pixel toward black with the given weight:
// result = pixel*(1-fade) per channel, alpha preserved.
func blendTowardBlack(canvas *Pixmap, x, y int, fade float64) {
	c := canvas.GetPixel(x, y)
	canvas.SetPixel(x, y, RGBA{
		R: c.R * (1 - fade),
		G: c.G * (1 - fade),
		B: c.B * (1 - fade),
		A: c.A,
	})
}
