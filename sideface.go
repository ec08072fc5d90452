package wallframe

import "math"

// Side faces are the shaded trapezoid strips bridging the warped front
// face to the flat wall plane. Each face samples the nearest one-pixel
// strip of the front image along its edge and applies two lighting
// terms: a fixed factor that darkens the face relative to the lit front,
// and a linear gradient across the face's depth axis, brighter near the
// wall-contact edge. The gradient amplitude grows with the simulated
// depth so thicker frames shade more strongly.

// gradientAmplitude returns the strength of the depth-lighting gradient,
// normalized against the largest preset depth.
func gradientAmplitude(depth3D int) float64 {
	n := float64(depth3D) / maxPresetDepth
	if n > 1 {
		n = 1
	}
	return 0.3 * n
}

// drawSideFaces paints the right, bottom, and optionally top faces onto
// the canvas. Face footprints are disjoint by construction so the order
// among them does not matter.
func drawSideFaces(canvas, front *Pixmap, frameX, frameY, width, height int, p StyleParams, geom Geometry, topFace bool) {
	amp := gradientAmplitude(p.Depth3D)
	drawRightFace(canvas, front, frameX, frameY, width, height, p.Depth3D, geom, amp)
	drawBottomFace(canvas, front, frameX, frameY, width, height, p.Depth3D, geom, amp)
	if topFace {
		drawTopFace(canvas, front, frameX, frameY, width, height, p.Depth3D, geom, amp)
	}
}

// drawRightFace marches down the frame's right edge. Each row bridges
// the warped edge position to the wall plane, widening toward the
// bottom as the perspective deepens.
func drawRightFace(canvas, front *Pixmap, frameX, frameY, width, height, depth3D int, geom Geometry, amp float64) {
	xo := float64(geom.XOffset)
	yo := float64(geom.YOffset)

	for y := 0; y < height; y++ {
		progress := float64(y) / float64(height)

		rowY := frameY + y + int(math.Round(yo*(1-progress)))
		startX := frameX + width + int(math.Round(xo*(1+progress)))
		endX := startX + int(math.Round(float64(depth3D)*(0.8+0.2*progress)))
		if endX <= startX {
			continue // degenerate zero-area row
		}

		// One-pixel strip along the right edge of the front image,
		// stretched across the face's vertical span.
		srcY := int(progress * float64(front.height-1))
		strip := front.GetPixel(front.width-1, srcY)
		edgeLight := 0.6 - progress*0.15
		base := strip.Scale(edgeLight)

		span := float64(endX - startX)
		for x := startX; x < endX; x++ {
			t := (float64(x-startX) + 0.5) / span
			canvas.SetPixel(x, rowY, base.Scale(1-amp*(1-t)))
		}
	}
}

// drawBottomFace marches along the frame's bottom edge.
func drawBottomFace(canvas, front *Pixmap, frameX, frameY, width, height, depth3D int, geom Geometry, amp float64) {
	xo := float64(geom.XOffset)
	yo := float64(geom.YOffset)

	for x := 0; x < width; x++ {
		progress := float64(x) / float64(width)

		colX := frameX + x + int(math.Round(xo*(1+progress)))
		startY := frameY + height - int(math.Round(yo*progress))
		endY := startY + int(math.Round(float64(depth3D)*(0.7+0.3*progress)))
		if endY <= startY {
			continue
		}

		srcX := int(progress * float64(front.width-1))
		strip := front.GetPixel(srcX, front.height-1)
		edgeLight := 0.5 - progress*0.1
		base := strip.Scale(edgeLight)

		span := float64(endY - startY)
		for y := startY; y < endY; y++ {
			t := (float64(y-startY) + 0.5) / span
			canvas.SetPixel(colX, y, base.Scale(1-amp*(1-t)))
		}
	}
}

// drawTopFace paints the narrow top face. It receives more light than
// the other faces and its gradient runs inverted: brightest near the
// front-face edge.
func drawTopFace(canvas, front *Pixmap, frameX, frameY, width, height, depth3D int, geom Geometry, amp float64) {
	xo := float64(geom.XOffset)
	yo := float64(geom.YOffset)

	faceDepth := int(math.Round(float64(depth3D) * 0.3))
	if faceDepth <= 0 {
		return
	}

	for x := 0; x < width; x++ {
		progress := float64(x) / float64(width)

		colX := frameX + x + int(math.Round(xo*progress))
		startY := frameY + int(math.Round(yo*(1-progress)))
		endY := startY + faceDepth

		srcX := int(progress * float64(front.width-1))
		strip := front.GetPixel(srcX, 0)
		edgeLight := 0.9 - progress*0.1
		base := strip.Scale(edgeLight)

		span := float64(endY - startY)
		for y := startY; y < endY; y++ {
			if y < frameY {
				continue // never paint above the frame origin
			}
			t := (float64(y-startY) + 0.5) / span
			canvas.SetPixel(colX, y, base.Scale(1-amp*t))
		}
	}
}
