package wallframe

import (
	"math"
	"testing"
)

// The canonical scenario: a 200x150 frame at (50, 50) on a 400x400 wall
// with realistic parameters. The right-shadow band is 16 columns wide,
// starts at canvas column 250, and is confined to rows 50-199.
func realisticShadowCanvas(t *testing.T) (*Pixmap, *Pixmap, StyleParams) {
	t.Helper()
	wall := solidPixmap(400, 400, Gray(0.8))
	base := wall.Clone()
	p := StyleParams{DepthExpansion: 50, Depth3D: 20, ShadowIntensity: 0.8, PerspectiveAngle: 0.25}
	drawShadows(wall, 50, 50, 200, 150, p)
	return wall, base, p
}

func TestShadowExtents(t *testing.T) {
	tests := []struct {
		depth3D    int
		wantRight  int
		wantBottom int
	}{
		{20, 16, 12},
		{16, 12, 9},
		{30, 24, 18},
		{15, 12, 9},
		{1, 0, 0},
	}
	for _, tt := range tests {
		r, b := shadowExtents(tt.depth3D)
		if r != tt.wantRight || b != tt.wantBottom {
			t.Errorf("shadowExtents(%d) = (%d, %d), want (%d, %d)", tt.depth3D, r, b, tt.wantRight, tt.wantBottom)
		}
	}
}

// Fade at offset 0 equals 0.15 * shadow_intensity.
func TestRightShadowFadeAtZero(t *testing.T) {
	canvas, _, p := realisticShadowCanvas(t)

	wantFade := 0.15 * p.ShadowIntensity // 0.12
	got := canvas.GetPixel(250, 100).R
	want := 0.8 * (1 - wantFade)
	if math.Abs(got-want) > 0.01 {
		t.Errorf("column-0 shadow pixel = %v, want %v (fade %v)", got, want, wantFade)
	}
}

// Fade is monotonically non-increasing away from the frame edge.
func TestRightShadowFadeMonotonic(t *testing.T) {
	canvas, _, _ := realisticShadowCanvas(t)

	prev := canvas.GetPixel(250, 100).R
	for i := 1; i < 16; i++ {
		cur := canvas.GetPixel(250+i, 100).R
		if cur < prev {
			t.Fatalf("shadow darkens again at offset %d: %v < %v", i, cur, prev)
		}
		prev = cur
	}
}

// The defining asymmetry: after shadow synthesis alone, no pixel
// strictly left of frame_x or strictly above frame_y differs from the
// base wall.
func TestShadowAboveLeftInvariant(t *testing.T) {
	canvas, base, _ := realisticShadowCanvas(t)

	for y := 0; y < canvas.Height(); y++ {
		for x := 0; x < canvas.Width(); x++ {
			if x >= 50 && y >= 50 {
				continue
			}
			if canvas.GetPixel(x, y) != base.GetPixel(x, y) {
				t.Fatalf("pixel (%d, %d) changed outside the light cone", x, y)
			}
		}
	}
}

func TestRightShadowBandBounds(t *testing.T) {
	canvas, base, _ := realisticShadowCanvas(t)

	unchanged := []struct{ x, y int }{
		{250, 49},  // above the frame's vertical extent
		{250, 200}, // below it (bottom shadow row 0 excludes this column)
		{266, 100}, // right of the 16-column band
	}
	for _, pt := range unchanged {
		if canvas.GetPixel(pt.x, pt.y) != base.GetPixel(pt.x, pt.y) {
			t.Errorf("pixel (%d, %d) changed, want untouched", pt.x, pt.y)
		}
	}

	changed := []struct{ x, y int }{
		{250, 50},   // first band column, first frame row
		{250, 199},  // first band column, last frame row
		{265, 100},  // last band column
		{150, 205},  // bottom shadow interior
	}
	for _, pt := range changed {
		if canvas.GetPixel(pt.x, pt.y) == base.GetPixel(pt.x, pt.y) {
			t.Errorf("pixel (%d, %d) unchanged, want shadowed", pt.x, pt.y)
		}
	}
}

// The bottom shadow bleeds slightly rightward as it descends.
func TestBottomShadowRightwardBleed(t *testing.T) {
	canvas, base, _ := realisticShadowCanvas(t)

	// At row offset i the row extends to frame_x + width + round(i*0.3).
	// Offset 0 stops at column 249; offset 10 reaches column 252.
	if canvas.GetPixel(251, 200) != base.GetPixel(251, 200) {
		t.Errorf("row offset 0 bled right, want untouched at (251, 200)")
	}
	if canvas.GetPixel(251, 210) == base.GetPixel(251, 210) {
		t.Errorf("row offset 10 did not bleed right at (251, 210)")
	}
}

// The bottom shadow tapers from the frame's horizontal midpoint toward
// both ends.
func TestBottomShadowCenterTaper(t *testing.T) {
	canvas, _, _ := realisticShadowCanvas(t)

	center := canvas.GetPixel(150, 202).R
	edge := canvas.GetPixel(55, 202).R
	if center >= edge {
		t.Errorf("bottom shadow not center-weighted: center %v, edge %v", center, edge)
	}
}

// A frame flush against the canvas edge clips its shadows instead of
// wrapping or panicking.
func TestShadowClippingAtCanvasEdge(t *testing.T) {
	wall := solidPixmap(200, 200, Gray(0.8))
	base := wall.Clone()
	p := StyleParams{DepthExpansion: 50, Depth3D: 20, ShadowIntensity: 0.8, PerspectiveAngle: 0.25}

	// The 16-column right band and 12-row bottom band both overflow the
	// 200x200 canvas and must be cut off at its edges.
	drawShadows(wall, 100, 100, 90, 90, p)

	if wall.Width() != 200 || wall.Height() != 200 {
		t.Fatalf("canvas resized to %dx%d", wall.Width(), wall.Height())
	}
	if wall.GetPixel(199, 150) == base.GetPixel(199, 150) {
		t.Errorf("right shadow missing at the canvas edge")
	}
	// Nothing above or left of the frame may change even when clipped.
	for y := 0; y < 100; y++ {
		for x := 0; x < wall.Width(); x++ {
			if wall.GetPixel(x, y) != base.GetPixel(x, y) {
				t.Fatalf("clipped shadow wrote above the frame at (%d, %d)", x, y)
			}
		}
	}
}
