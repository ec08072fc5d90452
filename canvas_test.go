package wallframe

import (
	"errors"
	"image"
	"testing"
)

func TestNewWallCanvas(t *testing.T) {
	wall, err := NewWallCanvas(120, 90, Gray(0.94))
	if err != nil {
		t.Fatalf("NewWallCanvas: %v", err)
	}
	if wall.Width() != 120 || wall.Height() != 90 {
		t.Errorf("canvas = %dx%d, want 120x90", wall.Width(), wall.Height())
	}
	c := wall.GetPixel(60, 45)
	if c.A != 1 || c.R != c.G || c.G != c.B {
		t.Errorf("canvas fill = %+v, want opaque gray", c)
	}

	if _, err := NewWallCanvas(0, 90, White); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("zero width error = %v, want ErrInvalidImage", err)
	}
}

func TestWallCanvasFromImage(t *testing.T) {
	template := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for i := range template.Pix {
		template.Pix[i] = 0xCC
	}

	wall, err := WallCanvasFromImage(template, 200, 160)
	if err != nil {
		t.Fatalf("WallCanvasFromImage: %v", err)
	}
	if wall.Width() != 200 || wall.Height() != 160 {
		t.Errorf("canvas = %dx%d, want 200x160", wall.Width(), wall.Height())
	}

	if _, err := WallCanvasFromImage(nil, 200, 160); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("nil template error = %v, want ErrInvalidImage", err)
	}
	if _, err := WallCanvasFromImage(template, -1, 160); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("bad extent error = %v, want ErrInvalidImage", err)
	}
}

func TestWallCanvasFor(t *testing.T) {
	front := solidPixmap(200, 150, RGBA{R: 1, A: 1})
	p := StyleParams{DepthExpansion: 50, Depth3D: 20, ShadowIntensity: 0.8, PerspectiveAngle: 0.25}

	wall, placement, err := WallCanvasFor(front, p, Gray(0.94))
	if err != nil {
		t.Fatalf("WallCanvasFor: %v", err)
	}
	if wall.Width() != 250 || wall.Height() != 200 {
		t.Errorf("canvas = %dx%d, want 250x200", wall.Width(), wall.Height())
	}
	// Anchored toward the top-left: expansion/6 and expansion/8 margins.
	want := image.Rect(8, 6, 208, 156)
	if placement != want {
		t.Errorf("placement = %v, want %v", placement, want)
	}
	if !placement.In(wall.Bounds()) {
		t.Error("placement escapes the canvas")
	}

	// The generated pair renders without further adjustment.
	if _, err := Render(front, wall, placement, StyleRealistic, WithStyleParams(p)); err != nil {
		t.Errorf("Render on generated canvas: %v", err)
	}
}
