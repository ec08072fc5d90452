package wallframe

import (
	"bytes"
	"errors"
	"testing"
)

func TestUpscale(t *testing.T) {
	pm := solidPixmap(50, 40, RGBA{R: 0.2, G: 0.7, B: 0.4, A: 1})

	up, err := Upscale(pm, 2)
	if err != nil {
		t.Fatalf("Upscale: %v", err)
	}
	if up.Width() != 100 || up.Height() != 80 {
		t.Errorf("upscaled = %dx%d, want 100x80", up.Width(), up.Height())
	}

	// A solid fill stays (approximately) the same color everywhere.
	c := up.GetPixel(50, 40)
	if diff := c.R - 0.2; diff > 0.02 || diff < -0.02 {
		t.Errorf("upscaled interior = %+v, want the source color", c)
	}
}

func TestUpscaleIdentity(t *testing.T) {
	pm := solidPixmap(30, 30, RGBA{R: 0.5, A: 1})
	up, err := Upscale(pm, 1)
	if err != nil {
		t.Fatalf("Upscale: %v", err)
	}
	if up == pm {
		t.Fatal("scale 1 returned the input instead of a copy")
	}
	if !bytes.Equal(up.Data(), pm.Data()) {
		t.Error("scale 1 altered pixels")
	}
}

func TestUpscaleErrors(t *testing.T) {
	pm := solidPixmap(30, 30, White)

	if _, err := Upscale(nil, 2); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("nil input error = %v, want ErrInvalidImage", err)
	}
	if _, err := Upscale(pm, 0); err == nil {
		t.Error("scale 0 succeeded, want error")
	}
}
