package wallframe

import (
	"bytes"
	"errors"
	"testing"
)

func TestAddFrameDimensions(t *testing.T) {
	img := solidPixmap(100, 80, RGBA{R: 0.3, G: 0.6, B: 0.9, A: 1})

	tests := []struct {
		name   string
		preset FramePreset
		width  int
	}{
		{"brown", FrameBrown, 50},
		{"white", FrameWhite, 25},
		{"black", FrameBlack, 10},
		{"gold", FrameGold, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := AddFrame(img, tt.preset, tt.width, 1)
			if err != nil {
				t.Fatalf("AddFrame: %v", err)
			}
			wantW, wantH := 100+2*tt.width, 80+2*tt.width
			if out.Width() != wantW || out.Height() != wantH {
				t.Errorf("framed = %dx%d, want %dx%d", out.Width(), out.Height(), wantW, wantH)
			}
			// The picture survives untouched inside the border.
			if out.GetPixel(tt.width+50, tt.width+40) != img.GetPixel(50, 40) {
				t.Errorf("picture area altered by %v frame", tt.preset)
			}
		})
	}
}

func TestAddFrameZeroWidth(t *testing.T) {
	img := solidPixmap(60, 60, RGBA{R: 1, A: 1})
	out, err := AddFrame(img, FrameBrown, 0, 1)
	if err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	if out == img {
		t.Fatal("zero-width frame returned the input instead of a copy")
	}
	if !bytes.Equal(out.Data(), img.Data()) {
		t.Error("zero-width frame altered the image")
	}
}

// Wood grain is driven by the seed, so identical seeds stay
// bit-identical and renders remain reproducible.
func TestAddFrameDeterministic(t *testing.T) {
	img := solidPixmap(100, 80, RGBA{R: 0.5, G: 0.4, B: 0.3, A: 1})

	a, err := AddFrame(img, FrameBrown, 30, 42)
	if err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	b, err := AddFrame(img, FrameBrown, 30, 42)
	if err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	if !bytes.Equal(a.Data(), b.Data()) {
		t.Error("same seed produced different wood grain")
	}

	c, err := AddFrame(img, FrameBrown, 30, 7)
	if err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	if bytes.Equal(a.Data(), c.Data()) {
		t.Error("different seeds produced identical wood grain")
	}
}

func TestAddFrameErrors(t *testing.T) {
	img := solidPixmap(60, 60, RGBA{R: 1, A: 1})

	if _, err := AddFrame(nil, FrameBrown, 10, 1); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("nil image error = %v, want ErrInvalidImage", err)
	}
	if _, err := AddFrame(img, FramePreset(99), 10, 1); !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("unknown preset error = %v, want ErrInvalidStyle", err)
	}
	if _, err := AddFrame(img, FrameBrown, -5, 1); !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("negative width error = %v, want ErrInvalidGeometry", err)
	}
}

func TestParseFramePreset(t *testing.T) {
	tests := []struct {
		name    string
		want    FramePreset
		wantErr bool
	}{
		{"brown", FrameBrown, false},
		{"white", FrameWhite, false},
		{"black", FrameBlack, false},
		{"gold", FrameGold, false},
		{"silver", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFramePreset(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStyle) {
					t.Fatalf("ParseFramePreset(%q) error = %v, want ErrInvalidStyle", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFramePreset(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseFramePreset(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
