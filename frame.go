package wallframe

import (
	"fmt"
	"math"
	"math/rand"
)

// FramePreset selects a decorative border drawn around the front image
// before it is hung.
type FramePreset int

// Frame presets.
const (
	FrameBrown FramePreset = iota // wood grain
	FrameWhite                    // classic matte
	FrameBlack                    // modern matte
	FrameGold                     // gilded highlights
)

// String returns the preset's selector name.
func (f FramePreset) String() string {
	switch f {
	case FrameBrown:
		return "brown"
	case FrameWhite:
		return "white"
	case FrameBlack:
		return "black"
	case FrameGold:
		return "gold"
	default:
		return fmt.Sprintf("FramePreset(%d)", int(f))
	}
}

// ParseFramePreset converts a selector name to a FramePreset.
func ParseFramePreset(name string) (FramePreset, error) {
	switch name {
	case "brown":
		return FrameBrown, nil
	case "white":
		return FrameWhite, nil
	case "black":
		return FrameBlack, nil
	case "gold":
		return FrameGold, nil
	default:
		return 0, fmt.Errorf("%w: unknown frame preset %q", ErrInvalidStyle, name)
	}
}

// framePresetColors maps presets to their base border colors.
var framePresetColors = map[FramePreset]RGBA{
	FrameBrown: {R: 139.0 / 255, G: 69.0 / 255, B: 19.0 / 255, A: 1},
	FrameWhite: {R: 245.0 / 255, G: 245.0 / 255, B: 240.0 / 255, A: 1},
	FrameBlack: {R: 30.0 / 255, G: 30.0 / 255, B: 30.0 / 255, A: 1},
	FrameGold:  {R: 212.0 / 255, G: 175.0 / 255, B: 55.0 / 255, A: 1},
}

// AddFrame returns a copy of the image surrounded by a decorative border
// of the given width. A width of zero returns an unframed copy. The seed
// drives the wood-grain noise so identical inputs stay bit-identical.
func AddFrame(img *Pixmap, preset FramePreset, borderWidth int, seed int64) (*Pixmap, error) {
	if img == nil || img.width <= 0 || img.height <= 0 {
		return nil, fmt.Errorf("%w: front image is empty", ErrInvalidImage)
	}
	if borderWidth < 0 {
		return nil, fmt.Errorf("%w: border width %d", ErrInvalidGeometry, borderWidth)
	}
	base, ok := framePresetColors[preset]
	if !ok {
		return nil, fmt.Errorf("%w: unknown frame preset %v", ErrInvalidStyle, preset)
	}
	if borderWidth == 0 {
		return img.Clone(), nil
	}

	out := NewPixmap(img.width+2*borderWidth, img.height+2*borderWidth)
	out.Fill(base)

	switch preset {
	case FrameBrown:
		addWoodGrain(out, base, seed)
	case FrameGold:
		addGoldHighlights(out, base, borderWidth)
	}

	// Inset the picture after texturing so grain never crosses it.
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			out.SetPixel(borderWidth+x, borderWidth+y, img.GetPixel(x, y))
		}
	}
	return out, nil
}

// addWoodGrain overlays horizontal veins with bounded brightness noise.
func addWoodGrain(pm *Pixmap, base RGBA, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for y := 0; y < pm.height; y += 3 {
		noise := float64(rng.Intn(31)-15) / 255
		vein := RGBA{
			R: clamp01(base.R + noise),
			G: clamp01(base.G + noise),
			B: clamp01(base.B + noise),
			A: 1,
		}
		for x := 0; x < pm.width; x++ {
			pm.SetPixel(x, y, vein)
		}
	}
}

// addGoldHighlights draws concentric highlight rings with a sinusoidal
// brightness ripple.
func addGoldHighlights(pm *Pixmap, base RGBA, borderWidth int) {
	for i := 0; i < borderWidth; i += 6 {
		intensity := 30 * math.Sin(float64(i)*0.25) / 255
		highlight := RGBA{
			R: clamp01(base.R + intensity),
			G: clamp01(base.G + intensity),
			B: clamp01(base.B + intensity),
			A: 1,
		}
		drawRectOutline(pm, i, i, pm.width-2*i, pm.height-2*i, 2, highlight)
	}
}

// drawRectOutline strokes an axis-aligned rectangle outline of the
// given thickness.
func drawRectOutline(pm *Pixmap, x, y, w, h, thickness int, c RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	for t := 0; t < thickness; t++ {
		for i := x; i < x+w; i++ {
			pm.SetPixel(i, y+t, c)
			pm.SetPixel(i, y+h-1-t, c)
		}
		for j := y; j < y+h; j++ {
			pm.SetPixel(x+t, j, c)
			pm.SetPixel(x+w-1-t, j, c)
		}
	}
}
