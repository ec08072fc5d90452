package wallframe

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
)

// Style selects one of the predefined perspective presets.
type Style int

// Perspective styles, ordered from least to most pronounced.
const (
	StyleSubtle Style = iota
	StyleRealistic
	StyleDramatic
)

// String returns the style's selector name.
func (s Style) String() string {
	switch s {
	case StyleSubtle:
		return "subtle"
	case StyleRealistic:
		return "realistic"
	case StyleDramatic:
		return "dramatic"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle converts a selector name to a Style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "subtle":
		return StyleSubtle, nil
	case "realistic":
		return StyleRealistic, nil
	case "dramatic":
		return StyleDramatic, nil
	default:
		return 0, fmt.Errorf("%w: unknown style %q", ErrInvalidStyle, name)
	}
}

// StyleParams bundles the four numeric parameters a style resolves to.
// All four must be strictly positive and PerspectiveAngle must lie in
// (0, 1).
type StyleParams struct {
	// DepthExpansion is the canvas padding, in pixels, added around the
	// frame footprint when sizing a wall canvas for it.
	DepthExpansion int `toml:"depth_expansion"`

	// Depth3D is the pixel depth of the simulated frame thickness.
	Depth3D int `toml:"depth_3d"`

	// ShadowIntensity scales the cast shadows, in [0, 1].
	ShadowIntensity float64 `toml:"shadow_intensity"`

	// PerspectiveAngle controls the homography skew, in (0, 1).
	PerspectiveAngle float64 `toml:"perspective_angle"`
}

// stylePresets is the compiled preset table. Depth values are the
// intensity-1.0 baselines; Params applies the caller's multiplier.
var stylePresets = map[Style]StyleParams{
	StyleSubtle:    {DepthExpansion: 40, Depth3D: 15, ShadowIntensity: 0.6, PerspectiveAngle: 0.15},
	StyleRealistic: {DepthExpansion: 50, Depth3D: 20, ShadowIntensity: 0.8, PerspectiveAngle: 0.25},
	StyleDramatic:  {DepthExpansion: 60, Depth3D: 30, ShadowIntensity: 1.0, PerspectiveAngle: 0.35},
}

// maxPresetDepth is the largest baseline Depth3D across the presets.
// Side-face gradient amplitude is normalized against it.
const maxPresetDepth = 30

// Params resolves the style's parameters at the given depth intensity.
// The intensity multiplies DepthExpansion and Depth3D; shadow intensity
// and perspective angle are fixed per style.
func (s Style) Params(depthIntensity float64) (StyleParams, error) {
	base, ok := stylePresets[s]
	if !ok {
		return StyleParams{}, fmt.Errorf("%w: unknown style %v", ErrInvalidStyle, s)
	}
	if depthIntensity < 0 || math.IsNaN(depthIntensity) || math.IsInf(depthIntensity, 0) {
		return StyleParams{}, fmt.Errorf("%w: depth intensity %v out of range [0, +Inf)", ErrInvalidStyle, depthIntensity)
	}
	base.DepthExpansion = int(float64(base.DepthExpansion) * depthIntensity)
	base.Depth3D = int(float64(base.Depth3D) * depthIntensity)
	return base, nil
}

// validate checks the style parameter invariants.
func (p StyleParams) validate() error {
	if p.DepthExpansion <= 0 || p.Depth3D <= 0 || p.ShadowIntensity <= 0 {
		return fmt.Errorf("%w: parameters must be strictly positive, got %+v", ErrInvalidStyle, p)
	}
	if p.PerspectiveAngle <= 0 || p.PerspectiveAngle >= 1 {
		return fmt.Errorf("%w: perspective angle %v outside (0, 1)", ErrInvalidStyle, p.PerspectiveAngle)
	}
	return nil
}

// StyleConfig holds optional per-style parameter overrides, typically
// decoded from a TOML file:
//
//	[dramatic]
//	depth_3d = 36
//	shadow_intensity = 1.0
//	depth_expansion = 70
//	perspective_angle = 0.4
type StyleConfig struct {
	Subtle    *StyleParams `toml:"subtle"`
	Realistic *StyleParams `toml:"realistic"`
	Dramatic  *StyleParams `toml:"dramatic"`
}

// LoadStyleConfig reads style overrides from a TOML file.
func LoadStyleConfig(path string) (*StyleConfig, error) {
	var cfg StyleConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("wallframe: failed to load style config: %w", err)
	}
	return &cfg, nil
}

// Resolve returns the override for the given style, or the compiled
// preset when no override is present. The depth intensity applies the
// same way as Style.Params.
func (c *StyleConfig) Resolve(s Style, depthIntensity float64) (StyleParams, error) {
	var override *StyleParams
	switch s {
	case StyleSubtle:
		override = c.Subtle
	case StyleRealistic:
		override = c.Realistic
	case StyleDramatic:
		override = c.Dramatic
	}
	if override == nil {
		return s.Params(depthIntensity)
	}
	if depthIntensity < 0 || math.IsNaN(depthIntensity) || math.IsInf(depthIntensity, 0) {
		return StyleParams{}, fmt.Errorf("%w: depth intensity %v out of range [0, +Inf)", ErrInvalidStyle, depthIntensity)
	}
	p := *override
	p.DepthExpansion = int(float64(p.DepthExpansion) * depthIntensity)
	p.Depth3D = int(float64(p.Depth3D) * depthIntensity)
	return p, nil
}
