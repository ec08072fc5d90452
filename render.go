package wallframe

import (
	"fmt"
	"image"
	"log/slog"
)

// Result is the output of one render: the composited canvas, owned by
// the caller, and the four style parameters that were actually used.
type Result struct {
	Canvas *Pixmap
	Params StyleParams
}

// RenderOption configures a render call.
type RenderOption func(*renderOptions)

type renderOptions struct {
	depthIntensity float64
	topFace        *bool
	interp         InterpolationMode
	params         *StyleParams
}

func defaultRenderOptions() renderOptions {
	return renderOptions{
		depthIntensity: 1.0,
		interp:         InterpBilinear,
	}
}

// WithDepthIntensity scales the style's depth expansion and frame depth.
// Typical values are 0 to 2; negative values are rejected.
func WithDepthIntensity(v float64) RenderOption {
	return func(o *renderOptions) {
		o.depthIntensity = v
	}
}

// WithTopFace overrides the top-face visibility predicate. By default
// the top face is drawn only for StyleDramatic, the one preset steep
// enough to expose it.
func WithTopFace(visible bool) RenderOption {
	return func(o *renderOptions) {
		o.topFace = &visible
	}
}

// WithInterpolation selects the warp's resampling filter.
func WithInterpolation(mode InterpolationMode) RenderOption {
	return func(o *renderOptions) {
		o.interp = mode
	}
}

// WithStyleParams bypasses the preset table and the depth-intensity
// multiplier, using the given parameters directly. They must still
// satisfy the style invariants.
func WithStyleParams(p StyleParams) RenderOption {
	return func(o *renderOptions) {
		o.params = &p
	}
}

// Render composites the front image onto the wall canvas as a
// perspective-hung picture frame.
//
// The placement rectangle positions the frame footprint on the canvas
// and must lie entirely within it; the depth effect is allowed to
// overflow and is clipped at the canvas edges. Neither input buffer is
// mutated: the wall is cloned and the clone is returned inside Result.
//
// All validation happens before any pixel is written; on error no
// partial composite exists.
func Render(front, wall *Pixmap, placement image.Rectangle, style Style, opts ...RenderOption) (*Result, error) {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if front == nil || front.width <= 0 || front.height <= 0 {
		return nil, fmt.Errorf("%w: front image is empty", ErrInvalidImage)
	}
	if wall == nil || wall.width <= 0 || wall.height <= 0 {
		return nil, fmt.Errorf("%w: wall canvas is empty", ErrInvalidImage)
	}

	params, err := resolveParams(style, o)
	if err != nil {
		return nil, err
	}

	frameX, frameY := placement.Min.X, placement.Min.Y
	width, height := placement.Dx(), placement.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: placement %v has no area", ErrInvalidGeometry, placement)
	}
	if !placement.In(wall.Bounds()) {
		return nil, fmt.Errorf("%w: placement %v outside wall canvas %v", ErrInvalidGeometry, placement, wall.Bounds())
	}

	geom, err := ResolveGeometry(width, height, params)
	if err != nil {
		return nil, err
	}

	topFace := style == StyleDramatic
	if o.topFace != nil {
		topFace = *o.topFace
	}

	Logger().Debug("render",
		slog.String("style", style.String()),
		slog.Int("depth_3d", params.Depth3D),
		slog.Float64("shadow_intensity", params.ShadowIntensity),
		slog.Float64("perspective_angle", params.PerspectiveAngle),
		slog.Int("x_offset", geom.XOffset),
		slog.Int("y_offset", geom.YOffset),
		slog.Bool("top_face", topFace),
	)

	// Fixed layering order: wall, shadows, side faces, front face.
	// Shadows must sit behind the side faces and the faces behind the
	// front, or the depth illusion inverts.
	canvas := wall.Clone()
	drawShadows(canvas, frameX, frameY, width, height, params)
	drawSideFaces(canvas, front, frameX, frameY, width, height, params, geom, topFace)
	warped := WarpPerspective(front, geom, o.interp)
	compositeOver(canvas, warped, frameX, frameY)

	return &Result{Canvas: canvas, Params: params}, nil
}

// resolveParams picks the effective style parameters for a render and
// validates them.
func resolveParams(style Style, o renderOptions) (StyleParams, error) {
	if o.params != nil {
		if err := o.params.validate(); err != nil {
			return StyleParams{}, err
		}
		return *o.params, nil
	}
	params, err := style.Params(o.depthIntensity)
	if err != nil {
		return StyleParams{}, err
	}
	if err := params.validate(); err != nil {
		return StyleParams{}, err
	}
	return params, nil
}
