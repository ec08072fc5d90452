// Package wallframe renders the illusion of a framed picture hanging on a wall.
//
// # Overview
//
// Given a flat front image, a wall canvas, a placement rectangle, and a
// perspective style, wallframe synthesizes a perspective-warped front face,
// shaded side faces that expose the frame's simulated depth, and directional
// soft shadows, and composites them in a fixed layering order.
//
// # Quick Start
//
//	import "github.com/gogpu/wallframe"
//
//	front, _ := wallframe.LoadPixmap("picture.png")
//	params, _ := wallframe.StyleRealistic.Params(1.0)
//	wall, placement, _ := wallframe.WallCanvasFor(front, params, wallframe.RGB(0.94, 0.94, 0.94))
//
//	result, err := wallframe.Render(front, wall, placement, wallframe.StyleRealistic)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result.Canvas.SavePNG("hung.png")
//
// # Styles
//
// Three presets control how pronounced the depth illusion appears:
// StyleSubtle, StyleRealistic, and StyleDramatic. Each binds a canvas
// expansion, a frame thickness in pixels, a shadow intensity, and a
// perspective skew angle. WithDepthIntensity scales the depth parameters,
// and operators may override presets from TOML via LoadStyleConfig.
//
// # Purity
//
// Render is a pure function of its inputs. The wall template is cloned per
// call and neither input buffer is ever mutated, so independent renders may
// run concurrently without locking.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// The simulated light arrives from above-left, so side faces and shadows
// appear only to the right of and below the frame.
package wallframe
