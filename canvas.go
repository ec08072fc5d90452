package wallframe

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// NewWallCanvas creates a solid-color wall canvas of the given extent.
func NewWallCanvas(width, height int, c RGBA) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: wall canvas %dx%d", ErrInvalidImage, width, height)
	}
	pm := NewPixmap(width, height)
	pm.Fill(c)
	return pm, nil
}

// WallCanvasFromImage scales a wall template image to the given extent.
// The template is treated as read-only.
func WallCanvasFromImage(template image.Image, width, height int) (*Pixmap, error) {
	if template == nil || template.Bounds().Dx() <= 0 || template.Bounds().Dy() <= 0 {
		return nil, fmt.Errorf("%w: wall template is empty", ErrInvalidImage)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: wall canvas %dx%d", ErrInvalidImage, width, height)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), template, template.Bounds(), xdraw.Src, nil)
	return FromImage(dst), nil
}

// WallCanvasFor builds a wall canvas sized for the given front image
// under the style parameters, and returns the frame placement within it.
// The canvas adds the style's depth expansion around the frame footprint
// and anchors the frame toward the top-left, leaving room on the right
// and bottom for the depth effect and shadows.
func WallCanvasFor(front *Pixmap, p StyleParams, wallColor RGBA) (*Pixmap, image.Rectangle, error) {
	if front == nil || front.width <= 0 || front.height <= 0 {
		return nil, image.Rectangle{}, fmt.Errorf("%w: front image is empty", ErrInvalidImage)
	}
	if err := p.validate(); err != nil {
		return nil, image.Rectangle{}, err
	}

	canvas, err := NewWallCanvas(front.width+p.DepthExpansion, front.height+p.DepthExpansion, wallColor)
	if err != nil {
		return nil, image.Rectangle{}, err
	}

	frameX := p.DepthExpansion / 6
	frameY := p.DepthExpansion / 8
	placement := image.Rect(frameX, frameY, frameX+front.width, frameY+front.height)
	return canvas, placement, nil
}
