package wallframe

import (
	"fmt"

	"github.com/nfnt/resize"
)

// Upscale enlarges a pixmap by an integer factor using Lanczos3
// resampling. A scale of 1 returns a plain copy.
func Upscale(pm *Pixmap, scale int) (*Pixmap, error) {
	if pm == nil || pm.width <= 0 || pm.height <= 0 {
		return nil, fmt.Errorf("%w: upscale input is empty", ErrInvalidImage)
	}
	if scale < 1 {
		return nil, fmt.Errorf("wallframe: upscale factor must be >= 1, got %d", scale)
	}
	if scale == 1 {
		return pm.Clone(), nil
	}

	img := resize.Resize(uint(pm.width*scale), uint(pm.height*scale), pm.ToImage(), resize.Lanczos3)
	return FromImage(img), nil
}
