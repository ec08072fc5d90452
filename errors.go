package wallframe

import "errors"

var (
	// ErrInvalidImage reports a nil or zero-area front image or wall canvas.
	ErrInvalidImage = errors.New("wallframe: invalid image")

	// ErrInvalidGeometry reports a non-positive frame size or a placement
	// rectangle that does not lie within the wall canvas.
	ErrInvalidGeometry = errors.New("wallframe: invalid geometry")

	// ErrInvalidStyle reports an unrecognized style selector, an
	// out-of-range depth intensity, or preset parameters that violate the
	// style invariants.
	ErrInvalidStyle = errors.New("wallframe: invalid style")
)
