package wallframe

// Homography represents a 2D projective transformation as a 3x3 matrix.
// It maps one planar quadrilateral onto another and, unlike an affine
// matrix, can express the foreshortening that makes a skewed frame look
// three-dimensional.
//
// The matrix is stored in the column-vector convention used for
// quadrilateral mapping:
//
//	x' = (a11*x + a21*y + a31) / (a13*x + a23*y + a33)
//	y' = (a12*x + a22*y + a32) / (a13*x + a23*y + a33)
type Homography struct {
	a11, a12, a13 float64
	a21, a22, a23 float64
	a31, a32, a33 float64
}

// QuadToQuad computes the homography mapping the src quad onto the dst quad.
// The transform is factored through the unit square: src -> unit square ->
// dst.
func QuadToQuad(src, dst Quad) Homography {
	qToS := quadToSquare(src)
	sToQ := squareToQuad(dst)
	return sToQ.times(qToS)
}

// Apply transforms a point through the homography.
func (h Homography) Apply(p Point) Point {
	d := h.a13*p.X + h.a23*p.Y + h.a33
	return Point{
		X: (h.a11*p.X + h.a21*p.Y + h.a31) / d,
		Y: (h.a12*p.X + h.a22*p.Y + h.a32) / d,
	}
}

// Invert returns the inverse transform. The adjoint suffices because
// homographies are scale-invariant.
func (h Homography) Invert() Homography {
	return h.adjoint()
}

// squareToQuad computes the transform from the unit square to a quad.
func squareToQuad(q Quad) Homography {
	x0, y0 := q.TL.X, q.TL.Y
	x1, y1 := q.TR.X, q.TR.Y
	x2, y2 := q.BR.X, q.BR.Y
	x3, y3 := q.BL.X, q.BL.Y

	dx3 := x0 - x1 + x2 - x3
	dy3 := y0 - y1 + y2 - y3
	if dx3 == 0 && dy3 == 0 {
		// Parallelogram: the transform is affine.
		return Homography{
			a11: x1 - x0, a21: x2 - x1, a31: x0,
			a12: y1 - y0, a22: y2 - y1, a32: y0,
			a13: 0, a23: 0, a33: 1,
		}
	}
	dx1 := x1 - x2
	dx2 := x3 - x2
	dy1 := y1 - y2
	dy2 := y3 - y2
	denominator := dx1*dy2 - dx2*dy1
	a13 := (dx3*dy2 - dx2*dy3) / denominator
	a23 := (dx1*dy3 - dx3*dy1) / denominator
	return Homography{
		a11: x1 - x0 + a13*x1, a21: x3 - x0 + a23*x3, a31: x0,
		a12: y1 - y0 + a13*y1, a22: y3 - y0 + a23*y3, a32: y0,
		a13: a13, a23: a23, a33: 1,
	}
}

// quadToSquare computes the transform from a quad to the unit square.
func quadToSquare(q Quad) Homography {
	return squareToQuad(q).adjoint()
}

// adjoint returns the transpose of the cofactor matrix.
func (h Homography) adjoint() Homography {
	return Homography{
		a11: h.a22*h.a33 - h.a23*h.a32,
		a21: h.a23*h.a31 - h.a21*h.a33,
		a31: h.a21*h.a32 - h.a22*h.a31,
		a12: h.a13*h.a32 - h.a12*h.a33,
		a22: h.a11*h.a33 - h.a13*h.a31,
		a32: h.a12*h.a31 - h.a11*h.a32,
		a13: h.a12*h.a23 - h.a13*h.a22,
		a23: h.a13*h.a21 - h.a11*h.a23,
		a33: h.a11*h.a22 - h.a12*h.a21,
	}
}

// times returns h * other.
func (h Homography) times(other Homography) Homography {
	return Homography{
		a11: h.a11*other.a11 + h.a21*other.a12 + h.a31*other.a13,
		a21: h.a11*other.a21 + h.a21*other.a22 + h.a31*other.a23,
		a31: h.a11*other.a31 + h.a21*other.a32 + h.a31*other.a33,
		a12: h.a12*other.a11 + h.a22*other.a12 + h.a32*other.a13,
		a22: h.a12*other.a21 + h.a22*other.a22 + h.a32*other.a23,
		a32: h.a12*other.a31 + h.a22*other.a32 + h.a32*other.a33,
		a13: h.a13*other.a11 + h.a23*other.a12 + h.a33*other.a13,
		a23: h.a13*other.a21 + h.a23*other.a22 + h.a33*other.a23,
		a33: h.a13*other.a31 + h.a23*other.a32 + h.a33*other.a33,
	}
}
