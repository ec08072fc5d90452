package wallframe

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Quad is a planar quadrilateral given by its four corners in order:
// top-left, top-right, bottom-right, bottom-left.
type Quad struct {
	TL, TR, BR, BL Point
}

// QuadFromRect returns the axis-aligned quad covering a w×h rectangle
// anchored at the origin.
func QuadFromRect(w, h float64) Quad {
	return Quad{
		TL: Pt(0, 0),
		TR: Pt(w, 0),
		BR: Pt(w, h),
		BL: Pt(0, h),
	}
}

// Bounds returns the minimal axis-aligned bounding box of the quad.
func (q Quad) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = q.TL.X, q.TL.Y
	maxX, maxY = q.TL.X, q.TL.Y
	for _, p := range [...]Point{q.TR, q.BR, q.BL} {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}
