package core

// Point represents a 2D integer coordinate
// Used for world positions, chunk indices, camera and canvas sizes
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both components by n
func (p Point) Scale(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// Div floor-divides both components by n
func (p Point) Div(n int) Point {
	return Point{X: FloorDiv(p.X, n), Y: FloorDiv(p.Y, n)}
}

// Mod returns the positive remainder of both components modulo n
func (p Point) Mod(n int) Point {
	return Point{X: Mod(p.X, n), Y: Mod(p.Y, n)}
}

// Abs returns the component-wise absolute value
func (p Point) Abs() Point {
	return Point{X: abs(p.X), Y: abs(p.Y)}
}

// Sign returns the component-wise sign (-1, 0, 1)
func (p Point) Sign() Point {
	return Point{X: sign(p.X), Y: sign(p.Y)}
}

// FloorDiv divides a by b rounding toward negative infinity
// b must be positive
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Mod returns a mod b in [0, b)
// b must be positive
func Mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// Range calls fn for every point in the inclusive rectangle [min, max]
// Iterates row-major; no calls if min exceeds max on either axis
func Range(min, max Point, fn func(Point)) {
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			fn(Point{X: x, Y: y})
		}
	}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
