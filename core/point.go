package core

// Point is an integer coordinate pair in world space
// Value type with no identity; two points compare equal by coordinates
type Point struct {
	X, Y int
}

// Pt is shorthand for constructing a Point
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of p and q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// DistSq returns the squared Euclidean distance between p and q
// Kept squared to avoid floating point on the query hot path
func (p Point) DistSq(q Point) int {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}
