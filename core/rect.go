package core

// Rect is an axis-aligned rectangle with inclusive bounds
type Rect struct {
	Min, Max Point
}

// RectAround returns the bounding rectangle of a circle with the given
// center and radius. A negative radius yields an invalid rectangle
func RectAround(center Point, radius int) Rect {
	return Rect{
		Min: Point{X: center.X - radius, Y: center.Y - radius},
		Max: Point{X: center.X + radius, Y: center.Y + radius},
	}
}

// Valid reports whether Min <= Max on every axis
// An invalid rectangle covers nothing
func (r Rect) Valid() bool {
	return r.Min.X <= r.Max.X && r.Min.Y <= r.Max.Y
}

// Contains reports whether p lies inside r, bounds inclusive
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
