package solid

import "math"

// A Shape reports its area. TotalArea is closed against change and
// open to extension: define a new Shape and it just works.
type Shape interface {
	Area() float64
}

// A Rect is a mutable rectangle.
type Rect struct {
	W, H float64
}

func (r *Rect) Area() float64 { return r.W * r.H }

// A Circle is a circle.
type Circle struct {
	R float64
}

func (c Circle) Area() float64 { return math.Pi * c.R * c.R }

// TotalArea sums the areas of any mix of shapes.
func TotalArea(shapes ...Shape) float64 {
	total := 0.0
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}
