package solid

// A Resizable is a Shape whose width and height move independently.
// *Rect qualifies. Square does not: one side cannot follow the other
// without betraying the contract, so it stays a plain Shape and the
// compiler keeps it out of Widen.
type Resizable interface {
	Shape
	Size() (w, h float64)
	SetSize(w, h float64)
}

func (r *Rect) Size() (w, h float64) { return r.W, r.H }

func (r *Rect) SetSize(w, h float64) { r.W, r.H = w, h }

// A Square keeps all sides equal. It scales; it does not resize.
type Square struct {
	Side float64
}

func (s Square) Area() float64 { return s.Side * s.Side }

// Scale returns the square scaled by f.
func (s Square) Scale(f float64) Square {
	return Square{Side: s.Side * f}
}

// Widen grows any Resizable by extra width, leaving the height alone.
// Every implementation must keep the two dimensions independent; that
// is the substitution promise.
func Widen(r Resizable, extra float64) {
	w, h := r.Size()
	r.SetSize(w+extra, h)
}
