// Package box provides the geometry primitives shared by the host box model
// and the scene loader.
package box

// Size is a width/height pair in pixels.
type Size struct {
	W, H float64
}

// Insets describes spacing around a box edge (margin, border, or padding).
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns insets with the same value on all four edges.
func Uniform(v float64) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the combined left and right inset.
func (i Insets) Horizontal() float64 { return i.Left + i.Right }

// Vertical returns the combined top and bottom inset.
func (i Insets) Vertical() float64 { return i.Top + i.Bottom }

// IsZero reports whether all four edges are zero.
func (i Insets) IsZero() bool {
	return i.Top == 0 && i.Right == 0 && i.Bottom == 0 && i.Left == 0
}
