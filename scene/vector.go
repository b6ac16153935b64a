package scene

import (
	"github.com/fogleman/pt/pt"
)

// V is a shorthand constructor for pt.Vector
func V(X, Y, Z float64) pt.Vector {
	return pt.Vector{X: X, Y: Y, Z: Z}
}

// perpendicular returns a unit vector orthogonal to a, or the zero vector if a is zero.
func perpendicular(a pt.Vector) pt.Vector {
	if a.X == 0 && a.Y == 0 {
		if a.Z == 0 {
			return pt.Vector{}
		}
		return V(0, 1, 0)
	}
	return V(-a.Y, a.X, 0).Normalize()
}
