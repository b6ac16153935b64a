package scene

import (
	"fmt"

	"github.com/fogleman/pt/pt"
	"gonum.org/v1/gonum/mat"
)

// Rays whose normal matrix is worse conditioned than this are treated as parallel.
const maxCondition = 1e10

// Triangulation is the point that best fits a set of rays.
type Triangulation struct {
	Position pt.Vector
	// Residuals[i] is the distance from Position to the line through rays[i]
	Residuals []float64
}

// Triangulate finds the point minimising the summed squared distance to the lines through rays.
//
// Firing a ray through the same marker on several frames of a tracked camera and triangulating them
// gives the marker's true 3D position.
func Triangulate(rays []pt.Ray) (Triangulation, error) {
	if len(rays) < 2 {
		return Triangulation{}, fmt.Errorf("%w: need at least 2 rays, got %d", ErrDegenerateRays, len(rays))
	}

	a := mat.NewDense(3, 3, nil)
	b := mat.NewVecDense(3, nil)
	for _, r := range rays {
		d := r.Direction.Normalize()
		dv := []float64{d.X, d.Y, d.Z}
		o := []float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
		// (I - d d^T) accumulated into a, and (I - d d^T) o into b
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				p := -dv[i] * dv[j]
				if i == j {
					p += 1
				}
				a.Set(i, j, a.At(i, j)+p)
				b.SetVec(i, b.AtVec(i)+p*o[j])
			}
		}
	}

	if mat.Cond(a, 2) > maxCondition {
		return Triangulation{}, fmt.Errorf("%w: rays are parallel", ErrDegenerateRays)
	}
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return Triangulation{}, fmt.Errorf("%w: %v", ErrDegenerateRays, err)
	}

	pos := V(x.AtVec(0), x.AtVec(1), x.AtVec(2))
	residuals := make([]float64, len(rays))
	for i, r := range rays {
		d := r.Direction.Normalize()
		w := pos.Sub(r.Origin)
		residuals[i] = w.Sub(d.MulScalar(w.Dot(d))).Length()
	}
	return Triangulation{Position: pos, Residuals: residuals}, nil
}
