package scene

import (
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"
	"github.com/hpinc/go3mf"
)

// solid is world-space triangle geometry ready to be written out.
type solid struct {
	name      string
	vertices  []pt.Vector
	triangles [][3]int
}

// tube wraps the segment a-b in a triangular prism of the given radius.
func (s *solid) tube(a, b pt.Vector, radius float64) {
	d := b.Sub(a)
	if d.Length() == 0 {
		return
	}
	axis := d.Normalize()
	u := perpendicular(axis)
	w := axis.Cross(u).Normalize()
	base := len(s.vertices)
	for _, end := range []pt.Vector{a, b} {
		for k := 0; k < 3; k++ {
			angle := 2 * math.Pi * float64(k) / 3
			offset := u.MulScalar(math.Cos(angle) * radius).Add(w.MulScalar(math.Sin(angle) * radius))
			s.vertices = append(s.vertices, end.Add(offset))
		}
	}
	// caps
	s.triangles = append(s.triangles, [3]int{base, base + 2, base + 1}, [3]int{base + 3, base + 4, base + 5})
	// sides
	for k := 0; k < 3; k++ {
		n := (k + 1) % 3
		s.triangles = append(s.triangles,
			[3]int{base + k, base + n, base + 3 + n},
			[3]int{base + k, base + 3 + n, base + 3 + k},
		)
	}
}

// solidOf converts a mesh object to world space, thickening loose edges into tubes.
func solidOf(o *Object, radius float64) (solid, error) {
	if o.Kind != KindMesh || o.Mesh == nil {
		return solid{}, fmt.Errorf("%s is not a mesh", o)
	}
	world := o.Mesh.Transformed(o.ToWorld)
	s := solid{name: o.Name}
	s.vertices = append(s.vertices, world...)
	s.triangles = append(s.triangles, o.Mesh.Faces...)
	for _, e := range o.Mesh.Edges {
		s.tube(world[e[0]], world[e[1]], radius)
	}
	return s, nil
}

// Save3MF writes the given mesh objects into a 3MF file, one 3MF object each. Edges are written as
// tubes of the given radius since 3MF has no line primitive.
func Save3MF(filepath string, objects []*Object, radius float64) error {
	var model go3mf.Model
	for i, o := range objects {
		s, err := solidOf(o, radius)
		if err != nil {
			return err
		}
		mesh := &go3mf.Mesh{}
		for _, v := range s.vertices {
			mesh.Vertices.Vertex = append(mesh.Vertices.Vertex, toPoint3D(v))
		}
		for _, t := range s.triangles {
			mesh.Triangles.Triangle = append(mesh.Triangles.Triangle, go3mf.Triangle{
				V1: uint32(t[0]),
				V2: uint32(t[1]),
				V3: uint32(t[2]),
			})
		}
		id := uint32(i + 1)
		model.Resources.Objects = append(model.Resources.Objects, &go3mf.Object{
			ID:   id,
			Name: s.name,
			Mesh: mesh,
		})
		model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: id})
	}

	w, err := go3mf.CreateWriter(filepath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath, err)
	}
	if err := w.Encode(&model); err != nil {
		w.Close()
		return fmt.Errorf("encoding %s: %w", filepath, err)
	}
	return w.Close()
}
