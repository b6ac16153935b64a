package scene

import (
	"github.com/fogleman/pt/pt"
)

// Polyline is an open poly curve in its object's local space.
type Polyline struct {
	Points []pt.Vector
}

func NewCurve(name string, location pt.Vector, points ...pt.Vector) *Object {
	return &Object{
		Name:     name,
		Kind:     KindCurve,
		Location: location,
		Curve:    &Polyline{Points: points},
	}
}

// ToMesh turns the polyline into loose vertices joined by edges, one per segment.
func (p *Polyline) ToMesh() *Mesh {
	m := &Mesh{Vertices: make([]pt.Vector, len(p.Points))}
	copy(m.Vertices, p.Points)
	for i := 0; i+1 < len(p.Points); i++ {
		m.Edges = append(m.Edges, [2]int{i, i + 1})
	}
	return m
}

// Mesh is vertex/edge/face geometry in its object's local space.
type Mesh struct {
	Vertices []pt.Vector
	Edges    [][2]int
	Faces    [][3]int
}

// Transformed returns the vertices mapped through f, usually an Object's ToWorld.
func (m *Mesh) Transformed(f func(pt.Vector) pt.Vector) []pt.Vector {
	out := make([]pt.Vector, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = f(v)
	}
	return out
}
