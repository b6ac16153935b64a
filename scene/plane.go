package scene

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Slicing follows https://github.com/fogleman/choppy/tree/master with some modifications

type Point2D struct {
	X, Y float64
}

func (p Point2D) Translate(x, y float64) Point2D {
	return Point2D{p.X + x, p.Y + y}
}

func (p Point2D) Scale(s float64) Point2D {
	return Point2D{p.X * s, p.Y * s}
}

// Bounds is an axis aligned 2D box. The zero value is empty.
type Bounds struct {
	XMin, XMax, YMin, YMax float64
	set                    bool
}

func (b *Bounds) Extend(p Point2D) {
	if !b.set {
		*b = Bounds{p.X, p.X, p.Y, p.Y, true}
		return
	}
	b.XMin = math.Min(b.XMin, p.X)
	b.XMax = math.Max(b.XMax, p.X)
	b.YMin = math.Min(b.YMin, p.Y)
	b.YMax = math.Max(b.YMax, p.Y)
}

func (b Bounds) Empty() bool {
	return !b.set
}

type Path2D []Point2D

// Plane is a projection plane with an orthonormal in-plane basis U, V.
type Plane struct {
	Point  pt.Vector
	Normal pt.Vector
	U, V   pt.Vector
}

func MakePlane(point, normal pt.Vector) Plane {
	normal = normal.Normalize()
	u := perpendicular(normal).Normalize()
	v := normal.Cross(u).Normalize()
	return Plane{point, normal, u, v}
}

// Project returns p's coordinates in the plane's U, V basis.
func (p Plane) Project(point pt.Vector) Point2D {
	d := point.Sub(p.Point)
	return Point2D{d.Dot(p.U), d.Dot(p.V)}
}

type Path []pt.Vector

func joinPaths(paths []Path) []Path {
	frontLookup := make(map[pt.Vector]Path, len(paths))
	for _, path := range paths {
		frontLookup[path[0]] = path
	}
	var result []Path
	for len(frontLookup) > 0 {
		var v pt.Vector
		for v = range frontLookup {
			break
		}
		var path Path
	outer:
		for {
			path = append(path, v)
			if p, ok := frontLookup[v]; ok {
				delete(frontLookup, v)
				v = p[len(p)-1]
			} else {
				for k, thisPath := range frontLookup {
					if thisPath[len(thisPath)-1] == v {
						delete(frontLookup, k)
						v = k
						continue outer
					}
				}
				break
			}
		}
		result = append(result, path)
	}
	return result
}

// SliceMesh cuts m with the plane and returns the joined cross-section outlines.
func (p Plane) SliceMesh(m *pt.Mesh) []Path {
	if m == nil {
		return nil
	}
	var paths []Path
	for _, t := range m.Triangles {
		if v1, v2, ok := p.IntersectTriangle(t.V1, t.V2, t.V3); ok {
			paths = append(paths, Path{v1, v2})
		}
	}
	return joinPaths(paths)
}

// MeshToPath slices m and projects the outlines into the plane.
func (p Plane) MeshToPath(m *pt.Mesh) []Path2D {
	result := []Path2D{}
	for _, path := range p.SliceMesh(m) {
		thisPath := Path2D{}
		for _, v := range path {
			thisPath = append(thisPath, p.Project(v))
		}
		result = append(result, thisPath)
	}
	return result
}

func (p Plane) intersectSegment(v0, v1 pt.Vector) (pt.Vector, bool) {
	u := v1.Sub(v0)
	w := v0.Sub(p.Point)
	d := p.Normal.Dot(u)
	if d > -1e-9 && d < 1e-9 {
		return pt.Vector{}, false
	}
	n := -p.Normal.Dot(w)
	t := n / d
	if t < 0 || t > 1 {
		return pt.Vector{}, false
	}
	return v0.Add(u.MulScalar(t)), true
}

// IntersectTriangle returns the segment where the triangle crosses the plane, oriented so that
// consecutive segments of a closed surface join head to tail.
func (p Plane) IntersectTriangle(a, b, c pt.Vector) (pt.Vector, pt.Vector, bool) {
	v1, ok1 := p.intersectSegment(a, b)
	v2, ok2 := p.intersectSegment(b, c)
	v3, ok3 := p.intersectSegment(c, a)
	var p1, p2 pt.Vector
	if ok1 && ok2 {
		p1, p2 = v1, v2
	} else if ok1 && ok3 {
		p1, p2 = v1, v3
	} else if ok2 && ok3 {
		p1, p2 = v2, v3
	} else {
		return pt.Vector{}, pt.Vector{}, false
	}
	if p1 == p2 {
		return pt.Vector{}, pt.Vector{}, false
	}
	normal := b.Sub(a).Cross(c.Sub(a))
	n := p2.Sub(p1).Cross(p.Normal)
	if n.Dot(normal) < 0 {
		return p1, p2, true
	}
	return p2, p1, true
}

// TopPlane looks down the Z axis with X to the right and Y up, cutting at height z.
func TopPlane(z float64) Plane {
	return Plane{Point: V(0, 0, z), Normal: V(0, 0, 1), U: V(1, 0, 0), V: V(0, 1, 0)}
}
