package scene

import (
	"fmt"

	"github.com/fogleman/pt/pt"
)

// RayOf returns the world-space ray described by the first two points of a ray object.
func RayOf(o *Object) (pt.Ray, error) {
	var local []pt.Vector
	switch {
	case o.Kind == KindMesh && o.Mesh != nil:
		local = o.Mesh.Vertices
	case o.Kind == KindCurve && o.Curve != nil:
		local = o.Curve.Points
	default:
		return pt.Ray{}, fmt.Errorf("%s has no line geometry", o)
	}
	if len(local) < 2 {
		return pt.Ray{}, fmt.Errorf("%s has %d points, need 2", o, len(local))
	}
	origin := o.ToWorld(local[0])
	dir := o.ToWorld(local[1]).Sub(origin)
	if dir.Length() == 0 {
		return pt.Ray{}, fmt.Errorf("%s has zero length", o)
	}
	return pt.Ray{Origin: origin, Direction: dir.Normalize()}, nil
}

// NearestPointOnRay projects p onto ray. Points behind the origin project onto the origin.
func NearestPointOnRay(ray pt.Ray, p pt.Vector) pt.Vector {
	t := p.Sub(ray.Origin).Dot(ray.Direction)
	if t < 0 {
		t = 0
	}
	return ray.Position(t)
}

// DistanceToRay is the distance from p to the nearest point on ray.
func DistanceToRay(ray pt.Ray, p pt.Vector) float64 {
	return p.Sub(NearestPointOnRay(ray, p)).Length()
}

// SnapToRay slides marker onto the nearest point of ray, which is how a marker is aligned along the
// fired edge from another frame.
func SnapToRay(marker *Object, ray pt.Ray) {
	marker.SetWorldPosition(NearestPointOnRay(ray, marker.WorldPosition()))
}

// SnapToSurface returns the first point where ray hits surface.
//
// surface must have been compiled with Compile.
func SnapToSurface(ray pt.Ray, surface *pt.Mesh) (pt.Vector, bool) {
	if surface == nil {
		return pt.Vector{}, false
	}
	hit := surface.Intersect(ray)
	if !hit.Ok() {
		return pt.Vector{}, false
	}
	return ray.Position(hit.T), true
}
