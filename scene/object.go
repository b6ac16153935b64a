package scene

import (
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"
)

// Kind tags what an Object holds.
type Kind int

const (
	KindOther Kind = iota
	// KindMarker is a locator with only a position (an "empty").
	KindMarker
	KindCamera
	KindCurve
	KindMesh
)

func (k Kind) String() string {
	switch k {
	case KindMarker:
		return "marker"
	case KindCamera:
		return "camera"
	case KindCurve:
		return "curve"
	case KindMesh:
		return "mesh"
	default:
		return "other"
	}
}

// Object is a node in the scene graph.
//
// Only the field matching Kind is meaningful: Curve for KindCurve, Mesh for KindMesh.
type Object struct {
	Name string
	Kind Kind
	// Location relative to Parent, or to the world if Parent is nil
	Location pt.Vector
	// Euler XYZ rotation in radians, applied before Location
	Rotation pt.Vector
	Parent   *Object
	// Track animates Location over frames. May be nil.
	Track *Track

	Curve *Polyline
	Mesh  *Mesh

	scene *Scene
}

func NewMarker(name string, location pt.Vector) *Object {
	return &Object{Name: name, Kind: KindMarker, Location: location}
}

func NewCamera(name string, location, rotation pt.Vector) *Object {
	return &Object{Name: name, Kind: KindCamera, Location: location, Rotation: rotation}
}

func (o *Object) String() string {
	return fmt.Sprintf("%s(%s)", o.Kind, o.Name)
}

// IsMarker reports whether o is a marker.
func (o *Object) IsMarker() bool {
	return o != nil && o.Kind == KindMarker
}

// rotateAxis turns v by angle radians about the unit axis k, counter-clockwise looking down k.
func rotateAxis(v, k pt.Vector, angle float64) pt.Vector {
	c, sn := math.Cos(angle), math.Sin(angle)
	return v.MulScalar(c).Add(k.Cross(v).MulScalar(sn)).Add(k.MulScalar(k.Dot(v) * (1 - c)))
}

func (o *Object) rotate(v pt.Vector) pt.Vector {
	v = rotateAxis(v, V(1, 0, 0), o.Rotation.X)
	v = rotateAxis(v, V(0, 1, 0), o.Rotation.Y)
	return rotateAxis(v, V(0, 0, 1), o.Rotation.Z)
}

func (o *Object) unrotate(v pt.Vector) pt.Vector {
	v = rotateAxis(v, V(0, 0, 1), -o.Rotation.Z)
	v = rotateAxis(v, V(0, 1, 0), -o.Rotation.Y)
	return rotateAxis(v, V(1, 0, 0), -o.Rotation.X)
}

// ToWorld maps a point in o's local frame to world space.
func (o *Object) ToWorld(p pt.Vector) pt.Vector {
	p = o.rotate(p).Add(o.Location)
	if o.Parent == nil {
		return p
	}
	return o.Parent.ToWorld(p)
}

// FromWorld maps a world space point into o's local frame.
func (o *Object) FromWorld(p pt.Vector) pt.Vector {
	if o.Parent != nil {
		p = o.Parent.FromWorld(p)
	}
	return o.unrotate(p.Sub(o.Location))
}

// WorldPosition is the world translation of o's origin.
func (o *Object) WorldPosition() pt.Vector {
	return o.ToWorld(pt.Vector{})
}

// WorldPositionAt is where o's origin is on frame. Only o's own track is evaluated; parents stay
// where they are.
func (o *Object) WorldPositionAt(frame float64) pt.Vector {
	loc := o.Location
	if o.Track != nil {
		loc = o.Track.At(frame)
	}
	if o.Parent == nil {
		return loc
	}
	return o.Parent.ToWorld(loc)
}

// SetWorldPosition moves o so that its world translation becomes p, keeping its parent.
func (o *Object) SetWorldPosition(p pt.Vector) {
	if o.Parent == nil {
		o.Location = p
		return
	}
	// the parent's local frame is the frame o.Location lives in
	o.Location = o.Parent.FromWorld(p)
}

// Linked reports whether o currently belongs to a scene.
func (o *Object) Linked() bool {
	return o.scene != nil
}
