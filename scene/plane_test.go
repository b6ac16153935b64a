package scene

import (
	"fmt"
	"math"
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
)

func TestIntersectSegment(t *testing.T) {
	assert := assert.New(t)
	intersects := func(plane Plane, want, v1, v2 pt.Vector) {
		v, ok := plane.intersectSegment(v1, v2)
		assert.True(ok)
		assert.Less(math.Abs(want.Sub(v).Length()), 0.01)
	}
	doesNotIntersect := func(plane Plane, v1, v2 pt.Vector) {
		_, ok := plane.intersectSegment(v1, v2)
		assert.False(ok)
	}

	p := Plane{
		Point:  V(0, 0, 0),
		Normal: V(0, 1, 0),
	}

	intersects(p, V(0, 0, 0), V(0, 2, 0), V(0, -1, 0))
	doesNotIntersect(p, V(0, 2, 0), V(1, 2, 0))
	doesNotIntersect(p, V(0, 2, 0), V(0, 1, 0))
}

func TestIntersectTriangle(t *testing.T) {
	assert := assert.New(t)
	intersects := func(plane Plane, want1, want2, a, b, c pt.Vector) {
		v1, v2, ok := plane.IntersectTriangle(a, b, c)
		msg := fmt.Sprintf(`
			Expected vertices {%f, %f, %f}, {%f, %f, %f}
			Got vertices      {%f, %f, %f}, {%f, %f, %f}`, want1.X, want1.Y, want1.Z, want2.X, want2.Y, want2.Z, v1.X, v1.Y, v1.Z, v2.X, v2.Y, v2.Z)
		assert.True(ok)
		assert.Less(math.Abs(want1.Sub(v1).Length()), 0.01, msg)
		assert.Less(math.Abs(want2.Sub(v2).Length()), 0.01, msg)
	}
	doesNotIntersect := func(plane Plane, a, b, c pt.Vector) {
		_, _, ok := plane.IntersectTriangle(a, b, c)
		assert.False(ok)
	}

	p := Plane{
		Point:  V(0, 1, 0),
		Normal: V(0, 1, 0),
	}

	doesNotIntersect(p, V(0, 2, 0), V(15, 2, 0), V(-10, 5, 7))
	intersects(p, V(1, 1, 0), V(-1, 1, 0), V(0.0, 0, 0), V(2, 2, 0), V(-2, 2, 0))
	intersects(p, V(1, 1, 0), V(0, 1, 0), V(0, 0, 0), V(2, 0, 0), V(0, 2, 0))
}

func TestSliceCube(t *testing.T) {
	cube := pt.NewCube(V(-1, -1, -1), V(1, 1, 1), pt.Material{}).Mesh()
	paths := TopPlane(0).MeshToPath(cube)
	assert.NotEmpty(t, paths)

	var b Bounds
	for _, path := range paths {
		for _, p := range path {
			b.Extend(p)
		}
	}
	assert.InDelta(t, -1, b.XMin, 1e-9)
	assert.InDelta(t, 1, b.XMax, 1e-9)
	assert.InDelta(t, -1, b.YMin, 1e-9)
	assert.InDelta(t, 1, b.YMax, 1e-9)

	assert.Empty(t, TopPlane(5).MeshToPath(cube))
	assert.Empty(t, TopPlane(0).MeshToPath(nil))
}

func TestMakePlane(t *testing.T) {
	p := MakePlane(V(0, 0, 0), V(0, 0, 2))
	assertVecNear(t, V(0, 0, 1), p.Normal)
	assert.InDelta(t, 0, p.U.Dot(p.V), 1e-9)
	assert.InDelta(t, 0, p.U.Dot(p.Normal), 1e-9)
	assert.InDelta(t, 1, p.V.Length(), 1e-9)

	proj := TopPlane(3).Project(V(2, -1, 7))
	assert.Equal(t, Point2D{2, -1}, proj)
}
