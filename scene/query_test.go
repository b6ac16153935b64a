package scene

import (
	"math"
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayOf(t *testing.T) {
	sc, _ := buildScene(t, V(0, 0, 10))
	marker := NewMarker("Empty", V(0, 3, 6))
	require.NoError(t, sc.Link(marker))
	_, err := RayBuilder{}.Build(sc, Select(marker))
	require.NoError(t, err)

	ray, _ := sc.Find(RayPrefix)
	r, err := RayOf(ray)
	require.NoError(t, err)
	assertVecNear(t, V(0, 0, 10), r.Origin)
	assertVecNear(t, V(0, 0.6, -0.8), r.Direction)

	_, err = RayOf(marker)
	assert.Error(t, err)
	_, err = RayOf(NewCurve("Short", pt.Vector{}, V(0, 0, 0)))
	assert.Error(t, err)
	_, err = RayOf(NewCurve("Flat", pt.Vector{}, V(1, 1, 1), V(1, 1, 1)))
	assert.Error(t, err)
}

func TestNearestPointOnRay(t *testing.T) {
	r := pt.Ray{Origin: V(0, 0, 0), Direction: V(1, 0, 0)}
	tests := []struct {
		name   string
		point  pt.Vector
		expect pt.Vector
	}{
		{"on_ray", V(3, 0, 0), V(3, 0, 0)},
		{"off_ray", V(3, 4, 0), V(3, 0, 0)},
		{"behind_origin", V(-3, 4, 0), V(0, 0, 0)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertVecNear(t, test.expect, NearestPointOnRay(r, test.point))
		})
	}
	assert.InDelta(t, 4, DistanceToRay(r, V(3, 4, 0)), 1e-9)
	assert.InDelta(t, 5, DistanceToRay(r, V(-3, 4, 0)), 1e-9)
}

func TestSnapToRay(t *testing.T) {
	rig := &Object{Name: "Rig", Location: V(0, 0, 1), Rotation: V(0, 0, math.Pi/2)}
	marker := NewMarker("Empty", V(1, 1, 0))
	marker.Parent = rig
	r := pt.Ray{Origin: V(0, 0, 0), Direction: V(0, 0, 1)}

	SnapToRay(marker, r)
	assertVecNear(t, V(0, 0, 1), marker.WorldPosition())
	assertVecNear(t, V(0, 0, 0), marker.Location)
}

func TestSnapToSurface(t *testing.T) {
	cube := pt.NewCube(V(-1, -1, -1), V(1, 1, 1), pt.Material{}).Mesh()
	cube.Compile()

	hit, ok := SnapToSurface(pt.Ray{Origin: V(0, 0, 10), Direction: V(0, 0, -1)}, cube)
	assert.True(t, ok)
	assertVecNear(t, V(0, 0, 1), hit)

	_, ok = SnapToSurface(pt.Ray{Origin: V(0, 0, 10), Direction: V(0, 0, 1)}, cube)
	assert.False(t, ok)
	_, ok = SnapToSurface(pt.Ray{Origin: V(0, 0, 10), Direction: V(0, 0, -1)}, nil)
	assert.False(t, ok)
}
