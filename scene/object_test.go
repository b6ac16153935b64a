package scene

import (
	"math"
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldPosition(t *testing.T) {
	root := &Object{Name: "Root", Location: V(0, 0, 10), Rotation: V(0, 0, math.Pi/2)}
	child := &Object{Name: "Child", Location: V(1, 0, 0), Parent: root}
	grandchild := &Object{Name: "Grandchild", Location: V(0, 2, 0), Parent: child}

	tests := []struct {
		name   string
		object *Object
		expect pt.Vector
	}{
		{"root", root, V(0, 0, 10)},
		{"child_rotated_by_parent", child, V(0, 1, 10)},
		{"grandchild", grandchild, V(-2, 1, 10)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assertVecNear(t, test.expect, test.object.WorldPosition())
		})
	}
}

func TestSetWorldPosition(t *testing.T) {
	root := &Object{Name: "Root", Location: V(3, 0, 0), Rotation: V(0, 0, math.Pi)}
	child := NewMarker("Child", V(1, 0, 0))
	child.Parent = root

	child.SetWorldPosition(V(0, 5, 1))
	assertVecNear(t, V(0, 5, 1), child.WorldPosition())
	assertVecNear(t, V(3, -5, 1), child.Location)

	root.SetWorldPosition(V(1, 1, 1))
	assertVecNear(t, V(1, 1, 1), root.Location)
}

func TestWorldPositionAt(t *testing.T) {
	rig := &Object{Name: "Rig", Location: V(0, 5, 0), Rotation: V(0, 0, math.Pi/2)}
	track, err := NewTrack(map[float64]pt.Vector{1: V(0, 0, 10), 11: V(10, 0, 10)})
	require.NoError(t, err)
	cam := NewCamera("Camera", V(0, 0, 0), pt.Vector{})
	cam.Parent = rig
	cam.Track = track

	assertVecNear(t, V(0, 15, 10), cam.WorldPositionAt(11))
	assertVecNear(t, V(0, 5, 10), cam.WorldPositionAt(1))
	// evaluating a frame does not move the object
	assertVecNear(t, V(0, 5, 0), cam.WorldPosition())

	cam.Track = nil
	assertVecNear(t, cam.WorldPosition(), cam.WorldPositionAt(11))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "marker", KindMarker.String())
	assert.Equal(t, "other", Kind(99).String())
	assert.Equal(t, "camera(Camera)", NewCamera("Camera", pt.Vector{}, pt.Vector{}).String())
	assert.False(t, (*Object)(nil).IsMarker())
}
