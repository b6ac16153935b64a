package scene

import (
	"math"
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkRenamesDuplicates(t *testing.T) {
	assert := assert.New(t)
	sc := NewScene()
	names := []string{}
	for i := 0; i < 3; i++ {
		o := NewMarker("Empty", pt.Vector{})
		require.NoError(t, sc.Link(o))
		names = append(names, o.Name)
	}
	assert.Equal([]string{"Empty", "Empty.001", "Empty.002"}, names)

	o, ok := sc.Find("Empty.001")
	assert.True(ok)
	require.NoError(t, sc.Remove(o))
	again := NewMarker("Empty", pt.Vector{})
	require.NoError(t, sc.Link(again))
	assert.Equal("Empty.001", again.Name)
}

func TestLinkTwice(t *testing.T) {
	sc := NewScene()
	o := NewMarker("Empty", pt.Vector{})
	require.NoError(t, sc.Link(o))
	assert.ErrorIs(t, sc.Link(o), ErrAlreadyLinked)
	assert.ErrorIs(t, NewScene().Link(o), ErrAlreadyLinked)
	assert.Error(t, sc.Link(nil))
}

func TestRemove(t *testing.T) {
	assert := assert.New(t)
	sc := NewScene()
	rig := &Object{Name: "Rig", Location: V(0, 0, 10), Rotation: V(0, 0, math.Pi/2)}
	cam := NewCamera("Camera", V(1, 0, 0), pt.Vector{})
	cam.Parent = rig
	require.NoError(t, sc.Link(rig))
	require.NoError(t, sc.Link(cam))
	require.NoError(t, sc.SetCamera(cam))

	require.NoError(t, sc.Remove(rig))
	assert.False(rig.Linked())
	assert.Nil(cam.Parent)
	assertVecNear(t, V(0, 1, 10), cam.Location)
	assert.Same(cam, sc.Camera)

	require.NoError(t, sc.Remove(cam))
	assert.Nil(sc.Camera)
	assert.Equal(0, sc.Len())
	assert.ErrorIs(sc.Remove(cam), ErrNotLinked)
}

func TestSetCamera(t *testing.T) {
	sc := NewScene()
	marker := NewMarker("Empty", pt.Vector{})
	cam := NewCamera("Camera", pt.Vector{}, pt.Vector{})
	assert.ErrorIs(t, sc.SetCamera(cam), ErrNotLinked)
	require.NoError(t, sc.Link(marker))
	require.NoError(t, sc.Link(cam))
	assert.Error(t, sc.SetCamera(marker))
	assert.NoError(t, sc.SetCamera(cam))
}

func TestConvertToMesh(t *testing.T) {
	assert := assert.New(t)
	sc := NewScene()
	curve := NewCurve("Curve", V(1, 1, 1), V(0, 0, 0), V(1, 0, 0), V(1, 1, 0))
	marker := NewMarker("Empty", pt.Vector{})
	assert.ErrorIs(sc.ConvertToMesh(curve), ErrNotLinked)
	require.NoError(t, sc.Link(curve))
	require.NoError(t, sc.Link(marker))

	require.NoError(t, sc.ConvertToMesh(curve))
	assert.Equal(KindMesh, curve.Kind)
	assert.Nil(curve.Curve)
	assert.Equal([]pt.Vector{V(0, 0, 0), V(1, 0, 0), V(1, 1, 0)}, curve.Mesh.Vertices)
	assert.Equal([][2]int{{0, 1}, {1, 2}}, curve.Mesh.Edges)

	assert.ErrorIs(sc.ConvertToMesh(curve), ErrNotACurve)
	assert.ErrorIs(sc.ConvertToMesh(marker), ErrNotACurve)
}

func TestSetFrame(t *testing.T) {
	sc := NewScene()
	track, err := NewTrack(map[float64]pt.Vector{1: V(0, 0, 0), 11: V(10, 0, 20)})
	require.NoError(t, err)
	cam := NewCamera("Camera", pt.Vector{}, pt.Vector{})
	cam.Track = track
	still := NewMarker("Empty", V(5, 5, 5))
	require.NoError(t, sc.Link(cam))
	require.NoError(t, sc.Link(still))

	sc.SetFrame(6)
	assert.Equal(t, 6.0, sc.Frame)
	assertVecNear(t, V(5, 0, 10), cam.Location)
	assertVecNear(t, V(5, 5, 5), still.Location)
}

func TestSelection(t *testing.T) {
	assert := assert.New(t)
	a := NewMarker("A", pt.Vector{})
	b := &Object{Name: "B"}
	c := NewMarker("C", pt.Vector{})

	sel := Select(b, a, c)
	assert.Same(b, sel.Active)
	first, ok := sel.FirstMarker()
	assert.True(ok)
	assert.Same(a, first)

	without := sel.Without(b)
	assert.Nil(without.Active)
	assert.Equal([]*Object{a, c}, without.Objects)
	assert.Len(sel.Objects, 3)

	with := without.With(b)
	assert.Same(b, with.Active)
	assert.Equal([]*Object{a, c, b}, with.Objects)

	_, ok = Select(b).FirstMarker()
	assert.False(ok)
}
