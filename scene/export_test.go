package scene

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hpinc/go3mf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firedScene(t *testing.T) *Scene {
	t.Helper()
	sc, _ := buildScene(t, V(0, 0, 0))
	marker := NewMarker("Target", V(1, 0, 0))
	require.NoError(t, sc.Link(marker))
	_, err := RayBuilder{}.Build(sc, Select(marker))
	require.NoError(t, err)
	return sc
}

func TestTube(t *testing.T) {
	var s solid
	s.tube(V(0, 0, 0), V(0, 0, 2), 0.5)
	assert.Len(t, s.vertices, 6)
	assert.Len(t, s.triangles, 8)
	for _, v := range s.vertices {
		assert.InDelta(t, 0.5, V(v.X, v.Y, 0).Length(), 1e-9)
	}

	var empty solid
	empty.tube(V(1, 1, 1), V(1, 1, 1), 0.5)
	assert.Empty(t, empty.vertices)
}

func TestSolidOfMarkerOnCamera(t *testing.T) {
	sc, _ := buildScene(t, V(1, 2, 3))
	marker := NewMarker("Target", V(1, 2, 3))
	require.NoError(t, sc.Link(marker))
	_, err := RayBuilder{}.Build(sc, Select(marker))
	require.NoError(t, err)
	ray, ok := FindRay(sc)
	require.True(t, ok)

	s, err := solidOf(ray, 0.01)
	require.NoError(t, err)
	assert.Len(t, s.vertices, 2)
	assert.Empty(t, s.triangles)
	for _, v := range s.vertices {
		assert.False(t, math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z), "vertex %v", v)
	}
}

func TestSave3MF(t *testing.T) {
	sc := firedScene(t)
	ray, _ := sc.Find(RayPrefix)
	path := filepath.Join(t.TempDir(), "ray.3mf")

	require.NoError(t, Save3MF(path, []*Object{ray}, 0.01))

	var model go3mf.Model
	r, err := go3mf.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.Decode(&model))
	require.Len(t, model.Resources.Objects, 1)
	assert.Equal(t, RayPrefix, model.Resources.Objects[0].Name)
	assert.Len(t, model.Build.Items, 1)

	surface, err := LoadSurface3MF(path)
	require.NoError(t, err)
	assert.Len(t, surface.Triangles, 8)
	box := surface.BoundingBox()
	assert.InDelta(t, 1000, box.Max.X, 1e-3)
	assert.InDelta(t, 0, box.Min.X, 1e-3)
}

func TestSave3MFRejectsNonMesh(t *testing.T) {
	sc := firedScene(t)
	marker, _ := sc.Find("Target")
	assert.Error(t, Save3MF(filepath.Join(t.TempDir(), "bad.3mf"), []*Object{marker}, 0.01))
}

func TestLoadSurface3MFMissing(t *testing.T) {
	_, err := LoadSurface3MF(filepath.Join(t.TempDir(), "missing.3mf"))
	assert.Error(t, err)
}

func TestSaveAnnotationsJSON(t *testing.T) {
	assert := assert.New(t)
	sc := firedScene(t)
	sc.Frame = 12
	path := filepath.Join(t.TempDir(), "annotations.json")
	require.NoError(t, sc.SaveAnnotationsJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got AnnotationsJSON
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(12.0, got.Frame)
	require.Len(t, got.Points, 2)
	assert.Equal("Camera", got.Points[0].Name)
	assert.Equal("Target", got.Points[1].Name)
	require.Len(t, got.Paths, 1)
	assert.Equal(RayPrefix, got.Paths[0].Name)
	assert.Equal(RayColor, got.Paths[0].Color)
	assert.InDelta(1000, got.Paths[0].Points[1].X, 1e-9)
}

func TestAnnotationsSkipsEmptyMesh(t *testing.T) {
	sc := firedScene(t)
	require.NoError(t, sc.Link(&Object{Name: "Empty mesh", Kind: KindMesh}))

	var got AnnotationsJSON
	require.NotPanics(t, func() { got = sc.Annotations() })
	require.Len(t, got.Paths, 1)
	assert.Equal(t, RayPrefix, got.Paths[0].Name)
	assert.NoError(t, sc.SaveAnnotationsJSON(filepath.Join(t.TempDir(), "annotations.json")))
}
