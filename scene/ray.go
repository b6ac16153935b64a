package scene

import (
	"fmt"

	"github.com/fogleman/pt/pt"
)

// RayPrefix names the geometry created by RayBuilder. Every object whose name starts with it is
// treated as a stale ray and removed on the next build.
const RayPrefix = "CamToEmptyCurve"

// RayScale stretches the camera-to-marker vector so the ray runs well past the visible scene.
const RayScale = 1000

// RayBuilder fires an edge from the active camera through the first selected marker.
type RayBuilder struct {
	// Scale overrides RayScale when non-zero.
	Scale float64
}

func (b RayBuilder) scale() float64 {
	if b.Scale == 0 {
		return RayScale
	}
	return b.Scale
}

// Poll reports whether Build can run with sel, which is when a marker is selected.
func (b RayBuilder) Poll(sel Selection) bool {
	_, ok := sel.FirstMarker()
	return ok
}

// RayVector returns the ray's far point relative to the camera.
func (b RayBuilder) RayVector(camera, marker pt.Vector) pt.Vector {
	return marker.Sub(camera).MulScalar(b.scale())
}

// Build replaces any previous ray in sc with a new mesh running from the camera through the first
// marker in sel. It returns the selection the caller should apply afterwards: the original
// selection with the marker selected and active and the ray not selected.
//
// Nothing is mutated if no marker is selected or the scene has no camera.
func (b RayBuilder) Build(sc *Scene, sel Selection) (Selection, error) {
	marker, ok := sel.FirstMarker()
	if !ok {
		return sel, ErrNoMarkerSelected
	}
	if sc.Camera == nil {
		return sel, ErrNoActiveCamera
	}

	stale := []*Object{}
	for _, o := range sc.ObjectsWithPrefix(RayPrefix) {
		if o == marker || o == sc.Camera {
			continue
		}
		stale = append(stale, o)
	}
	for _, o := range stale {
		if err := sc.Remove(o); err != nil {
			return sel, fmt.Errorf("removing previous ray: %w", err)
		}
	}
	sel = sel.Without(stale...)

	cameraPos := sc.Camera.WorldPosition()
	ray := NewCurve(RayPrefix, cameraPos, V(0, 0, 0), b.RayVector(cameraPos, marker.WorldPosition()))
	if err := sc.Link(ray); err != nil {
		return sel, fmt.Errorf("linking ray: %w", err)
	}

	working := sel.With(ray)
	if err := sc.ConvertToMesh(working.Active); err != nil {
		return sel, fmt.Errorf("converting ray: %w", err)
	}

	result := working.Without(ray).With(marker)
	return result, nil
}

// FindRay returns the ray left in sc by the last Build. Linking may have suffixed its name, so it
// is matched by prefix and kind rather than by exact name.
func FindRay(sc *Scene) (*Object, bool) {
	rays := sc.ObjectsWithPrefix(RayPrefix)
	for i := len(rays) - 1; i >= 0; i-- {
		if rays[i].Kind == KindMesh {
			return rays[i], true
		}
	}
	return nil, false
}
