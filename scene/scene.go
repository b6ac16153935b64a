package scene

import (
	"fmt"
	"strings"
)

// Scene owns an ordered collection of objects and tracks the active camera.
//
// Object names are unique within a scene.
type Scene struct {
	objects []*Object
	Camera  *Object
	Frame   float64
}

func NewScene() *Scene {
	return &Scene{}
}

// Objects returns the linked objects in link order.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Len returns the number of linked objects.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Find looks up a linked object by exact name.
func (s *Scene) Find(name string) (*Object, bool) {
	for _, o := range s.objects {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// ObjectsWithPrefix returns every linked object whose name starts with prefix.
func (s *Scene) ObjectsWithPrefix(prefix string) []*Object {
	var out []*Object
	for _, o := range s.objects {
		if strings.HasPrefix(o.Name, prefix) {
			out = append(out, o)
		}
	}
	return out
}

// uniqueName returns name, or name with the first free ".NNN" suffix if name is taken.
func (s *Scene) uniqueName(name string) string {
	if _, taken := s.Find(name); !taken {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%03d", name, i)
		if _, taken := s.Find(candidate); !taken {
			return candidate
		}
	}
}

// Link transfers ownership of o to the scene. o is renamed if its name is already taken.
func (s *Scene) Link(o *Object) error {
	if o == nil {
		return fmt.Errorf("linking nil object")
	}
	if o.scene != nil {
		return fmt.Errorf("linking %s: %w", o.Name, ErrAlreadyLinked)
	}
	o.Name = s.uniqueName(o.Name)
	o.scene = s
	s.objects = append(s.objects, o)
	return nil
}

// Remove unlinks o from the scene. Children of o are re-rooted at their current world position and
// the active camera is cleared if it was o.
func (s *Scene) Remove(o *Object) error {
	idx := -1
	for i, candidate := range s.objects {
		if candidate == o {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("removing %s: %w", o.Name, ErrNotLinked)
	}
	for _, child := range s.objects {
		if child.Parent == o {
			pos := child.WorldPosition()
			child.Parent = nil
			child.Location = pos
		}
	}
	if s.Camera == o {
		s.Camera = nil
	}
	s.objects = append(s.objects[:idx], s.objects[idx+1:]...)
	o.scene = nil
	return nil
}

// SetCamera makes o the active camera. o must be a linked camera.
func (s *Scene) SetCamera(o *Object) error {
	if o.scene != s {
		return fmt.Errorf("setting camera %s: %w", o.Name, ErrNotLinked)
	}
	if o.Kind != KindCamera {
		return fmt.Errorf("setting camera: %s is a %s", o.Name, o.Kind)
	}
	s.Camera = o
	return nil
}

// SetFrame moves every tracked object to its location at frame.
func (s *Scene) SetFrame(frame float64) {
	s.Frame = frame
	for _, o := range s.objects {
		if o.Track != nil {
			o.Location = o.Track.At(frame)
		}
	}
}

// ConvertToMesh replaces a curve object's polyline with the equivalent mesh. This cannot be undone.
func (s *Scene) ConvertToMesh(o *Object) error {
	if o.scene != s {
		return fmt.Errorf("converting %s: %w", o.Name, ErrNotLinked)
	}
	if o.Kind != KindCurve || o.Curve == nil {
		return fmt.Errorf("converting %s: %w", o.Name, ErrNotACurve)
	}
	o.Mesh = o.Curve.ToMesh()
	o.Curve = nil
	o.Kind = KindMesh
	return nil
}
