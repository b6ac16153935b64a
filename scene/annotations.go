package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fogleman/pt/pt"
)

// JSON schema types
type PointJSON struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Z    float64 `json:"z"`
	Size float64 `json:"size,omitempty"`
	Name string  `json:"name,omitempty"`
}

type PathJSON struct {
	Points    []PointJSON `json:"points"`
	Name      string      `json:"name,omitempty"`
	Color     string      `json:"color,omitempty"`
	Thickness float64     `json:"thickness,omitempty"`
}

type AnnotationsJSON struct {
	Frame  float64     `json:"frame"`
	Points []PointJSON `json:"points,omitempty"`
	Paths  []PathJSON  `json:"paths,omitempty"`
}

const RayColor = "#FF0000"

func VectorToJSON(v pt.Vector) PointJSON {
	return PointJSON{
		X:    v.X,
		Y:    v.Y,
		Z:    v.Z,
		Size: 1.0,
	}
}

// Annotations collects every marker as a point and every ray object as a two point path.
func (s *Scene) Annotations() AnnotationsJSON {
	a := AnnotationsJSON{Frame: s.Frame}
	for _, o := range s.objects {
		switch {
		case o.Kind == KindMarker || o.Kind == KindCamera:
			p := VectorToJSON(o.WorldPosition())
			p.Name = o.Name
			a.Points = append(a.Points, p)
		case o.Kind == KindMesh && o.Mesh != nil && len(o.Mesh.Edges) > 0:
			world := o.Mesh.Transformed(o.ToWorld)
			for _, e := range o.Mesh.Edges {
				a.Paths = append(a.Paths, PathJSON{
					Points: []PointJSON{VectorToJSON(world[e[0]]), VectorToJSON(world[e[1]])},
					Name:   o.Name,
					Color:  RayColor,
				})
			}
		}
	}
	return a
}

// SaveAnnotationsJSON writes the scene's markers and rays to a JSON file
func (s *Scene) SaveAnnotationsJSON(filename string) error {
	data, err := json.MarshalIndent(s.Annotations(), "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling annotations: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
