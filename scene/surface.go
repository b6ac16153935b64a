package scene

import (
	"fmt"

	"github.com/fogleman/pt/pt"
	"github.com/hpinc/go3mf"
)

// 3MF files are in millimeters; scenes are in meters.
const MillimetersPerUnit = 1000

func fromPoint3D(p go3mf.Point3D) pt.Vector {
	return V(
		float64(p.X())/MillimetersPerUnit,
		float64(p.Y())/MillimetersPerUnit,
		float64(p.Z())/MillimetersPerUnit,
	)
}

func toPoint3D(v pt.Vector) go3mf.Point3D {
	return go3mf.Point3D{
		float32(v.X * MillimetersPerUnit),
		float32(v.Y * MillimetersPerUnit),
		float32(v.Z * MillimetersPerUnit),
	}
}

// LoadSurface3MF reads every mesh in the build of a 3MF file into one compiled pt.Mesh, ready for
// SnapToSurface and plane slicing.
func LoadSurface3MF(filepath string) (*pt.Mesh, error) {
	var model go3mf.Model
	r, err := go3mf.OpenReader(filepath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filepath, err)
	}
	defer r.Close()
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath, err)
	}

	var material pt.Material
	triangles := []*pt.Triangle{}
	for _, item := range model.Build.Items {
		obj, ok := model.FindObject(item.ObjectPath(), item.ObjectID)
		if !ok || obj.Mesh == nil {
			continue
		}
		vertices := obj.Mesh.Vertices.Vertex
		for _, t := range obj.Mesh.Triangles.Triangle {
			triangles = append(triangles, pt.NewTriangle(
				fromPoint3D(vertices[t.V1]),
				fromPoint3D(vertices[t.V2]),
				fromPoint3D(vertices[t.V3]),
				pt.Vector{}, pt.Vector{}, pt.Vector{},
				material,
			))
		}
	}
	if len(triangles) == 0 {
		return nil, fmt.Errorf("%s contains no triangles", filepath)
	}
	mesh := pt.NewMesh(triangles)
	mesh.Compile()
	return mesh, nil
}
