package scene

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/fogleman/pt/pt"
)

// View renders an orthographic projection of a scene onto Plane.
type View struct {
	XSize int
	YSize int
	Plane Plane
	// Surface, if set, is sliced by Plane and drawn as outlines
	Surface *pt.Mesh
	// Margin in pixels around the fitted content
	Margin float64

	// These cache the values needed to scale and translate from the scene to the requested image size
	scale      float64
	xTranslate float64
	yTranslate float64
}

// bounds covers the markers, cameras and surface outline. Rays are left out since they run a
// thousand times further than anything the user is looking at.
func (view *View) bounds(sc *Scene) Bounds {
	var b Bounds
	for _, o := range sc.Objects() {
		if o.Kind == KindMarker || o.Kind == KindCamera {
			b.Extend(view.Plane.Project(o.WorldPosition()))
		}
	}
	for _, path := range view.Plane.MeshToPath(view.Surface) {
		for _, p := range path {
			b.Extend(p)
		}
	}
	return b
}

func (view *View) computeScaleAndTranslation(sc *Scene) {
	b := view.bounds(sc)
	if b.Empty() {
		b = Bounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1, set: true}
	}
	width := math.Max(b.XMax-b.XMin, 1e-6)
	height := math.Max(b.YMax-b.YMin, 1e-6)
	XScale := (float64(view.XSize) - 2*view.Margin) / width
	YScale := (float64(view.YSize) - 2*view.Margin) / height
	view.scale = math.Min(XScale, YScale)
	view.xTranslate = -b.XMin
	view.yTranslate = -b.YMin
}

// toPixel maps a plane point to image coordinates with +V pointing up.
func (view *View) toPixel(p Point2D) Point2D {
	q := p.Translate(view.xTranslate, view.yTranslate).Scale(view.scale)
	return Point2D{q.X + view.Margin, float64(view.YSize) - view.Margin - q.Y}
}

func (view *View) pixelOf(v pt.Vector) Point2D {
	return view.toPixel(view.Plane.Project(v))
}

// Render draws the scene: surface outline in grey, rays in red, markers in gold, cameras in blue.
func (view *View) Render(sc *Scene) image.Image {
	view.computeScaleAndTranslation(sc)
	c := gg.NewContext(view.XSize, view.YSize)
	c.SetRGB(1, 1, 1)
	c.Clear()

	c.SetRGB(0.6, 0.6, 0.6)
	c.SetLineWidth(2)
	for _, lines := range view.Plane.MeshToPath(view.Surface) {
		for i := 0; i < len(lines)-1; i++ {
			p1 := view.toPixel(lines[i])
			p2 := view.toPixel(lines[i+1])
			c.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
		}
	}
	c.Stroke()

	c.SetRGB(1, 0, 0)
	c.SetLineWidth(1)
	for _, o := range sc.Objects() {
		if o.Kind != KindMesh || o.Mesh == nil {
			continue
		}
		world := o.Mesh.Transformed(o.ToWorld)
		for _, e := range o.Mesh.Edges {
			p1 := view.pixelOf(world[e[0]])
			p2 := view.pixelOf(world[e[1]])
			c.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
		}
	}
	c.Stroke()

	for _, o := range sc.Objects() {
		switch o.Kind {
		case KindMarker:
			c.SetRGB(0.85, 0.65, 0)
		case KindCamera:
			c.SetRGB(0, 0.3, 0.9)
		default:
			continue
		}
		p := view.pixelOf(o.WorldPosition())
		c.DrawCircle(p.X, p.Y, 4)
		c.Fill()
		c.DrawString(o.Name, p.X+6, p.Y-6)
	}
	return c.Image()
}

// SavePNG renders the scene to a PNG file.
func (view *View) SavePNG(sc *Scene, filename string) error {
	return gg.SavePNG(filename, view.Render(sc))
}
