package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/fogleman/pt/pt"

	"github.com/jdginn/go-fire/interact"
	"github.com/jdginn/go-fire/scene"
	sceneConfig "github.com/jdginn/go-fire/scene/config"
	"github.com/jdginn/go-fire/scene/session"
)

var CLI struct {
	Fire        FireCmd        `cmd:"" help:"Fire a ray from the camera through the selected marker"`
	Scrub       ScrubCmd       `cmd:"" help:"Pick frames in the terminal and re-fire the ray on each"`
	Triangulate TriangulateCmd `cmd:"" help:"Fire on several frames and solve for the marker's 3D position"`
	Validate    ValidateCmd    `cmd:"" help:"Check a scene file"`
}

type SceneArgs struct {
	Scene string  `arg:"" name:"scene" help:"scene description (YAML)" type:"existingfile"`
	Out   string  `name:"out" help:"directory that receives one sub-directory per run" default:"shots"`
	Scale float64 `name:"scale" help:"ray length as a multiple of the camera-marker distance (overrides the scene file)"`
}

// prepared is a loaded scene ready to fire into
type prepared struct {
	cfg     *sceneConfig.SceneConfig
	scene   *scene.Scene
	sel     scene.Selection
	builder scene.RayBuilder
	output  sceneConfig.Output
	surface *pt.Mesh
}

func (a SceneArgs) prepare() (*prepared, error) {
	cfg, err := sceneConfig.LoadFromFile(a.Scene, sceneConfig.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
	if err != nil {
		return nil, err
	}
	sc, sel, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}
	p := &prepared{
		cfg:     cfg,
		scene:   sc,
		sel:     sel,
		builder: scene.RayBuilder{Scale: cfg.Output.Scale},
		output:  cfg.Output.WithDefaults(),
	}
	if a.Scale != 0 {
		p.builder.Scale = a.Scale
	}
	if cfg.Surface.Path != "" {
		log.Printf("Loading surface %s", cfg.Surface.Path)
		if p.surface, err = scene.LoadSurface3MF(cfg.Surface.Path); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *prepared) view(marker *scene.Object) *scene.View {
	return &scene.View{
		XSize:   p.output.Image.Width,
		YSize:   p.output.Image.Height,
		Plane:   scene.TopPlane(marker.WorldPosition().Z),
		Surface: p.surface,
		Margin:  p.output.Image.Margin,
	}
}

// fire builds the ray on frame and returns it in world space together with the ray object
func (p *prepared) fire(frame float64) (pt.Ray, *scene.Object, error) {
	p.scene.SetFrame(frame)
	sel, err := p.builder.Build(p.scene, p.sel)
	if err != nil {
		return pt.Ray{}, nil, err
	}
	p.sel = sel
	obj, ok := scene.FindRay(p.scene)
	if !ok {
		return pt.Ray{}, nil, fmt.Errorf("ray: %w", scene.ErrObjectNotFound)
	}
	ray, err := scene.RayOf(obj)
	if err != nil {
		return pt.Ray{}, nil, err
	}
	return ray, obj, nil
}

// syncMarker copies a moved marker back into the config so the saved scene file reflects it. A
// tracked marker gets a key on the current frame; an untracked one loses any stale track.
func (p *prepared) syncMarker(marker *scene.Object) {
	loc := [3]float64{marker.Location.X, marker.Location.Y, marker.Location.Z}
	for i := range p.cfg.Markers {
		m := &p.cfg.Markers[i]
		if m.Name != marker.Name {
			continue
		}
		if marker.Track != nil && m.Track.Inline != nil {
			m.Track.Inline[p.scene.Frame] = loc
			continue
		}
		m.Location = loc
		m.Track = sceneConfig.Track{}
	}
}

type FireCmd struct {
	SceneArgs `embed:""`
	Frame *float64 `name:"frame" help:"frame to fire on (defaults to the scene file's frame)"`
	Snap  bool     `name:"snap" help:"move the marker to where the ray first hits the surface" xor:"move"`
	Along *float64 `name:"along" help:"fire on this frame instead, then slide the marker along that ray on --frame" xor:"move"`
}

func (c FireCmd) Run() error {
	p, err := c.prepare()
	if err != nil {
		return err
	}
	if c.Snap && p.surface == nil {
		return fmt.Errorf("--snap needs surface.path in %s", c.Scene)
	}
	frame := p.cfg.Frame
	if c.Frame != nil {
		frame = *c.Frame
	}
	fireFrame := frame
	if c.Along != nil {
		fireFrame = *c.Along
	}
	ray, obj, err := p.fire(fireFrame)
	if err != nil {
		return err
	}
	marker := p.sel.Active

	switch {
	case c.Along != nil:
		p.scene.SetFrame(frame)
		scene.SnapToRay(marker, ray)
		p.syncMarker(marker)
		pos := marker.WorldPosition()
		log.Printf("Slid %s along the frame %g ray to (%.4f, %.4f, %.4f)", marker.Name, fireFrame, pos.X, pos.Y, pos.Z)
	case c.Snap:
		hit, ok := scene.SnapToSurface(ray, p.surface)
		if !ok {
			return fmt.Errorf("ray does not hit the surface")
		}
		marker.SetWorldPosition(hit)
		p.syncMarker(marker)
		log.Printf("Snapped %s to (%.4f, %.4f, %.4f)", marker.Name, hit.X, hit.Y, hit.Z)
	}

	dir, err := session.Create(c.Out)
	if err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := scene.Save3MF(dir.GetFilePath("ray.3mf"), []*scene.Object{obj}, p.output.TubeRadius); err != nil {
		return err
	}
	if err := p.scene.SaveAnnotationsJSON(dir.GetFilePath("annotations.json")); err != nil {
		return err
	}
	if err := p.view(marker).SavePNG(p.scene, dir.GetFilePath("view.png")); err != nil {
		return err
	}
	if err := sceneConfig.SaveToFile(p.cfg, dir.GetFilePath("scene.yaml")); err != nil {
		return err
	}

	end := obj.ToWorld(obj.Mesh.Vertices[1])
	fmt.Printf("Fired %s on frame %g: (%.4f, %.4f, %.4f) -> (%.4f, %.4f, %.4f)\n", obj.Name, fireFrame,
		ray.Origin.X, ray.Origin.Y, ray.Origin.Z, end.X, end.Y, end.Z)
	fmt.Printf("Wrote %s\n", dir.Path)
	return nil
}

type ScrubCmd struct {
	SceneArgs `embed:""`
}

func (c ScrubCmd) Run() error {
	p, err := c.prepare()
	if err != nil {
		return err
	}
	marker, ok := p.sel.FirstMarker()
	if !ok {
		return scene.ErrNoMarkerSelected
	}
	dir, err := session.Create(c.Out)
	if err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	return interact.Interact(&interact.Scrubber{
		Scene:     p.scene,
		Selection: p.sel,
		Builder:   p.builder,
		View:      p.view(marker),
		ImagePath: dir.GetFilePath("view.png"),
	}, p.cfg.Frames())
}

type TriangulateCmd struct {
	SceneArgs `embed:""`
	Frames []float64 `name:"frames" help:"frames to fire on (defaults to the marker's keyed frames, else every keyed frame)" sep:","`
}

func (c TriangulateCmd) Run() error {
	p, err := c.prepare()
	if err != nil {
		return err
	}
	marker, ok := p.sel.FirstMarker()
	if !ok {
		return scene.ErrNoMarkerSelected
	}
	frames := c.Frames
	switch {
	case len(frames) > 0:
	case marker.Track != nil:
		frames = marker.Track.Frames()
	default:
		frames = p.cfg.Frames()
	}

	rays := make([]pt.Ray, 0, len(frames))
	labels := make([]string, 0, len(frames))
	for _, frame := range frames {
		ray, _, err := p.fire(frame)
		if err != nil {
			return fmt.Errorf("frame %g: %w", frame, err)
		}
		rays = append(rays, ray)
		labels = append(labels, strconv.FormatFloat(frame, 'g', -1, 64))
	}

	result, err := scene.Triangulate(rays)
	if err != nil {
		return err
	}
	// the solved position replaces the per-frame placements
	marker.Track = nil
	marker.SetWorldPosition(result.Position)
	p.syncMarker(marker)

	dir, err := session.Create(c.Out)
	if err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := scene.PlotResiduals(dir.GetFilePath("residuals.png"), labels, result.Residuals); err != nil {
		return fmt.Errorf("plotting residuals: %w", err)
	}
	if err := p.scene.SaveAnnotationsJSON(dir.GetFilePath("annotations.json")); err != nil {
		return err
	}
	if err := sceneConfig.SaveToFile(p.cfg, dir.GetFilePath("scene.yaml")); err != nil {
		return err
	}

	pos := result.Position
	fmt.Printf("%s is at (%.4f, %.4f, %.4f)\n", marker.Name, pos.X, pos.Y, pos.Z)
	for i, r := range result.Residuals {
		fmt.Printf("  frame %s: %.4f m off the ray\n", labels[i], r)
	}
	fmt.Printf("Wrote %s\n", dir.Path)
	return nil
}

type ValidateCmd struct {
	Scene string `arg:"" name:"scene" help:"scene description (YAML)" type:"existingfile"`
}

func (c ValidateCmd) Run() error {
	cfg, err := sceneConfig.LoadFromFile(c.Scene, sceneConfig.LoadOptions{
		ResolvePaths: true,
		MergeFiles:   true,
	})
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Print(sceneConfig.FormatValidationErrors(errs))
		return fmt.Errorf("%s is not valid", c.Scene)
	}
	if _, _, err := cfg.Build(); err != nil {
		return err
	}
	fmt.Printf("%s is valid\n", c.Scene)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}
