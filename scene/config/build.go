package config

import (
	"fmt"
	"sort"

	"github.com/fogleman/pt/pt"

	"github.com/jdginn/go-fire/scene"
)

func vec(a [3]float64) pt.Vector {
	return scene.V(a[0], a[1], a[2])
}

// build returns nil for a track without keyframes
func (t Track) build() (*scene.Track, error) {
	if len(t.Inline) == 0 {
		return nil, nil
	}
	keys := make(map[float64]pt.Vector, len(t.Inline))
	for frame, loc := range t.Inline {
		keys[frame] = vec(loc)
	}
	return scene.NewTrack(keys)
}

// Build creates the scene described by the config, positioned at its frame, together with the
// configured selection.
func (c *SceneConfig) Build() (*scene.Scene, scene.Selection, error) {
	sc := scene.NewScene()
	byName := map[string]*scene.Object{}
	link := func(o *scene.Object) error {
		if err := sc.Link(o); err != nil {
			return err
		}
		byName[o.Name] = o
		return nil
	}

	cam := scene.NewCamera(c.Camera.Name, vec(c.Camera.Location), vec(c.Camera.Rotation))
	track, err := c.Camera.Track.build()
	if err != nil {
		return nil, scene.Selection{}, fmt.Errorf("camera track: %w", err)
	}
	cam.Track = track
	if err := link(cam); err != nil {
		return nil, scene.Selection{}, err
	}
	if err := sc.SetCamera(cam); err != nil {
		return nil, scene.Selection{}, err
	}

	for _, o := range c.Others {
		if err := link(&scene.Object{Name: o.Name, Kind: scene.KindOther, Location: vec(o.Location), Rotation: vec(o.Rotation)}); err != nil {
			return nil, scene.Selection{}, err
		}
	}
	for _, m := range c.Markers {
		marker := scene.NewMarker(m.Name, vec(m.Location))
		marker.Rotation = vec(m.Rotation)
		if marker.Track, err = m.Track.build(); err != nil {
			return nil, scene.Selection{}, fmt.Errorf("track of %s: %w", m.Name, err)
		}
		if err := link(marker); err != nil {
			return nil, scene.Selection{}, err
		}
	}

	objs, _ := c.objects()
	for _, o := range objs {
		if o.Parent == "" {
			continue
		}
		parent, ok := byName[o.Parent]
		if !ok {
			return nil, scene.Selection{}, fmt.Errorf("parent of %s: %w: %s", o.Name, scene.ErrObjectNotFound, o.Parent)
		}
		byName[o.Name].Parent = parent
	}

	sel := scene.Selection{}
	for _, name := range c.Selection {
		o, ok := byName[name]
		if !ok {
			return nil, scene.Selection{}, fmt.Errorf("selection: %w: %s", scene.ErrObjectNotFound, name)
		}
		sel.Objects = append(sel.Objects, o)
	}
	switch {
	case c.Active != "":
		o, ok := byName[c.Active]
		if !ok {
			return nil, scene.Selection{}, fmt.Errorf("active: %w: %s", scene.ErrObjectNotFound, c.Active)
		}
		sel.Active = o
	case len(sel.Objects) > 0:
		sel.Active = sel.Objects[0]
	}

	sc.SetFrame(c.Frame)
	return sc, sel, nil
}

// Frames returns every frame keyed on the camera or a marker, or the configured frame if nothing is
// tracked.
func (c *SceneConfig) Frames() []float64 {
	keyed := map[float64]bool{}
	for frame := range c.Camera.Track.Inline {
		keyed[frame] = true
	}
	for _, m := range c.Markers {
		for frame := range m.Track.Inline {
			keyed[frame] = true
		}
	}
	if len(keyed) == 0 {
		return []float64{c.Frame}
	}
	frames := make([]float64, 0, len(keyed))
	for frame := range keyed {
		frames = append(frames, frame)
	}
	sort.Float64s(frames)
	return frames
}
