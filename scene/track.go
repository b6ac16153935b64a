package scene

import (
	"fmt"
	"sort"

	"github.com/fogleman/pt/pt"
	lin "github.com/sgreben/piecewiselinear"
)

// Track holds keyframed locations and interpolates linearly between them.
//
// Frames outside the keyed range hold the nearest key.
type Track struct {
	frames     []float64
	x, y, z    lin.Function
	singleKey  bool
	singleSpot pt.Vector
}

// NewTrack builds a Track from a map of frame to location.
func NewTrack(keys map[float64]pt.Vector) (*Track, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("track needs at least one key")
	}
	frames := make([]float64, 0, len(keys))
	for f := range keys {
		frames = append(frames, f)
	}
	sort.Float64s(frames)

	t := &Track{frames: frames}
	if len(frames) == 1 {
		t.singleKey = true
		t.singleSpot = keys[frames[0]]
		return t, nil
	}

	xs := make([]float64, len(frames))
	ys := make([]float64, len(frames))
	zs := make([]float64, len(frames))
	for i, f := range frames {
		xs[i] = keys[f].X
		ys[i] = keys[f].Y
		zs[i] = keys[f].Z
	}
	t.x = lin.Function{X: frames, Y: xs}
	t.y = lin.Function{X: frames, Y: ys}
	t.z = lin.Function{X: frames, Y: zs}
	return t, nil
}

// Frames returns the keyed frames in ascending order.
func (t *Track) Frames() []float64 {
	out := make([]float64, len(t.frames))
	copy(out, t.frames)
	return out
}

// At returns the interpolated location at frame.
func (t *Track) At(frame float64) pt.Vector {
	if t.singleKey {
		return t.singleSpot
	}
	first, last := t.frames[0], t.frames[len(t.frames)-1]
	if frame < first {
		frame = first
	}
	if frame > last {
		frame = last
	}
	return V(t.x.At(frame), t.y.At(frame), t.z.At(frame))
}
