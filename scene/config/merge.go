package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// keyframeJSON is one entry of a track file, as exported by a camera solver or tracker
type keyframeJSON struct {
	Frame    float64    `json:"frame"`
	Location [3]float64 `json:"location"`
}

// MergeTrack merges keyframes from a file with inline keyframes
func (t *Track) MergeTrack() error {
	if t.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(t.FromFile)
	if err != nil {
		return fmt.Errorf("reading track file: %w", err)
	}

	var keys []keyframeJSON
	if err := json.Unmarshal(data, &keys); err != nil {
		return fmt.Errorf("parsing track file: %w", err)
	}

	if t.Inline == nil {
		t.Inline = make(map[float64][3]float64)
	}

	// Inline keyframes take precedence
	for _, k := range keys {
		if _, exists := t.Inline[k.Frame]; !exists {
			t.Inline[k.Frame] = k.Location
		}
	}

	return nil
}

// LoadAndMerge loads all external files and merges their contents
func (c *SceneConfig) LoadAndMerge() error {
	if err := c.Camera.Track.MergeTrack(); err != nil {
		return fmt.Errorf("merging camera track: %w", err)
	}
	for i := range c.Markers {
		if err := c.Markers[i].Track.MergeTrack(); err != nil {
			return fmt.Errorf("merging track of %s: %w", c.Markers[i].Name, err)
		}
	}
	return nil
}
