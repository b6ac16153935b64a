package config

// SceneConfig describes a scene to fire rays into
type SceneConfig struct {
	Metadata  Metadata `yaml:"metadata"`
	Camera    Camera   `yaml:"camera"`
	Markers   []Marker `yaml:"markers"`
	Others    []Object `yaml:"others,omitempty"`
	Selection []string `yaml:"selection"`
	// Active defaults to the first selected object
	Active  string  `yaml:"active,omitempty"`
	Frame   float64 `yaml:"frame"`
	Surface Surface `yaml:"surface,omitempty"`
	Output  Output  `yaml:"output"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

type Object struct {
	Name     string     `yaml:"name"`
	Location [3]float64 `yaml:"location"`
	Rotation [3]float64 `yaml:"rotation,omitempty"` // Euler XYZ in radians
	Parent   string     `yaml:"parent,omitempty"`
}

type Camera struct {
	Object `yaml:",inline"`
	Track  Track `yaml:"track,omitempty"`
}

// Marker is a point placed by hand. A tracked marker records where it was aligned on each frame,
// which is what triangulation solves from.
type Marker struct {
	Object `yaml:",inline"`
	Track  Track `yaml:"track,omitempty"`
}

type Track struct {
	Inline   map[float64][3]float64 `yaml:"inline,omitempty"` // frame -> location
	FromFile string                 `yaml:"from_file,omitempty"`
}

type Surface struct {
	Path string `yaml:"path,omitempty"` // 3MF mesh to snap to and draw
}

type Output struct {
	Scale      float64 `yaml:"scale,omitempty"`
	TubeRadius float64 `yaml:"tube_radius,omitempty"` // meters
	Image      Image   `yaml:"image,omitempty"`
}

type Image struct {
	Width  int     `yaml:"width,omitempty"`
	Height int     `yaml:"height,omitempty"`
	Margin float64 `yaml:"margin,omitempty"`
}

const (
	DefaultTubeRadius  = 0.01
	DefaultImageSize   = 800
	DefaultImageMargin = 20
)

// WithDefaults fills unset output fields. A zero scale is left alone; the ray builder treats it as
// its own default.
func (o Output) WithDefaults() Output {
	if o.TubeRadius == 0 {
		o.TubeRadius = DefaultTubeRadius
	}
	if o.Image.Width == 0 {
		o.Image.Width = DefaultImageSize
	}
	if o.Image.Height == 0 {
		o.Image.Height = DefaultImageSize
	}
	if o.Image.Margin == 0 {
		o.Image.Margin = DefaultImageMargin
	}
	return o
}
