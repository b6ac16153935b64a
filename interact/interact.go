package interact

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/pt/pt"

	"github.com/jdginn/go-fire/scene"
)

var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
)

// Scrubber re-fires the ray whenever the frame changes.
type Scrubber struct {
	Scene     *scene.Scene
	Selection scene.Selection
	Builder   scene.RayBuilder
	// View and ImagePath are optional; when both are set each fire re-renders the image
	View      *scene.View
	ImagePath string
}

// Fire moves the scene to frame, rebuilds the ray and returns it in world space.
func (s *Scrubber) Fire(frame float64) (pt.Ray, error) {
	s.Scene.SetFrame(frame)
	sel, err := s.Builder.Build(s.Scene, s.Selection)
	if err != nil {
		return pt.Ray{}, err
	}
	s.Selection = sel

	obj, ok := scene.FindRay(s.Scene)
	if !ok {
		return pt.Ray{}, fmt.Errorf("ray: %w", scene.ErrObjectNotFound)
	}
	ray, err := scene.RayOf(obj)
	if err != nil {
		return pt.Ray{}, err
	}

	if err := s.render(); err != nil {
		return ray, err
	}
	return ray, nil
}

// Slide moves the scene to frame and slides the selected marker onto the ray from the last Fire,
// without firing again. Firing on one frame and sliding on another narrows the marker down to the
// point both views agree on.
func (s *Scrubber) Slide(frame float64) (pt.Vector, error) {
	marker, ok := s.Selection.FirstMarker()
	if !ok {
		return pt.Vector{}, scene.ErrNoMarkerSelected
	}
	obj, ok := scene.FindRay(s.Scene)
	if !ok {
		return pt.Vector{}, fmt.Errorf("nothing fired yet: %w", scene.ErrObjectNotFound)
	}
	ray, err := scene.RayOf(obj)
	if err != nil {
		return pt.Vector{}, err
	}

	s.Scene.SetFrame(frame)
	scene.SnapToRay(marker, ray)
	if err := s.render(); err != nil {
		return marker.WorldPosition(), err
	}
	return marker.WorldPosition(), nil
}

func (s *Scrubber) render() error {
	if s.View == nil || s.ImagePath == "" {
		return nil
	}
	if err := s.View.SavePNG(s.Scene, s.ImagePath); err != nil {
		return fmt.Errorf("rendering view: %w", err)
	}
	return nil
}

type item struct {
	frame  float64
	camera pt.Vector
}

func (i item) Title() string {
	return fmt.Sprintf("frame %g", i.frame)
}

func (i item) Description() string {
	return fmt.Sprintf("camera at (%.3f, %.3f, %.3f)", i.camera.X, i.camera.Y, i.camera.Z)
}

func (i item) FilterValue() string {
	return i.Title()
}

type model struct {
	list     list.Model
	scrubber *Scrubber
	status   string
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			if m.list.FilterState() == list.Filtering {
				break
			}
			if selected, ok := m.list.SelectedItem().(item); ok {
				m.status = m.fire(selected.frame)
				return m, nil
			}
		case "s":
			if m.list.FilterState() == list.Filtering {
				break
			}
			if selected, ok := m.list.SelectedItem().(item); ok {
				m.status = m.slide(selected.frame)
				return m, nil
			}
		}
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-1)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) fire(frame float64) string {
	ray, err := m.scrubber.Fire(frame)
	if err != nil {
		return fmt.Sprintf("frame %g: %v", frame, err)
	}
	return fmt.Sprintf("frame %g: ray from (%.3f, %.3f, %.3f) towards (%.3f, %.3f, %.3f)", frame,
		ray.Origin.X, ray.Origin.Y, ray.Origin.Z, ray.Direction.X, ray.Direction.Y, ray.Direction.Z)
}

func (m model) slide(frame float64) string {
	p, err := m.scrubber.Slide(frame)
	if err != nil {
		return fmt.Sprintf("frame %g: %v", frame, err)
	}
	return fmt.Sprintf("frame %g: marker slid to (%.3f, %.3f, %.3f)", frame, p.X, p.Y, p.Z)
}

func (m model) View() string {
	return docStyle.Render(m.list.View() + "\n" + statusStyle.Render(m.status))
}

func newModel(s *Scrubber, frames []float64) model {
	items := make([]list.Item, len(frames))
	for i, frame := range frames {
		var camera pt.Vector
		if s.Scene.Camera != nil {
			camera = s.Scene.Camera.WorldPositionAt(frame)
		}
		items[i] = item{frame: frame, camera: camera}
	}
	m := model{list: list.New(items, list.NewDefaultDelegate(), 0, 0), scrubber: s}
	m.list.Title = "Frames (enter to fire, s to slide the marker along the last ray)"
	return m
}

// Interact lists frames in the terminal and fires a ray for each one the user picks.
func Interact(s *Scrubber, frames []float64) error {
	p := tea.NewProgram(newModel(s, frames), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running scrubber: %w", err)
	}
	return nil
}
