package scene

import (
	"errors"
	"fmt"
)

// ErrPreconditionFailed is wrapped by every error raised because an operation was invoked in a
// state where it is not available.
var ErrPreconditionFailed = errors.New("precondition failed")

var (
	ErrNoMarkerSelected = fmt.Errorf("%w: no marker selected", ErrPreconditionFailed)
	ErrNoActiveCamera   = fmt.Errorf("%w: scene has no active camera", ErrPreconditionFailed)

	ErrNotACurve      = errors.New("object is not a curve")
	ErrNotLinked      = errors.New("object is not linked to this scene")
	ErrAlreadyLinked  = errors.New("object is already linked to a scene")
	ErrObjectNotFound = errors.New("object not found")
	ErrDegenerateRays = errors.New("rays do not determine a point")
)
