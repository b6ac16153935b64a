package config

import (
	"fmt"
	"sort"
	"strings"
)

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups errors by their top level field
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]ValidationError{}
	order := []string{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		if _, seen := categories[category]; !seen {
			order = append(order, category)
		}
		categories[category] = append(categories[category], err)
	}
	sort.Strings(order)

	for _, category := range order {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *SceneConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateNames()...)
	errors = append(errors, c.validateParents()...)
	errors = append(errors, c.validateSelection()...)
	errors = append(errors, c.Output.Validate()...)
	errors = append(errors, c.validateFiles(NewPathResolver("."))...)
	return errors
}

// objects lists every configured object with the field path used in error messages
func (c *SceneConfig) objects() ([]Object, []string) {
	objs := []Object{c.Camera.Object}
	fields := []string{"camera"}
	for i, m := range c.Markers {
		objs = append(objs, m.Object)
		fields = append(fields, fmt.Sprintf("markers.%d", i))
	}
	for i, o := range c.Others {
		objs = append(objs, o)
		fields = append(fields, fmt.Sprintf("others.%d", i))
	}
	return objs, fields
}

func (c *SceneConfig) validateNames() []ValidationError {
	var errors []ValidationError
	seen := map[string]bool{}
	objs, fields := c.objects()
	for i, o := range objs {
		if o.Name == "" {
			errors = append(errors, ValidationError{
				Field:   fields[i] + ".name",
				Message: "name is required",
			})
			continue
		}
		if seen[o.Name] {
			errors = append(errors, ValidationError{
				Field:   fields[i] + ".name",
				Message: fmt.Sprintf("duplicate object name '%s'", o.Name),
			})
		}
		seen[o.Name] = true
	}
	return errors
}

func (c *SceneConfig) validateParents() []ValidationError {
	var errors []ValidationError
	parents := map[string]string{}
	objs, fields := c.objects()
	for _, o := range objs {
		parents[o.Name] = o.Parent
	}
	for i, o := range objs {
		if o.Parent == "" {
			continue
		}
		if _, ok := parents[o.Parent]; !ok {
			errors = append(errors, ValidationError{
				Field:   fields[i] + ".parent",
				Message: fmt.Sprintf("references undefined object '%s'", o.Parent),
			})
			continue
		}
		// walk up; more steps than objects means a cycle
		name := o.Name
		for steps := 0; name != ""; steps++ {
			if steps > len(objs) {
				errors = append(errors, ValidationError{
					Field:   fields[i] + ".parent",
					Message: "parent chain forms a cycle",
				})
				break
			}
			name = parents[name]
		}
	}
	return errors
}

func (c *SceneConfig) validateSelection() []ValidationError {
	var errors []ValidationError
	known := map[string]bool{}
	objs, _ := c.objects()
	for _, o := range objs {
		known[o.Name] = true
	}
	for i, name := range c.Selection {
		if !known[name] {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("selection.%d", i),
				Message: fmt.Sprintf("references undefined object '%s'", name),
			})
		}
	}
	if c.Active != "" && !known[c.Active] {
		errors = append(errors, ValidationError{
			Field:   "active",
			Message: fmt.Sprintf("references undefined object '%s'", c.Active),
		})
	}
	return errors
}

// validateFiles checks that referenced files exist. Relative paths are taken relative to resolver.
func (c *SceneConfig) validateFiles(resolver *PathResolver) []ValidationError {
	var errors []ValidationError
	check := func(field, path string) {
		if path != "" && !resolver.FileExists(path) {
			errors = append(errors, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("file not found: %s", path),
			})
		}
	}
	check("surface.path", c.Surface.Path)
	check("camera.track.from_file", c.Camera.Track.FromFile)
	for i, m := range c.Markers {
		check(fmt.Sprintf("markers.%d.track.from_file", i), m.Track.FromFile)
	}
	return errors
}

func (o *Output) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, validateNonNegative("output.scale", o.Scale)...)
	errors = append(errors, validateNonNegative("output.tube_radius", o.TubeRadius)...)
	errors = append(errors, validateNonNegative("output.image.width", float64(o.Image.Width))...)
	errors = append(errors, validateNonNegative("output.image.height", float64(o.Image.Height))...)
	errors = append(errors, validateNonNegative("output.image.margin", o.Image.Margin)...)
	return errors
}
