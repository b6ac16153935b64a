package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
	MergeFiles          bool
}

// LoadFromFile loads a SceneConfig from a YAML file
func LoadFromFile(path string, opts LoadOptions) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := &SceneConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ResolvePaths {
		resolver := NewPathResolver(filepath.Dir(path))
		config.ResolvePaths(resolver)
	}

	if opts.MergeFiles {
		if err := config.LoadAndMerge(); err != nil {
			return nil, fmt.Errorf("merging external files: %w", err)
		}
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors: %v", errs)
		}
	}

	return config, nil
}

// SaveToFile saves a SceneConfig to a YAML file
func SaveToFile(config *SceneConfig, path string) error {
	NewMetadataCollector().PopulateMetadata(config)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePaths resolves all relative paths in the config to absolute paths
func (c *SceneConfig) ResolvePaths(resolver *PathResolver) {
	c.Surface.Path = resolver.ResolvePath(c.Surface.Path)
	c.Camera.Track.FromFile = resolver.ResolvePath(c.Camera.Track.FromFile)
	for i := range c.Markers {
		c.Markers[i].Track.FromFile = resolver.ResolvePath(c.Markers[i].Track.FromFile)
	}
}
