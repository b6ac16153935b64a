package config

import (
	"os/exec"
	"strings"
	"time"
)

// MetadataCollector handles collecting metadata for saved scenes
type MetadataCollector struct {
	timestamp time.Time
	gitCommit string
}

// NewMetadataCollector creates a new MetadataCollector with current timestamp. The git commit is
// left empty outside a git checkout.
func NewMetadataCollector() *MetadataCollector {
	gitCommit, _ := getCurrentGitCommit()
	return &MetadataCollector{
		timestamp: time.Now().UTC(),
		gitCommit: gitCommit,
	}
}

func getCurrentGitCommit() (string, error) {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// PopulateMetadata fills in the metadata fields of the config
func (mc *MetadataCollector) PopulateMetadata(config *SceneConfig) {
	config.Metadata.Timestamp = mc.timestamp.Format("2006-01-02 15:04:05")
	config.Metadata.GitCommit = mc.gitCommit
}
