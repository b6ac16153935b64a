package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultBaseDir = "shots"
	LatestSymlink  = "latest"
)

type Dir struct {
	Path      string    // Absolute path to session directory
	ID        string    // Unique session identifier
	Timestamp time.Time // When the session was created
}

// Create makes a new session directory under baseDir and points baseDir/latest at it
func Create(baseDir string) (*Dir, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("creating session base directory: %w", err)
	}

	id := GenerateID()
	absPath, err := filepath.Abs(filepath.Join(baseDir, id))
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}
	// two sessions in the same second share a timestamp; the name part usually differs
	for attempt := 0; ; attempt++ {
		err = os.Mkdir(absPath, 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) || attempt >= 10 {
			return nil, fmt.Errorf("creating session directory: %w", err)
		}
		id = GenerateID()
		absPath = filepath.Join(filepath.Dir(absPath), id)
	}

	latestPath := filepath.Join(baseDir, LatestSymlink)
	_ = os.Remove(latestPath)
	if err := os.Symlink(id, latestPath); err != nil {
		// Don't fail if symlink creation fails
		fmt.Printf("Warning: failed to create latest symlink: %v\n", err)
	}

	return &Dir{
		Path:      absPath,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}, nil
}

// GetFilePath returns the absolute path for a file in the session directory
func (d *Dir) GetFilePath(filename string) string {
	return filepath.Join(d.Path, filename)
}

// CopyFile copies srcPath into the session directory under its base name
func (d *Dir) CopyFile(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}
	if err := os.WriteFile(d.GetFilePath(filepath.Base(srcPath)), content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(srcPath), err)
	}
	return nil
}
