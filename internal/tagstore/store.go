package tagstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/slidebar/internal/bar"
)

// SidecarName is the file written next to the rendered slides
const SidecarName = "progressbar.yaml"

// SidecarPath returns the tag location for an output directory
func SidecarPath(outputDir string) string {
	return filepath.Join(outputDir, SidecarName)
}

// FileStore keeps a bar.Tag in a YAML file
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the tag. A missing file means no bar was stored and returns nil, nil.
func (s *FileStore) Load() (*bar.Tag, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var tag bar.Tag
	if err := yaml.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.Path, err)
	}
	if tag.Version > bar.TagVersion {
		return nil, fmt.Errorf("%s: tag version %d is newer than supported %d", s.Path, tag.Version, bar.TagVersion)
	}
	return &tag, nil
}

// Save validates and writes the tag
func (s *FileStore) Save(tag bar.Tag) error {
	if err := tag.Validate(); err != nil {
		return err
	}
	if tag.Version == 0 {
		tag.Version = bar.TagVersion
	}

	data, err := yaml.Marshal(tag)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0644)
}

// Delete removes the stored tag; a missing file is not an error
func (s *FileStore) Delete() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
