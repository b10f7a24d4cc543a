package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a catalog from a YAML file. A file that omits levels keeps
// the built-in levels; subjects must be present and non-empty.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	if len(c.Subjects) == 0 {
		return Catalog{}, fmt.Errorf("catalog file %s defines no subjects", path)
	}
	for _, s := range c.Subjects {
		if s.Name == "" {
			return Catalog{}, fmt.Errorf("catalog file %s has a subject without a name", path)
		}
	}
	if len(c.Levels) == 0 {
		c.Levels = Default().Levels
	}

	return c, nil
}

// LoadDefault resolves the catalog in priority order: the TUTORA_SUBJECTS
// file, then ~/.config/tutora/subjects.yaml, then the built-in catalog.
// A missing file falls through; a present-but-broken file is an error.
func LoadDefault() (Catalog, error) {
	if p := os.Getenv("TUTORA_SUBJECTS"); p != "" {
		return Load(p)
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		configHome = filepath.Join(home, ".config")
	}

	p := filepath.Join(configHome, "tutora", "subjects.yaml")
	c, err := Load(p)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Catalog{}, err
	}
	return c, nil
}
