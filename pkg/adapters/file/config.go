package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/lattice/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ThemeFile represents the structure of a themes file.
type ThemeFile struct {
	Current string         `mapstructure:"current"`
	Themes  []domain.Theme `mapstructure:"themes"`
}

// LoadSnapshot reads a tree snapshot (a "rootElements" list of node configs).
func LoadSnapshot(path string) (domain.Snapshot, error) {
	var snap domain.Snapshot
	if err := decodeFile(path, &snap); err != nil {
		return domain.Snapshot{}, err
	}
	return snap, nil
}

// LoadThemes reads a themes file. Values are weakly typed, so numeric strings
// decode into font weights and numbers into string tokens.
func LoadThemes(path string) (ThemeFile, error) {
	var raw map[string]any
	if err := decodeFile(path, &raw); err != nil {
		return ThemeFile{}, err
	}

	var tf ThemeFile
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &tf,
	})
	if err != nil {
		return ThemeFile{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return ThemeFile{}, fmt.Errorf("failed to decode themes from %s: %w", path, err)
	}

	for i, t := range tf.Themes {
		if t.Name == "" {
			return ThemeFile{}, fmt.Errorf("theme #%d in %s has no name: %w", i, path, domain.ErrInvalidTheme)
		}
	}
	return tf, nil
}

// SaveSnapshot writes snap to path in the format implied by its extension.
func SaveSnapshot(path string, snap domain.Snapshot) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err = json.MarshalIndent(snap, "", "  ")
	case ".toml":
		data, err = toml.Marshal(snap)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(snap)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, v)
	case ".toml":
		err = toml.Unmarshal(data, v)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
