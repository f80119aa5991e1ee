// Package production provides production integrations: script storage, MIDI
// export and plotting.

package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/comalice/automationx/internal/primitives"
)

// ScriptStore saves and loads automation scripts by ID.
type ScriptStore interface {
	Save(ctx context.Context, s primitives.Script) error
	Load(ctx context.Context, id string) (primitives.Script, error)
}

var (
	_ ScriptStore = (*JSONStore)(nil)
	_ ScriptStore = (*YAMLStore)(nil)
)

// JSONStore is a stdlib-only file-based store using JSON serialization.
type JSONStore struct {
	dir string
}

// NewJSONStore creates a JSONStore, ensuring the directory exists.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONStore{dir: dir}, nil
}

// Save validates s, stamps its version and writes <dir>/<id>.json.
func (p *JSONStore) Save(ctx context.Context, s primitives.Script) error {
	if err := prepare(ctx, &s); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	fn := filepath.Join(p.dir, s.ID+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

// Load reads and validates <dir>/<id>.json.
func (p *JSONStore) Load(ctx context.Context, id string) (primitives.Script, error) {
	data, err := readScript(ctx, filepath.Join(p.dir, id+".json"), id)
	if err != nil {
		return primitives.Script{}, err
	}

	var s primitives.Script
	if err := json.Unmarshal(data, &s); err != nil {
		return primitives.Script{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return finish(s, id)
}

// YAMLStore is a file-based store using YAML serialization.
type YAMLStore struct {
	dir string
}

// NewYAMLStore creates a YAMLStore, ensuring the directory exists.
func NewYAMLStore(dir string) (*YAMLStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLStore{dir: dir}, nil
}

// Save validates s, stamps its version and writes <dir>/<id>.yaml.
func (p *YAMLStore) Save(ctx context.Context, s primitives.Script) error {
	if err := prepare(ctx, &s); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	fn := filepath.Join(p.dir, s.ID+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

// Load reads and validates <dir>/<id>.yaml.
func (p *YAMLStore) Load(ctx context.Context, id string) (primitives.Script, error) {
	data, err := readScript(ctx, filepath.Join(p.dir, id+".yaml"), id)
	if err != nil {
		return primitives.Script{}, err
	}

	var s primitives.Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return primitives.Script{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return finish(s, id)
}

// DecodeYAML parses and validates a script document.
func DecodeYAML(data []byte) (primitives.Script, error) {
	var s primitives.Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return primitives.Script{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return primitives.Script{}, fmt.Errorf("script validation: %w", err)
	}
	return s, nil
}

func prepare(ctx context.Context, s *primitives.Script) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("script validation before save: %w", err)
	}
	s.Version = primitives.ComputeVersion(s)
	return nil
}

func readScript(ctx context.Context, fn, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("script %q: %w", id, os.ErrNotExist)
		}
		return nil, fmt.Errorf("read %s: %w", fn, err)
	}
	return data, nil
}

func finish(s primitives.Script, id string) (primitives.Script, error) {
	s.ID = id // Ensure ID
	if err := s.Validate(); err != nil {
		return primitives.Script{}, fmt.Errorf("script validation after load: %w", err)
	}
	return s, nil
}
