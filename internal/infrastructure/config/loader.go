package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Levels  map[string]*LevelConfig
}

// Level returns the level with the given id
func (g *GameConfig) Level(id string) (*LevelConfig, bool) {
	lvl, ok := g.Levels[id]
	return lvl, ok
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader was created for
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads and validates physics.yaml
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.decode("physics.yaml", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("physics.yaml: %w", err)
	}
	return &cfg, nil
}

// LoadLevel loads and validates levels/<id>.yaml
func (l *Loader) LoadLevel(id string) (*LevelConfig, error) {
	name := path.Join("levels", id+".yaml")

	var cfg LevelConfig
	if err := l.decode(name, &cfg); err != nil {
		return nil, err
	}
	if cfg.ID == "" {
		cfg.ID = id
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &cfg, nil
}

// LevelIDs lists the ids of every level file, sorted
func (l *Loader) LevelIDs() ([]string, error) {
	matches, err := fs.Glob(l.fsys, "levels/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list levels: %w", err)
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, strings.TrimSuffix(path.Base(m), ".yaml"))
	}
	sort.Strings(ids)
	return ids, nil
}

// LoadAll loads physics and every level, then checks that door targets exist
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	ids, err := l.LevelIDs()
	if err != nil {
		return nil, err
	}

	levels := make(map[string]*LevelConfig, len(ids))
	for _, id := range ids {
		lvl, err := l.LoadLevel(id)
		if err != nil {
			return nil, err
		}
		levels[id] = lvl
	}

	for _, id := range ids {
		for _, d := range levels[id].Doors {
			if d.Disabled {
				continue
			}
			if _, ok := levels[d.Target]; !ok {
				return nil, fmt.Errorf("level %s door %d: unknown target %q: %w",
					id, d.Number, d.Target, ErrInvalidConfig)
			}
		}
	}

	return &GameConfig{
		Physics: physics,
		Levels:  levels,
	}, nil
}

func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
