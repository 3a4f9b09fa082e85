package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/towerdefence/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

// Config file names
const (
	EngineFile = "config.cfg"
	WorldFile  = "enemies.yaml"
)

// DefaultFPS is used when config.cfg has no FPS line
const DefaultFPS = 60

var (
	// ErrMissingKey is returned when a required config.cfg key is absent
	ErrMissingKey = errors.New("missing required key")
	// ErrInvalid is returned for malformed values
	ErrInvalid = errors.New("invalid config")
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Engine *EngineConfig
	World  *WorldConfig
}

// Loader loads game configuration using fs.FS interface
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

// BasePath returns where the loader reads from, for log messages
func (l *Loader) BasePath() string { return l.basePath }

// LoadEngine loads config.cfg
func (l *Loader) LoadEngine() (*EngineConfig, error) {
	f, err := l.fsys.Open(EngineFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", EngineFile, err)
	}
	defer f.Close()

	cfg, err := ParseEngine(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", EngineFile, err)
	}
	return cfg, nil
}

// LoadWorld loads enemies.yaml
func (l *Loader) LoadWorld() (*WorldConfig, error) {
	data, err := fs.ReadFile(l.fsys, WorldFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", WorldFile, err)
	}

	var cfg WorldConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", WorldFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate %s: %w", WorldFile, err)
	}

	return &cfg, nil
}

// LoadAll loads all configurations (engine, world)
func (l *Loader) LoadAll() (*GameConfig, error) {
	engine, err := l.LoadEngine()
	if err != nil {
		return nil, err
	}

	world, err := l.LoadWorld()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Engine: engine,
		World:  world,
	}, nil
}

// ParseEngine reads config.cfg lines.
//
// Each line is either "KEY VALUE" or "BIND <key> <action>". Lines starting
// with # and lines with fewer than two fields are skipped. SCREEN_WIDTH and
// SCREEN_HEIGHT are required.
func ParseEngine(r io.Reader) (*EngineConfig, error) {
	cfg := &EngineConfig{
		FPS:      DefaultFPS,
		Bindings: make(map[string]ebiten.Key),
		Values:   make(map[string]string),
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		if strings.EqualFold(fields[0], "BIND") {
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: BIND wants a key and an action: %w", lineNo, ErrInvalid)
			}
			key, err := ParseKey(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			cfg.Bindings[fields[2]] = key
			continue
		}
		cfg.Values[fields[0]] = strings.Join(fields[1:], " ")
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	var err error
	if cfg.ScreenWidth, err = requiredInt(cfg.Values, "SCREEN_WIDTH"); err != nil {
		return nil, err
	}
	if cfg.ScreenHeight, err = requiredInt(cfg.Values, "SCREEN_HEIGHT"); err != nil {
		return nil, err
	}
	if v, ok := cfg.Values["FPS"]; ok {
		fps, err := strconv.Atoi(v)
		if err != nil || fps <= 0 {
			return nil, fmt.Errorf("FPS %q: %w", v, ErrInvalid)
		}
		cfg.FPS = fps
	}
	cfg.Title = cfg.Values["TITLE"]

	return cfg, nil
}

func requiredInt(values map[string]string, key string) (int, error) {
	v, ok := values[key]
	if !ok {
		return 0, fmt.Errorf("%s: %w", key, ErrMissingKey)
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s %q: %w", key, v, ErrInvalid)
	}
	return n, nil
}

// ParseKey resolves a key name such as "escape", "p" or "Space"
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("key %q: %w", name, ErrInvalid)
	}
	return k, nil
}

// Validate checks the enemy table
func (c *WorldConfig) Validate() error {
	if len(c.Archetypes) == 0 {
		return fmt.Errorf("no archetypes: %w", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Archetypes))
	for i, a := range c.Archetypes {
		if a.Name == "" {
			return fmt.Errorf("archetype %d has no name: %w", i, ErrInvalid)
		}
		if seen[a.Name] {
			return fmt.Errorf("archetype %q defined twice: %w", a.Name, ErrInvalid)
		}
		seen[a.Name] = true
		if a.Weight < 0 || a.Weight > 100 {
			return fmt.Errorf("archetype %q weight %d outside 0..100: %w", a.Name, a.Weight, ErrInvalid)
		}
		switch a.Kind {
		case entity.KindStandard, entity.KindFast:
		default:
			return fmt.Errorf("archetype %q has unknown kind %q: %w", a.Name, a.Kind, ErrInvalid)
		}
	}
	if len(c.Path) < 2 {
		return fmt.Errorf("path needs at least 2 points, got %d: %w", len(c.Path), ErrInvalid)
	}
	return nil
}
