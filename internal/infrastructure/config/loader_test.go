package config

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/towerdefence/internal/domain/entity"
)

const testWorldYAML = `
archetypes:
  - name: standard
    kind: standard
    weight: 100
    sprite: enemy
  - name: fast
    kind: fast
    weight: 50
    stats:
      speed: 4
path:
  - {x: 0, y: 10}
  - {x: 100, y: 10}
towers:
  - {x: 50, y: 40, range: 60, damage: 2, cooldown: 15}
`

func TestParseEngine(t *testing.T) {
	src := `# comment line
SCREEN_WIDTH 800
SCREEN_HEIGHT 600
TITLE Demo
LONELY
BIND escape pause
bind Q quit
`
	cfg, err := ParseEngine(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.ScreenWidth)
	assert.Equal(t, 600, cfg.ScreenHeight)
	assert.Equal(t, DefaultFPS, cfg.FPS)
	assert.Equal(t, "Demo", cfg.Title)
	assert.Equal(t, ebiten.KeyEscape, cfg.Bindings["pause"])
	assert.Equal(t, ebiten.KeyQ, cfg.Bindings["quit"])
	assert.NotContains(t, cfg.Values, "LONELY", "Single-field lines are skipped")
	assert.NotContains(t, cfg.Values, "#", "Comments are skipped")
}

func TestParseEngine_MultiWordValue(t *testing.T) {
	cfg, err := ParseEngine(strings.NewReader("SCREEN_WIDTH 10\nSCREEN_HEIGHT 10\nTITLE  Tower   Defence\n"))
	require.NoError(t, err)
	assert.Equal(t, "Tower Defence", cfg.Title)
}

func TestParseEngine_FPS(t *testing.T) {
	cfg, err := ParseEngine(strings.NewReader("SCREEN_WIDTH 10\nSCREEN_HEIGHT 10\nFPS 30\n"))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
}

func TestParseEngine_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{"missing width", "SCREEN_HEIGHT 600\n", ErrMissingKey},
		{"missing height", "SCREEN_WIDTH 800\n", ErrMissingKey},
		{"non-integer width", "SCREEN_WIDTH wide\nSCREEN_HEIGHT 600\n", ErrInvalid},
		{"bad fps", "SCREEN_WIDTH 800\nSCREEN_HEIGHT 600\nFPS 0\n", ErrInvalid},
		{"bind arity", "SCREEN_WIDTH 800\nSCREEN_HEIGHT 600\nBIND escape\n", ErrInvalid},
		{"unknown key", "SCREEN_WIDTH 800\nSCREEN_HEIGHT 600\nBIND notakey pause\n", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEngine(strings.NewReader(tt.src))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseKey(t *testing.T) {
	k, err := ParseKey("space")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeySpace, k)

	k, err = ParseKey("P")
	require.NoError(t, err)
	assert.Equal(t, ebiten.KeyP, k)
}

func TestLoader_LoadWorld(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{
		WorldFile: {Data: []byte(testWorldYAML)},
	}, "test")

	cfg, err := loader.LoadWorld()
	require.NoError(t, err)

	require.Len(t, cfg.Archetypes, 2)
	assert.Equal(t, "standard", cfg.Archetypes[0].Name)
	assert.Equal(t, 100, cfg.Archetypes[0].Weight)
	assert.Equal(t, "enemy", cfg.Archetypes[0].Sprite)
	assert.Equal(t, 50, cfg.Archetypes[1].Weight)
	assert.Len(t, cfg.Path, 2)
	assert.Equal(t, PointConfig{X: 100, Y: 10}, cfg.Path[1])
	require.Len(t, cfg.Towers, 1)
	assert.Equal(t, 15, cfg.Towers[0].Cooldown)
}

func TestArchetypeConfig_EnemyStats(t *testing.T) {
	plain := ArchetypeConfig{Kind: entity.KindStandard}
	assert.Equal(t, entity.DefaultStats(entity.KindStandard), plain.EnemyStats())

	tuned := ArchetypeConfig{Kind: entity.KindFast, Stats: &StatsConfig{Speed: 4}}
	stats := tuned.EnemyStats()
	assert.Equal(t, 4.0, stats.Speed)
	assert.Equal(t, entity.DefaultStats(entity.KindFast).MaxHealth, stats.MaxHealth)
}

func TestWorldConfig_Validate(t *testing.T) {
	path := []PointConfig{{X: 0, Y: 0}, {X: 10, Y: 0}}
	standard := ArchetypeConfig{Name: "standard", Kind: entity.KindStandard, Weight: 100}

	tests := []struct {
		name string
		cfg  WorldConfig
	}{
		{"empty table", WorldConfig{Path: path}},
		{"weight above 100", WorldConfig{Archetypes: []ArchetypeConfig{{Name: "a", Kind: entity.KindStandard, Weight: 101}}, Path: path}},
		{"negative weight", WorldConfig{Archetypes: []ArchetypeConfig{{Name: "a", Kind: entity.KindStandard, Weight: -1}}, Path: path}},
		{"unknown kind", WorldConfig{Archetypes: []ArchetypeConfig{{Name: "a", Kind: "flying", Weight: 10}}, Path: path}},
		{"no name", WorldConfig{Archetypes: []ArchetypeConfig{{Kind: entity.KindFast, Weight: 10}}, Path: path}},
		{"duplicate", WorldConfig{Archetypes: []ArchetypeConfig{standard, standard}, Path: path}},
		{"short path", WorldConfig{Archetypes: []ArchetypeConfig{standard}, Path: path[:1]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.Validate(), ErrInvalid)
		})
	}

	ok := WorldConfig{Archetypes: []ArchetypeConfig{standard}, Path: path}
	assert.NoError(t, ok.Validate())
}

func TestLoader_MissingFiles(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "empty")

	_, err := loader.LoadEngine()
	assert.Error(t, err)

	_, err = loader.LoadWorld()
	assert.Error(t, err)
}

func TestDefaultLoader_LoadAll(t *testing.T) {
	cfg, err := DefaultLoader().LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Engine.ScreenWidth)
	assert.Equal(t, 720, cfg.Engine.ScreenHeight)
	assert.Equal(t, 60, cfg.Engine.FPS)
	assert.Contains(t, cfg.Engine.Bindings, "pause")
	assert.Len(t, cfg.World.Archetypes, 2)
	assert.NotEmpty(t, cfg.World.Towers)
}
