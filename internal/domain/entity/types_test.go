package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

func TestHealth(t *testing.T) {
	t.Run("TakeDamage", func(t *testing.T) {
		h := NewHealth(100)

		dead := h.TakeDamage(30)
		assert.False(t, dead)
		assert.Equal(t, 70, h.Current)

		dead = h.TakeDamage(80)
		assert.True(t, dead)
		assert.Equal(t, -10, h.Current)
	})

	t.Run("Heal", func(t *testing.T) {
		h := Health{Current: 50, Max: 100}

		h.Heal(30)
		assert.Equal(t, 80, h.Current)

		h.Heal(50)
		assert.Equal(t, 100, h.Current, "Should not exceed max")
	})

	t.Run("Fraction", func(t *testing.T) {
		h := Health{Current: 5, Max: 10}
		assert.Equal(t, 0.5, h.Fraction())

		h.Current = -3
		assert.Equal(t, 0.0, h.Fraction())

		assert.Equal(t, 0.0, (&Health{}).Fraction())
	})
}

func TestPath(t *testing.T) {
	p := &Path{Points: []geom.Vec{{X: 0, Y: 100}, {X: 200, Y: 100}}}

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, geom.Vec{X: 0, Y: 100}, p.Start())
	assert.Equal(t, geom.Vec{}, (&Path{}).Start())
}

func TestNewLevel(t *testing.T) {
	p := &Path{}
	l := NewLevel(p)

	assert.Same(t, p, l.Path)
	assert.NotNil(t, l.Background)
	assert.Greater(t, l.PathWidth, float32(0))
}
