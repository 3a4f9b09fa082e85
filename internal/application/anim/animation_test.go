package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/towerdefence/internal/domain/geom"
)

// mockTarget records every value written to it
type mockTarget struct {
	writes []geom.Rect
	attrs  []string
}

func (m *mockTarget) SetAttr(attr string, r geom.Rect) {
	m.attrs = append(m.attrs, attr)
	m.writes = append(m.writes, r)
}

func (m *mockTarget) last() geom.Rect {
	return m.writes[len(m.writes)-1]
}

func TestAnimation_TickWhenStoppedIsNoop(t *testing.T) {
	target := &mockTarget{}
	a := New(geom.R(0, 0, 10, 10), geom.R(100, 0, 10, 10), 4, target, AttrRect)

	a.Tick()

	assert.False(t, a.Running())
	assert.Empty(t, target.writes)
}

func TestAnimation_ReachesExactEnd(t *testing.T) {
	target := &mockTarget{}
	start := geom.R(640, 870, 180, 100)
	end := geom.R(640, 620, 180, 100)
	a := New(start, end, 20, target, AttrRect)

	a.Start()
	for i := 0; i < 20; i++ {
		require.True(t, a.Running(), "frame %d", i)
		a.Tick()
	}

	assert.False(t, a.Running())
	assert.Equal(t, 20, a.Counter())
	assert.Equal(t, end, target.last())
	assert.Len(t, target.writes, 20)
}

func TestAnimation_NoOvershoot(t *testing.T) {
	target := &mockTarget{}
	start := geom.R(0, 0, 50, 50)
	end := geom.R(30, -90, 80, 20)
	a := New(start, end, 7, target, AttrRect)

	a.Start()
	for i := 0; i < 12; i++ {
		a.Tick()
		assert.LessOrEqual(t, a.Counter(), a.Frames())
	}

	for _, r := range target.writes {
		assert.True(t, r.X >= 0 && r.X <= 30, "x out of range: %v", r.X)
		assert.True(t, r.Y >= -90 && r.Y <= 0, "y out of range: %v", r.Y)
		assert.True(t, r.W >= 50 && r.W <= 80, "w out of range: %v", r.W)
		assert.True(t, r.H >= 20 && r.H <= 50, "h out of range: %v", r.H)
	}
	assert.Len(t, target.writes, 7, "ticks after completion write nothing")
	assert.Equal(t, end, target.last())
}

func TestAnimation_LinearSteps(t *testing.T) {
	target := &mockTarget{}
	a := New(geom.R(0, 0, 0, 0), geom.R(40, 80, 4, 8), 4, target, "rect")

	a.Start()
	for i := 0; i < 4; i++ {
		a.Tick()
	}

	assert.Equal(t, []geom.Rect{
		geom.R(10, 20, 1, 2),
		geom.R(20, 40, 2, 4),
		geom.R(30, 60, 3, 6),
		geom.R(40, 80, 4, 8),
	}, target.writes)
	assert.Equal(t, []string{"rect", "rect", "rect", "rect"}, target.attrs)
}

func TestAnimation_StartRestartsFromBeginning(t *testing.T) {
	target := &mockTarget{}
	a := New(geom.R(0, 0, 0, 0), geom.R(100, 0, 0, 0), 10, target, AttrRect)

	a.Start()
	a.Tick()
	a.Tick()
	a.Tick()
	assert.Equal(t, 3, a.Counter())

	a.Start()
	assert.Equal(t, 0, a.Counter())
	assert.True(t, a.Running())

	a.Tick()
	assert.Equal(t, geom.R(10, 0, 0, 0), target.last())
}

func TestAnimation_ZeroFramesCompletesOnFirstTick(t *testing.T) {
	target := &mockTarget{}
	end := geom.R(5, 5, 5, 5)
	a := New(geom.R(0, 0, 0, 0), end, 0, target, AttrRect)

	a.Start()
	a.Tick()

	assert.False(t, a.Running())
	assert.Equal(t, 0, a.Counter())
	assert.Equal(t, end, target.last())
}

func TestAnimation_OpenCloseAreIndependent(t *testing.T) {
	target := &mockTarget{}
	shown := geom.R(100, 100, 50, 50)
	hidden := geom.R(100, 350, 50, 50)
	open := New(hidden, shown, 2, target, AttrRect)
	closing := New(shown, hidden, 2, target, AttrRect)

	closing.Start()
	closing.Tick()

	open.Start()
	open.Tick()
	assert.Equal(t, geom.R(100, 225, 50, 50), target.last(), "open starts from its own start rect")
}
