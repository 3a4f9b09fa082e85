package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateMenu, "Menu"},
		{StateGameplay, "Gameplay"},
		{StatePaused, "Paused"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateMenu)
	assert.Equal(t, GameState(1), StateGameplay)
	assert.Equal(t, GameState(2), StatePaused)
}

func TestSpeed(t *testing.T) {
	assert.Equal(t, 1, SpeedNormal.Multiplier())
	assert.Equal(t, 2, SpeedFast.Multiplier())

	assert.Equal(t, SpeedFast, SpeedNormal.Toggle())
	assert.Equal(t, SpeedNormal, SpeedFast.Toggle())

	assert.Equal(t, "1x", SpeedNormal.String())
	assert.Equal(t, "2x", SpeedFast.String())
	assert.Equal(t, "Unknown", Speed(7).String())
}
