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
		{StatePlaying, "Playing"},
		{StateDead, "Dead"},
		{StateRetrying, "Retrying"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering; the zero value is Playing
	assert.Equal(t, GameState(0), StatePlaying)
	assert.Equal(t, GameState(1), StateDead)
	assert.Equal(t, GameState(2), StateRetrying)
}

func TestGameState_Simulating(t *testing.T) {
	assert.True(t, StatePlaying.Simulating())
	assert.False(t, StateDead.Simulating())
	assert.False(t, StateRetrying.Simulating())
}
