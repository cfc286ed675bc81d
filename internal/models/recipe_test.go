package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyName(t *testing.T) {
	assert.Equal(t, "easy", DifficultyName(DifficultyEasy))
	assert.Equal(t, "medium", DifficultyName(DifficultyMedium))
	assert.Equal(t, "hard", DifficultyName(DifficultyHard))
	assert.Equal(t, "unknown", DifficultyName(DifficultyAny))
	assert.Equal(t, "unknown", DifficultyName(7))
}
