package mines

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		params GameParams
		valid  bool
	}{
		{GameParams{Rows: 6, Cols: 9, MineCount: 11}, true},
		{GameParams{Rows: 1, Cols: 2, MineCount: 1}, true},
		{GameParams{Rows: 3, Cols: 3, MineCount: 8}, true},
		{GameParams{Rows: 1, Cols: 1, MineCount: 1}, false},
		{GameParams{Rows: 1, Cols: 1, MineCount: 0}, false},
		{GameParams{Rows: 4, Cols: 4, MineCount: 0}, false},
		{GameParams{Rows: 4, Cols: 4, MineCount: 16}, false},
		{GameParams{Rows: 0, Cols: 4, MineCount: 1}, false},
		{GameParams{Rows: 4, Cols: 0, MineCount: 1}, false},
		{GameParams{Rows: 1024, Cols: 1024, MineCount: 1}, true},
		{GameParams{Rows: 1025, Cols: 1024, MineCount: 1}, false},
		{GameParams{Rows: 4611686018427387905, Cols: 4, MineCount: 1}, false},
		{GameParams{Rows: math.MaxInt, Cols: math.MaxInt, MineCount: 1}, false},
	}

	for _, test := range tests {
		t.Run(test.params.String(), func(t *testing.T) {
			err := test.params.Validate()
			if test.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			}
		})
	}
}

func TestPointInBounds(t *testing.T) {
	p := GameParams{Rows: 2, Cols: 3, MineCount: 1}
	assert.True(t, p.PointInBounds(0, 0))
	assert.True(t, p.PointInBounds(1, 2))
	assert.False(t, p.PointInBounds(2, 0))
	assert.False(t, p.PointInBounds(0, 3))
	assert.False(t, p.PointInBounds(-1, 0))
	assert.False(t, p.PointInBounds(0, -1))
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		params     GameParams
		limit      time.Duration
	}{
		{Beginner, GameParams{Rows: 6, Cols: 9, MineCount: 11}, 60 * time.Second},
		{Intermediate, GameParams{Rows: 12, Cols: 18, MineCount: 36}, 180 * time.Second},
		{Advanced, GameParams{Rows: 21, Cols: 26, MineCount: 92}, 660 * time.Second},
	}

	for _, test := range tests {
		t.Run(test.difficulty.String(), func(t *testing.T) {
			p, ok := test.difficulty.Params()
			require.True(t, ok)
			assert.Equal(t, test.params, p)
			assert.NoError(t, p.Validate())
			assert.Equal(t, test.limit, test.difficulty.TimeLimit())
		})
	}

	_, ok := Custom.Params()
	assert.False(t, ok)
	assert.Zero(t, Custom.TimeLimit())
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Beginner, Intermediate, Advanced, Custom} {
		parsed, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}

	parsed, err := ParseDifficulty(" Advanced ")
	require.NoError(t, err)
	assert.Equal(t, Advanced, parsed)

	parsed, err = ParseDifficulty("i")
	require.NoError(t, err)
	assert.Equal(t, Intermediate, parsed)

	_, err = ParseDifficulty("expert")
	assert.Error(t, err)
}
