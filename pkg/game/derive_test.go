package game

import (
	"testing"

	"github.com/cbodonnell/codewords/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeWordGame() types.Game {
	return types.Game{
		Solution: map[string]types.Category{
			"cat": types.CategoryRed,
			"dog": types.CategoryBlue,
			"fox": types.CategoryNeutral,
		},
		Board:         map[string]types.Category{},
		StartingColor: types.CategoryRed,
		GameID:        "g1",
	}
}

func TestWordList(t *testing.T) {
	tests := []struct {
		name string
		game types.Game
		want []string
	}{
		{
			name: "no game loaded",
			game: types.Game{},
			want: []string{},
		},
		{
			name: "every solution key once",
			game: threeWordGame(),
			want: []string{"cat", "dog", "fox"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, WordList(tt.game))
		})
	}
}

func TestCountTiles_NoGame(t *testing.T) {
	_, ok := CountTiles(types.Game{})
	assert.False(t, ok)
	assert.False(t, GameWon(types.Game{}))
}

func TestCountTiles_FreshGame(t *testing.T) {
	counts, ok := CountTiles(threeWordGame())
	require.True(t, ok)

	assert.Equal(t, map[types.Category]int{types.CategoryRed: 1, types.CategoryBlue: 1}, counts.Total)
	assert.Zero(t, counts.Flipped[types.CategoryRed])
	assert.Zero(t, counts.Flipped[types.CategoryBlue])
	assert.NotContains(t, counts.Total, types.CategoryNeutral)
	assert.NotContains(t, counts.Flipped, types.CategoryNeutral)
	assert.False(t, GameWon(threeWordGame()))
}

func TestCountTiles_NeutralNeverCounted(t *testing.T) {
	g := threeWordGame()
	g.Board["fox"] = types.CategoryNeutral

	counts, ok := CountTiles(g)
	require.True(t, ok)
	assert.NotContains(t, counts.Flipped, types.CategoryNeutral)
	assert.False(t, counts.Won())
}

func TestCountTiles_MismatchedRevealNotCounted(t *testing.T) {
	g := threeWordGame()
	g.Board["cat"] = types.CategoryBlue

	counts, ok := CountTiles(g)
	require.True(t, ok)
	assert.Equal(t, 0, counts.Flipped[types.CategoryRed])
	assert.Equal(t, 0, counts.Flipped[types.CategoryBlue])
	assert.False(t, counts.Won())
}

func TestGameWon(t *testing.T) {
	tests := []struct {
		name     string
		solution map[string]types.Category
		board    map[string]types.Category
		want     bool
	}{
		{
			name:     "team fully revealed",
			solution: map[string]types.Category{"cat": "R", "dog": "B", "fox": "O"},
			board:    map[string]types.Category{"cat": "R"},
			want:     true,
		},
		{
			name:     "assassin revealed with team tiles remaining",
			solution: map[string]types.Category{"cat": "R", "cow": "R", "dog": "B", "eel": "B", "axe": "X"},
			board:    map[string]types.Category{"axe": "X"},
			want:     true,
		},
		{
			name:     "partial reveals only",
			solution: map[string]types.Category{"cat": "R", "cow": "R", "dog": "B", "eel": "B", "axe": "X"},
			board:    map[string]types.Category{"cat": "R", "dog": "B", "fox": "O"},
			want:     false,
		},
		{
			name:     "absent team does not win by default",
			solution: map[string]types.Category{"cat": "R", "cow": "R"},
			board:    map[string]types.Category{},
			want:     false,
		},
		{
			name:     "green team fully revealed",
			solution: map[string]types.Category{"cat": "R", "dog": "B", "elm": "G"},
			board:    map[string]types.Category{"elm": "G"},
			want:     true,
		},
		{
			name:     "all neutrals revealed",
			solution: map[string]types.Category{"cat": "R", "fox": "O", "owl": "O"},
			board:    map[string]types.Category{"fox": "O", "owl": "O"},
			want:     false,
		},
		{
			name:     "nil board",
			solution: map[string]types.Category{"cat": "R"},
			board:    nil,
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := types.Game{Solution: tt.solution, Board: tt.board}
			assert.Equal(t, tt.want, GameWon(g))
		})
	}
}

func TestTileCounts_WinnerAndRemaining(t *testing.T) {
	g := types.Game{
		Solution: map[string]types.Category{"cat": "R", "cow": "R", "dog": "B"},
		Board:    map[string]types.Category{"dog": "B", "cat": "R"},
	}
	counts, ok := CountTiles(g)
	require.True(t, ok)

	winner, ok := counts.Winner()
	assert.True(t, ok)
	assert.Equal(t, types.CategoryBlue, winner)
	assert.Equal(t, 1, counts.Remaining(types.CategoryRed))
	assert.Equal(t, 0, counts.Remaining(types.CategoryBlue))
}

func TestDerivations_RecomputeOnEveryCall(t *testing.T) {
	g := threeWordGame()
	assert.False(t, GameWon(g))

	g.Board["cat"] = types.CategoryRed
	assert.True(t, GameWon(g))
}
