package game

import "github.com/cbodonnell/codewords/pkg/game/types"

// TileCounts holds per-category word totals and reveal counts for one game.
// Neutral words are never counted.
type TileCounts struct {
	// Total maps each counted category present in the solution to its word count
	Total map[types.Category]int
	// Flipped maps each counted category present in the solution to the number
	// of its words revealed as that same category
	Flipped map[types.Category]int
}

// WordList returns every word of the solution key exactly once.
// The order follows map iteration and is not stable.
func WordList(g types.Game) []string {
	words := make([]string, 0, len(g.Solution))
	for word := range g.Solution {
		words = append(words, word)
	}
	return words
}

// CountTiles computes the tile counts of g. It returns false when no game is
// loaded.
func CountTiles(g types.Game) (TileCounts, bool) {
	if !g.Loaded() {
		return TileCounts{}, false
	}

	counts := TileCounts{
		Total:   make(map[types.Category]int),
		Flipped: make(map[types.Category]int),
	}
	for word, category := range g.Solution {
		if !category.IsCounted() {
			continue
		}
		counts.Total[category]++
		if _, ok := counts.Flipped[category]; !ok {
			counts.Flipped[category] = 0
		}
		// a word shown as another category than its key is not counted
		if revealedAs, ok := g.Board[word]; ok && revealedAs == category {
			counts.Flipped[category]++
		}
	}
	return counts, true
}

// GameWon reports whether the game is over: an assassin word was revealed or
// every word of some team has been revealed.
func GameWon(g types.Game) bool {
	counts, ok := CountTiles(g)
	if !ok {
		return false
	}
	return counts.Won()
}

// Won applies the win condition to already computed counts.
func (c TileCounts) Won() bool {
	if c.Flipped[types.CategoryAssassin] > 0 {
		return true
	}
	for _, team := range types.TeamCategories {
		total, ok := c.Total[team]
		if !ok {
			continue
		}
		if c.Flipped[team] == total {
			return true
		}
	}
	return false
}

// Winner returns the team whose words are all revealed, if any. An assassin
// reveal ends the game without a team winner being derivable here.
func (c TileCounts) Winner() (types.Category, bool) {
	for _, team := range types.TeamCategories {
		total, ok := c.Total[team]
		if ok && c.Flipped[team] == total {
			return team, true
		}
	}
	return "", false
}

// Remaining returns the number of unrevealed words of category.
func (c TileCounts) Remaining(category types.Category) int {
	return c.Total[category] - c.Flipped[category]
}
