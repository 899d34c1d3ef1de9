package types

// Game is the snapshot of one game instance as last sent by the server.
// It is replaced wholesale on every update, never edited in place.
type Game struct {
	// Solution maps every word on the board to its category
	Solution map[string]Category `json:"solution"`
	// Board maps already revealed words to the category they were revealed as
	Board map[string]Category `json:"board"`
	// StartingColor is the team that moves first
	StartingColor Category `json:"starting_color"`
	// GameID correlates the snapshot with a room
	GameID string `json:"game_id"`
}

// Loaded reports whether the game holds a solution key. The zero Game is the
// "no game loaded" state.
func (g Game) Loaded() bool {
	return g.Solution != nil
}

// Revealed reports whether word has been flipped on the board.
func (g Game) Revealed(word string) bool {
	_, ok := g.Board[word]
	return ok
}

// Copy returns a deep copy so callers cannot mutate the store's snapshot.
func (g Game) Copy() Game {
	newGame := Game{
		StartingColor: g.StartingColor,
		GameID:        g.GameID,
	}
	if g.Solution != nil {
		newGame.Solution = make(map[string]Category, len(g.Solution))
		for word, category := range g.Solution {
			newGame.Solution[word] = category
		}
	}
	if g.Board != nil {
		newGame.Board = make(map[string]Category, len(g.Board))
		for word, category := range g.Board {
			newGame.Board[word] = category
		}
	}
	return newGame
}

// Dictionary is the metadata the server publishes for a word list.
type Dictionary struct {
	Name        string `json:"name,omitempty"`
	Language    string `json:"language,omitempty"`
	Description string `json:"description,omitempty"`
	Size        int    `json:"size,omitempty"`
}

// CopyDictionaries returns a shallow copy of the dictionary listing.
func CopyDictionaries(dictionaries map[string]Dictionary) map[string]Dictionary {
	if dictionaries == nil {
		return nil
	}
	copied := make(map[string]Dictionary, len(dictionaries))
	for name, dictionary := range dictionaries {
		copied[name] = dictionary
	}
	return copied
}
