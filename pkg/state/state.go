package state

import "github.com/cbodonnell/codewords/pkg/game/types"

// Session is the client-visible state outside of the game snapshot.
// Empty strings stand for "no room" and "no error".
type Session struct {
	Connected       bool
	Drawer          bool
	Room            string
	Username        string
	Turn            types.Category
	Error           string
	SpymasterReveal bool
	Dictionaries    map[string]types.Dictionary
	PopupHides      int
}

// PersistedSession is the subset of Session that survives restarts.
type PersistedSession struct {
	Room       string `json:"room"`
	Username   string `json:"username"`
	PopupHides int    `json:"popup_hides"`
}

// Persister receives the persisted subset after every change to it.
// Persist must not block; delivery is fire-and-forget.
type Persister interface {
	Persist(session PersistedSession)
}

// Persisted extracts the persisted subset of s.
func (s Session) Persisted() PersistedSession {
	return PersistedSession{
		Room:       s.Room,
		Username:   s.Username,
		PopupHides: s.PopupHides,
	}
}

func (s Session) copy() Session {
	c := s
	c.Dictionaries = types.CopyDictionaries(s.Dictionaries)
	return c
}
