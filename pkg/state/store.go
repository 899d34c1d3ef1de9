package state

import (
	"sync"

	"github.com/cbodonnell/codewords/pkg/game"
	"github.com/cbodonnell/codewords/pkg/game/types"
	"github.com/cbodonnell/codewords/pkg/log"
)

// Store owns the client session and the current game snapshot.
// Every mutation runs to completion under the write lock, so readers only
// ever observe fully applied operations. Readers receive copies.
type Store struct {
	lock      sync.RWMutex
	session   Session
	game      types.Game
	persister Persister

	subsLock sync.Mutex
	subs     map[chan struct{}]struct{}
}

type NewStoreOptions struct {
	// Restored holds the persisted fields loaded at start-up, if any
	Restored *PersistedSession
	// Persister receives the persisted fields after they change
	Persister Persister
}

// NewStore creates the store. Only one store should exist per client.
func NewStore(opts NewStoreOptions) *Store {
	s := &Store{
		session: Session{
			Dictionaries: map[string]types.Dictionary{},
		},
		persister: opts.Persister,
		subs:      make(map[chan struct{}]struct{}),
	}
	if opts.Restored != nil {
		s.session.Room = opts.Restored.Room
		s.session.Username = opts.Restored.Username
		s.session.PopupHides = opts.Restored.PopupHides
		log.Debug("Restored session: room=%q username=%q popupHides=%d", s.session.Room, s.session.Username, s.session.PopupHides)
	}
	return s
}

// mutate applies fn under the write lock. When persisted is true the new
// persisted subset is handed to the persister before the lock is released,
// keeping saves in mutation order.
func (s *Store) mutate(name string, persisted bool, fn func(session *Session, g *types.Game)) {
	s.lock.Lock()
	fn(&s.session, &s.game)
	if persisted && s.persister != nil {
		s.persister.Persist(s.session.Persisted())
	}
	s.lock.Unlock()

	log.Trace("Applied %s", name)
	s.notify()
}

func (s *Store) SetConnected(connected bool) {
	s.mutate("setConnected", false, func(session *Session, _ *types.Game) {
		session.Connected = connected
	})
}

func (s *Store) SetDrawerOpen(open bool) {
	s.mutate("setDrawerOpen", false, func(session *Session, _ *types.Game) {
		session.Drawer = open
	})
}

// SetDictionaries replaces the dictionary listing wholesale.
func (s *Store) SetDictionaries(dictionaries map[string]types.Dictionary) {
	dictionaries = types.CopyDictionaries(dictionaries)
	s.mutate("setDictionaries", false, func(session *Session, _ *types.Game) {
		session.Dictionaries = dictionaries
	})
}

func (s *Store) SetTurn(team types.Category) {
	s.mutate("setTurn", false, func(session *Session, _ *types.Game) {
		session.Turn = team
	})
}

// SetGame replaces the whole game snapshot.
func (s *Store) SetGame(g types.Game) {
	g = g.Copy()
	s.mutate("setGame", false, func(_ *Session, current *types.Game) {
		*current = g
	})
}

func (s *Store) SetRoom(room string) {
	s.mutate("setRoom", true, func(session *Session, _ *types.Game) {
		session.Room = room
	})
}

func (s *Store) SetUsername(username string) {
	s.mutate("setUsername", true, func(session *Session, _ *types.Game) {
		session.Username = username
	})
}

func (s *Store) SetError(message string) {
	s.mutate("setError", false, func(session *Session, _ *types.Game) {
		session.Error = message
	})
}

// ResetError clears the error and the room together.
// Views rely on the room going away whenever the error is cleared.
func (s *Store) ResetError() {
	s.mutate("resetError", true, func(session *Session, _ *types.Game) {
		session.Room = ""
		session.Error = ""
	})
}

func (s *Store) RevealSpymaster() {
	s.mutate("revealSpymaster", false, func(session *Session, _ *types.Game) {
		session.SpymasterReveal = true
	})
}

func (s *Store) ForgetSpymaster() {
	s.mutate("forgetSpymaster", false, func(session *Session, _ *types.Game) {
		session.SpymasterReveal = false
	})
}

// ResetRoom drops the game snapshot and hides the solution view.
func (s *Store) ResetRoom() {
	s.mutate("resetRoom", false, func(session *Session, current *types.Game) {
		*current = types.Game{}
		session.SpymasterReveal = false
	})
}

func (s *Store) IncrementPopupHides() {
	s.mutate("incrementPopupHides", true, func(session *Session, _ *types.Game) {
		session.PopupHides++
	})
}

// Session returns a copy of the current session.
func (s *Store) Session() Session {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.session.copy()
}

// Game returns a copy of the current game snapshot.
func (s *Store) Game() types.Game {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.game.Copy()
}

// View returns copies of the session and game taken at the same instant.
func (s *Store) View() (Session, types.Game) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.session.copy(), s.game.Copy()
}

// Words returns the words of the current game.
func (s *Store) Words() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return game.WordList(s.game)
}

// TileCounts returns the tile counts of the current game, or false when no
// game is loaded.
func (s *Store) TileCounts() (game.TileCounts, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return game.CountTiles(s.game)
}

func (s *Store) GameWon() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return game.GameWon(s.game)
}

// Subscribe returns a channel that receives a value after mutations.
// Notifications coalesce: a slow subscriber sees at least one pending value.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.subsLock.Lock()
	s.subs[ch] = struct{}{}
	s.subsLock.Unlock()
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (s *Store) Unsubscribe(ch <-chan struct{}) {
	s.subsLock.Lock()
	defer s.subsLock.Unlock()
	for sub := range s.subs {
		if sub == ch {
			delete(s.subs, sub)
			close(sub)
			return
		}
	}
}

func (s *Store) notify() {
	s.subsLock.Lock()
	defer s.subsLock.Unlock()
	for ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
