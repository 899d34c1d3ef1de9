package state

import (
	"sync"
	"testing"
	"time"

	"github.com/cbodonnell/codewords/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPersister struct {
	lock  sync.Mutex
	saved []PersistedSession
}

func (p *recordingPersister) Persist(session PersistedSession) {
	p.lock.Lock()
	defer p.lock.Unlock()
	p.saved = append(p.saved, session)
}

func (p *recordingPersister) Saved() []PersistedSession {
	p.lock.Lock()
	defer p.lock.Unlock()
	return append([]PersistedSession(nil), p.saved...)
}

func testGame() types.Game {
	return types.Game{
		Solution:      map[string]types.Category{"cat": "R", "dog": "B", "fox": "O"},
		Board:         map[string]types.Category{},
		StartingColor: types.CategoryRed,
		GameID:        "g1",
	}
}

func TestNewStore_Defaults(t *testing.T) {
	s := NewStore(NewStoreOptions{})
	session := s.Session()

	assert.False(t, session.Connected)
	assert.False(t, session.SpymasterReveal)
	assert.Empty(t, session.Room)
	assert.Empty(t, session.Error)
	assert.Zero(t, session.PopupHides)
	assert.NotNil(t, session.Dictionaries)
	assert.False(t, s.Game().Loaded())
}

func TestNewStore_Restored(t *testing.T) {
	s := NewStore(NewStoreOptions{
		Restored: &PersistedSession{Room: "g9", Username: "ana", PopupHides: 3},
	})
	session := s.Session()
	assert.Equal(t, "g9", session.Room)
	assert.Equal(t, "ana", session.Username)
	assert.Equal(t, 3, session.PopupHides)
}

func TestStore_Mutations(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(s *Store)
		mutate func(s *Store)
		check  func(t *testing.T, session Session, g types.Game)
	}{
		{
			name:   "setConnected",
			mutate: func(s *Store) { s.SetConnected(true) },
			check: func(t *testing.T, session Session, _ types.Game) {
				assert.True(t, session.Connected)
			},
		},
		{
			name:   "setDrawerOpen",
			mutate: func(s *Store) { s.SetDrawerOpen(true) },
			check: func(t *testing.T, session Session, _ types.Game) {
				assert.True(t, session.Drawer)
			},
		},
		{
			name: "setDictionaries replaces wholesale",
			setup: func(s *Store) {
				s.SetDictionaries(map[string]types.Dictionary{"old": {Name: "old"}})
			},
			mutate: func(s *Store) {
				s.SetDictionaries(map[string]types.Dictionary{"english": {Name: "english"}})
			},
			check: func(t *testing.T, session Session, _ types.Game) {
				assert.Equal(t, map[string]types.Dictionary{"english": {Name: "english"}}, session.Dictionaries)
			},
		},
		{
			name:   "setTurn",
			mutate: func(s *Store) { s.SetTurn(types.CategoryBlue) },
			check: func(t *testing.T, session Session, _ types.Game) {
				assert.Equal(t, types.CategoryBlue, session.Turn)
			},
		},
		{
			name:   "setGame",
			mutate: func(s *Store) { s.SetGame(testGame()) },
			check: func(t *testing.T, _ Session, g types.Game) {
				assert.Equal(t, testGame(), g)
			},
		},
		{
			name:   "setUsername",
			mutate: func(s *Store) { s.SetUsername("ana") },
			check: func(t *testing.T, session Session, _ types.Game) {
				assert.Equal(t, "ana", session.Username)
			},
		},
		{
			name: "resetError clears room and error",
			setup: func(s *Store) {
				s.SetRoom("g1")
				s.SetError("x")
			},
			mutate: func(s *Store) { s.ResetError() },
			check: func(t *testing.T, session Session, _ types.Game) {
				assert.Empty(t, session.Room)
				assert.Empty(t, session.Error)
			},
		},
		{
			name:   "setError leaves room untouched",
			setup:  func(s *Store) { s.SetRoom("g1") },
			mutate: func(s *Store) { s.SetError("boom") },
			check: func(t *testing.T, session Session, _ types.Game) {
				assert.Equal(t, "g1", session.Room)
				assert.Equal(t, "boom", session.Error)
			},
		},
		{
			name:   "revealSpymaster",
			mutate: func(s *Store) { s.RevealSpymaster() },
			check: func(t *testing.T, session Session, _ types.Game) {
				assert.True(t, session.SpymasterReveal)
			},
		},
		{
			name:   "forgetSpymaster",
			setup:  func(s *Store) { s.RevealSpymaster() },
			mutate: func(s *Store) { s.ForgetSpymaster() },
			check: func(t *testing.T, session Session, _ types.Game) {
				assert.False(t, session.SpymasterReveal)
			},
		},
		{
			name: "resetRoom clears game and spymaster reveal",
			setup: func(s *Store) {
				s.SetGame(testGame())
				s.RevealSpymaster()
				s.SetRoom("g1")
			},
			mutate: func(s *Store) { s.ResetRoom() },
			check: func(t *testing.T, session Session, g types.Game) {
				assert.False(t, g.Loaded())
				assert.Equal(t, types.Game{}, g)
				assert.False(t, session.SpymasterReveal)
				assert.Equal(t, "g1", session.Room, "resetRoom does not touch the room id")
			},
		},
		{
			name: "resetRoom on a fresh store",
			mutate: func(s *Store) {
				s.ResetRoom()
			},
			check: func(t *testing.T, session Session, g types.Game) {
				assert.False(t, g.Loaded())
				assert.False(t, session.SpymasterReveal)
			},
		},
		{
			name: "incrementPopupHides",
			mutate: func(s *Store) {
				s.IncrementPopupHides()
				s.IncrementPopupHides()
			},
			check: func(t *testing.T, session Session, _ types.Game) {
				assert.Equal(t, 2, session.PopupHides)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(NewStoreOptions{})
			if tt.setup != nil {
				tt.setup(s)
			}
			tt.mutate(s)
			session, g := s.View()
			tt.check(t, session, g)
		})
	}
}

func TestStore_PersistsOnlyPersistedFields(t *testing.T) {
	persister := &recordingPersister{}
	s := NewStore(NewStoreOptions{Persister: persister})

	s.SetConnected(true)
	s.SetGame(testGame())
	s.SetError("boom")
	s.RevealSpymaster()
	assert.Empty(t, persister.Saved())

	s.SetRoom("g1")
	s.SetUsername("ana")
	s.IncrementPopupHides()
	s.ResetError()

	assert.Equal(t, []PersistedSession{
		{Room: "g1"},
		{Room: "g1", Username: "ana"},
		{Room: "g1", Username: "ana", PopupHides: 1},
		{Room: "", Username: "ana", PopupHides: 1},
	}, persister.Saved())
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := NewStore(NewStoreOptions{})
	g := testGame()
	s.SetGame(g)

	// mutating the caller's value does not leak into the store
	g.Board["cat"] = types.CategoryRed
	assert.False(t, s.Game().Revealed("cat"))

	// mutating a read copy does not leak either
	read := s.Game()
	read.Board["dog"] = types.CategoryBlue
	assert.False(t, s.Game().Revealed("dog"))
}

func TestStore_Derivations(t *testing.T) {
	s := NewStore(NewStoreOptions{})
	_, ok := s.TileCounts()
	assert.False(t, ok)
	assert.False(t, s.GameWon())
	assert.Empty(t, s.Words())

	s.SetGame(testGame())
	counts, ok := s.TileCounts()
	require.True(t, ok)
	assert.Equal(t, 1, counts.Total[types.CategoryRed])
	assert.Equal(t, 1, counts.Total[types.CategoryBlue])
	assert.ElementsMatch(t, []string{"cat", "dog", "fox"}, s.Words())
	assert.False(t, s.GameWon())

	revealed := testGame()
	revealed.Board["cat"] = types.CategoryRed
	s.SetGame(revealed)
	counts, ok = s.TileCounts()
	require.True(t, ok)
	assert.Equal(t, counts.Total[types.CategoryRed], counts.Flipped[types.CategoryRed])
	assert.True(t, s.GameWon())
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore(NewStoreOptions{})
	ch := s.Subscribe()

	s.SetConnected(true)
	s.SetConnected(false)

	select {
	case <-ch:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("expected a notification")
	}

	s.Unsubscribe(ch)
	_, open := <-ch
	assert.False(t, open)
}

func TestStore_ConcurrentReadersSeeWholeOperations(t *testing.T) {
	s := NewStore(NewStoreOptions{})
	s.SetRoom("g1")
	s.SetError("x")

	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.SetRoom("g1")
			s.SetError("x")
			s.ResetError()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			session := s.Session()
			// resetError clears both at once, so an error never outlives its room
			if session.Error != "" {
				assert.NotEmpty(t, session.Room)
			}
		}
	}()
	wg.Wait()
}
