package events

import (
	"github.com/cbodonnell/codewords/pkg/game/types"
)

// Event is one inbound real-time event. The set of events is closed.
type Event interface{ isEvent() }

// Connect is raised by the transport once the connection is up.
type Connect struct{}

// Disconnect is raised by the transport once the connection is gone.
type Disconnect struct{}

// GameUpdate carries a full game snapshot.
type GameUpdate struct {
	Game types.Game
}

// JoinedRoom confirms the room the client is in.
type JoinedRoom struct {
	Room string
}

// DictionaryList carries the dictionaries offered by the server.
type DictionaryList struct {
	Dictionaries map[string]types.Dictionary
}

// ServerError carries a message to display.
type ServerError struct {
	Error string
}

func (Connect) isEvent()        {}
func (Disconnect) isEvent()     {}
func (GameUpdate) isEvent()     {}
func (JoinedRoom) isEvent()     {}
func (DictionaryList) isEvent() {}
func (ServerError) isEvent()    {}
