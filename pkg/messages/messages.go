package messages

import (
	"encoding/json"

	"github.com/cbodonnell/codewords/pkg/game/types"
)

const (
	// MessageBufferSize represents the maximum size of a message
	MessageBufferSize = 64 * 1024
)

// Message types sent by the server
const (
	MessageTypeServerGameUpdate       = "game"
	MessageTypeServerJoinRoom         = "join_room"
	MessageTypeServerListDictionaries = "list_dictionaries"
	MessageTypeServerError            = "error"
)

// Message types produced locally by the transport
const (
	MessageTypeConnect    = "connect"
	MessageTypeDisconnect = "disconnect"
)

// Message types sent by the client
const (
	MessageTypeClientJoinRoom         = "join_room"
	MessageTypeClientListDictionaries = "list_dictionaries"
)

// Message represents a generic message for serialization/deserialization
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage marshals payload into a message of the given type.
// A nil payload produces a message without one.
func NewMessage(messageType string, payload interface{}) (*Message, error) {
	msg := &Message{Type: messageType}
	if payload == nil {
		return msg, nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg.Payload = b
	return msg, nil
}

// ServerGameUpdate is a full snapshot of the game the client is in.
type ServerGameUpdate struct {
	Solution      map[string]types.Category `json:"solution" validate:"required"`
	Board         map[string]types.Category `json:"board"`
	StartingColor types.Category            `json:"starting_color" validate:"required"`
	GameID        string                    `json:"game_id" validate:"required"`
}

// Game converts the update into the snapshot held by the client.
func (u *ServerGameUpdate) Game() types.Game {
	return types.Game{
		Solution:      u.Solution,
		Board:         u.Board,
		StartingColor: u.StartingColor,
		GameID:        u.GameID,
	}
}

// ServerJoinRoom confirms the room the client has joined.
type ServerJoinRoom struct {
	Room string `json:"room" validate:"required"`
}

// ServerListDictionaries lists the dictionaries a game can be created with.
type ServerListDictionaries struct {
	Dictionaries map[string]types.Dictionary `json:"dictionaries" validate:"required"`
}

// ServerError carries a human readable error for display.
type ServerError struct {
	Error string `json:"error" validate:"required"`
}

// ClientJoinRoom asks the server to put the client in a room.
type ClientJoinRoom struct {
	Room     string `json:"room"`
	Username string `json:"username,omitempty"`
}
