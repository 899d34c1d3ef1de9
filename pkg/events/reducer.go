package events

import (
	"fmt"

	"github.com/cbodonnell/codewords/pkg/game/types"
	"github.com/cbodonnell/codewords/pkg/log"
	"github.com/cbodonnell/codewords/pkg/messages"
)

// Store is the set of state mutations the reducer issues.
type Store interface {
	SetConnected(connected bool)
	SetDictionaries(dictionaries map[string]types.Dictionary)
	SetTurn(team types.Category)
	SetGame(g types.Game)
	SetRoom(room string)
	SetError(message string)
	ResetError()
}

// ErrUnknownEvent is returned for message types the reducer has no handler for.
type ErrUnknownEvent struct {
	Type string
}

func (e *ErrUnknownEvent) Error() string {
	return fmt.Sprintf("unknown event type: %s", e.Type)
}

// Reducer translates inbound events into ordered store mutations.
// It keeps no state of its own; handling the same event twice leaves the
// store as handling it once.
type Reducer struct {
	store  Store
	policy messages.PayloadPolicy
}

type NewReducerOptions struct {
	Store         Store
	PayloadPolicy messages.PayloadPolicy
}

func NewReducer(opts NewReducerOptions) *Reducer {
	return &Reducer{
		store:  opts.Store,
		policy: opts.PayloadPolicy,
	}
}

// Apply runs the mutations for event in their fixed order.
func (r *Reducer) Apply(event Event) error {
	switch e := event.(type) {
	case Connect:
		r.store.SetConnected(true)
	case Disconnect:
		r.store.SetConnected(false)
	case GameUpdate:
		r.store.ResetError()
		r.store.SetGame(e.Game)
		// the turn comes from the snapshot just installed
		r.store.SetTurn(e.Game.StartingColor)
		r.store.SetRoom(e.Game.GameID)
	case JoinedRoom:
		r.store.ResetError()
		r.store.SetRoom(e.Room)
	case DictionaryList:
		r.store.SetDictionaries(e.Dictionaries)
	case ServerError:
		// the room survives a server error
		r.store.SetError(e.Error)
	default:
		return &ErrUnknownEvent{Type: fmt.Sprintf("%T", event)}
	}
	return nil
}

// HandleMessage decodes msg and applies the resulting event.
// A message rejected by the payload policy leaves the store untouched.
func (r *Reducer) HandleMessage(msg *messages.Message) error {
	event, err := FromMessage(msg, r.policy)
	if err != nil {
		return err
	}
	log.Trace("Applying %s event", msg.Type)
	return r.Apply(event)
}

// FromMessage decodes a wire message into its event.
func FromMessage(msg *messages.Message, policy messages.PayloadPolicy) (Event, error) {
	switch msg.Type {
	case messages.MessageTypeConnect:
		return Connect{}, nil
	case messages.MessageTypeDisconnect:
		return Disconnect{}, nil
	case messages.MessageTypeServerGameUpdate:
		update := &messages.ServerGameUpdate{}
		if err := messages.DecodePayload(msg, update, policy); err != nil {
			return nil, err
		}
		return GameUpdate{Game: update.Game()}, nil
	case messages.MessageTypeServerJoinRoom:
		joinRoom := &messages.ServerJoinRoom{}
		if err := messages.DecodePayload(msg, joinRoom, policy); err != nil {
			return nil, err
		}
		return JoinedRoom{Room: joinRoom.Room}, nil
	case messages.MessageTypeServerListDictionaries:
		listDictionaries := &messages.ServerListDictionaries{}
		if err := messages.DecodePayload(msg, listDictionaries, policy); err != nil {
			return nil, err
		}
		return DictionaryList{Dictionaries: listDictionaries.Dictionaries}, nil
	case messages.MessageTypeServerError:
		serverError := &messages.ServerError{}
		if err := messages.DecodePayload(msg, serverError, policy); err != nil {
			return nil, err
		}
		return ServerError{Error: serverError.Error}, nil
	default:
		return nil, &ErrUnknownEvent{Type: msg.Type}
	}
}
