package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	mocks "github.com/cbodonnell/codewords/mocks/github.com/cbodonnell/codewords/pkg/queue"
	"github.com/cbodonnell/codewords/pkg/events"
	"github.com/cbodonnell/codewords/pkg/game/types"
	"github.com/cbodonnell/codewords/pkg/messages"
	"github.com/cbodonnell/codewords/pkg/queue"
	"github.com/cbodonnell/codewords/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	handled []string
	fail    map[string]bool
}

func (h *recordingHandler) HandleMessage(msg *messages.Message) error {
	h.handled = append(h.handled, msg.Type)
	if h.fail[msg.Type] {
		return fmt.Errorf("cannot handle %s", msg.Type)
	}
	return nil
}

func TestServerMessageWorker_processPendingServerMessages(t *testing.T) {
	tests := []struct {
		name  string
		setup func(q *mocks.Queue)
		fail  map[string]bool
		want  []string
	}{
		{
			name: "in order",
			setup: func(q *mocks.Queue) {
				q.EXPECT().ReadAllMessages().Return([]interface{}{
					&messages.Message{Type: messages.MessageTypeConnect},
					&messages.Message{Type: messages.MessageTypeServerJoinRoom},
					&messages.Message{Type: messages.MessageTypeServerGameUpdate},
				}, nil).Once()
			},
			want: []string{"connect", "join_room", "game"},
		},
		{
			name: "failed messages are skipped",
			setup: func(q *mocks.Queue) {
				q.EXPECT().ReadAllMessages().Return([]interface{}{
					&messages.Message{Type: messages.MessageTypeServerError},
					&messages.Message{Type: messages.MessageTypeDisconnect},
				}, nil).Once()
			},
			fail: map[string]bool{messages.MessageTypeServerError: true},
			want: []string{"error", "disconnect"},
		},
		{
			name: "items of the wrong type are dropped",
			setup: func(q *mocks.Queue) {
				q.EXPECT().ReadAllMessages().Return([]interface{}{
					"not a message",
					&messages.Message{Type: messages.MessageTypeConnect},
				}, nil).Once()
			},
			want: []string{"connect"},
		},
		{
			name: "read error",
			setup: func(q *mocks.Queue) {
				q.EXPECT().ReadAllMessages().Return(nil, fmt.Errorf("closed")).Once()
			},
		},
		{
			name: "no messages",
			setup: func(q *mocks.Queue) {
				q.EXPECT().ReadAllMessages().Return([]interface{}{}, nil).Once()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := mocks.NewQueue(t)
			tt.setup(q)
			handler := &recordingHandler{fail: tt.fail}

			w := NewServerMessageWorker(NewServerMessageWorkerOptions{
				ServerMessageQueue: q,
				Handler:            handler,
			})
			w.processPendingServerMessages()

			assert.Equal(t, tt.want, handler.handled)
		})
	}
}

func TestServerMessageWorker_AppliesToStore(t *testing.T) {
	q := queue.NewInMemoryQueue(16)
	store := state.NewStore(state.NewStoreOptions{})
	reducer := events.NewReducer(events.NewReducerOptions{Store: store})

	game := messages.ServerGameUpdate{
		Solution:      map[string]types.Category{"cat": "R", "dog": "B"},
		Board:         map[string]types.Category{"dog": "B"},
		StartingColor: types.CategoryBlue,
		GameID:        "g7",
	}
	payload, err := json.Marshal(game)
	require.NoError(t, err)

	require.NoError(t, q.Enqueue(&messages.Message{Type: messages.MessageTypeConnect}))
	require.NoError(t, q.Enqueue(&messages.Message{Type: messages.MessageTypeServerGameUpdate, Payload: payload}))

	w := NewServerMessageWorker(NewServerMessageWorkerOptions{
		ServerMessageQueue: q,
		Handler:            reducer,
		Interval:           time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	assert.Eventually(t, store.GameWon, time.Second, 5*time.Millisecond)

	session := store.Session()
	assert.True(t, session.Connected)
	assert.Equal(t, "g7", session.Room)
	assert.Equal(t, types.CategoryBlue, session.Turn)
	assert.Zero(t, q.Size())
}
