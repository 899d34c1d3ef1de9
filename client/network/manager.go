package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/codewords/pkg/log"
	"github.com/cbodonnell/codewords/pkg/messages"
	"github.com/cbodonnell/codewords/pkg/queue"
)

const (
	DefaultServerURL = "ws://localhost:8080/ws"
)

// NetworkManager owns the connection to the game server.
type NetworkManager struct {
	serverMessageQueue queue.Queue
	wsClient           *WSClient
	wsClientErrChan    chan error
	cancelClientCtx    context.CancelFunc
	clientWaitGroup    *sync.WaitGroup
}

type NewNetworkManagerOptions struct {
	// ServerURL defaults to DefaultServerURL
	ServerURL          string
	Codec              *messages.Codec
	ServerMessageQueue queue.Queue
}

// NewNetworkManager creates a new network manager.
func NewNetworkManager(opts NewNetworkManagerOptions) *NetworkManager {
	if opts.ServerURL == "" {
		opts.ServerURL = DefaultServerURL
	}
	return &NetworkManager{
		serverMessageQueue: opts.ServerMessageQueue,
		wsClient: NewWSClient(NewWSClientOptions{
			ServerURL:    opts.ServerURL,
			Codec:        opts.Codec,
			MessageQueue: opts.ServerMessageQueue,
		}),
		wsClientErrChan: make(chan error, 1),
		clientWaitGroup: &sync.WaitGroup{},
	}
}

// Start connects to the server and starts reading from it.
// Messages left over from a previous connection are dropped first.
func (m *NetworkManager) Start(ctx context.Context) error {
	if m.cancelClientCtx != nil {
		return fmt.Errorf("network manager already started")
	}

	if err := m.serverMessageQueue.ClearQueue(); err != nil {
		return fmt.Errorf("failed to clear server message queue: %v", err)
	}

	if err := m.wsClient.Connect(ctx); err != nil {
		return fmt.Errorf("failed to start WebSocket client: %v", err)
	}

	clientCtx, cancel := context.WithCancel(ctx)
	m.cancelClientCtx = cancel

	m.clientWaitGroup.Add(1)
	go func(ctx context.Context) {
		defer m.clientWaitGroup.Done()
		err := m.wsClient.HandleMessages(ctx)
		select {
		case m.wsClientErrChan <- err:
		default:
			log.Warn("Dropping WebSocket client error: %v", err)
		}
	}(clientCtx)

	log.Info("Network manager started")

	return nil
}

// Stop closes the connection and waits for the read loop to finish.
func (m *NetworkManager) Stop() error {
	if m.cancelClientCtx == nil {
		log.Warn("Network manager already stopped")
		return nil
	}
	m.cancelClientCtx()

	if err := m.wsClient.Close(); err != nil {
		log.Debug("Failed to close WebSocket client: %v", err)
	}

	log.Debug("Waiting for clients to stop")
	m.clientWaitGroup.Wait()

	m.cancelClientCtx = nil

	log.Info("Network manager stopped")

	return nil
}

func (m *NetworkManager) ServerMessageQueue() queue.Queue {
	return m.serverMessageQueue
}

// WSClientErrChan receives the reason the read loop ended.
func (m *NetworkManager) WSClientErrChan() <-chan error {
	return m.wsClientErrChan
}

func (m *NetworkManager) SendMessage(msg *messages.Message) error {
	return m.wsClient.SendMessage(msg)
}

// JoinRoom asks the server to join room.
func (m *NetworkManager) JoinRoom(room string, username string) error {
	msg, err := messages.NewMessage(messages.MessageTypeClientJoinRoom, &messages.ClientJoinRoom{
		Room:     room,
		Username: username,
	})
	if err != nil {
		return fmt.Errorf("failed to create join room message: %v", err)
	}
	return m.SendMessage(msg)
}

// ListDictionaries asks the server for its dictionaries.
func (m *NetworkManager) ListDictionaries() error {
	msg, err := messages.NewMessage(messages.MessageTypeClientListDictionaries, nil)
	if err != nil {
		return fmt.Errorf("failed to create list dictionaries message: %v", err)
	}
	return m.SendMessage(msg)
}
