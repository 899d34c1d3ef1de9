package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/codewords/pkg/log"
	"github.com/cbodonnell/codewords/pkg/messages"
	"github.com/cbodonnell/codewords/pkg/queue"
	"github.com/gorilla/websocket"
)

// WSClient represents a WebSocket client.
// Server messages are enqueued in the order they arrive, bracketed by a
// connect message on dial and a disconnect message when the read loop ends.
type WSClient struct {
	serverURL    string
	codec        *messages.Codec
	messageQueue queue.Queue
	dialer       *websocket.Dialer

	connLock  sync.Mutex
	conn      *websocket.Conn
	writeLock sync.Mutex
}

type NewWSClientOptions struct {
	ServerURL    string
	Codec        *messages.Codec
	MessageQueue queue.Queue
	// Dialer defaults to websocket.DefaultDialer
	Dialer *websocket.Dialer
}

// NewWSClient creates a new WebSocket client.
func NewWSClient(opts NewWSClientOptions) *WSClient {
	if opts.Dialer == nil {
		opts.Dialer = websocket.DefaultDialer
	}
	return &WSClient{
		serverURL:    opts.ServerURL,
		codec:        opts.Codec,
		messageQueue: opts.MessageQueue,
		dialer:       opts.Dialer,
	}
}

// Connect establishes a connection to the WebSocket server.
func (c *WSClient) Connect(ctx context.Context) error {
	log.Info("Connecting to WebSocket server at %s", c.serverURL)
	conn, _, err := c.dialer.DialContext(ctx, c.serverURL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	conn.SetReadLimit(messages.MessageBufferSize)

	c.connLock.Lock()
	c.conn = conn
	c.connLock.Unlock()

	c.enqueueLocal(messages.MessageTypeConnect)
	return nil
}

func (c *WSClient) getConn() *websocket.Conn {
	c.connLock.Lock()
	defer c.connLock.Unlock()
	return c.conn
}

// HandleMessages reads from the connection until it ends or ctx is done.
// Messages are handled one at a time on the calling goroutine.
func (c *WSClient) HandleMessages(ctx context.Context) error {
	conn := c.getConn()
	if conn == nil {
		return &ErrNotConnected{}
	}
	defer c.enqueueLocal(messages.MessageTypeDisconnect)
	defer conn.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				log.Trace("Connection closed by client")
				return &ErrConnectionClosedByClient{}
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("Error reading WebSocket message from %s: %v", conn.RemoteAddr().String(), err)
			}
			log.Trace("Connection closed for %s", conn.RemoteAddr().String())
			return &ErrConnectionClosedByServer{}
		}

		if err := c.handleMessage(message); err != nil {
			log.Error("Failed to handle message: %v", err)
		}
	}
}

// handleMessage processes a received message.
func (c *WSClient) handleMessage(b []byte) error {
	msg, err := c.codec.DeserializeMessage(b)
	if err != nil {
		return fmt.Errorf("failed to deserialize message: %v", err)
	}
	log.Trace("Received message from WebSocket server of type %s", msg.Type)

	switch msg.Type {
	case messages.MessageTypeServerGameUpdate,
		messages.MessageTypeServerJoinRoom,
		messages.MessageTypeServerListDictionaries,
		messages.MessageTypeServerError:
		if err := c.messageQueue.Enqueue(msg); err != nil {
			return fmt.Errorf("failed to enqueue message: %v", err)
		}
	default:
		return fmt.Errorf("received unexpected message type from WebSocket server: %s", msg.Type)
	}

	return nil
}

func (c *WSClient) enqueueLocal(messageType string) {
	if err := c.messageQueue.Enqueue(&messages.Message{Type: messageType}); err != nil {
		log.Error("Failed to enqueue %s message: %v", messageType, err)
	}
}

// Close closes the WebSocket connection.
func (c *WSClient) Close() error {
	conn := c.getConn()
	if conn == nil {
		log.Warn("WebSocket connection is already closed")
		return nil
	}

	c.writeLock.Lock()
	err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.writeLock.Unlock()
	if err != nil {
		log.Debug("Failed to write close message: %v", err)
	}

	c.connLock.Lock()
	c.conn = nil
	c.connLock.Unlock()

	return conn.Close()
}

// SendMessage sends a message to the WebSocket server.
func (c *WSClient) SendMessage(msg *messages.Message) error {
	conn := c.getConn()
	if conn == nil {
		return &ErrNotConnected{}
	}

	b, err := c.codec.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}

	frameType := websocket.TextMessage
	if c.codec.Compression() == messages.CompressionZstd {
		frameType = websocket.BinaryMessage
	}

	c.writeLock.Lock()
	defer c.writeLock.Unlock()
	if err := conn.WriteMessage(frameType, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}

	return nil
}
