package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/codewords/pkg/log"
	"github.com/cbodonnell/codewords/pkg/messages"
	"github.com/cbodonnell/codewords/pkg/queue"
)

// DefaultServerMessageInterval is how often the queue is drained
const DefaultServerMessageInterval = 10 * time.Millisecond

// MessageHandler applies a single server message.
type MessageHandler interface {
	HandleMessage(msg *messages.Message) error
}

// ServerMessageWorker is the single goroutine applying server messages.
// It drains the queue filled by the transport and hands each message to
// the handler in arrival order.
type ServerMessageWorker struct {
	serverMessageQueue queue.Queue
	handler            MessageHandler
	interval           time.Duration
}

type NewServerMessageWorkerOptions struct {
	ServerMessageQueue queue.Queue
	Handler            MessageHandler
	// Interval defaults to DefaultServerMessageInterval
	Interval time.Duration
}

func NewServerMessageWorker(opts NewServerMessageWorkerOptions) *ServerMessageWorker {
	if opts.Interval <= 0 {
		opts.Interval = DefaultServerMessageInterval
	}
	return &ServerMessageWorker{
		serverMessageQueue: opts.ServerMessageQueue,
		handler:            opts.Handler,
		interval:           opts.Interval,
	}
}

func (w *ServerMessageWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.processPendingServerMessages()
		}
	}
}

// processPendingServerMessages applies every message currently in the queue.
// A message that fails is logged and skipped.
func (w *ServerMessageWorker) processPendingServerMessages() {
	serverMessages, err := w.serverMessageQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read server messages: %v", err)
		return
	}

	for _, item := range serverMessages {
		message, ok := item.(*messages.Message)
		if !ok {
			log.Error("Failed to cast message to messages.Message")
			continue
		}

		if err := w.handler.HandleMessage(message); err != nil {
			log.Error("Failed to handle server message %s: %v", message.Type, err)
		}
	}
}
