package replay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cbodonnell/codewords/pkg/log"
	"github.com/cbodonnell/codewords/pkg/messages"
	"github.com/cbodonnell/codewords/pkg/version"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"nhooyr.io/websocket"
)

const (
	DefaultPort     = 8080
	DefaultInterval = 500 * time.Millisecond
)

// Server streams a script of server messages to every websocket client.
// It has no game rules: client requests are logged and otherwise ignored.
type Server struct {
	server        *http.Server
	script        Script
	codec         *messages.Codec
	interval      time.Duration
	closeWhenDone bool

	connsLock sync.Mutex
	conns     map[string]*websocket.Conn
}

type NewServerOptions struct {
	Port   int
	Script Script
	Codec  *messages.Codec
	// Interval between messages, defaults to DefaultInterval
	Interval time.Duration
	// CloseWhenDone closes each connection once its script has been sent
	CloseWhenDone bool
}

func NewServer(opts NewServerOptions) *Server {
	if opts.Port == 0 {
		opts.Port = DefaultPort
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}

	s := &Server{
		script:        opts.Script,
		codec:         opts.Codec,
		interval:      opts.Interval,
		closeWhenDone: opts.CloseWhenDone,
		conns:         make(map[string]*websocket.Conn),
	}

	r := mux.NewRouter()
	r.HandleFunc("/ws", s.handleWS).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: r,
	}
	return s
}

// Handler returns the routes served by the server.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.server.Shutdown(shutdownCtx)
		s.closeAll()
	}()

	log.Info("Replay server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("Replay server closed")
			return nil
		}
		return fmt.Errorf("failed to serve: %v", err)
	}
	return nil
}

// Connections returns the number of open websocket connections.
func (s *Server) Connections() int {
	s.connsLock.Lock()
	defer s.connsLock.Unlock()
	return len(s.conns)
}

func (s *Server) addConn(id string, conn *websocket.Conn) {
	s.connsLock.Lock()
	defer s.connsLock.Unlock()
	s.conns[id] = conn
}

func (s *Server) removeConn(id string) {
	s.connsLock.Lock()
	defer s.connsLock.Unlock()
	delete(s.conns, id)
}

func (s *Server) closeAll() {
	s.connsLock.Lock()
	defer s.connsLock.Unlock()
	for id, conn := range s.conns {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		delete(s.conns, id)
	}
}

type healthzResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Connections int    `json:"connections"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(healthzResponse{
		Status:      "ok",
		Version:     version.Get(),
		Connections: s.Connections(),
	})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Error("Failed to accept WebSocket connection: %v", err)
		return
	}
	conn.SetReadLimit(messages.MessageBufferSize)

	connID := uuid.NewString()
	s.addConn(connID, conn)
	defer s.removeConn(connID)
	log.Info("Connection %s opened from %s", connID, r.RemoteAddr)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go s.readClientMessages(ctx, cancel, connID, conn)

	if err := s.replay(ctx, conn); err != nil {
		log.Debug("Connection %s ended during replay: %v", connID, err)
		conn.Close(websocket.StatusInternalError, "replay failed")
		return
	}

	if s.closeWhenDone {
		log.Info("Connection %s finished replay", connID)
		conn.Close(websocket.StatusNormalClosure, "script complete")
		return
	}

	<-ctx.Done()
	log.Info("Connection %s closed", connID)
	conn.Close(websocket.StatusNormalClosure, "")
}

// replay writes the script to conn, one message per interval.
func (s *Server) replay(ctx context.Context, conn *websocket.Conn) error {
	frameType := websocket.MessageText
	if s.codec.Compression() == messages.CompressionZstd {
		frameType = websocket.MessageBinary
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for i, msg := range s.script {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}

		b, err := s.codec.SerializeMessage(msg)
		if err != nil {
			return fmt.Errorf("failed to serialize message %d: %v", i, err)
		}
		if err := conn.Write(ctx, frameType, b); err != nil {
			return fmt.Errorf("failed to write message %d: %v", i, err)
		}
		log.Trace("Replayed message %d of type %s", i, msg.Type)
	}
	return nil
}

// readClientMessages logs client requests until the connection ends.
func (s *Server) readClientMessages(ctx context.Context, cancel context.CancelFunc, connID string, conn *websocket.Conn) {
	defer cancel()
	for {
		_, b, err := conn.Read(ctx)
		if err != nil {
			if status := websocket.CloseStatus(err); status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && ctx.Err() == nil {
				log.Debug("Failed to read from connection %s: %v", connID, err)
			}
			return
		}

		msg, err := s.codec.DeserializeMessage(b)
		if err != nil {
			log.Warn("Failed to deserialize message from connection %s: %v", connID, err)
			continue
		}
		log.Debug("Connection %s sent %s", connID, msg.Type)
	}
}
