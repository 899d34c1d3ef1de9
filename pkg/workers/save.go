package workers

import (
	"context"
	"sync"
	"time"

	"github.com/cbodonnell/codewords/pkg/log"
	"github.com/cbodonnell/codewords/pkg/repositories"
	"github.com/cbodonnell/codewords/pkg/state"
)

const (
	// DefaultSessionTTL is how long a saved session lives after its last write
	DefaultSessionTTL = 15 * time.Minute
	// DefaultPurgeInterval is how often expired sessions are deleted
	DefaultPurgeInterval = time.Minute

	flushTimeout = 5 * time.Second
)

// SaveSessionWorker writes the persisted session fields to a repository.
// It implements state.Persister. Only the latest pending save is kept, so a
// burst of mutations results in a single write of the final values.
type SaveSessionWorker struct {
	repository    repositories.Repository
	key           string
	ttl           time.Duration
	purgeInterval time.Duration
	now           func() time.Time

	lock    sync.Mutex
	pending *SaveSessionRequest
	notify  chan struct{}
}

type NewSaveSessionWorkerOptions struct {
	Repository repositories.Repository
	// Key identifies the session row
	Key string
	// TTL defaults to DefaultSessionTTL
	TTL time.Duration
	// PurgeInterval defaults to DefaultPurgeInterval
	PurgeInterval time.Duration
	// Now defaults to time.Now
	Now func() time.Time
}

type SaveSessionRequest struct {
	Timestamp time.Time
	Session   state.PersistedSession
}

var _ state.Persister = &SaveSessionWorker{}

// NewSaveSessionWorker creates a new SaveSessionWorker.
// The worker processes save requests from the store and
// periodically deletes expired sessions from the repository.
func NewSaveSessionWorker(opts NewSaveSessionWorkerOptions) *SaveSessionWorker {
	if opts.TTL <= 0 {
		opts.TTL = DefaultSessionTTL
	}
	if opts.PurgeInterval <= 0 {
		opts.PurgeInterval = DefaultPurgeInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &SaveSessionWorker{
		repository:    opts.Repository,
		key:           opts.Key,
		ttl:           opts.TTL,
		purgeInterval: opts.PurgeInterval,
		now:           opts.Now,
		notify:        make(chan struct{}, 1),
	}
}

// Persist records session as the next value to save. It never blocks.
func (w *SaveSessionWorker) Persist(session state.PersistedSession) {
	w.lock.Lock()
	if w.pending != nil {
		log.Trace("Replacing pending session save")
	}
	w.pending = &SaveSessionRequest{
		Timestamp: w.now(),
		Session:   session,
	}
	w.lock.Unlock()

	select {
	case w.notify <- struct{}{}:
	default:
	}
}

// Start runs the worker until ctx is done. A save still pending at that
// point is flushed before Start returns.
func (w *SaveSessionWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
			w.flush(flushCtx)
			cancel()
			return
		case <-w.notify:
			w.flush(ctx)
		case <-ticker.C:
			w.deleteExpired(ctx)
		}
	}
}

func (w *SaveSessionWorker) takePending() *SaveSessionRequest {
	w.lock.Lock()
	defer w.lock.Unlock()
	req := w.pending
	w.pending = nil
	return req
}

func (w *SaveSessionWorker) flush(ctx context.Context) {
	req := w.takePending()
	if req == nil {
		return
	}
	w.saveSession(ctx, req)
}

func (w *SaveSessionWorker) saveSession(ctx context.Context, req *SaveSessionRequest) {
	expiresAt := req.Timestamp.Add(w.ttl)
	err := w.repository.SaveSession(ctx, w.key, req.Session, expiresAt)
	if err != nil {
		log.Error("Failed to save session: %v", err)
		return
	}
	log.Debug("Saved session %s until %s", w.key, expiresAt.Format(time.RFC3339))
}

func (w *SaveSessionWorker) deleteExpired(ctx context.Context) {
	deleted, err := w.repository.DeleteExpired(ctx, w.now())
	if err != nil {
		log.Error("Failed to delete expired sessions: %v", err)
		return
	}
	if deleted > 0 {
		log.Debug("Deleted %d expired sessions", deleted)
	}
}
