package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cbodonnell/codewords/client/input"
	"github.com/cbodonnell/codewords/client/network"
	"github.com/cbodonnell/codewords/client/view"
	"github.com/cbodonnell/codewords/pkg/events"
	"github.com/cbodonnell/codewords/pkg/log"
	"github.com/cbodonnell/codewords/pkg/messages"
	"github.com/cbodonnell/codewords/pkg/queue"
	"github.com/cbodonnell/codewords/pkg/repositories"
	"github.com/cbodonnell/codewords/pkg/state"
	"github.com/cbodonnell/codewords/pkg/version"
	"github.com/cbodonnell/codewords/pkg/workers"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic(fmt.Sprintf("Failed to load .env file: %v", err))
	}

	serverURL := flag.String("server-url", envOrDefault("CODEWORDS_SERVER_URL", network.DefaultServerURL), "WebSocket URL of the game server")
	logLevel := flag.String("log-level", envOrDefault("CODEWORDS_LOG_LEVEL", "info"), "Log level")
	sqlitePath := flag.String("sqlite-path", envOrDefault("CODEWORDS_SQLITE_PATH", "codewords.db"), "path of the SQLite session database")
	sessionKey := flag.String("session-key", os.Getenv("CODEWORDS_SESSION_KEY"), "key of the saved session, read from or written to -session-key-file when empty")
	sessionKeyFile := flag.String("session-key-file", "", "file holding the default session key, defaults to <sqlite-path>.key")
	sessionTTL := flag.Duration("session-ttl", workers.DefaultSessionTTL, "how long a saved session lives after its last change")
	strictPayloads := flag.Bool("strict-payloads", false, "reject server messages with missing fields")
	compression := flag.String("compression", envOrDefault("CODEWORDS_COMPRESSION", string(messages.CompressionZstd)), "wire compression (zstd, none)")
	room := flag.String("room", "", "room to join, defaults to the saved room")
	username := flag.String("username", "", "username to play as")
	spymaster := flag.Bool("spymaster", false, "start with the key shown")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	// stdout belongs to the view
	logger := log.New(os.Stderr, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parsedCompression, err := messages.ParseCompression(*compression)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse compression: %v", err))
	}
	codec, err := messages.NewCodec(parsedCompression)
	if err != nil {
		panic(fmt.Sprintf("Failed to create codec: %v", err))
	}
	defer codec.Close()

	payloadPolicy := messages.PayloadLenient
	if *strictPayloads {
		payloadPolicy = messages.PayloadStrict
	}
	log.Info("Payload policy set to %s", payloadPolicy)

	repository, err := newRepository(ctx, os.Getenv("DATABASE_URL"), *sqlitePath)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(context.Background())

	if *sessionKeyFile == "" {
		*sessionKeyFile = *sqlitePath + ".key"
	}
	key, err := resolveSessionKey(*sessionKey, *sessionKeyFile)
	if err != nil {
		panic(fmt.Sprintf("Failed to resolve session key: %v", err))
	}

	restored, err := loadSession(ctx, repository, key)
	if err != nil {
		panic(fmt.Sprintf("Failed to load session: %v", err))
	}

	saveSessionWorker := workers.NewSaveSessionWorker(workers.NewSaveSessionWorkerOptions{
		Repository: repository,
		Key:        key,
		TTL:        *sessionTTL,
	})

	store := state.NewStore(state.NewStoreOptions{
		Restored:  restored,
		Persister: saveSessionWorker,
	})
	if *username != "" {
		store.SetUsername(*username)
	}
	if *spymaster {
		store.RevealSpymaster()
	}

	reducer := events.NewReducer(events.NewReducerOptions{
		Store:         store,
		PayloadPolicy: payloadPolicy,
	})

	serverMessageQueue := queue.NewInMemoryQueue(1000)
	networkManager := network.NewNetworkManager(network.NewNetworkManagerOptions{
		ServerURL:          *serverURL,
		Codec:              codec,
		ServerMessageQueue: serverMessageQueue,
	})

	serverMessageWorker := workers.NewServerMessageWorker(workers.NewServerMessageWorkerOptions{
		ServerMessageQueue: serverMessageQueue,
		Handler:            reducer,
	})

	renderer := view.NewRenderer(view.NewRendererOptions{Out: os.Stdout})
	commandHandler := input.NewCommandHandler(input.NewCommandHandlerOptions{
		Store: store,
		Out:   os.Stdout,
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		saveSessionWorker.Start(ctx)
		return nil
	})
	g.Go(func() error {
		serverMessageWorker.Start(ctx)
		return nil
	})
	g.Go(func() error {
		return render(ctx, store, renderer)
	})
	g.Go(func() error {
		return connect(ctx, networkManager, store, *room)
	})
	g.Go(func() error {
		return commandHandler.Run(ctx, os.Stdin)
	})

	if err := g.Wait(); err != nil {
		log.Error("Client stopped: %v", err)
		os.Exit(1)
	}
	log.Info("Client stopped")
}

func envOrDefault(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newRepository picks the repository from connStr, falling back to SQLite at sqlitePath.
func newRepository(ctx context.Context, connStr string, sqlitePath string) (repositories.Repository, error) {
	if connStr == "" {
		connStr = "sqlite://" + sqlitePath
	}

	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		path := strings.TrimPrefix(connStr, "sqlite://")
		log.Info("Saving sessions to SQLite database %s", path)
		return repositories.NewSQLiteRepository(ctx, path)
	case "postgres", "postgresql":
		log.Info("Saving sessions to Postgres database %s", u.Host)
		return repositories.NewPostgresRepository(ctx, connStr)
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}

// resolveSessionKey returns key when set. Otherwise it reads the key stored
// in path, creating the file with a new key on first use, so that restarts
// with the default settings find the saved session again.
func resolveSessionKey(key string, path string) (string, error) {
	if key != "" {
		return key, nil
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if stored := strings.TrimSpace(string(data)); stored != "" {
			log.Debug("Using session key from %s", path)
			return stored, nil
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read session key file: %v", err)
	}

	key = uuid.NewString()
	if err := os.WriteFile(path, []byte(key+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("failed to write session key file: %v", err)
	}
	log.Info("Using new session key %s, stored in %s", key, path)
	return key, nil
}

// loadSession returns the saved session for key, or nil when there is none.
func loadSession(ctx context.Context, repository repositories.Repository, key string) (*state.PersistedSession, error) {
	restored, err := repository.LoadSession(ctx, key, time.Now())
	if err != nil {
		if repositories.IsNotFound(err) {
			log.Info("No saved session for %s", key)
			return nil, nil
		}
		return nil, err
	}
	log.Info("Restored session %s", key)
	return restored, nil
}

// render draws the store after every change until ctx is done.
func render(ctx context.Context, store *state.Store, renderer *view.Renderer) error {
	changes := store.Subscribe()
	defer store.Unsubscribe(changes)

	if err := renderer.Render(store.View()); err != nil {
		return fmt.Errorf("failed to render: %v", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			if err := renderer.Render(store.View()); err != nil {
				return fmt.Errorf("failed to render: %v", err)
			}
		}
	}
}

// connect opens the connection, asks for the dictionaries and joins room, or
// the saved room when room is empty. The connection is not retried.
func connect(ctx context.Context, networkManager *network.NetworkManager, store *state.Store, room string) error {
	if err := networkManager.Start(ctx); err != nil {
		log.Error("Failed to start network manager: %v", err)
		store.SetError("unable to reach the server")
		return nil
	}
	defer networkManager.Stop()

	if err := networkManager.ListDictionaries(); err != nil {
		log.Error("Failed to request dictionaries: %v", err)
	}

	session := store.Session()
	if room == "" {
		room = session.Room
	}
	if room != "" {
		if err := networkManager.JoinRoom(room, session.Username); err != nil {
			log.Error("Failed to join room %s: %v", room, err)
		}
	}

	select {
	case <-ctx.Done():
	case err := <-networkManager.WSClientErrChan():
		if network.IsConnectionClosed(err) {
			log.Warn("Disconnected from server: %v", err)
		} else {
			log.Error("Connection failed: %v", err)
		}
		<-ctx.Done()
	}
	return nil
}
