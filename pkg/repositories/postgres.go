package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/codewords/pkg/log"
	"github.com/cbodonnell/codewords/pkg/state"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and applies the embedded migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	stmts, err := migrations("postgres")
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}

	for i, migration := range stmts {
		if _, err := conn.Exec(ctx, migration); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %d: %v", i, err)
		}
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("failed to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveSession(ctx context.Context, key string, session state.PersistedSession, expiresAt time.Time) error {
	q := `
	INSERT INTO sessions (session_key, room, username, popup_hides, updated_at, expires_at) VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (session_key) DO UPDATE SET room = $2, username = $3, popup_hides = $4, updated_at = $5, expires_at = $6;
	`
	_, err := r.conn.Exec(ctx, q, key, session.Room, session.Username, session.PopupHides, time.Now().UnixMilli(), expiresAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert session: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadSession(ctx context.Context, key string, now time.Time) (*state.PersistedSession, error) {
	q := `
	SELECT room, username, popup_hides FROM sessions WHERE session_key = $1 AND expires_at > $2;
	`
	session := &state.PersistedSession{}
	if err := r.conn.QueryRow(ctx, q, key, now.UnixMilli()).Scan(&session.Room, &session.Username, &session.PopupHides); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{Key: key}
		}
		return nil, fmt.Errorf("failed to scan session: %v", err)
	}

	return session, nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	q := `
	DELETE FROM sessions WHERE expires_at <= $1;
	`
	tag, err := r.conn.Exec(ctx, q, now.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %v", err)
	}

	return tag.RowsAffected(), nil
}
