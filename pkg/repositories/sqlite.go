package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cbodonnell/codewords/pkg/state"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and applies the embedded migrations.
func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	stmts, err := migrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}

	for i, migration := range stmts {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %v", i, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveSession(ctx context.Context, key string, session state.PersistedSession, expiresAt time.Time) error {
	q := `
	INSERT OR REPLACE INTO sessions (session_key, room, username, popup_hides, updated_at, expires_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, q, key, session.Room, session.Username, session.PopupHides, time.Now().UnixMilli(), expiresAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert session: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadSession(ctx context.Context, key string, now time.Time) (*state.PersistedSession, error) {
	q := `
	SELECT room, username, popup_hides FROM sessions WHERE session_key = ? AND expires_at > ?;
	`
	session := &state.PersistedSession{}
	if err := r.db.QueryRowContext(ctx, q, key, now.UnixMilli()).Scan(&session.Room, &session.Username, &session.PopupHides); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{Key: key}
		}
		return nil, fmt.Errorf("failed to scan session: %v", err)
	}

	return session, nil
}

func (r *SQLiteRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	q := `
	DELETE FROM sessions WHERE expires_at <= ?;
	`
	res, err := r.db.ExecContext(ctx, q, now.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %v", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted sessions: %v", err)
	}

	return n, nil
}
