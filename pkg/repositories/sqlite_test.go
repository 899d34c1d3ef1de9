package repositories

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cbodonnell/codewords/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteRepository(t *testing.T) Repository {
	t.Helper()
	ctx := context.Background()
	repository, err := NewSQLiteRepository(ctx, filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repository.Close(ctx) })
	return repository
}

func TestSQLiteRepository_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	repository := newTestSQLiteRepository(t)
	now := time.Now()

	_, err := repository.LoadSession(ctx, "abc", now)
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "session abc not found")

	session := state.PersistedSession{Room: "g1", Username: "ana", PopupHides: 2}
	require.NoError(t, repository.SaveSession(ctx, "abc", session, now.Add(15*time.Minute)))

	loaded, err := repository.LoadSession(ctx, "abc", now)
	require.NoError(t, err)
	assert.Equal(t, session, *loaded)

	// saving again overwrites the row
	session.Room = ""
	session.PopupHides = 3
	require.NoError(t, repository.SaveSession(ctx, "abc", session, now.Add(15*time.Minute)))

	loaded, err = repository.LoadSession(ctx, "abc", now)
	require.NoError(t, err)
	assert.Equal(t, session, *loaded)
}

func TestSQLiteRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	repository := newTestSQLiteRepository(t)
	now := time.Now()

	require.NoError(t, repository.SaveSession(ctx, "old", state.PersistedSession{Room: "g1"}, now.Add(-time.Second)))
	require.NoError(t, repository.SaveSession(ctx, "new", state.PersistedSession{Room: "g2"}, now.Add(time.Minute)))

	_, err := repository.LoadSession(ctx, "old", now)
	assert.True(t, IsNotFound(err), "expired sessions are not loaded")

	loaded, err := repository.LoadSession(ctx, "new", now)
	require.NoError(t, err)
	assert.Equal(t, "g2", loaded.Room)

	deleted, err := repository.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	// once the new session is past its expiry it is gone too
	_, err = repository.LoadSession(ctx, "new", now.Add(2*time.Minute))
	assert.True(t, IsNotFound(err))
}

func TestSQLiteRepository_MigrationsAreRepeatable(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sessions.db")

	first, err := NewSQLiteRepository(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.SaveSession(ctx, "abc", state.PersistedSession{Username: "ana"}, time.Now().Add(time.Minute)))
	require.NoError(t, first.Close(ctx))

	second, err := NewSQLiteRepository(ctx, path)
	require.NoError(t, err)
	defer second.Close(ctx)

	loaded, err := second.LoadSession(ctx, "abc", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "ana", loaded.Username)
}
