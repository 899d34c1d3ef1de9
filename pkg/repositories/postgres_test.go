package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cbodonnell/codewords/pkg/state"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresRepository(t *testing.T) {
	connStr := os.Getenv("CODEWORDS_TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("CODEWORDS_TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	repository, err := NewPostgresRepository(ctx, connStr)
	require.NoError(t, err)
	defer repository.Close(ctx)

	key := uuid.NewString()
	now := time.Now()

	_, err = repository.LoadSession(ctx, key, now)
	assert.True(t, IsNotFound(err))

	session := state.PersistedSession{Room: "g1", Username: "ana", PopupHides: 1}
	require.NoError(t, repository.SaveSession(ctx, key, session, now.Add(time.Minute)))

	loaded, err := repository.LoadSession(ctx, key, now)
	require.NoError(t, err)
	assert.Equal(t, session, *loaded)

	_, err = repository.LoadSession(ctx, key, now.Add(2*time.Minute))
	assert.True(t, IsNotFound(err))

	deleted, err := repository.DeleteExpired(ctx, now.Add(2*time.Minute))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, deleted, int64(1))
}
