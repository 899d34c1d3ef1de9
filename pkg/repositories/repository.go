package repositories

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"time"

	"github.com/cbodonnell/codewords/pkg/state"
)

//go:embed migrations
var migrationsFS embed.FS

// Repository stores the persisted part of client sessions by key.
// Rows expire; an expired row is treated as absent.
type Repository interface {
	Close(ctx context.Context) error
	SaveSession(ctx context.Context, key string, session state.PersistedSession, expiresAt time.Time) error
	LoadSession(ctx context.Context, key string, now time.Time) (*state.PersistedSession, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// migrations returns the contents of the migrations for dialect in file name order.
func migrations(dialect string) ([]string, error) {
	dir := path.Join("migrations", dialect)
	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %v", err)
	}

	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		migrationPath := path.Join(dir, entry.Name())
		migration, err := fs.ReadFile(migrationsFS, migrationPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %v", migrationPath, err)
		}
		out = append(out, string(migration))
	}

	return out, nil
}
