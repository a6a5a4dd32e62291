package directory

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/tickethub/internal/upstream"
)

// userFetcher is the slice of the upstream client the directory needs.
type userFetcher interface {
	FetchUsers(ctx context.Context) ([]upstream.User, error)
}

// Directory memoizes the upstream id-to-username mapping for the lifetime of
// the process. The mapping is populated on first use and never refreshed.
type Directory struct {
	client userFetcher
	logger *zap.Logger

	mu    sync.Mutex
	names map[int]string
}

// New constructs an unpopulated Directory.
func New(client userFetcher, logger *zap.Logger) *Directory {
	return &Directory{client: client, logger: logger}
}

// Resolve returns the username for userID, populating the directory from
// upstream on first use. Unknown ids resolve to a synthesized placeholder
// rather than an error; a failed populate is returned to the caller and
// retried on the next call.
func (d *Directory) Resolve(ctx context.Context, userID int) (string, error) {
	// The mutex is held across the populate fetch so racing first callers
	// serialize on a single upstream request and all observe the completed map.
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.names == nil {
		users, err := d.client.FetchUsers(ctx)
		if err != nil {
			return "", fmt.Errorf("populate user directory: %w", err)
		}
		names := make(map[int]string, len(users))
		for _, user := range users {
			names[user.ID] = user.Username
		}
		d.names = names
		d.logger.Info("user directory populated", zap.Int("users", len(names)))
	}

	if name, ok := d.names[userID]; ok {
		return name, nil
	}
	return FallbackName(userID), nil
}

// FallbackName synthesizes a display name for ids absent from the directory.
// It may collide with a genuine username of the same shape; that ambiguity is
// accepted.
func FallbackName(userID int) string {
	return fmt.Sprintf("user_%d", userID)
}
