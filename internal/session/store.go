// README: Session store contract; the workflow core never touches storage directly.
package session

import (
	"context"
	"errors"

	"tripmate/internal/planner"
)

var ErrNotFound = errors.New("session not found")

// Store persists one TripState per session id. Implementations serialize
// access per session id themselves or accept last-write-wins; the
// workflow assumes a single writer at a time per session.
type Store interface {
	Load(ctx context.Context, sessionID string) (*planner.TripState, error)
	Save(ctx context.Context, st *planner.TripState) error
	Delete(ctx context.Context, sessionID string) error
}
