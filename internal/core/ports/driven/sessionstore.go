package driven

import (
	"context"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

// SessionStore persists application wizard sessions.
// Implementations must be safe for concurrent use.
type SessionStore interface {
	// Save stores or replaces a session, refreshing its expiry.
	Save(ctx context.Context, session domain.Session) error

	// Get retrieves a session by ID.
	// Returns domain.ErrSessionNotFound if it does not exist or has expired.
	Get(ctx context.Context, id string) (*domain.Session, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
}
