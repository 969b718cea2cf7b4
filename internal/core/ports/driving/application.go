package driving

import (
	"context"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

// ApplicationService drives the application wizard.
type ApplicationService interface {
	// Start opens a new session for an available service.
	Start(ctx context.Context, serviceID string) (*domain.Session, error)

	// Get returns the current state of a session.
	Get(ctx context.Context, sessionID string) (*domain.Session, error)

	// UpdateField records one form input and clears its error.
	UpdateField(ctx context.Context, sessionID string, field domain.Field, value string) (*domain.Session, error)

	// Next validates the current step and advances, submitting after the last data entry step.
	Next(ctx context.Context, sessionID string) (*domain.Session, error)

	// Previous goes back one step.
	Previous(ctx context.Context, sessionID string) (*domain.Session, error)

	// Exit abandons the session and discards its data.
	Exit(ctx context.Context, sessionID string) error

	// Receipts lists recorded submissions.
	Receipts(ctx context.Context) ([]domain.Receipt, error)
}
