package driven

import (
	"context"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

// ReceiptStore records submitted applications.
type ReceiptStore interface {
	// Save records a receipt. References are unique.
	Save(ctx context.Context, receipt domain.Receipt) error

	// Get retrieves a receipt by reference.
	Get(ctx context.Context, reference string) (*domain.Receipt, error)

	// List returns all receipts, most recent first.
	List(ctx context.Context) ([]domain.Receipt, error)
}
