package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driven"
)

// Ensure ReceiptStore implements the interface.
var _ driven.ReceiptStore = (*ReceiptStore)(nil)

// ReceiptStore is an in-memory implementation of driven.ReceiptStore.
type ReceiptStore struct {
	mu       sync.RWMutex
	receipts map[string]domain.Receipt
}

// NewReceiptStore creates a new in-memory receipt store.
func NewReceiptStore() *ReceiptStore {
	return &ReceiptStore{
		receipts: make(map[string]domain.Receipt),
	}
}

// Save records a receipt.
func (s *ReceiptStore) Save(_ context.Context, receipt domain.Receipt) error {
	if receipt.Reference == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.receipts[receipt.Reference]; exists {
		return fmt.Errorf("receipt %s: %w", receipt.Reference, domain.ErrAlreadyExists)
	}
	s.receipts[receipt.Reference] = receipt
	return nil
}

// Get retrieves a receipt by reference.
func (s *ReceiptStore) Get(_ context.Context, reference string) (*domain.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	receipt, ok := s.receipts[reference]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &receipt, nil
}

// List returns all receipts, most recent first.
func (s *ReceiptStore) List(_ context.Context) ([]domain.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Receipt, 0, len(s.receipts))
	for _, r := range s.receipts {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SubmittedAt.Equal(result[j].SubmittedAt) {
			return result[i].Reference < result[j].Reference
		}
		return result[i].SubmittedAt.After(result[j].SubmittedAt)
	})
	return result, nil
}
