package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driven"
)

// timeLayout is fixed width so submitted_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// receiptStore implements driven.ReceiptStore.
type receiptStore struct {
	store *Store
}

var _ driven.ReceiptStore = (*receiptStore)(nil)

// Save records a receipt.
func (s *receiptStore) Save(ctx context.Context, receipt domain.Receipt) error {
	if receipt.Reference == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO receipts (reference, service_id, submitted_at)
		VALUES (?, ?, ?)
	`, receipt.Reference, receipt.ServiceID, receipt.SubmittedAt.UTC().Format(timeLayout))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("receipt %s: %w", receipt.Reference, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("inserting receipt: %w", err)
	}
	return nil
}

// Get retrieves a receipt by reference.
func (s *receiptStore) Get(ctx context.Context, reference string) (*domain.Receipt, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT reference, service_id, submitted_at
		FROM receipts WHERE reference = ?
	`, reference)

	receipt, err := scanReceipt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// List returns all receipts, most recent first.
func (s *receiptStore) List(ctx context.Context) ([]domain.Receipt, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT reference, service_id, submitted_at
		FROM receipts ORDER BY submitted_at DESC, reference ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying receipts: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Receipt, 0)
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating receipts: %w", err)
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReceipt(row scanner) (*domain.Receipt, error) {
	var (
		receipt     domain.Receipt
		submittedAt string
	)
	if err := row.Scan(&receipt.Reference, &receipt.ServiceID, &submittedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning receipt: %w", err)
	}

	t, err := time.Parse(timeLayout, submittedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing submitted_at: %w", err)
	}
	receipt.SubmittedAt = t
	return &receipt, nil
}
