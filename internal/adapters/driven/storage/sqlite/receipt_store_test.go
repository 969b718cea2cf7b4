package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

func TestReceiptStore_SaveGet(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	receipts := store.ReceiptStore()
	ctx := context.Background()

	submitted := time.Date(2025, 3, 14, 9, 30, 15, 123456789, time.UTC)
	receipt := domain.Receipt{
		Reference:   "UC-1A2B3C4D",
		ServiceID:   domain.UniversalCreditID,
		SubmittedAt: submitted,
	}
	require.NoError(t, receipts.Save(ctx, receipt))

	got, err := receipts.Get(ctx, "UC-1A2B3C4D")
	require.NoError(t, err)
	assert.Equal(t, receipt.Reference, got.Reference)
	assert.Equal(t, receipt.ServiceID, got.ServiceID)
	assert.True(t, submitted.Equal(got.SubmittedAt))
}

func TestReceiptStore_Save_ConvertsToUTC(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	receipts := store.ReceiptStore()
	ctx := context.Background()

	london := time.FixedZone("BST", 3600)
	submitted := time.Date(2025, 6, 1, 10, 0, 0, 0, london)
	require.NoError(t, receipts.Save(ctx, domain.Receipt{Reference: "UC-00000001", SubmittedAt: submitted}))

	got, err := receipts.Get(ctx, "UC-00000001")
	require.NoError(t, err)
	assert.True(t, submitted.Equal(got.SubmittedAt))
	assert.Equal(t, time.UTC, got.SubmittedAt.Location())
}

func TestReceiptStore_Save_Duplicate(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	receipts := store.ReceiptStore()
	ctx := context.Background()

	receipt := domain.Receipt{Reference: "UC-1A2B3C4D", ServiceID: domain.UniversalCreditID, SubmittedAt: time.Now()}
	require.NoError(t, receipts.Save(ctx, receipt))

	err := receipts.Save(ctx, receipt)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestReceiptStore_Save_EmptyReference(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.ReceiptStore().Save(context.Background(), domain.Receipt{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReceiptStore_Get_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.ReceiptStore().Get(context.Background(), "UC-FFFFFFFF")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReceiptStore_List_MostRecentFirst(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	receipts := store.ReceiptStore()
	ctx := context.Background()

	base := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, receipts.Save(ctx, domain.Receipt{Reference: "UC-00000001", SubmittedAt: base}))
	require.NoError(t, receipts.Save(ctx, domain.Receipt{Reference: "UC-00000002", SubmittedAt: base.Add(500 * time.Millisecond)}))
	require.NoError(t, receipts.Save(ctx, domain.Receipt{Reference: "UC-00000003", SubmittedAt: base.Add(time.Second)}))

	list, err := receipts.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "UC-00000003", list[0].Reference)
	assert.Equal(t, "UC-00000002", list[1].Reference)
	assert.Equal(t, "UC-00000001", list[2].Reference)
}

func TestReceiptStore_List_Empty(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	list, err := store.ReceiptStore().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
