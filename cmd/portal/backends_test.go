package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/benefits-portal/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driven/storage/redis"
	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

func TestOpenBackends_Defaults(t *testing.T) {
	settings := domain.DefaultAppSettings()

	b, err := openBackends(context.Background(), &settings, "")
	require.NoError(t, err)
	defer b.Close()

	assert.IsType(t, &memory.SessionStore{}, b.Sessions)
	assert.IsType(t, &memory.ReceiptStore{}, b.Receipts)
	assert.NoError(t, b.Close())
}

func TestOpenBackends_RedisAndSQLite(t *testing.T) {
	mr := miniredis.RunT(t)
	settings := domain.DefaultAppSettings()
	settings.Session.Backend = domain.SessionBackendRedis
	settings.Redis.Address = mr.Addr()
	settings.Receipts.Backend = domain.ReceiptBackendSQLite

	b, err := openBackends(context.Background(), &settings, t.TempDir())
	require.NoError(t, err)

	assert.IsType(t, &redis.SessionStore{}, b.Sessions)

	ctx := context.Background()
	session := domain.NewSession(domain.UniversalCreditID, time.Now())
	require.NoError(t, b.Sessions.Save(ctx, session))
	got, err := b.Sessions.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	receipt := domain.Receipt{Reference: "UC-TEST", ServiceID: domain.UniversalCreditID, SubmittedAt: time.Now().UTC()}
	require.NoError(t, b.Receipts.Save(ctx, receipt))
	receipts, err := b.Receipts.List(ctx)
	require.NoError(t, err)
	assert.Len(t, receipts, 1)

	assert.NoError(t, b.Close())
}

func TestOpenBackends_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	settings := domain.DefaultAppSettings()
	settings.Session.Backend = domain.SessionBackendRedis
	settings.Redis.Address = addr

	_, err := openBackends(context.Background(), &settings, "")

	assert.ErrorContains(t, err, "redis ping failed")
}

func TestApplicationsOpener_DefersConnecting(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	settings := domain.DefaultAppSettings()
	settings.Session.Backend = domain.SessionBackendRedis
	settings.Redis.Address = addr

	open := applicationsOpener(nil, &settings, "")
	require.NotNil(t, open)

	_, _, err := open(context.Background())
	assert.ErrorContains(t, err, "redis ping failed")
}

func TestApplicationsOpener_ReturnsServiceAndCloser(t *testing.T) {
	settings := domain.DefaultAppSettings()

	apps, closer, err := applicationsOpener(nil, &settings, "")(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, apps)
	assert.NoError(t, closer.Close())
}
