package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/custodia-labs/benefits-portal/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driven/storage/redis"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/benefits-portal/internal/adapters/driving/cli"
	"github.com/custodia-labs/benefits-portal/internal/core/domain"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driven"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driving"
	"github.com/custodia-labs/benefits-portal/internal/core/services"
	"github.com/custodia-labs/benefits-portal/internal/logger"
)

// backends holds the stores selected by settings and what must be closed.
type backends struct {
	Sessions driven.SessionStore
	Receipts driven.ReceiptStore
	closers  []func() error
}

// Close releases every opened backend.
func (b *backends) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		errs = append(errs, b.closers[i]())
	}
	return errors.Join(errs...)
}

// openBackends builds the session and receipt stores named in settings.
// An empty dataDir puts the SQLite database under the user's home.
func openBackends(ctx context.Context, settings *domain.AppSettings, dataDir string) (*backends, error) {
	b := &backends{}
	ttl := time.Duration(settings.Session.TTLMinutes) * time.Minute

	switch settings.Session.Backend {
	case domain.SessionBackendRedis:
		client := redis.NewClient(redis.Options{Address: settings.Redis.Address, DB: settings.Redis.DB})
		store := redis.NewSessionStore(client, ttl)
		if err := store.Ping(ctx); err != nil {
			store.Close() //nolint:errcheck // already failing
			return nil, err
		}
		b.Sessions = store
		b.closers = append(b.closers, store.Close)
	default:
		b.Sessions = memory.NewSessionStore(ttl)
	}

	switch settings.Receipts.Backend {
	case domain.ReceiptBackendSQLite:
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			b.Close() //nolint:errcheck // already failing
			return nil, fmt.Errorf("open receipts: %w", err)
		}
		b.Receipts = store.ReceiptStore()
		b.closers = append(b.closers, store.Close)
	default:
		b.Receipts = memory.NewReceiptStore()
	}

	logger.Debug("backends sessions=%s receipts=%s", settings.Session.Backend, settings.Receipts.Backend)
	return b, nil
}

// applicationsOpener defers openBackends until a command needs sessions or
// receipts.
func applicationsOpener(catalog driving.CatalogService, settings *domain.AppSettings, dataDir string) cli.ApplicationsOpener {
	return func(ctx context.Context) (driving.ApplicationService, io.Closer, error) {
		b, err := openBackends(ctx, settings, dataDir)
		if err != nil {
			return nil, nil, err
		}
		return services.NewApplicationService(catalog, b.Sessions, b.Receipts), b, nil
	}
}
