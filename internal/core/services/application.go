package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driven"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driving"
	"github.com/custodia-labs/benefits-portal/internal/logger"
	"github.com/custodia-labs/benefits-portal/internal/metrics"
)

// Ensure ApplicationService implements the interface.
var _ driving.ApplicationService = (*ApplicationService)(nil)

// ApplicationService runs application wizards over a session store.
type ApplicationService struct {
	catalog   driving.CatalogService
	sessions  driven.SessionStore
	receipts  driven.ReceiptStore
	validator driven.StepValidator
	now       func() time.Time
	locks     sessionLocks
}

// NewApplicationService creates a new application service.
// The receipt store may be nil, in which case submissions are not recorded.
func NewApplicationService(
	catalog driving.CatalogService,
	sessions driven.SessionStore,
	receipts driven.ReceiptStore,
) *ApplicationService {
	return &ApplicationService{
		catalog:   catalog,
		sessions:  sessions,
		receipts:  receipts,
		validator: NoopValidator{},
		now:       time.Now,
	}
}

// SetValidator replaces the step validator. Nil restores the default.
func (s *ApplicationService) SetValidator(v driven.StepValidator) {
	if v == nil {
		v = NoopValidator{}
	}
	s.validator = v
}

// Start opens a new session for an available service.
func (s *ApplicationService) Start(ctx context.Context, serviceID string) (*domain.Session, error) {
	svc, err := s.catalog.Get(serviceID)
	if err != nil {
		return nil, err
	}
	if !svc.Available {
		return nil, fmt.Errorf("start %q: %w", serviceID, domain.ErrServiceUnavailable)
	}

	session := domain.NewSession(svc.ID, s.now())
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	metrics.ApplicationsStarted.WithLabelValues(svc.ID).Inc()
	logger.Debug("application started service=%s session=%s", svc.ID, session.ID)
	return &session, nil
}

// Get returns the current state of a session.
func (s *ApplicationService) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// UpdateField records one form input and clears its error.
func (s *ApplicationService) UpdateField(
	ctx context.Context,
	sessionID string,
	field domain.Field,
	value string,
) (*domain.Session, error) {
	defer s.locks.lock(sessionID)()

	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, domain.ErrAlreadySubmitted
	}

	updated, err := domain.ApplyInputChange(*session, field, value)
	if err != nil {
		return nil, fmt.Errorf("update field %q: %w", field, err)
	}
	return s.save(ctx, updated)
}

// Next validates the current step and advances. Leaving the last data
// entry step submits the application and assigns its reference.
func (s *ApplicationService) Next(ctx context.Context, sessionID string) (*domain.Session, error) {
	defer s.locks.lock(sessionID)()

	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	from := session.Step
	next := domain.AdvanceStep(*session, s.validator.Validate)
	metrics.StepTransitions.WithLabelValues("next", from.String()).Inc()

	if next.Submitted && !session.Submitted {
		next.Reference = domain.NewReference()
		s.recordReceipt(ctx, next)
	}
	return s.save(ctx, next)
}

// Previous goes back one step.
func (s *ApplicationService) Previous(ctx context.Context, sessionID string) (*domain.Session, error) {
	defer s.locks.lock(sessionID)()

	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	metrics.StepTransitions.WithLabelValues("previous", session.Step.String()).Inc()
	return s.save(ctx, domain.RetreatStep(*session))
}

// Exit abandons the session. The form data is discarded with it.
// Exiting an unknown session is not an error.
func (s *ApplicationService) Exit(ctx context.Context, sessionID string) error {
	defer s.locks.lock(sessionID)()

	session, err := s.sessions.Get(ctx, sessionID)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("get session: %w", err)
	}

	metrics.StepTransitions.WithLabelValues("exit", session.Step.String()).Inc()
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Receipts lists recorded submissions.
func (s *ApplicationService) Receipts(ctx context.Context) ([]domain.Receipt, error) {
	if s.receipts == nil {
		return []domain.Receipt{}, nil
	}
	receipts, err := s.receipts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	return receipts, nil
}

func (s *ApplicationService) save(ctx context.Context, session domain.Session) (*domain.Session, error) {
	session.UpdatedAt = s.now()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &session, nil
}

// recordReceipt stores the submission receipt. Failures are logged and
// counted; the applicant still sees the confirmation.
func (s *ApplicationService) recordReceipt(ctx context.Context, session domain.Session) {
	metrics.ApplicationsSubmitted.WithLabelValues(session.ServiceID).Inc()

	if s.receipts == nil {
		return
	}
	receipt := domain.Receipt{
		Reference:   session.Reference,
		ServiceID:   session.ServiceID,
		SubmittedAt: s.now(),
	}
	if err := s.receipts.Save(ctx, receipt); err != nil {
		metrics.ReceiptFailures.Inc()
		logger.L().Error("record receipt",
			zap.String("reference", receipt.Reference),
			zap.Error(err),
		)
		return
	}
	logger.L().Info("application submitted",
		zap.String("service", receipt.ServiceID),
		zap.String("reference", receipt.Reference),
	)
}
