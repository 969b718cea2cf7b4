package services

import (
	"github.com/custodia-labs/benefits-portal/internal/core/domain"
	"github.com/custodia-labs/benefits-portal/internal/core/ports/driven"
)

// Ensure NoopValidator implements the interface.
var _ driven.StepValidator = NoopValidator{}

// NoopValidator accepts every step. It is the default policy: the wizard
// collects free text and does not check it.
type NoopValidator struct{}

// Validate always returns an empty error map.
func (NoopValidator) Validate(domain.Step, domain.ApplicationForm) domain.FieldErrors {
	return domain.FieldErrors{}
}
