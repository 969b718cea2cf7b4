package driven

import "github.com/custodia-labs/benefits-portal/internal/core/domain"

// StepValidator checks the fields shown on one wizard step.
type StepValidator interface {
	// Validate returns per-field messages. An empty map means the step passes.
	Validate(step domain.Step, form domain.ApplicationForm) domain.FieldErrors
}
