package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session is the full state of one application wizard. It is a plain value:
// it serialises to JSON and every transition below returns a new Session
// without touching its input.
type Session struct {
	ID        string          `json:"id"`
	ServiceID string          `json:"service_id,omitempty"`
	Step      Step            `json:"step"`
	Submitted bool            `json:"submitted"`
	Form      ApplicationForm `json:"form"`
	Errors    FieldErrors     `json:"errors,omitempty"`
	Reference string          `json:"reference,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewSession returns a fresh session on step one for the given service.
func NewSession(serviceID string, now time.Time) Session {
	return Session{
		ID:        uuid.New().String(),
		ServiceID: serviceID,
		Step:      StepPersonalDetails,
		Errors:    FieldErrors{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ShowProgress returns true while the progress indicator is visible.
func (s Session) ShowProgress() bool {
	return !s.Submitted
}

// Validator checks the fields of one step and returns per-field messages.
type Validator func(step Step, form ApplicationForm) FieldErrors

// clone copies the session including its error map.
func (s Session) clone() Session {
	out := s
	out.Errors = s.Errors.Clone()
	return out
}

// ApplyInputChange overwrites one field and drops any error recorded against it.
func ApplyInputChange(s Session, field Field, value string) (Session, error) {
	form, err := s.Form.With(field, value)
	if err != nil {
		return s, err
	}
	out := s.clone()
	out.Form = form
	delete(out.Errors, field)
	return out, nil
}

// AdvanceStep validates the current step and moves forward. A validator
// reporting errors keeps the session on the same step with those errors.
// Leaving the last data entry step marks the session submitted.
// Advancing from confirmation is a no-op.
func AdvanceStep(s Session, validate Validator) Session {
	out := s.clone()
	switch s.Step {
	case StepPersonalDetails, StepContactInformation, StepAdditionalInformation:
		if validate != nil {
			if errs := validate(s.Step, s.Form); errs.HasErrors() {
				out.Errors = errs.Clone()
				return out
			}
		}
		out.Errors = FieldErrors{}
		if s.Step.IsLastDataEntry() {
			out.Submitted = true
			out.Step = StepConfirmation
			return out
		}
		out.Step = s.Step + 1
		return out
	case StepConfirmation:
		return out
	default:
		return out
	}
}

// RetreatStep moves back one data entry step and clears errors.
// It is a no-op on the first step and on confirmation.
func RetreatStep(s Session) Session {
	out := s.clone()
	switch s.Step {
	case StepContactInformation, StepAdditionalInformation:
		out.Step = s.Step - 1
		out.Errors = FieldErrors{}
		return out
	case StepPersonalDetails, StepConfirmation:
		return out
	default:
		return out
	}
}

// ResetSession returns the session to its initial state: first step,
// empty form, no errors, no selected service and no reference.
// The ID and creation time are kept.
func ResetSession(s Session) Session {
	return Session{
		ID:        s.ID,
		Step:      StepPersonalDetails,
		Errors:    FieldErrors{},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// NewReference generates an application reference like "UC-1A2B3C4D".
func NewReference() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "UC-" + strings.ToUpper(id[:8])
}
