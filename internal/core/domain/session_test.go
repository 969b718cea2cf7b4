package domain

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func failing(field Field, msg string) Validator {
	return func(Step, ApplicationForm) FieldErrors {
		return FieldErrors{field: msg}
	}
}

func noop(Step, ApplicationForm) FieldErrors {
	return FieldErrors{}
}

func TestNewSession(t *testing.T) {
	s := NewSession(UniversalCreditID, testNow)

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, UniversalCreditID, s.ServiceID)
	assert.Equal(t, StepPersonalDetails, s.Step)
	assert.False(t, s.Submitted)
	assert.True(t, s.Form.IsEmpty())
	assert.Empty(t, s.Errors)
	assert.Equal(t, testNow, s.CreatedAt)
	assert.True(t, s.ShowProgress())
}

func TestAdvanceStep(t *testing.T) {
	tests := []struct {
		name          string
		from          Step
		wantStep      Step
		wantSubmitted bool
	}{
		{"personal to contact", StepPersonalDetails, StepContactInformation, false},
		{"contact to additional", StepContactInformation, StepAdditionalInformation, false},
		{"additional submits", StepAdditionalInformation, StepConfirmation, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(UniversalCreditID, testNow)
			s.Step = tt.from
			s.Errors = FieldErrors{FieldEmail: "stale"}

			got := AdvanceStep(s, noop)
			assert.Equal(t, tt.wantStep, got.Step)
			assert.Equal(t, tt.wantSubmitted, got.Submitted)
			assert.Empty(t, got.Errors)
		})
	}
}

func TestAdvanceStep_FromConfirmationIsNoop(t *testing.T) {
	s := NewSession(UniversalCreditID, testNow)
	s.Step = StepConfirmation
	s.Submitted = true

	got := AdvanceStep(s, noop)
	assert.Equal(t, StepConfirmation, got.Step)
	assert.True(t, got.Submitted)
}

func TestAdvanceStep_ValidationErrorsBlock(t *testing.T) {
	s := NewSession(UniversalCreditID, testNow)

	got := AdvanceStep(s, failing(FieldFirstName, "Enter your first name"))
	assert.Equal(t, StepPersonalDetails, got.Step)
	assert.Equal(t, "Enter your first name", got.Errors[FieldFirstName])
	assert.Empty(t, s.Errors, "input must not be mutated")
}

func TestAdvanceStep_NilValidatorAdvances(t *testing.T) {
	got := AdvanceStep(NewSession(UniversalCreditID, testNow), nil)
	assert.Equal(t, StepContactInformation, got.Step)
}

// Three next operations from a fresh session always land on a submitted confirmation.
func TestAdvanceStep_ThreeTimesSubmits(t *testing.T) {
	s := NewSession(UniversalCreditID, testNow)
	for i := 0; i < 3; i++ {
		s = AdvanceStep(s, noop)
	}
	assert.Equal(t, StepConfirmation, s.Step)
	assert.True(t, s.Submitted)
	assert.False(t, s.ShowProgress())
}

func TestRetreatStep(t *testing.T) {
	tests := []struct {
		from Step
		want Step
	}{
		{StepPersonalDetails, StepPersonalDetails},
		{StepContactInformation, StepPersonalDetails},
		{StepAdditionalInformation, StepContactInformation},
		{StepConfirmation, StepConfirmation},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			s := NewSession(UniversalCreditID, testNow)
			s.Step = tt.from
			s.Errors = FieldErrors{FieldCity: "Enter your city"}

			got := RetreatStep(s)
			assert.Equal(t, tt.want, got.Step)
			if tt.from == StepContactInformation || tt.from == StepAdditionalInformation {
				assert.Empty(t, got.Errors)
			}
			assert.Len(t, s.Errors, 1, "input must not be mutated")
		})
	}
}

func TestApplyInputChange(t *testing.T) {
	s := NewSession(UniversalCreditID, testNow)
	s.Errors = FieldErrors{FieldEmail: "Enter an email", FieldPhone: "Enter a phone"}

	got, err := ApplyInputChange(s, FieldEmail, "jo@example.com")
	require.NoError(t, err)

	assert.Equal(t, "jo@example.com", got.Form.Email)
	_, hasEmail := got.Errors[FieldEmail]
	assert.False(t, hasEmail)
	assert.Equal(t, "Enter a phone", got.Errors[FieldPhone])

	assert.Empty(t, s.Form.Email, "input must not be mutated")
	assert.Len(t, s.Errors, 2)
}

func TestApplyInputChange_LeavesOtherFieldsUnchanged(t *testing.T) {
	s := NewSession(UniversalCreditID, testNow)
	s.Form = ApplicationForm{
		FirstName:         "Jo",
		LastName:          "Bloggs",
		DateOfBirth:       "1990-05-17",
		NationalInsurance: "QQ123456C",
		Email:             "old@example.com",
		Phone:             "07700 900000",
		Address:           "1 High Street",
		City:              "London",
		Postcode:          "SW1A 1AA",
		EmploymentStatus:  "student",
		AdditionalInfo:    "None",
	}
	before := s.Form

	got, err := ApplyInputChange(s, FieldEmail, "a@b.com")
	require.NoError(t, err)

	for _, field := range AllFields() {
		value, err := got.Form.Get(field)
		require.NoError(t, err)
		if field == FieldEmail {
			assert.Equal(t, "a@b.com", value)
			continue
		}
		want, err := before.Get(field)
		require.NoError(t, err)
		assert.Equal(t, want, value, "field %s changed", field)
	}
	assert.Equal(t, before, s.Form, "input must not be mutated")
}

func TestApplyInputChange_StoresValueVerbatim(t *testing.T) {
	s := NewSession(UniversalCreditID, testNow)
	got, err := ApplyInputChange(s, FieldNationalInsurance, "  qq123456c ")
	require.NoError(t, err)
	assert.Equal(t, "  qq123456c ", got.Form.NationalInsurance)
}

func TestApplyInputChange_UnknownField(t *testing.T) {
	s := NewSession(UniversalCreditID, testNow)
	_, err := ApplyInputChange(s, Field("nickname"), "Jo")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestResetSession(t *testing.T) {
	s := NewSession(UniversalCreditID, testNow)
	s, err := ApplyInputChange(s, FieldFirstName, "Jo")
	require.NoError(t, err)
	s = AdvanceStep(AdvanceStep(AdvanceStep(s, noop), noop), noop)
	s.Reference = "UC-0000ABCD"

	got := ResetSession(s)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, StepPersonalDetails, got.Step)
	assert.False(t, got.Submitted)
	assert.True(t, got.Form.IsEmpty())
	assert.Empty(t, got.Errors)
	assert.Empty(t, got.ServiceID)
	assert.Empty(t, got.Reference)
}

func TestSession_JSONRoundTrip(t *testing.T) {
	s := NewSession(UniversalCreditID, testNow)
	s, err := ApplyInputChange(s, FieldPostcode, "SW1A 1AA")
	require.NoError(t, err)
	s.Errors = FieldErrors{FieldCity: "Enter your city"}

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"postcode":"SW1A 1AA"`)

	var decoded Session
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s, decoded)
}

func TestNewReference(t *testing.T) {
	pattern := regexp.MustCompile(`^UC-[0-9A-F]{8}$`)
	a := NewReference()
	b := NewReference()
	assert.Regexp(t, pattern, a)
	assert.Regexp(t, pattern, b)
	assert.NotEqual(t, a, b)
}
