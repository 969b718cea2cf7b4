package domain

import "time"

// Field names a value on the application form. Values match the HTML input names.
type Field string

// Application form fields.
const (
	FieldFirstName         Field = "firstName"
	FieldLastName          Field = "lastName"
	FieldDateOfBirth       Field = "dateOfBirth"
	FieldNationalInsurance Field = "nationalInsurance"
	FieldEmail             Field = "email"
	FieldPhone             Field = "phone"
	FieldAddress           Field = "address"
	FieldCity              Field = "city"
	FieldPostcode          Field = "postcode"
	FieldEmploymentStatus  Field = "employmentStatus"
	FieldAdditionalInfo    Field = "additionalInfo"
)

// AllFields returns every form field in wizard order.
func AllFields() []Field {
	return []Field{
		FieldFirstName,
		FieldLastName,
		FieldDateOfBirth,
		FieldNationalInsurance,
		FieldEmail,
		FieldPhone,
		FieldAddress,
		FieldCity,
		FieldPostcode,
		FieldEmploymentStatus,
		FieldAdditionalInfo,
	}
}

// IsValid returns true if the field belongs to the application form.
func (f Field) IsValid() bool {
	for _, known := range AllFields() {
		if f == known {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (f Field) String() string {
	return string(f)
}

// ApplicationForm holds the free-text values captured by the wizard.
// No value is coerced or masked; national insurance numbers and postcodes
// are accepted as typed.
type ApplicationForm struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	DateOfBirth       string `json:"dateOfBirth"`
	NationalInsurance string `json:"nationalInsurance"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	City              string `json:"city"`
	Postcode          string `json:"postcode"`
	EmploymentStatus  string `json:"employmentStatus"`
	AdditionalInfo    string `json:"additionalInfo"`
}

// ptr returns the address of the struct member backing a field.
func (f *ApplicationForm) ptr(field Field) *string {
	switch field {
	case FieldFirstName:
		return &f.FirstName
	case FieldLastName:
		return &f.LastName
	case FieldDateOfBirth:
		return &f.DateOfBirth
	case FieldNationalInsurance:
		return &f.NationalInsurance
	case FieldEmail:
		return &f.Email
	case FieldPhone:
		return &f.Phone
	case FieldAddress:
		return &f.Address
	case FieldCity:
		return &f.City
	case FieldPostcode:
		return &f.Postcode
	case FieldEmploymentStatus:
		return &f.EmploymentStatus
	case FieldAdditionalInfo:
		return &f.AdditionalInfo
	default:
		return nil
	}
}

// Get returns the value of a field. Unknown fields return ErrUnknownField.
func (f ApplicationForm) Get(field Field) (string, error) {
	p := f.ptr(field)
	if p == nil {
		return "", ErrUnknownField
	}
	return *p, nil
}

// With returns a copy of the form with one field overwritten.
func (f ApplicationForm) With(field Field, value string) (ApplicationForm, error) {
	p := f.ptr(field)
	if p == nil {
		return f, ErrUnknownField
	}
	*p = value
	return f, nil
}

// IsEmpty returns true if every field is blank.
func (f ApplicationForm) IsEmpty() bool {
	return f == ApplicationForm{}
}

// FullName joins first and last name the way the confirmation page shows it.
func (f ApplicationForm) FullName() string {
	switch {
	case f.FirstName == "":
		return f.LastName
	case f.LastName == "":
		return f.FirstName
	default:
		return f.FirstName + " " + f.LastName
	}
}

// FormattedDateOfBirth renders an ISO date (2006-01-02) as "2 January 2006".
// Values that are not ISO dates are returned unchanged; empty stays empty.
func (f ApplicationForm) FormattedDateOfBirth() string {
	if f.DateOfBirth == "" {
		return ""
	}
	t, err := time.Parse(time.DateOnly, f.DateOfBirth)
	if err != nil {
		return f.DateOfBirth
	}
	return t.Format("2 January 2006")
}

// EmploymentLabel returns the display label for the selected employment status.
func (f ApplicationForm) EmploymentLabel() string {
	return EmploymentStatusLabel(f.EmploymentStatus)
}

// FieldErrors maps a field to its validation message.
type FieldErrors map[Field]string

// Clone returns an independent copy. A nil map clones to an empty map.
func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// HasErrors returns true if at least one field has a message.
func (e FieldErrors) HasErrors() bool {
	for _, msg := range e {
		if msg != "" {
			return true
		}
	}
	return false
}

// Option is a value/label pair for select inputs.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// EmploymentOptions returns the employment status choices in display order.
func EmploymentOptions() []Option {
	return []Option{
		{Value: "employed", Label: "Employed"},
		{Value: "self-employed", Label: "Self-employed"},
		{Value: "unemployed", Label: "Unemployed"},
		{Value: "student", Label: "Student"},
		{Value: "retired", Label: "Retired"},
		{Value: "other", Label: "Other"},
	}
}

// EmploymentStatusLabel maps an option value to its label.
// Unknown values are returned verbatim.
func EmploymentStatusLabel(value string) string {
	for _, o := range EmploymentOptions() {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// InputKind selects how a field is rendered.
type InputKind string

// Input kinds.
const (
	InputText     InputKind = "text"
	InputDate     InputKind = "date"
	InputEmail    InputKind = "email"
	InputTel      InputKind = "tel"
	InputSelect   InputKind = "select"
	InputTextarea InputKind = "textarea"
)

// FieldSpec describes how one field is presented on its step.
type FieldSpec struct {
	Field       Field
	Label       string
	Kind        InputKind
	Placeholder string
	Options     []Option
}
