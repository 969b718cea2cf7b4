package domain

// Step is a wizard position. The set is closed; switches over Step are exhaustive.
type Step int

// Wizard steps.
const (
	StepPersonalDetails Step = iota + 1
	StepContactInformation
	StepAdditionalInformation
	StepConfirmation
)

// TotalSteps is the number of wizard steps including confirmation.
const TotalSteps = int(StepConfirmation)

// AllSteps returns the steps in order.
func AllSteps() []Step {
	return []Step{
		StepPersonalDetails,
		StepContactInformation,
		StepAdditionalInformation,
		StepConfirmation,
	}
}

// IsValid returns true if the step is within [1, TotalSteps].
func (s Step) IsValid() bool {
	return s >= StepPersonalDetails && s <= StepConfirmation
}

// Int returns the 1-based step number.
func (s Step) Int() int {
	return int(s)
}

// String returns the machine name of the step.
func (s Step) String() string {
	switch s {
	case StepPersonalDetails:
		return "personal_details"
	case StepContactInformation:
		return "contact_information"
	case StepAdditionalInformation:
		return "additional_information"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// Title is the short label used by the progress indicator.
func (s Step) Title() string {
	switch s {
	case StepPersonalDetails:
		return "Personal"
	case StepContactInformation:
		return "Contact"
	case StepAdditionalInformation:
		return "Additional"
	case StepConfirmation:
		return "Confirmation"
	default:
		return ""
	}
}

// Heading is the page heading for the step.
func (s Step) Heading() string {
	switch s {
	case StepPersonalDetails:
		return "Personal Details"
	case StepContactInformation:
		return "Contact Information"
	case StepAdditionalInformation:
		return "Additional Information"
	case StepConfirmation:
		return "Universal Credit Application Submitted"
	default:
		return ""
	}
}

// Intro is the sentence shown under the heading.
func (s Step) Intro() string {
	switch s {
	case StepPersonalDetails:
		return "Please provide your basic personal information."
	case StepContactInformation:
		return "Please provide your contact details and address."
	case StepAdditionalInformation:
		return "Please provide some additional details about yourself."
	case StepConfirmation:
		return "Thank you for applying for Universal Credit. Here's a summary of your application:"
	default:
		return ""
	}
}

// IsDataEntry returns true for steps that collect form input.
func (s Step) IsDataEntry() bool {
	switch s {
	case StepPersonalDetails, StepContactInformation, StepAdditionalInformation:
		return true
	case StepConfirmation:
		return false
	default:
		return false
	}
}

// IsLastDataEntry returns true for the step whose "next" submits the application.
func (s Step) IsLastDataEntry() bool {
	return s == StepAdditionalInformation
}

// Fields returns the inputs rendered on the step, in display order.
func (s Step) Fields() []FieldSpec {
	switch s {
	case StepPersonalDetails:
		return []FieldSpec{
			{Field: FieldFirstName, Label: "First Name", Kind: InputText},
			{Field: FieldLastName, Label: "Last Name", Kind: InputText},
			{Field: FieldDateOfBirth, Label: "Date of Birth", Kind: InputDate},
			{Field: FieldNationalInsurance, Label: "National Insurance Number", Kind: InputText, Placeholder: "QQ 12 34 56 C"},
		}
	case StepContactInformation:
		return []FieldSpec{
			{Field: FieldEmail, Label: "Email Address", Kind: InputEmail},
			{Field: FieldPhone, Label: "Phone Number", Kind: InputTel},
			{Field: FieldAddress, Label: "Address", Kind: InputText},
			{Field: FieldCity, Label: "City", Kind: InputText},
			{Field: FieldPostcode, Label: "Postcode", Kind: InputText, Placeholder: "SW1A 1AA"},
		}
	case StepAdditionalInformation:
		return []FieldSpec{
			{Field: FieldEmploymentStatus, Label: "Employment Status", Kind: InputSelect, Options: EmploymentOptions()},
			{
				Field:       FieldAdditionalInfo,
				Label:       "Additional Information",
				Kind:        InputTextarea,
				Placeholder: "Please provide any additional information you think would be helpful...",
			},
		}
	case StepConfirmation:
		return nil
	default:
		return nil
	}
}

// PrimaryActionLabel is the text of the main button on the step.
func (s Step) PrimaryActionLabel() string {
	switch s {
	case StepPersonalDetails, StepContactInformation:
		return "Continue"
	case StepAdditionalInformation:
		return "Submit Universal Credit Application"
	case StepConfirmation:
		return "Back to Services"
	default:
		return "Continue"
	}
}

// ShowPrevious returns true when the step offers a "Previous" button.
func (s Step) ShowPrevious() bool {
	return s > StepPersonalDetails && s < StepConfirmation
}

// MarkerState is the progress indicator state of one step relative to the current step.
type MarkerState string

// Marker states.
const (
	MarkerCompleted MarkerState = "completed"
	MarkerCurrent   MarkerState = "current"
	MarkerUpcoming  MarkerState = "upcoming"
)

// ProgressMarker is one entry of the progress indicator.
type ProgressMarker struct {
	Step  Step
	Title string
	State MarkerState
}

// Progress returns the progress indicator markers for the given current step.
func Progress(current Step) []ProgressMarker {
	steps := AllSteps()
	markers := make([]ProgressMarker, 0, len(steps))
	for _, s := range steps {
		state := MarkerUpcoming
		switch {
		case s < current:
			state = MarkerCompleted
		case s == current:
			state = MarkerCurrent
		}
		markers = append(markers, ProgressMarker{Step: s, Title: s.Title(), State: state})
	}
	return markers
}
