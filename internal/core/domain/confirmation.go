package domain

import "strings"

// SummaryItem is one labelled row of the confirmation summary.
type SummaryItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summary returns the rows shown on the confirmation page.
func (f ApplicationForm) Summary() []SummaryItem {
	return []SummaryItem{
		{Label: "Name", Value: f.FullName()},
		{Label: "Date of Birth", Value: f.FormattedDateOfBirth()},
		{Label: "National Insurance Number", Value: f.NationalInsurance},
		{Label: "Email", Value: f.Email},
		{Label: "Phone", Value: f.Phone},
		{Label: "Address", Value: f.FullAddress()},
		{Label: "Employment Status", Value: f.EmploymentLabel()},
	}
}

// FullAddress joins the non-empty address parts with commas.
func (f ApplicationForm) FullAddress() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{f.Address, f.City, f.Postcode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// NextSteps lists what happens after an application is submitted.
func NextSteps() []string {
	return []string{
		"We'll review your application within 5 working days",
		"You'll receive an email confirmation with your application reference",
		"We may contact you if we need more information or to arrange an interview",
		"You'll be notified of the decision by email and post",
	}
}
