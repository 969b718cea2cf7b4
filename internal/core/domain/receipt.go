package domain

import "time"

// Receipt records that an application was submitted. It carries no
// personal data from the form.
type Receipt struct {
	Reference   string    `json:"reference"`
	ServiceID   string    `json:"service_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// SubmissionDate formats the submission day as shown on the confirmation page.
func (r Receipt) SubmissionDate() string {
	return r.SubmittedAt.Format("2 January 2006")
}
