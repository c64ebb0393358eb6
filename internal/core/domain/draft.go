package domain

import "strings"

// DraftField is the text field a typed message goes into on step 2.
type DraftField string

const (
	FieldDescription DraftField = "description"
	FieldLocation    DraftField = "location"
)

// SubmitSteps is the number of steps in the submission wizard.
const SubmitSteps = 3

// SubmissionDraft is the in-progress grievance held by the wizard.
type SubmissionDraft struct {
	ImageURL    string
	Category    GrievanceCategory
	Description string
	Location    string
	IsAnonymous bool
}

// StepComplete reports whether step may move forward.
func (d SubmissionDraft) StepComplete(step int) bool {
	switch step {
	case 1:
		return d.ImageURL != ""
	case 2:
		return d.Category != "" &&
			strings.TrimSpace(d.Description) != "" &&
			strings.TrimSpace(d.Location) != ""
	case 3:
		return d.Category != ""
	default:
		return false
	}
}

// Submission converts the draft into submission input.
func (d SubmissionDraft) Submission() Submission {
	return Submission{
		Category:    d.Category,
		Description: d.Description,
		Location:    d.Location,
		ImageURL:    d.ImageURL,
		IsAnonymous: d.IsAnonymous,
	}
}
