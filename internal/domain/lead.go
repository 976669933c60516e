package domain

import "time"

// Lead status workflow values. The workflow is unidirectional by convention
// only; no transition order is enforced.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

var LeadStatuses = []string{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusConverted,
	LeadStatusLost,
}

// ValidLeadStatus reports whether s is one of the workflow statuses.
func ValidLeadStatus(s string) bool {
	for _, v := range LeadStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Lead is an enquiry captured from the public contact or project forms.
type Lead struct {
	ID               string    `json:"id" csv:"id"`
	Name             string    `json:"name" csv:"name"`
	Email            string    `json:"email" csv:"email"`
	Phone            string    `json:"phone" csv:"phone"`
	PropertyInterest string    `json:"propertyInterest" csv:"property_interest"`
	Message          string    `json:"message" csv:"message"`
	Date             time.Time `json:"date" csv:"date"`
	Status           string    `json:"status" csv:"status"`
}
