package intake

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/brightcoat/showcase/internal/domain"
)

// Submission source discriminators, matching the values the forms send.
const (
	SourceProjectEnquiry = "Project Enquiry"
	SourceContactForm    = "Contact Form"
)

// ValidationError identifies the first failing field of a submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var nonDigits = regexp.MustCompile(`\D`)

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// Submission is a validated enquiry variant. Each kind carries its own
// required fields and knows how to build the Lead it records.
type Submission interface {
	// Validate returns the first failing field, or nil.
	Validate() *ValidationError
	// Lead builds the record to append; id assignment is left to the store.
	Lead(now time.Time) domain.Lead
}

type enquiryBase struct {
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
	Phone string `mapstructure:"phone"`
}

func (b *enquiryBase) validateBase() *ValidationError {
	if strings.TrimSpace(b.Name) == "" {
		return invalid("name", "Name is required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(b.Email)) {
		return invalid("email", "Invalid email format")
	}
	if len(NormalizePhone(b.Phone)) != 10 {
		return invalid("phone", "Invalid phone number format")
	}
	return nil
}

func (b *enquiryBase) lead(now time.Time) domain.Lead {
	return domain.Lead{
		Name:   strings.TrimSpace(b.Name),
		Email:  strings.TrimSpace(b.Email),
		Phone:  NormalizePhone(b.Phone),
		Date:   now,
		Status: domain.LeadStatusNew,
	}
}

// ProjectEnquiry is sent from a project detail page and must name the
// project it refers to.
type ProjectEnquiry struct {
	enquiryBase  `mapstructure:",squash"`
	ProjectID    string `mapstructure:"projectId"`
	ProjectTitle string `mapstructure:"projectTitle"`
}

func (s *ProjectEnquiry) Validate() *ValidationError {
	if err := s.validateBase(); err != nil {
		return err
	}
	if strings.TrimSpace(s.ProjectID) == "" || strings.TrimSpace(s.ProjectTitle) == "" {
		return invalid("projectId", "Project id and title are required")
	}
	return nil
}

func (s *ProjectEnquiry) Lead(now time.Time) domain.Lead {
	l := s.lead(now)
	l.PropertyInterest = strings.TrimSpace(s.ProjectTitle)
	l.Message = fmt.Sprintf("Project enquiry for %s [%s]", s.ProjectTitle, s.ProjectID)
	return l
}

// ContactForm is the general enquiry from the contact page.
type ContactForm struct {
	enquiryBase      `mapstructure:",squash"`
	PropertyInterest string `mapstructure:"propertyInterest"`
	Message          string `mapstructure:"message"`
}

func (s *ContactForm) Validate() *ValidationError {
	if err := s.validateBase(); err != nil {
		return err
	}
	if strings.TrimSpace(s.PropertyInterest) == "" {
		return invalid("propertyInterest", "Property interest is required")
	}
	if strings.TrimSpace(s.Message) == "" {
		return invalid("message", "Message is required")
	}
	return nil
}

func (s *ContactForm) Lead(now time.Time) domain.Lead {
	l := s.lead(now)
	l.PropertyInterest = strings.TrimSpace(s.PropertyInterest)
	l.Message = strings.TrimSpace(s.Message)
	return l
}

// ParseSubmission dispatches the loose JSON body on its source field and
// decodes it into the matching variant.
func ParseSubmission(body map[string]interface{}) (Submission, *ValidationError) {
	source, _ := body["source"].(string)
	var sub Submission
	switch source {
	case SourceProjectEnquiry:
		sub = &ProjectEnquiry{}
	case SourceContactForm:
		sub = &ContactForm{}
	default:
		return nil, invalid("source", "Unknown submission source")
	}
	if err := mapstructure.Decode(body, sub); err != nil {
		return nil, invalid("body", "Unable to parse submission")
	}
	return sub, nil
}
