package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusClosed    = "closed"
)

// Lead is a contact/inquiry submission from the public site.
type Lead struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Message    string
	Status     string
	LeadSource string
	CreatedAt  time.Time
}

func NewLead(name, email, phone, message, leadSource string, now time.Time) (*Lead, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	message = strings.TrimSpace(message)
	leadSource = strings.TrimSpace(leadSource)

	if name == "" {
		return nil, ErrValidation("name is required")
	}
	if email == "" || !emailRe.MatchString(email) {
		return nil, ErrValidation("a valid email is required")
	}
	if leadSource == "" {
		leadSource = "website"
	}

	return &Lead{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		Message:    message,
		Status:     LeadStatusNew,
		LeadSource: leadSource,
		CreatedAt:  now.UTC(),
	}, nil
}
