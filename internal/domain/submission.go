package domain

import (
	"regexp"
	"strings"
)

// Submission is a career-application payload. It is never persisted: the
// only artifact that outlives the request is the uploaded resume file,
// which is reclaimed once notification emails have settled.
type Submission struct {
	FullName   string
	Email      string
	Phone      string
	Zip        string
	City       string
	State      string
	Credential string
	Interested string
}

// StoredFile references an uploaded file already written to disk.
type StoredFile struct {
	Path         string // absolute or working-dir-relative path on disk
	OriginalName string // filename as sent by the client
	Filename     string // generated name under the upload dir
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{7,15}$`)
)

// Validate checks required fields and formats. Messages are part of the
// public API contract and surface verbatim in 400 responses.
func (s *Submission) Validate() error {
	fullName := strings.TrimSpace(s.FullName)
	email := strings.TrimSpace(s.Email)
	phone := strings.TrimSpace(s.Phone)

	if fullName == "" || email == "" || phone == "" {
		return ErrValidation("Full name, email, and phone are required.")
	}
	if !emailRe.MatchString(email) {
		return ErrValidation("Invalid email format.")
	}
	if !phoneRe.MatchString(phone) {
		return ErrValidation("Invalid phone number.")
	}
	return nil
}
