package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amankhan2005/DecoderHealth/internal/application/career"
	"github.com/amankhan2005/DecoderHealth/internal/infrastructure/email"
	"github.com/amankhan2005/DecoderHealth/internal/infrastructure/upload"
)

func validApplication() map[string]string {
	return map[string]string{
		"fullName":   "Jane Doe",
		"email":      "jane@example.com",
		"phone":      "5551234567",
		"zip":        "21204",
		"city":       "Towson",
		"state":      "MD",
		"credential": "RN",
		"interested": "Home care",
	}
}

// applyRequest builds a multipart POST /career/apply request. A resume part
// is attached when resumeName is non-empty.
func applyRequest(t *testing.T, fields map[string]string, resumeName string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if resumeName != "" {
		part, err := mw.CreateFormFile("resume", resumeName)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 test resume"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/career/apply", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newCareerFixture(t *testing.T) (*CareerHandler, *email.FakeSender, *career.Service, string) {
	t.Helper()

	dir := t.TempDir()
	sender := email.NewFakeSender(zerolog.Nop())
	dispatcher := career.New(sender, career.Config{
		Brand:        "Decoder Health",
		AdminEmail:   "admin@clinic.test",
		HRRecipients: []string{"hr@clinic.test"},
	}, zerolog.Nop())
	store := upload.NewStore(dir, 5<<20, zerolog.Nop())
	h := NewCareerHandler(dispatcher, store, zerolog.Nop())
	return h, sender, dispatcher, dir
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func storedResumes(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "resumes", "*"))
	require.NoError(t, err)
	return matches
}

func TestApplyValidationFailureHasNoSideEffects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]string)
		message string
	}{
		{
			"missing_name",
			func(f map[string]string) { f["fullName"] = "" },
			"Full name, email, and phone are required.",
		},
		{
			"bad_email",
			func(f map[string]string) { f["email"] = "not-an-email" },
			"Invalid email format.",
		},
		{
			"bad_phone",
			func(f map[string]string) { f["phone"] = "llll" },
			"Invalid phone number.",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, sender, _, dir := newCareerFixture(t)

			fields := validApplication()
			tc.mutate(fields)

			rec := httptest.NewRecorder()
			h.Apply(rec, applyRequest(t, fields, "resume.pdf"))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.message, decodeBody(t, rec)["message"])
			assert.Empty(t, sender.Sent(), "no mail on validation failure")
			assert.Empty(t, storedResumes(t, dir), "no file stored on validation failure")
		})
	}
}

func TestApplyMissingResume(t *testing.T) {
	h, sender, _, _ := newCareerFixture(t)

	rec := httptest.NewRecorder()
	h.Apply(rec, applyRequest(t, validApplication(), ""))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Resume file is required.", decodeBody(t, rec)["message"])
	assert.Empty(t, sender.Sent())
}

func TestApplyRejectsBadResumeType(t *testing.T) {
	h, sender, _, _ := newCareerFixture(t)

	rec := httptest.NewRecorder()
	h.Apply(rec, applyRequest(t, validApplication(), "resume.exe"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, sender.Sent())
}

func TestApplySuccessSendsBothAndReclaimsFile(t *testing.T) {
	h, sender, dispatcher, dir := newCareerFixture(t)

	rec := httptest.NewRecorder()
	h.Apply(rec, applyRequest(t, validApplication(), "resume.pdf"))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Application submitted successfully.", body["message"])

	dispatcher.Wait()

	sent := sender.Sent()
	require.Len(t, sent, 2)
	subjects := []string{sent[0].Subject, sent[1].Subject}
	assert.Contains(t, subjects, "New Application - Jane Doe")
	assert.Contains(t, subjects, "We’ve received your application!")

	for _, msg := range sent {
		if msg.Attachment != nil {
			assert.Equal(t, "resume.pdf", msg.Attachment.Filename)
		}
	}

	assert.Empty(t, storedResumes(t, dir), "resume reclaimed after both sends")
}

func TestApplyRespondsBeforeAnySend(t *testing.T) {
	h, sender, dispatcher, dir := newCareerFixture(t)
	sender.Gate = make(chan struct{})

	rec := httptest.NewRecorder()
	h.Apply(rec, applyRequest(t, validApplication(), "resume.pdf"))

	// The 200 is already written while both sends are still parked on the
	// gate, and the file still exists.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, sender.Sent())
	require.Len(t, storedResumes(t, dir), 1)
	_, err := os.Stat(storedResumes(t, dir)[0])
	assert.NoError(t, err)

	sender.Gate <- struct{}{}
	sender.Gate <- struct{}{}
	dispatcher.Wait()

	assert.Len(t, sender.Sent(), 2)
	assert.Empty(t, storedResumes(t, dir))
}

func TestApplySendFailureInvisibleToCaller(t *testing.T) {
	h, sender, dispatcher, dir := newCareerFixture(t)
	sender.FailSubjects = map[string]error{
		"New Application - Jane Doe": assert.AnError,
	}

	rec := httptest.NewRecorder()
	h.Apply(rec, applyRequest(t, validApplication(), "resume.pdf"))

	assert.Equal(t, http.StatusOK, rec.Code)

	dispatcher.Wait()
	assert.Len(t, sender.Sent(), 2)
	assert.Empty(t, storedResumes(t, dir), "cleanup still runs after a failed send")
}
