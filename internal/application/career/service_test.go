package career

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amankhan2005/DecoderHealth/internal/domain"
	"github.com/amankhan2005/DecoderHealth/internal/infrastructure/email"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func testConfig() Config {
	return Config{
		Brand:        "Autism ABA Partners",
		AdminEmail:   "admin@clinic.test",
		HRRecipients: []string{"hr1@clinic.test", "hr2@clinic.test"},
	}
}

func testSubmission() domain.Submission {
	return domain.Submission{
		FullName:   "Jane Doe",
		Email:      "jane@x.com",
		Phone:      "5551234567",
		City:       "Towson",
		State:      "MD",
		Zip:        "21286",
		Credential: "RBT",
		Interested: "Full-time",
	}
}

func writeTempResume(t *testing.T) domain.StoredFile {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stored-resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
	return domain.StoredFile{
		Path:         path,
		OriginalName: "jane-doe-resume.pdf",
		Filename:     "stored-resume.pdf",
	}
}

func TestDispatchSendsBothAndCleansUp(t *testing.T) {
	sender := email.NewFakeSender(zerolog.Nop())
	svc := NewWithClock(sender, testConfig(), fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}, zerolog.Nop())
	file := writeTempResume(t)

	svc.Dispatch(context.Background(), testSubmission(), file)

	sent := sender.Sent()
	require.Len(t, sent, 2)

	var admin, applicant *email.Message
	for i := range sent {
		if sent[i].Attachment != nil {
			admin = &sent[i]
		} else {
			applicant = &sent[i]
		}
	}
	require.NotNil(t, admin, "admin message carries the attachment")
	require.NotNil(t, applicant)

	assert.Equal(t, []string{"hr1@clinic.test", "hr2@clinic.test"}, admin.To)
	assert.Equal(t, []string{"admin@clinic.test"}, admin.Cc)
	assert.Equal(t, "New Application - Jane Doe", admin.Subject)
	assert.Equal(t, "jane-doe-resume.pdf", admin.Attachment.Filename)
	assert.Equal(t, file.Path, admin.Attachment.Path)
	assert.Contains(t, admin.HTML, "Jane Doe")
	assert.Contains(t, admin.HTML, "jane@x.com")
	assert.Contains(t, admin.HTML, "RBT")

	assert.Equal(t, []string{"jane@x.com"}, applicant.To)
	assert.Empty(t, applicant.Cc)
	assert.Equal(t, "We’ve received your application!", applicant.Subject)
	assert.Contains(t, applicant.HTML, "Thank You for Applying, Jane Doe")

	_, err := os.Stat(file.Path)
	assert.True(t, os.IsNotExist(err), "resume file must be deleted after both sends settled")
}

func TestDispatchOneFailureDoesNotAffectSibling(t *testing.T) {
	sender := email.NewFakeSender(zerolog.Nop())
	sender.FailSubjects = map[string]error{
		"New Application - Jane Doe": errors.New("smtp 451"),
	}
	svc := New(sender, testConfig(), zerolog.Nop())
	file := writeTempResume(t)

	svc.Dispatch(context.Background(), testSubmission(), file)

	// Both sends were attempted despite the admin copy failing.
	require.Len(t, sender.Sent(), 2)

	// Cleanup still ran exactly once.
	_, err := os.Stat(file.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestDispatchBothFailuresStillCleanUp(t *testing.T) {
	sender := email.NewFakeSender(zerolog.Nop())
	sender.FailSubjects = map[string]error{
		"New Application - Jane Doe":       errors.New("boom"),
		"We’ve received your application!": errors.New("boom"),
	}
	svc := New(sender, testConfig(), zerolog.Nop())
	file := writeTempResume(t)

	svc.Dispatch(context.Background(), testSubmission(), file)

	_, err := os.Stat(file.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestDispatchCleanupOnlyAfterBothSettled(t *testing.T) {
	sender := email.NewFakeSender(zerolog.Nop())
	sender.Gate = make(chan struct{})
	svc := New(sender, testConfig(), zerolog.Nop())
	file := writeTempResume(t)

	done := make(chan struct{})
	go func() {
		svc.Dispatch(context.Background(), testSubmission(), file)
		close(done)
	}()

	// Both sends are parked on the gate; the file must still be there.
	time.Sleep(20 * time.Millisecond)
	_, err := os.Stat(file.Path)
	require.NoError(t, err, "file must not be deleted before sends settle")

	sender.Gate <- struct{}{} // release first send

	time.Sleep(20 * time.Millisecond)
	_, err = os.Stat(file.Path)
	require.NoError(t, err, "file must not be deleted while one send is in flight")

	sender.Gate <- struct{}{} // release second send

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch did not finish")
	}

	_, err = os.Stat(file.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestDispatchToleratesMissingFile(t *testing.T) {
	sender := email.NewFakeSender(zerolog.Nop())
	svc := New(sender, testConfig(), zerolog.Nop())

	file := domain.StoredFile{
		Path:         filepath.Join(t.TempDir(), "already-gone.pdf"),
		OriginalName: "gone.pdf",
	}

	// Must not panic or error when the file was already reclaimed.
	svc.Dispatch(context.Background(), testSubmission(), file)
	require.Len(t, sender.Sent(), 2)
}

func TestDispatchAsyncWaitDrains(t *testing.T) {
	sender := email.NewFakeSender(zerolog.Nop())
	svc := New(sender, testConfig(), zerolog.Nop())
	file := writeTempResume(t)

	svc.DispatchAsync(testSubmission(), file)
	svc.Wait()

	assert.Len(t, sender.Sent(), 2)
	_, err := os.Stat(file.Path)
	assert.True(t, os.IsNotExist(err))
}
