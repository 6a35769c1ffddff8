package career

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/amankhan2005/DecoderHealth/internal/domain"
	"github.com/amankhan2005/DecoderHealth/internal/infrastructure/email"
	"github.com/amankhan2005/DecoderHealth/internal/metrics"
)

// Sender delivers one notification message.
type Sender interface {
	Send(ctx context.Context, msg email.Message) error
}

type Clock interface{ Now() time.Time }

type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

type Config struct {
	Brand        string   // display name used in templates
	AdminEmail   string   // CC'd on the HR copy
	HRRecipients []string // primary recipients of the HR copy
}

// Service fans out the two career-application notifications and reclaims
// the uploaded resume once both sends have settled. Dispatches are detached
// from the request that scheduled them; the caller has already been
// answered by the time any mail I/O starts.
type Service struct {
	sender Sender
	cfg    Config
	clock  Clock
	lg     zerolog.Logger

	inflight sync.WaitGroup
}

func New(sender Sender, cfg Config, lg zerolog.Logger) *Service {
	return NewWithClock(sender, cfg, sysClock{}, lg)
}

func NewWithClock(sender Sender, cfg Config, clock Clock, lg zerolog.Logger) *Service {
	return &Service{
		sender: sender,
		cfg:    cfg,
		clock:  clock,
		lg:     lg.With().Str("component", "career_dispatch").Logger(),
	}
}

// DispatchAsync schedules Dispatch as a background unit of work. It returns
// immediately; the dispatch lifetime extends past the request that
// triggered it, so it runs on its own context.
func (s *Service) DispatchAsync(sub domain.Submission, file domain.StoredFile) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		s.Dispatch(context.Background(), sub, file)
	}()
}

// Wait blocks until every scheduled dispatch has finished. Used on
// shutdown to drain in-flight mail work.
func (s *Service) Wait() { s.inflight.Wait() }

// Dispatch sends the HR copy and the applicant acknowledgment concurrently,
// then deletes the stored resume exactly once after both have settled.
// Send failures are captured per message and never abort the sibling send
// or the cleanup.
func (s *Service) Dispatch(ctx context.Context, sub domain.Submission, file domain.StoredFile) {
	now := s.clock.Now()

	adminMsg, applicantMsg, err := s.buildMessages(sub, file, now)
	if err != nil {
		// Fixed templates; a render failure means a programming error.
		// Still fall through to cleanup so the file is not leaked.
		s.lg.Error().Err(err).Msg("building notification messages failed")
	} else {
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.send(ctx, "admin", adminMsg)
		}()
		go func() {
			defer wg.Done()
			s.send(ctx, "applicant", applicantMsg)
		}()
		wg.Wait()
	}

	s.cleanup(file)
}

func (s *Service) send(ctx context.Context, kind string, msg email.Message) {
	start := time.Now()
	if err := s.sender.Send(ctx, msg); err != nil {
		metrics.RecordEmailFailed(kind, time.Since(start))
		s.lg.Error().Err(err).Str("type", kind).Strs("to", msg.To).Msg("notification send failed")
		return
	}
	metrics.RecordEmailSent(kind, time.Since(start))
	s.lg.Info().Str("type", kind).Strs("to", msg.To).Msg("notification sent")
}

// cleanup deletes the stored resume if it still exists. Runs once per
// dispatch, strictly after both sends have settled. Deletion failure is
// terminal: logged, never retried.
func (s *Service) cleanup(file domain.StoredFile) {
	if file.Path == "" {
		return
	}
	if _, err := os.Stat(file.Path); err != nil {
		if os.IsNotExist(err) {
			s.lg.Debug().Str("path", file.Path).Msg("resume already gone, skipping cleanup")
			return
		}
		metrics.RecordCleanupFailed()
		s.lg.Error().Err(err).Str("path", file.Path).Msg("resume cleanup stat failed")
		return
	}
	if err := os.Remove(file.Path); err != nil {
		metrics.RecordCleanupFailed()
		s.lg.Error().Err(err).Str("path", file.Path).Msg("resume cleanup failed")
		return
	}
	s.lg.Info().Str("path", file.Path).Msg("deleted uploaded resume")
}

func (s *Service) buildMessages(sub domain.Submission, file domain.StoredFile, now time.Time) (email.Message, email.Message, error) {
	adminHTML, err := renderAdminHTML(s.cfg.Brand, sub, now)
	if err != nil {
		return email.Message{}, email.Message{}, err
	}
	applicantHTML, err := renderApplicantHTML(s.cfg.Brand, sub, now)
	if err != nil {
		return email.Message{}, email.Message{}, err
	}

	adminMsg := email.Message{
		To:      s.cfg.HRRecipients,
		Subject: fmt.Sprintf("New Application - %s", sub.FullName),
		Text:    fmt.Sprintf("New career application from %s <%s>, phone %s.", sub.FullName, sub.Email, sub.Phone),
		HTML:    adminHTML,
		Attachment: &email.Attachment{
			Path:     file.Path,
			Filename: file.OriginalName,
		},
	}
	if s.cfg.AdminEmail != "" {
		adminMsg.Cc = []string{s.cfg.AdminEmail}
	}

	applicantMsg := email.Message{
		To:      []string{sub.Email},
		Subject: "We’ve received your application!",
		Text:    fmt.Sprintf("Hi %s, we've received your application. Our HR team will be in touch.", sub.FullName),
		HTML:    applicantHTML,
	}

	return adminMsg, applicantMsg, nil
}
