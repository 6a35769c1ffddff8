package email

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// FakeSender is a development/testing sender. It records every message and
// can be told to fail specific subjects, or to block until released so
// tests can observe the response-before-send ordering.
type FakeSender struct {
	lg zerolog.Logger

	mu   sync.Mutex
	sent []Message

	// FailSubjects maps subject -> error returned instead of sending.
	FailSubjects map[string]error

	// Gate, when non-nil, is received from before each send completes.
	Gate chan struct{}
}

func NewFakeSender(lg zerolog.Logger) *FakeSender {
	return &FakeSender{
		lg: lg.With().Str("component", "fake_sender").Logger(),
	}
}

func (s *FakeSender) Send(ctx context.Context, msg Message) error {
	if s.Gate != nil {
		select {
		case <-s.Gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.mu.Lock()
	s.sent = append(s.sent, msg)
	err := error(nil)
	if s.FailSubjects != nil {
		err = s.FailSubjects[msg.Subject]
	}
	s.mu.Unlock()

	if err != nil {
		s.lg.Info().Strs("to", msg.To).Str("subject", msg.Subject).Msg("FAKE send failed (as configured)")
		return err
	}
	s.lg.Info().Strs("to", msg.To).Str("subject", msg.Subject).Msg("FAKE send")
	return nil
}

// Sent returns a copy of everything sent so far.
func (s *FakeSender) Sent() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.sent))
	copy(out, s.sent)
	return out
}
