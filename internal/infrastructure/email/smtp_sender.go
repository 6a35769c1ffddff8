package email

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
)

// SMTPSender delivers messages over SMTP. One client per send; connection
// reuse and pipelining are left to go-mail.
type SMTPSender struct {
	lg zerolog.Logger

	host     string
	port     int
	user     string
	pass     string
	from     string
	fromName string
	insecure bool

	timeout time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	Timeout  time.Duration
	Insecure bool
}

func NewSMTPSender(cfg SMTPConfig, lg zerolog.Logger) *SMTPSender {
	return &SMTPSender{
		lg:       lg.With().Str("component", "smtp_sender").Logger(),
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.Username,
		pass:     cfg.Password,
		from:     cfg.From,
		fromName: cfg.FromName,
		insecure: cfg.Insecure,
		timeout:  cfg.Timeout,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	m := mail.NewMsg()
	if err := m.FromFormat(s.fromName, s.from); err != nil {
		return NewSendError("invalid from address: " + err.Error())
	}
	if err := m.To(msg.To...); err != nil {
		return NewSendError("invalid to address: " + err.Error())
	}
	if len(msg.Cc) > 0 {
		if err := m.Cc(msg.Cc...); err != nil {
			return NewSendError("invalid cc address: " + err.Error())
		}
	}
	m.Subject(msg.Subject)

	// Text fallback + HTML alternative
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}
	if msg.Attachment != nil {
		m.AttachFile(msg.Attachment.Path, mail.WithFileName(msg.Attachment.Filename))
	}

	tlsPolicy := mail.TLSMandatory
	if s.insecure {
		tlsPolicy = mail.TLSOpportunistic
	}

	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithTLSPolicy(tlsPolicy),
	}
	if s.user != "" {
		opts = append(opts, mail.WithSMTPAuth(mail.SMTPAuthPlain), mail.WithUsername(s.user), mail.WithPassword(s.pass))
	}

	c, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return NewSendError("smtp client init failed: " + err.Error())
	}

	s.lg.Info().Str("host", s.host).Int("port", s.port).Strs("to", msg.To).Str("subject", msg.Subject).Msg("attempting smtp send")
	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		s.lg.Error().Err(err).Strs("to", msg.To).Msg("smtp send failed")
		return NewSendError("smtp send failed: " + err.Error())
	}

	s.lg.Info().Strs("to", msg.To).Msg("smtp send ok")
	return nil
}
