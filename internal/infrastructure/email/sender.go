package email

// Attachment references a file on disk to attach under a client-facing name.
type Attachment struct {
	Path     string
	Filename string
}

// Message is one outbound notification. HTML is the rendered body; Text is
// the plain fallback.
type Message struct {
	To         []string
	Cc         []string
	Subject    string
	Text       string
	HTML       string
	Attachment *Attachment
}

// SendError marks a transport-level delivery failure. Sends happen after
// the HTTP response has completed, so these are only ever logged.
type SendError struct{ msg string }

func (e SendError) Error() string { return e.msg }

func NewSendError(msg string) SendError { return SendError{msg: msg} }
