package sensor

import "strings"

const (
	// DefaultFrom is the sender address used when none is configured.
	DefaultFrom = "alert@me.com"
	// DefaultTo is the recipient address used when none is configured.
	DefaultTo = "receiver@you.com"
)

// Message is an email-shaped notification. It is built per send and never stored.
type Message struct {
	Subject string `json:"subject"`
	From    string `json:"from"`
	To      string `json:"to"`
	Body    string `json:"body"`
}

// NewMessage builds the message for sensor id. Empty from/to fall back to
// DefaultFrom / DefaultTo.
func NewMessage(id, body, from, to string) Message {
	if from == "" {
		from = DefaultFrom
	}
	if to == "" {
		to = DefaultTo
	}
	return Message{
		Subject: "Message from sensor: " + id,
		From:    from,
		To:      to,
		Body:    body,
	}
}

// String renders the message as header lines, a blank line and the body.
func (m Message) String() string {
	var b strings.Builder
	b.WriteString("Subject: ")
	b.WriteString(m.Subject)
	b.WriteString("\nFrom: ")
	b.WriteString(m.From)
	b.WriteString("\nTo: ")
	b.WriteString(m.To)
	b.WriteString("\n\n")
	b.WriteString(m.Body)
	b.WriteString("\n")
	return b.String()
}
