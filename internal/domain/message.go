package domain

import (
	"fmt"
	"strings"
	"time"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Valid reports whether s is a known sender.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderBot
}

// ChatSession groups the messages of one conversation. It lives only as long
// as the process that opened it.
type ChatSession struct {
	ID        string
	StartedAt time.Time
}

// Message is one line of a chat transcript.
type Message struct {
	ID        string
	SessionID string
	Sender    Sender
	Text      string
	Topic     string // topic key that produced a bot reply; empty for user turns and the welcome line
	Keyword   string // trigger that selected Topic
	CreatedAt time.Time
}

// Validate checks the fields a transcript store requires.
func (m *Message) Validate() error {
	if m.SessionID == "" {
		return fmt.Errorf("message session ID is required")
	}
	if !m.Sender.Valid() {
		return fmt.Errorf("message sender %q must be %q or %q", m.Sender, SenderUser, SenderBot)
	}
	if strings.TrimSpace(m.Text) == "" {
		return fmt.Errorf("message text is required")
	}
	return nil
}

// IsUser reports whether the message was typed by the user.
func (m *Message) IsUser() bool {
	return m.Sender == SenderUser
}

// Clock returns the HH:MM local timestamp shown next to a message.
func (m *Message) Clock() string {
	return m.CreatedAt.Local().Format("15:04")
}
