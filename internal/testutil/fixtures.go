package testutil

import (
	"time"

	"github.com/askdojo/askdojo/internal/domain"
	"github.com/google/uuid"
)

func NewTestChatSession() *domain.ChatSession {
	return &domain.ChatSession{
		ID:        uuid.New().String(),
		StartedAt: time.Now().UTC(),
	}
}

type MessageOption func(*domain.Message)

func WithTopic(topic, keyword string) MessageOption {
	return func(m *domain.Message) {
		m.Topic = topic
		m.Keyword = keyword
	}
}

func WithCreatedAt(t time.Time) MessageOption {
	return func(m *domain.Message) {
		m.CreatedAt = t
	}
}

func NewTestMessage(sessionID string, sender domain.Sender, text string, opts ...MessageOption) *domain.Message {
	m := &domain.Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Sender:    sender,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
