package repository

import (
	"context"
	"errors"

	"github.com/askdojo/askdojo/internal/domain"
)

// ErrNotFound is wrapped by lookups that match no row.
var ErrNotFound = errors.New("not found")

type ChatSessionRepo interface {
	Create(ctx context.Context, s *domain.ChatSession) error
	GetByID(ctx context.Context, id string) (*domain.ChatSession, error)
	Delete(ctx context.Context, id string) error
}

type MessageRepo interface {
	Create(ctx context.Context, m *domain.Message) error
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	// ListBySession returns the session's messages in insertion order.
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Message, error)
	CountBySession(ctx context.Context, sessionID string) (int, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}
