package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/askdojo/askdojo/internal/db"
	"github.com/askdojo/askdojo/internal/domain"
)

// SQLiteChatSessionRepo implements ChatSessionRepo over any DBTX.
type SQLiteChatSessionRepo struct {
	db db.DBTX
}

func NewSQLiteChatSessionRepo(conn db.DBTX) *SQLiteChatSessionRepo {
	return &SQLiteChatSessionRepo{db: conn}
}

func (r *SQLiteChatSessionRepo) Create(ctx context.Context, s *domain.ChatSession) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO chat_sessions (id, started_at) VALUES (?, ?)`,
		s.ID, formatTime(s.StartedAt))
	if err != nil {
		return fmt.Errorf("inserting chat session: %w", err)
	}
	return nil
}

func (r *SQLiteChatSessionRepo) GetByID(ctx context.Context, id string) (*domain.ChatSession, error) {
	var s domain.ChatSession
	var startedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, started_at FROM chat_sessions WHERE id = ?`, id).Scan(&s.ID, &startedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("chat session %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning chat session: %w", err)
	}
	if s.StartedAt, err = parseTime("started_at", startedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes the session and, through the foreign key, its messages.
func (r *SQLiteChatSessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chat_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting chat session: %w", err)
	}
	return nil
}
