package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/askdojo/askdojo/internal/db"
	"github.com/askdojo/askdojo/internal/domain"
)

const messageColumns = `id, session_id, sender, text, topic, keyword, created_at`

// SQLiteMessageRepo implements MessageRepo over any DBTX.
type SQLiteMessageRepo struct {
	db db.DBTX
}

func NewSQLiteMessageRepo(conn db.DBTX) *SQLiteMessageRepo {
	return &SQLiteMessageRepo{db: conn}
}

func (r *SQLiteMessageRepo) Create(ctx context.Context, m *domain.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	query := `INSERT INTO messages (` + messageColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.SessionID,
		string(m.Sender),
		m.Text,
		m.Topic,
		m.Keyword,
		formatTime(m.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}
	return nil
}

func (r *SQLiteMessageRepo) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = ?`, id)
	m, err := scanMessage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("message %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

func (r *SQLiteMessageRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	defer rows.Close()

	var out []*domain.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating messages: %w", err)
	}
	return out, nil
}

func (r *SQLiteMessageRepo) CountBySession(ctx context.Context, sessionID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages WHERE session_id = ?`, sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting messages: %w", err)
	}
	return n, nil
}

func (r *SQLiteMessageRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("deleting messages: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanMessage returns sql.ErrNoRows unwrapped so GetByID can map it.
func scanMessage(row rowScanner) (*domain.Message, error) {
	var m domain.Message
	var sender, createdAt string
	err := row.Scan(&m.ID, &m.SessionID, &sender, &m.Text, &m.Topic, &m.Keyword, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning message: %w", err)
	}
	m.Sender = domain.Sender(sender)
	if m.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	return &m, nil
}
