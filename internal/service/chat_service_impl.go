package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/askdojo/askdojo/internal/db"
	"github.com/askdojo/askdojo/internal/domain"
	"github.com/askdojo/askdojo/internal/repository"
	"github.com/google/uuid"
)

type chatService struct {
	sessions repository.ChatSessionRepo
	messages repository.MessageRepo
	uow      db.UnitOfWork
	engine   Responder
	observer UseCaseObserver
	now      func() time.Time

	mu      sync.Mutex
	session *domain.ChatSession
	welcome *domain.Message
}

func NewChatService(
	sessions repository.ChatSessionRepo,
	messages repository.MessageRepo,
	uow db.UnitOfWork,
	engine Responder,
	observers ...UseCaseObserver,
) ChatService {
	return &chatService{
		sessions: sessions,
		messages: messages,
		uow:      uow,
		engine:   engine,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start opens the session and stores the welcome line. Later calls return
// the same welcome message.
func (s *chatService) Start(ctx context.Context) (*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startLocked(ctx)
}

func (s *chatService) startLocked(ctx context.Context) (*domain.Message, error) {
	if s.welcome != nil {
		return s.welcome, nil
	}

	sess := &domain.ChatSession{ID: uuid.New().String(), StartedAt: s.now()}
	welcome := s.newMessage(sess.ID, domain.SenderBot, WelcomeMessage)

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteChatSessionRepo(tx).Create(ctx, sess); err != nil {
			return err
		}
		return repository.NewSQLiteMessageRepo(tx).Create(ctx, welcome)
	})
	if err != nil {
		return nil, fmt.Errorf("starting chat session: %w", err)
	}

	s.session = sess
	s.welcome = welcome
	return welcome, nil
}

// Send asks the engine, then records the user's turn and the reply together
// in one transaction. Blank text is rejected before anything is stored. An
// engine failure is not an error for the caller: the reply becomes
// ApologyMessage.
func (s *chatService) Send(ctx context.Context, text string) (msg *domain.Message, err error) {
	started := time.Now()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "chat.send",
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
			StartedAt: started,
		})
	}()

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	sessionID, err := s.sessionID(ctx)
	if err != nil {
		return nil, err
	}

	userMsg := s.newMessage(sessionID, domain.SenderUser, text)
	botMsg := s.newMessage(sessionID, domain.SenderBot, ApologyMessage)
	reply, respErr := s.engine.Respond(ctx, text)
	if respErr != nil {
		fields["apology"] = true
		fields["cause"] = respErr.Error()
	} else {
		botMsg.Text = reply.Text
		botMsg.Topic = string(reply.Match.Key())
		botMsg.Keyword = reply.Match.Keyword
		fields["topic"] = botMsg.Topic
	}
	botMsg.CreatedAt = s.now()

	// The caller's context may already be done when the engine gave up.
	err = s.uow.WithinTx(context.WithoutCancel(ctx), func(ctx context.Context, tx db.DBTX) error {
		msgs := repository.NewSQLiteMessageRepo(tx)
		if err := msgs.Create(ctx, userMsg); err != nil {
			return fmt.Errorf("storing user message: %w", err)
		}
		if err := msgs.Create(ctx, botMsg); err != nil {
			return fmt.Errorf("storing bot message: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return botMsg, nil
}

// Transcript lists the session's messages oldest first. Before Start it is
// empty.
func (s *chatService) Transcript(ctx context.Context) ([]*domain.Message, error) {
	s.mu.Lock()
	sess := s.session
	s.mu.Unlock()
	if sess == nil {
		return nil, nil
	}
	return s.messages.ListBySession(ctx, sess.ID)
}

// Reset clears the conversation and stores a fresh welcome line.
func (s *chatService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		_, err := s.startLocked(ctx)
		return err
	}

	welcome := s.newMessage(s.session.ID, domain.SenderBot, WelcomeMessage)
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		msgs := repository.NewSQLiteMessageRepo(tx)
		if err := msgs.DeleteBySession(ctx, s.session.ID); err != nil {
			return err
		}
		return msgs.Create(ctx, welcome)
	})
	if err != nil {
		return fmt.Errorf("resetting chat session: %w", err)
	}
	s.welcome = welcome
	return nil
}

// Close deletes the session and its messages so nothing outlives the
// conversation, even when the store is file-backed.
func (s *chatService) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, s.session.ID); err != nil {
		return fmt.Errorf("closing chat session: %w", err)
	}
	s.session = nil
	s.welcome = nil
	return nil
}

func (s *chatService) sessionID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.startLocked(ctx); err != nil {
		return "", err
	}
	return s.session.ID, nil
}

func (s *chatService) newMessage(sessionID string, sender domain.Sender, text string) *domain.Message {
	return &domain.Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Sender:    sender,
		Text:      text,
		CreatedAt: s.now(),
	}
}
