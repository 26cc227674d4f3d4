package service

import (
	"context"
	"errors"

	"github.com/askdojo/askdojo/internal/domain"
	"github.com/askdojo/askdojo/internal/responder"
)

// WelcomeMessage opens every chat session.
const WelcomeMessage = "Hello! I'm Ask@Dojo, your AI assistant for Tutorials Dojo. I can help you with information about AWS services, our courses, practice exams, and more. What would you like to know?"

// ApologyMessage replaces a reply that could not be produced.
const ApologyMessage = "I'm sorry, I encountered an error. Please try again."

// ErrEmptyMessage is returned by Send for blank input.
var ErrEmptyMessage = errors.New("message is empty")

// Responder produces the bot's answer to one utterance.
type Responder interface {
	Respond(ctx context.Context, utterance string) (*responder.Reply, error)
}

// ChatService owns one conversation: its welcome line, the user and bot
// turns, and the transcript that lives as long as the process.
type ChatService interface {
	Start(ctx context.Context) (*domain.Message, error)
	Send(ctx context.Context, text string) (*domain.Message, error)
	Transcript(ctx context.Context) ([]*domain.Message, error)
	Reset(ctx context.Context) error
	Close(ctx context.Context) error
}
