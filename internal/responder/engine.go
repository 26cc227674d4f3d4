package responder

import (
	"context"
	"time"

	"github.com/askdojo/askdojo/internal/knowledge"
)

// Reply is the engine's answer to one utterance.
type Reply struct {
	Text  string
	Match Match
	Delay time.Duration
}

// Engine classifies utterances and renders canned answers from the
// knowledge catalog. It holds no mutable state and is safe for concurrent
// use.
type Engine struct {
	kb       *knowledge.Base
	delay    Sampler
	observer Observer
	now      func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog replaces the compiled-in catalog.
func WithCatalog(kb *knowledge.Base) Option {
	return func(e *Engine) { e.kb = kb }
}

// WithDelay sets the thinking-time sampler. Pass NoDelay() in tests.
func WithDelay(s Sampler) Option {
	return func(e *Engine) { e.delay = s }
}

// WithObserver sets the reply observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithClock overrides the clock used for elapsed-time reporting.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine over the default catalog with the production
// thinking delay.
func New(opts ...Option) *Engine {
	e := &Engine{
		kb:       knowledge.Default(),
		delay:    UniformDelay(DefaultDelayMin, DefaultDelayMax),
		observer: NoopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.kb == nil {
		e.kb = knowledge.Default()
	}
	if e.delay == nil {
		e.delay = NoDelay()
	}
	if e.observer == nil {
		e.observer = NoopObserver{}
	}
	return e
}

// Catalog returns the knowledge catalog the engine answers from.
func (e *Engine) Catalog() *knowledge.Base {
	return e.kb
}

// Answer renders the answer for a topic key. Unknown keys get the
// fallback answer.
func (e *Engine) Answer(key TopicKey) string {
	p, ok := producers[key]
	if !ok {
		p = producers[TopicFallback]
	}
	return p(e.kb)
}

// Respond classifies the utterance, renders the answer, and waits out the
// thinking delay before returning it. Every utterance, including the empty
// string, gets a non-empty answer. The only error is ctx's, when the caller
// gives up during the delay.
func (e *Engine) Respond(ctx context.Context, utterance string) (*Reply, error) {
	start := e.now()
	m := Classify(utterance)
	reply := &Reply{
		Text:  e.Answer(m.Key()),
		Match: m,
		Delay: e.delay(),
	}

	event := ReplyEvent{Topic: m.Topic, Sub: m.Sub, Keyword: m.Keyword, Delay: reply.Delay}
	if err := sleep(ctx, reply.Delay); err != nil {
		event.Cancelled = true
		event.Elapsed = e.now().Sub(start)
		e.observer.OnReply(event)
		return nil, err
	}
	event.Elapsed = e.now().Sub(start)
	e.observer.OnReply(event)
	return reply, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
