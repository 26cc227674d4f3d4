package responder

import (
	"time"

	"github.com/askdojo/askdojo/internal/logger"
)

// ReplyEvent records metadata about a single Respond call.
type ReplyEvent struct {
	Topic     TopicKey
	Sub       TopicKey
	Keyword   string
	Delay     time.Duration
	Elapsed   time.Duration
	Cancelled bool
}

// Observer receives events about replies for logging and metrics.
type Observer interface {
	OnReply(event ReplyEvent)
}

// LogObserver writes reply events to a structured logger.
type LogObserver struct {
	log *logger.Logger
}

// NewLogObserver creates an Observer that logs events to l.
func NewLogObserver(l *logger.Logger) *LogObserver {
	return &LogObserver{log: l.With("component", "responder")}
}

func (o *LogObserver) OnReply(event ReplyEvent) {
	fields := []interface{}{
		"topic", string(event.Topic),
		"delay_ms", event.Delay.Milliseconds(),
		"elapsed_ms", event.Elapsed.Milliseconds(),
	}
	if event.Sub != "" {
		fields = append(fields, "sub", string(event.Sub))
	}
	if event.Keyword != "" {
		fields = append(fields, "keyword", event.Keyword)
	}
	if event.Cancelled {
		o.log.Warn("reply cancelled", fields...)
		return
	}
	o.log.Info("reply", fields...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnReply(ReplyEvent) {}
