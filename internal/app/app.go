// Package app assembles the askdojo runtime from a loaded configuration.
package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/askdojo/askdojo/internal/config"
	"github.com/askdojo/askdojo/internal/db"
	"github.com/askdojo/askdojo/internal/logger"
	"github.com/askdojo/askdojo/internal/repository"
	"github.com/askdojo/askdojo/internal/responder"
	"github.com/askdojo/askdojo/internal/service"
)

// Components are the long-lived pieces one askdojo process uses.
type Components struct {
	Config config.Config
	Log    *logger.Logger
	Engine *responder.Engine
	Chat   service.ChatService

	db *sql.DB
}

// New wires logger, engine, transcript store, and chat service. Call Close
// when done.
func New(cfg config.Config) (*Components, error) {
	var logPaths []string
	if cfg.LogFile != "" {
		logPaths = append(logPaths, cfg.LogFile)
	}
	log, err := logger.New(cfg.LogMode, logPaths...)
	if err != nil {
		return nil, err
	}

	engine := responder.New(EngineOptions(cfg, log)...)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening transcript store: %w", err)
	}

	chat := service.NewChatService(
		repository.NewSQLiteChatSessionRepo(database),
		repository.NewSQLiteMessageRepo(database),
		db.NewSQLiteUnitOfWork(database),
		engine,
		service.NewLogUseCaseObserver(log),
	)

	log.Debug("components ready",
		"db_path", cfg.DBPath,
		"delay_enabled", cfg.DelayEnabled,
		"delay_min_ms", cfg.DelayMinMs,
		"delay_max_ms", cfg.DelayMaxMs,
	)

	return &Components{Config: cfg, Log: log, Engine: engine, Chat: chat, db: database}, nil
}

// EngineOptions translates configuration into responder options.
func EngineOptions(cfg config.Config, log *logger.Logger) []responder.Option {
	delay := responder.NoDelay()
	if cfg.DelayEnabled {
		delay = responder.UniformDelay(cfg.DelayMin(), cfg.DelayMax())
	}
	opts := []responder.Option{responder.WithDelay(delay)}
	if cfg.LogReplies && log != nil {
		opts = append(opts, responder.WithObserver(responder.NewLogObserver(log)))
	}
	return opts
}

// Close ends the chat session, closes the store, and flushes the logger.
func (c *Components) Close(ctx context.Context) error {
	var firstErr error
	if c.Chat != nil {
		if err := c.Chat.Close(ctx); err != nil {
			firstErr = err
		}
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing transcript store: %w", err)
		}
	}
	if c.Log != nil {
		c.Log.Sync()
	}
	return firstErr
}
