package cli

import (
	"errors"

	"github.com/askdojo/askdojo/internal/config"
	"github.com/askdojo/askdojo/internal/knowledge"
	"github.com/askdojo/askdojo/internal/logger"
	"github.com/askdojo/askdojo/internal/responder"
	"github.com/askdojo/askdojo/internal/service"
	"github.com/spf13/cobra"
)

var errNotConfigured = errors.New("askdojo is not configured")

// App holds what the commands talk to. Fields may be filled up front (tests)
// or by Configure once flags are parsed (the binary).
type App struct {
	Engine *responder.Engine
	Chat   service.ChatService
	Log    *logger.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means it is not.
	IsInteractive func() bool

	// Configure runs before every command with the loaded configuration.
	Configure func(cfg config.Config) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) catalog() *knowledge.Base {
	if a.Engine == nil {
		return knowledge.Default()
	}
	return a.Engine.Catalog()
}

func (a *App) log() *logger.Logger {
	if a.Log == nil {
		return logger.Nop()
	}
	return a.Log
}

// NewRootCmd creates the top-level "askdojo" command. Without a subcommand
// it opens the chat.
func NewRootCmd(app *App) *cobra.Command {
	chat := newChatCmd(app)

	root := &cobra.Command{
		Use:           "askdojo",
		Short:         "Ask@Dojo, the Tutorials Dojo course assistant",
		Long:          "Chat with Ask@Dojo about Tutorials Dojo certifications, prices, and courses.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Configure == nil {
				return nil
			}
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if app.interactive() {
				cfg = cfg.ForTerminal()
			}
			return app.Configure(cfg)
		},
		RunE: chat.RunE,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		chat,
		newAskCmd(app),
		newTopicsCmd(app),
		newCatalogCmd(app),
		newBrowseCmd(app),
	)

	return root
}
