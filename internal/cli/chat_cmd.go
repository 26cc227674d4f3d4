package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/askdojo/askdojo/internal/cli/formatter"
	"github.com/askdojo/askdojo/internal/responder"
	"github.com/askdojo/askdojo/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start a conversation with Ask@Dojo",
		Long: "Start a conversation with Ask@Dojo. In a terminal this opens the chat window; " +
			"with piped input each line is one question.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Chat == nil {
				return errNotConfigured
			}
			if app.interactive() {
				return runChatProgram(cmd, app)
			}
			return runChatLoop(cmd.Context(), app.Chat, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runChatProgram(cmd *cobra.Command, app *App) error {
	app.log().Debug("chat window opened")
	p := tea.NewProgram(
		newChatView(cmd.Context(), app.Chat),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("chat window: %w", err)
	}
	return nil
}

// runChatLoop reads one question per line until EOF or /quit. Slash commands
// match the chat window's.
func runChatLoop(ctx context.Context, chat service.ChatService, in io.Reader, out io.Writer) error {
	welcome, err := chat.Start(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatMessage(welcome, formatter.ReplyWrapWidth))

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "/quit", "/exit", "/q":
			return nil
		case "/topics":
			fmt.Fprintln(out, formatter.FormatTopics(responder.Rules(), responder.AWSRules()))
			continue
		case "/clear":
			if err := chat.Reset(ctx); err != nil {
				return err
			}
			msgs, err := chat.Transcript(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatTranscript(msgs, formatter.ReplyWrapWidth))
			continue
		}

		reply, err := chat.Send(ctx, line)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, formatter.FormatMessage(reply, formatter.ReplyWrapWidth))
	}
	return scanner.Err()
}
