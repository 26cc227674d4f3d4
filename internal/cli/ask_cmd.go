package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/askdojo/askdojo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var showTopic bool

	cmd := &cobra.Command{
		Use:   `ask "<question>"`,
		Short: "Ask a single question and print the answer",
		Example: `  askdojo ask "tell me about the SAA exam"
  askdojo ask --show-topic do you have azure exams`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Engine == nil {
				return errNotConfigured
			}
			question := strings.Join(args, " ")
			if strings.TrimSpace(question) == "" {
				return errors.New("question must not be empty")
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Ask@Dojo is typing...")
			}
			reply, err := app.Engine.Respond(cmd.Context(), question)
			stop()
			if err != nil {
				return fmt.Errorf("no answer: %w", err)
			}

			topic := ""
			if showTopic {
				topic = string(reply.Match.Key())
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReply(reply.Text, topic))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTopic, "show-topic", false, "print the matched topic under the answer")
	return cmd
}
