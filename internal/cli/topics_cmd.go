package cli

import (
	"fmt"

	"github.com/askdojo/askdojo/internal/cli/formatter"
	"github.com/askdojo/askdojo/internal/responder"
	"github.com/spf13/cobra"
)

func newTopicsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List the topics Ask@Dojo recognizes, in matching order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTopics(responder.Rules(), responder.AWSRules()))
			return nil
		},
	}
}
