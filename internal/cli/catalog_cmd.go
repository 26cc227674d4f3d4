package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/askdojo/askdojo/internal/cli/formatter"
	"github.com/askdojo/askdojo/internal/knowledge"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	var offers bool

	cmd := &cobra.Command{
		Use:       "catalog [provider]",
		Short:     "Show certification prices",
		Long:      "Show certification prices as tables, optionally for one provider (aws, azure, gcp, kubernetes).",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: providerNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			var providers []knowledge.Provider
			if len(args) == 1 {
				p := knowledge.Provider(strings.ToLower(args[0]))
				if !slices.Contains(knowledge.Providers(), p) {
					return fmt.Errorf("unknown provider %q (expected one of: %s)", args[0], strings.Join(providerNames(), ", "))
				}
				providers = append(providers, p)
			}

			kb := app.catalog()
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatCatalog(kb, providers...))
			if offers {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatOffers(kb))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&offers, "offers", false, "also show bundles, free courses, and contact details")
	return cmd
}

func providerNames() []string {
	providers := knowledge.Providers()
	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = string(p)
	}
	return names
}
