package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/askdojo/askdojo/internal/cli/formatter"
	"github.com/askdojo/askdojo/internal/knowledge"
	"github.com/askdojo/askdojo/internal/responder"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var topicLabels = map[responder.TopicKey]string{
	responder.TopicAWS:           "AWS certifications",
	responder.TopicAzure:         "Microsoft Azure",
	responder.TopicGoogleCloud:   "Google Cloud",
	responder.TopicKubernetes:    "Kubernetes",
	responder.TopicPricing:       "Pricing",
	responder.TopicFreeCourses:   "Free courses",
	responder.TopicBundles:       "Bundles and discounts",
	responder.TopicPracticeExams: "Practice exams",
	responder.TopicStudyGuides:   "Study guide eBooks",
	responder.TopicVideoCourses:  "Video courses",
	responder.TopicContact:       "Contact and support",
	responder.TopicGreeting:      "Say hello",
	responder.TopicFallback:      "Something else",
}

// topicLabel names a topic for menus. AWS certification topics use the
// catalog's certification name.
func topicLabel(kb *knowledge.Base, key responder.TopicKey) string {
	if label, ok := topicLabels[key]; ok {
		return label
	}
	if c, ok := kb.Certification(string(key)); ok {
		return "  AWS " + c.ShortName
	}
	return string(key)
}

func newBrowseCmd(app *App) *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Pick a topic from a menu and read its answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Engine == nil {
				return errNotConfigured
			}
			kb := app.catalog()

			key := responder.TopicKey(topic)
			if topic == "" {
				if !app.interactive() {
					return errors.New("browse needs a terminal; pass --topic to choose without one")
				}
				if err := topicForm(cmd, kb, &key).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
			}
			if !slices.Contains(responder.Topics(), key) {
				return fmt.Errorf("unknown topic %q (see askdojo topics)", topic)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(topicLabel(kb, key)))
			fmt.Fprint(out, formatter.FormatReply(app.Engine.Answer(key), string(key)))
			return nil
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "topic key to show without the menu, e.g. aws.saa")
	return cmd
}

func topicForm(cmd *cobra.Command, kb *knowledge.Base, result *responder.TopicKey) *huh.Form {
	keys := responder.Topics()
	options := make([]huh.Option[responder.TopicKey], 0, len(keys))
	for _, key := range keys {
		options = append(options, huh.NewOption(topicLabel(kb, key), key))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[responder.TopicKey]().
				Title("What would you like to know about?").
				Options(options...).
				Height(12).
				Value(result),
		),
	).WithTheme(dojoHuhTheme()).
		WithShowHelp(false).
		WithInput(cmd.InOrStdin()).
		WithOutput(cmd.OutOrStdout())
}
