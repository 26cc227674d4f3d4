package formatter

import (
	"fmt"
	"strings"

	"github.com/askdojo/askdojo/internal/responder"
)

// FormatTopics lists the rule table in priority order with its triggers.
// AWS certification rules are indented under the AWS entry.
func FormatTopics(rules, awsRules []responder.Rule) string {
	var b strings.Builder
	b.WriteString(Header("Topics") + "\n")
	for i, r := range rules {
		b.WriteString(fmt.Sprintf("  %2d. %s  %s\n", i+1, StyleGreen.Render(string(r.Topic)), Dim(triggers(r))))
		if r.Topic != responder.TopicAWS {
			continue
		}
		for _, sub := range awsRules {
			b.WriteString(fmt.Sprintf("        %s  %s\n", StyleBlue.Render(string(sub.Topic)), Dim(triggers(sub))))
		}
	}
	b.WriteString(fmt.Sprintf("   %s  %s\n", StyleYellow.Render("*. "+string(responder.TopicFallback)), Dim("anything else")))
	return b.String()
}

func triggers(r responder.Rule) string {
	parts := make([]string, 0, len(r.Keywords)+1)
	for _, kw := range r.Keywords {
		parts = append(parts, fmt.Sprintf("%q", kw))
	}
	if len(r.Codes) > 0 {
		parts = append(parts, "exam codes "+strings.ToUpper(strings.Join(r.Codes, " ")))
	}
	return strings.Join(parts, ", ")
}
