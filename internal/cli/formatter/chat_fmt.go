package formatter

import (
	"fmt"
	"strings"

	"github.com/askdojo/askdojo/internal/domain"
)

// FormatChatWelcome renders the banner shown above a chat session.
func FormatChatWelcome() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  Ask@Dojo") + Dim(" · Tutorials Dojo assistant"))
	b.WriteString("\n")
	b.WriteString(Dim("  ─────────────────────────────") + "\n")
	b.WriteString(Dim("  Type /topics to see what I know, /clear to start over, /quit to exit.") + "\n\n")
	return b.String()
}

// FormatMessage renders one transcript line with its HH:MM timestamp and the
// text wrapped under the sender name.
func FormatMessage(m *domain.Message, width int) string {
	if width <= 0 || width > ReplyWrapWidth {
		width = ReplyWrapWidth
	}
	head := fmt.Sprintf("  %s %s", Dim(m.Clock()), SenderStyle(m.Sender).Render(SenderLabel(m.Sender)))
	return head + "\n" + indentWrapped(m.Text, 4, width-4)
}

// FormatTranscript renders messages oldest first, separated by blank lines.
func FormatTranscript(msgs []*domain.Message, width int) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, FormatMessage(m, width))
	}
	return strings.Join(parts, "\n\n")
}

// FormatReply renders a one-shot answer. topic is shown as a dim footer when
// set.
func FormatReply(text, topic string) string {
	var b strings.Builder
	b.WriteString(indentWrapped(text, 2, ReplyWrapWidth))
	b.WriteString("\n")
	if topic != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", Dim("["+topic+"]")))
	}
	return b.String()
}

// FormatTyping is the indicator shown while a reply is pending.
func FormatTyping() string {
	return "  " + StylePurple.Render("Ask@Dojo") + Dim(" is typing…")
}
