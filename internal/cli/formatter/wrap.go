package formatter

import "strings"

// ReplyWrapWidth is the column at which chat replies wrap.
const ReplyWrapWidth = 88

// indentWrapped wraps text to width and prefixes every non-blank line.
func indentWrapped(text string, indent, width int) string {
	prefix := strings.Repeat(" ", indent)
	lines := strings.Split(wrapText(text, width), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// wrapText breaks each paragraph of text on word boundaries so no line is
// longer than width, unless a single word is.
func wrapText(text string, width int) string {
	if width <= 0 {
		return strings.TrimSpace(text)
	}

	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if len(line)+1+len(word) > width {
				out = append(out, line)
				line = word
				continue
			}
			line += " " + word
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
