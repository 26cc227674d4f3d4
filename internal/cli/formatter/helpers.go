package formatter

import (
	"strings"

	"github.com/askdojo/askdojo/internal/knowledge"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox draws content inside a rounded border with an optional title.
func RenderBox(title string, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return box.Render(content)
	}
	return box.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// PriceCell renders a catalog price for a table cell: the amount, "offered"
// for unpriced material, or a dim dash when the product is not sold.
func PriceCell(c knowledge.Certification, p knowledge.Product) string {
	if price, ok := c.Price(p); ok {
		return StyleGreen.Render(price.String())
	}
	if c.Offers(p) {
		return StyleYellow.Render("offered")
	}
	return Dim("--")
}

// Truncate shortens s to at most max visible runes, ending with "…".
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
