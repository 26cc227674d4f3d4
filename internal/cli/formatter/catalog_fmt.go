package formatter

import (
	"fmt"
	"strings"

	"github.com/askdojo/askdojo/internal/knowledge"
)

var providerTitles = map[knowledge.Provider]string{
	knowledge.ProviderAWS:        "AWS",
	knowledge.ProviderAzure:      "Microsoft Azure",
	knowledge.ProviderGoogle:     "Google Cloud",
	knowledge.ProviderKubernetes: "Kubernetes",
}

// ProviderTitle is the heading used for a provider's section.
func ProviderTitle(p knowledge.Provider) string {
	if t, ok := providerTitles[p]; ok {
		return t
	}
	return string(p)
}

// FormatCatalog renders one price table per provider. An empty providers
// list means every provider.
func FormatCatalog(kb *knowledge.Base, providers ...knowledge.Provider) string {
	if len(providers) == 0 {
		providers = knowledge.Providers()
	}

	headers := []string{"CODE", "CERTIFICATION"}
	for _, p := range knowledge.Products() {
		headers = append(headers, strings.ToUpper(p.Short()))
	}

	var sections []string
	for _, p := range providers {
		certs := kb.ByProvider(p)
		if len(certs) == 0 {
			continue
		}
		rows := make([][]string, 0, len(certs))
		for _, c := range certs {
			code := c.Code
			if code == "" {
				code = Dim("--")
			}
			row := []string{code, c.Name}
			for _, prod := range knowledge.Products() {
				row = append(row, PriceCell(c, prod))
			}
			rows = append(rows, row)
		}
		sections = append(sections, Header(ProviderTitle(p))+"\n"+RenderTable(headers, rows))
	}
	if len(sections) == 0 {
		return Dim("  No certifications found.") + "\n"
	}
	return strings.Join(sections, "\n")
}

// FormatOffers renders bundles, the discount rule, free courses, and the
// contact line below the price tables.
func FormatOffers(kb *knowledge.Base) string {
	var b strings.Builder

	b.WriteString(Header("Bundles") + "\n")
	for _, bundle := range kb.Bundles() {
		b.WriteString(fmt.Sprintf("  • %s\n", bundle.Name()))
	}
	d := kb.BundleDiscount()
	b.WriteString(fmt.Sprintf("  %s\n\n", StyleGreen.Render(fmt.Sprintf("%d%% off when you buy %d practice tests", d.Percent, d.MinPracticeExams))))

	b.WriteString(Header("Free Courses") + "\n")
	for _, fc := range kb.FreeCourses() {
		line := "  • " + fc.Title
		if fc.Detail != "" {
			line += Dim(" (" + fc.Detail + ")")
		}
		b.WriteString(line + "\n")
	}

	c := kb.Contact()
	b.WriteString("\n" + Dim(fmt.Sprintf("  %s · %s community · made in the %s", c.Email, c.Community, c.Origin)) + "\n")
	return b.String()
}
