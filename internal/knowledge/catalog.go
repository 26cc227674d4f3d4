package knowledge

import (
	"fmt"
	"slices"
	"strings"
)

// Provider identifies the vendor behind a certification.
type Provider string

const (
	ProviderAWS        Provider = "aws"
	ProviderAzure      Provider = "azure"
	ProviderGoogle     Provider = "gcp"
	ProviderKubernetes Provider = "kubernetes"
)

// Providers lists every provider in catalog order.
func Providers() []Provider {
	return []Provider{ProviderAWS, ProviderAzure, ProviderGoogle, ProviderKubernetes}
}

// Product is a kind of study material sold per certification.
type Product string

const (
	PracticeExam Product = "practice_exam"
	StudyGuide   Product = "study_guide"
	VideoCourse  Product = "video_course"
)

// Products lists every product in display order.
func Products() []Product {
	return []Product{PracticeExam, StudyGuide, VideoCourse}
}

// Label is the plural storefront name, e.g. "Practice Exams".
func (p Product) Label() string {
	switch p {
	case PracticeExam:
		return "Practice Exams"
	case StudyGuide:
		return "Study Guide eBook"
	case VideoCourse:
		return "Video Course"
	default:
		return string(p)
	}
}

// Short is the singular name used inside bundle names.
func (p Product) Short() string {
	switch p {
	case PracticeExam:
		return "Practice Exam"
	case StudyGuide:
		return "eBook"
	case VideoCourse:
		return "Video Course"
	default:
		return string(p)
	}
}

// Price is an amount in US cents. Zero means the product is offered but
// has no published price.
type Price int

func (p Price) String() string {
	return fmt.Sprintf("$%d.%02d", int(p)/100, int(p)%100)
}

// Certification is one exam the catalog sells material for.
type Certification struct {
	Key       string // stable topic key, e.g. "aws.saa"
	Provider  Provider
	Name      string // full vendor title
	ShortName string // name used in summaries, e.g. "Solutions Architect Associate"
	Code      string // exam code, e.g. "SAA-C03"; empty when the vendor has none
	Edition   string
	Prices    map[Product]Price
	Domains   []string // exam domains the material covers
	Pitch     string
	Related   []string // keys of certifications mentioned alongside this one

	Lead         string    // opening phrase of the answer; empty means "We offer"
	DomainsIntro string    // phrase before the domain list; empty means "Our materials cover"
	Articles     bool      // "a Study Guide eBook" rather than "Study Guide eBook"
	Upsell       []Product // products mentioned in a trailing "We also have" sentence
	Secondary    bool      // listed after the main list in provider summaries
}

func (c Certification) clone() Certification {
	if c.Prices != nil {
		prices := make(map[Product]Price, len(c.Prices))
		for p, v := range c.Prices {
			prices[p] = v
		}
		c.Prices = prices
	}
	c.Domains = slices.Clone(c.Domains)
	c.Related = slices.Clone(c.Related)
	c.Upsell = slices.Clone(c.Upsell)
	return c
}

// Offers reports whether the certification has material of the given kind.
func (c Certification) Offers(p Product) bool {
	_, ok := c.Prices[p]
	return ok
}

// Price returns the published price for a product. ok is false when the
// product is not offered or is offered without a price.
func (c Certification) Price(p Product) (Price, bool) {
	v, ok := c.Prices[p]
	if !ok || v == 0 {
		return 0, false
	}
	return v, true
}

// Title joins the name and exam code.
func (c Certification) Title() string {
	if c.Code == "" {
		return c.Name
	}
	return c.Name + " " + c.Code
}

// FreeCourse is a no-cost course offering.
type FreeCourse struct {
	Title  string
	Short  string // name used in one-line mentions
	Detail string // parenthetical listing, may be empty

	HideInPricing bool // left out of the short mention in the pricing answer
}

// Bundle is a package of products sold together.
type Bundle struct {
	Products []Product
}

func (b Bundle) clone() Bundle {
	b.Products = slices.Clone(b.Products)
	return b
}

// Name renders the storefront bundle name, e.g. "Practice Exam + eBook Bundle".
func (b Bundle) Name() string {
	parts := make([]string, len(b.Products))
	for i, p := range b.Products {
		parts[i] = p.Short()
	}
	return strings.Join(parts, " + ") + " Bundle"
}

// Discount is the automatic multi-purchase discount rule.
type Discount struct {
	Percent          int
	MinPracticeExams int
}

// Contact holds the support channels.
type Contact struct {
	Email     string
	Community string
	Origin    string
}

// Base is the read-only knowledge catalog. The zero value is empty; use
// Default for the compiled-in catalog.
type Base struct {
	certs       []Certification
	byKey       map[string]int
	freeCourses []FreeCourse
	bundles     []Bundle
	discount    Discount
	contact     Contact
	features    []string
}

// New builds a Base from catalog records. Certification order is preserved
// and becomes the listing order everywhere.
func New(certs []Certification, free []FreeCourse, bundles []Bundle, discount Discount, contact Contact, features []string) *Base {
	b := &Base{
		certs:       cloneCerts(certs),
		byKey:       make(map[string]int, len(certs)),
		freeCourses: append([]FreeCourse(nil), free...),
		bundles:     cloneBundles(bundles),
		discount:    discount,
		contact:     contact,
		features:    append([]string(nil), features...),
	}
	for i, c := range b.certs {
		b.byKey[c.Key] = i
	}
	return b
}

// Certification looks up a certification by key.
func (b *Base) Certification(key string) (Certification, bool) {
	i, ok := b.byKey[key]
	if !ok {
		return Certification{}, false
	}
	return b.certs[i].clone(), true
}

// Certifications returns every certification in catalog order.
func (b *Base) Certifications() []Certification {
	return cloneCerts(b.certs)
}

// ByProvider returns the certifications of one provider in catalog order.
func (b *Base) ByProvider(p Provider) []Certification {
	var out []Certification
	for _, c := range b.certs {
		if c.Provider == p {
			out = append(out, c.clone())
		}
	}
	return out
}

// PriceRange returns the lowest and highest published price of a product
// across the catalog.
func (b *Base) PriceRange(p Product) (lo, hi Price, ok bool) {
	for _, c := range b.certs {
		v, priced := c.Price(p)
		if !priced {
			continue
		}
		if !ok || v < lo {
			lo = v
		}
		if !ok || v > hi {
			hi = v
		}
		ok = true
	}
	return lo, hi, ok
}

func (b *Base) FreeCourses() []FreeCourse { return append([]FreeCourse(nil), b.freeCourses...) }
func (b *Base) Bundles() []Bundle         { return cloneBundles(b.bundles) }
func (b *Base) BundleDiscount() Discount  { return b.discount }
func (b *Base) Contact() Contact          { return b.contact }
func (b *Base) Features() []string        { return append([]string(nil), b.features...) }

func cloneCerts(certs []Certification) []Certification {
	if certs == nil {
		return nil
	}
	out := make([]Certification, len(certs))
	for i, c := range certs {
		out[i] = c.clone()
	}
	return out
}

func cloneBundles(bundles []Bundle) []Bundle {
	if bundles == nil {
		return nil
	}
	out := make([]Bundle, len(bundles))
	for i, b := range bundles {
		out[i] = b.clone()
	}
	return out
}
