package responder

import (
	"fmt"
	"slices"
	"strings"

	"github.com/askdojo/askdojo/internal/knowledge"
)

// Producer renders the answer for one topic from the catalog.
type Producer func(kb *knowledge.Base) string

// GreetingText is the answer to greetings.
const GreetingText = "Hello! Welcome to Tutorials Dojo. I'm Ask@Dojo, your AI assistant here to help you find the perfect AWS, Azure, or Google Cloud certification resources. We offer practice exams, study guides, and video courses to help you pass your certification exams on the first try. What would you like to know about?"

// FallbackText is the answer when no topic matches.
const FallbackText = "I'm here to help you with information about Tutorials Dojo's certification resources. We offer practice exams, study guides, and video courses for AWS, Azure, and Google Cloud certifications. Our materials are designed by certified professionals and updated regularly to match the latest exam versions. Could you please ask about a specific certification, service, or topic you're interested in?"

const (
	practiceExamsText = "Our practice exams are designed to simulate the real certification experience with detailed explanations for each answer. They're updated regularly to match the latest exam versions and include hundreds of practice questions. Each practice exam covers all exam domains and provides realistic scenarios you'll encounter on the actual test. We also offer free practice test samplers so you can try before you buy!"

	studyGuidesText = "Our Study Guide eBooks provide comprehensive coverage of exam topics with real-world examples, diagrams, and practice questions. They're perfect for self-study and exam preparation. Each study guide is written by certified professionals and includes hands-on exercises, case studies, and exam tips. Available in multiple formats for easy reading on any device."

	videoCoursesText = "Our video courses provide step-by-step instruction with hands-on labs and real-world scenarios. They're perfect for visual learners and those who prefer guided instruction. Each video course includes downloadable resources, practice exercises, and lifetime access. Our instructors are certified professionals with years of real-world experience."
)

var producers = map[TopicKey]Producer{
	TopicAWS:           awsSummary,
	TopicAzure:         azureAnswer,
	TopicGoogleCloud:   googleCloudAnswer,
	TopicKubernetes:    kubernetesAnswer,
	TopicPricing:       pricingAnswer,
	TopicFreeCourses:   freeCoursesAnswer,
	TopicBundles:       bundlesAnswer,
	TopicPracticeExams: static(practiceExamsText),
	TopicStudyGuides:   static(studyGuidesText),
	TopicVideoCourses:  static(videoCoursesText),
	TopicContact:       contactAnswer,
	TopicGreeting:      static(GreetingText),
	TopicFallback:      static(FallbackText),

	TopicAWSCloudPractitioner:   certificationAnswer(TopicAWSCloudPractitioner),
	TopicAWSSolutionsArchitect:  certificationAnswer(TopicAWSSolutionsArchitect),
	TopicAWSDeveloper:           certificationAnswer(TopicAWSDeveloper),
	TopicAWSSysOps:              certificationAnswer(TopicAWSSysOps),
	TopicAWSMachineLearning:     certificationAnswer(TopicAWSMachineLearning),
	TopicAWSSecurity:            certificationAnswer(TopicAWSSecurity),
	TopicAWSDevOps:              certificationAnswer(TopicAWSDevOps),
	TopicAWSDataEngineer:        certificationAnswer(TopicAWSDataEngineer),
	TopicAWSAIPractitioner:      certificationAnswer(TopicAWSAIPractitioner),
	TopicAWSNetworking:          certificationAnswer(TopicAWSNetworking),
	TopicAWSSolutionsArchitectP: certificationAnswer(TopicAWSSolutionsArchitectP),
}

func static(text string) Producer {
	return func(*knowledge.Base) string { return text }
}

// certificationAnswer lists what is sold for one certification, then any
// upsell products and related exams, the pitch line, and the covered exam
// domains.
func certificationAnswer(key TopicKey) Producer {
	return func(kb *knowledge.Base) string {
		c, ok := kb.Certification(string(key))
		if !ok {
			return awsSummary(kb)
		}

		var offers, upsells []string
		for _, p := range knowledge.Products() {
			price, ok := c.Price(p)
			if !ok {
				continue
			}
			offer := fmt.Sprintf("%s%s for %s", article(c, p), p.Label(), price)
			if slices.Contains(c.Upsell, p) {
				upsells = append(upsells, offer)
			} else {
				offers = append(offers, offer)
			}
		}

		lead := c.Lead
		if lead == "" {
			lead = "We offer"
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%s %s %s.", lead, c.Title(), joinList(offers))
		if len(upsells) > 0 {
			fmt.Fprintf(&b, " We also have %s.", joinList(upsells))
		}
		for _, rk := range c.Related {
			rel, ok := kb.Certification(rk)
			if !ok {
				continue
			}
			if price, ok := rel.Price(knowledge.PracticeExam); ok {
				fmt.Fprintf(&b, " We also have %s Practice Exams for %s.", rel.ShortName, price)
			}
		}
		if c.Pitch != "" {
			b.WriteString(" ")
			b.WriteString(c.Pitch)
		}
		if len(c.Domains) > 0 {
			intro := c.DomainsIntro
			if intro == "" {
				intro = "Our materials cover"
			}
			fmt.Fprintf(&b, " %s %s.", intro, joinList(c.Domains))
		}
		return b.String()
	}
}

// article is "a " before a singular product name when the certification's
// answer reads that way.
func article(c knowledge.Certification, p knowledge.Product) string {
	if c.Articles && p != knowledge.PracticeExam {
		return "a "
	}
	return ""
}

func awsSummary(kb *knowledge.Base) string {
	var items []string
	for _, c := range kb.ByProvider(knowledge.ProviderAWS) {
		if c.Code == "" {
			continue
		}
		if price, ok := c.Price(knowledge.PracticeExam); ok {
			items = append(items, fmt.Sprintf("%s (%s)", c.ShortName, price))
		} else {
			items = append(items, c.ShortName)
		}
	}
	return "We offer a comprehensive range of AWS certifications including " + joinList(items) +
		". Each comes with practice exams, study guides, and video courses. What specific AWS certification are you interested in?"
}

func azureAnswer(kb *knowledge.Base) string {
	var items, others []string
	for _, c := range kb.ByProvider(knowledge.ProviderAzure) {
		if c.Secondary {
			others = append(others, c.Code+" "+c.ShortName)
			continue
		}
		item := fmt.Sprintf("%s %s Practice Exams", c.Code, c.ShortName)
		if price, ok := c.Price(knowledge.StudyGuide); ok {
			item += fmt.Sprintf(" (%s Study Guide eBook available)", price)
		}
		items = append(items, item)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "We offer Microsoft Azure certifications! We have %s.", joinList(items))
	if len(others) > 0 {
		fmt.Fprintf(&b, " We also have %s Practice Exams.", joinList(others))
	}
	b.WriteString(" All our Azure materials are regularly updated to match the latest exam versions.")
	return b.String()
}

func googleCloudAnswer(kb *knowledge.Base) string {
	var items []string
	for _, c := range kb.ByProvider(knowledge.ProviderGoogle) {
		items = append(items, c.Name+" Practice Exams")
	}
	return "We offer Google Cloud certifications including " + joinList(items) +
		". Our Google Cloud materials help you prepare for these challenging exams with comprehensive coverage of GCP services and best practices."
}

func kubernetesAnswer(kb *knowledge.Base) string {
	certs := kb.ByProvider(knowledge.ProviderKubernetes)
	if len(certs) == 0 {
		return FallbackText
	}
	c := certs[0]
	title := c.Title() + " Practice Exams"
	if c.Edition != "" {
		title += " " + c.Edition
	}
	var b strings.Builder
	fmt.Fprintf(&b, "We have %s for Kubernetes enthusiasts.", title)
	if len(c.Domains) > 0 {
		fmt.Fprintf(&b, " This certification covers %s.", joinList(c.Domains))
	}
	b.WriteString(" Perfect for developers and administrators working with containerized applications.")
	return b.String()
}

var rangeLabels = map[knowledge.Product]string{
	knowledge.PracticeExam: "Practice Exams",
	knowledge.StudyGuide:   "Study Guide eBooks",
	knowledge.VideoCourse:  "Video Courses",
}

func pricingAnswer(kb *knowledge.Base) string {
	var ranges []string
	for _, p := range knowledge.Products() {
		lo, hi, ok := kb.PriceRange(p)
		if !ok {
			continue
		}
		verb := "from"
		if len(ranges) == 0 {
			verb = "range from"
		}
		ranges = append(ranges, fmt.Sprintf("%s %s %s-%s", rangeLabels[p], verb, lo, hi))
	}

	var courses []string
	for _, fc := range kb.FreeCourses() {
		if !fc.HideInPricing {
			courses = append(courses, fc.Short)
		}
	}

	d := kb.BundleDiscount()
	var b strings.Builder
	fmt.Fprintf(&b, "Our pricing is competitive and transparent: %s.", joinList(ranges))
	fmt.Fprintf(&b, " We also offer bundle discounts - buy %d practice tests and get %d%% off automatically!", d.MinPracticeExams, d.Percent)
	if len(courses) > 0 {
		fmt.Fprintf(&b, " Plus, we have many FREE courses available including %s.", joinList(courses))
	}
	return b.String()
}

func freeCoursesAnswer(kb *knowledge.Base) string {
	var items []string
	for _, fc := range kb.FreeCourses() {
		if fc.Detail == "" {
			items = append(items, fc.Title)
			continue
		}
		items = append(items, fmt.Sprintf("%s (%s)", fc.Title, fc.Detail))
	}
	return "Yes! We offer many FREE courses including " + joinList(items) +
		". We also have FREE practice test samplers to help you get started!"
}

func bundlesAnswer(kb *knowledge.Base) string {
	var names []string
	for _, bundle := range kb.Bundles() {
		names = append(names, bundle.Name())
	}
	d := kb.BundleDiscount()
	return fmt.Sprintf("We offer several bundle options: %s. Plus, get %d%% OFF when you buy %d practice tests - automatically applied at checkout! "+
		"Bundle discounts don't apply to eBooks and video courses individually, but our bundle packages provide excellent value for comprehensive exam preparation.",
		joinList(names), d.Percent, d.MinPracticeExams)
}

func contactAnswer(kb *knowledge.Base) string {
	c := kb.Contact()
	return fmt.Sprintf("You can reach us at %s or join our %s community for real-time support. We're proudly made in the %s and here to help you succeed! "+
		"Our support team is available to answer questions about our products, help with technical issues, and provide guidance on your certification journey.",
		c.Email, c.Community, c.Origin)
}

// joinList renders "a", "a and b", or "a, b, and c".
func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
