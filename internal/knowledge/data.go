package knowledge

// defaultBase is built once at package init and never mutated.
var defaultBase = New(catalogCertifications, catalogFreeCourses, catalogBundles,
	Discount{Percent: 10, MinPracticeExams: 2},
	Contact{
		Email:     "support@tutorialsdojo.com",
		Community: "Slack",
		Origin:    "Philippines",
	},
	catalogFeatures,
)

// Default returns the compiled-in Tutorials Dojo catalog.
func Default() *Base {
	return defaultBase
}

// AWS certifications are listed in the order the AWS summary mentions them.
var catalogCertifications = []Certification{
	{
		Key: "aws.clf", Provider: ProviderAWS,
		Name: "AWS Certified Cloud Practitioner", ShortName: "Cloud Practitioner", Code: "CLF-C02",
		Prices:   map[Product]Price{PracticeExam: 1499, StudyGuide: 499, VideoCourse: 999},
		Articles: true,
		Upsell:   []Product{VideoCourse},
		Pitch:    "This is perfect for beginners starting their AWS certification journey! The practice exams include detailed explanations and are updated to match the latest CLF-C02 exam format.",
	},
	{
		Key: "aws.saa", Provider: ProviderAWS,
		Name: "AWS Certified Solutions Architect Associate", ShortName: "Solutions Architect Associate", Code: "SAA-C03",
		Lead:         "We have",
		Prices:       map[Product]Price{PracticeExam: 1499, StudyGuide: 699, VideoCourse: 1299},
		Pitch:        "This is one of our most popular certifications!",
		DomainsIntro: "Our materials cover all exam domains including",
		Domains:      []string{"design resilient architectures", "design high-performing architectures", "design secure applications", "design cost-optimized architectures"},
	},
	{
		Key: "aws.dva", Provider: ProviderAWS,
		Name: "AWS Certified Developer Associate", ShortName: "Developer Associate", Code: "DVA-C02",
		Prices:  map[Product]Price{PracticeExam: 1499, StudyGuide: 699, VideoCourse: 1299},
		Pitch:   "Great for developers looking to specialize in AWS development.",
		Domains: []string{"deployment", "security", "development with AWS services", "troubleshooting"},
	},
	{
		Key: "aws.soa", Provider: ProviderAWS,
		Name: "AWS Certified SysOps Administrator Associate", ShortName: "SysOps Administrator", Code: "SOA-C02",
		Lead:         "We have",
		Prices:       map[Product]Price{PracticeExam: 1499, StudyGuide: 699, VideoCourse: 1299},
		Pitch:        "Perfect for operations and administration roles.",
		DomainsIntro: "Our materials focus on",
		Domains:      []string{"monitoring and reporting", "high availability", "deployment and provisioning", "storage and data management", "security and compliance"},
	},
	{
		Key: "aws.mla", Provider: ProviderAWS,
		Name: "AWS Certified Machine Learning Engineer Associate", ShortName: "Machine Learning Engineer", Code: "MLA-C01",
		Prices:       map[Product]Price{PracticeExam: 1499, StudyGuide: 699},
		DomainsIntro: "Our ML materials cover",
		Domains:      []string{"data engineering", "exploratory data analysis", "modeling", "machine learning implementation and operations"},
		Related:      []string{"aws.mls"},
	},
	{
		Key: "aws.scs", Provider: ProviderAWS,
		Name: "AWS Certified Security Specialty", ShortName: "Security Specialty", Code: "SCS-C02",
		Lead:    "We have",
		Prices:  map[Product]Price{PracticeExam: 1799, StudyGuide: 699},
		Pitch:   "Essential for security professionals in AWS environments.",
		Domains: []string{"incident response", "logging and monitoring", "infrastructure security", "identity and access management", "data protection"},
	},
	{
		Key: "aws.dop", Provider: ProviderAWS,
		Name: "AWS Certified DevOps Engineer Professional", ShortName: "DevOps Engineer Professional", Code: "DOP-C02",
		Prices:  map[Product]Price{PracticeExam: 1499, StudyGuide: 699},
		Pitch:   "Advanced certification for DevOps professionals.",
		Domains: []string{"SDLC automation", "configuration management and infrastructure as code", "monitoring and logging", "policies and standards automation", "incident and event response"},
	},
	{
		Key: "aws.dea", Provider: ProviderAWS,
		Name: "AWS Certified Data Engineer Associate", ShortName: "Data Engineer Associate", Code: "DEA-C01",
		Lead:    "We have",
		Prices:  map[Product]Price{PracticeExam: 1499, StudyGuide: 699},
		Pitch:   "Perfect for data engineering roles.",
		Domains: []string{"data ingestion and transformation", "data store management", "data operations and support", "data security and governance"},
	},
	{
		Key: "aws.aif", Provider: ProviderAWS,
		Name: "AWS Certified AI Practitioner", ShortName: "AI Practitioner", Code: "AIF-C01",
		Prices:  map[Product]Price{PracticeExam: 1499, StudyGuide: 499},
		Pitch:   "Great for AI and machine learning enthusiasts.",
		Domains: []string{"AI fundamentals", "machine learning", "generative AI", "AI applications and use cases"},
	},
	{
		Key: "aws.ans", Provider: ProviderAWS,
		Name: "AWS Certified Advanced Networking Specialty", ShortName: "Advanced Networking Specialty", Code: "ANS-C01",
		Lead:    "We have",
		Prices:  map[Product]Price{PracticeExam: 1799},
		Pitch:   "Advanced networking certification for AWS professionals.",
		Domains: []string{"network design", "network implementation", "network management and operations", "network security", "troubleshooting", "network optimization"},
	},
	{
		Key: "aws.sap", Provider: ProviderAWS,
		Name: "AWS Certified Solutions Architect Professional", ShortName: "Solutions Architect Professional", Code: "SAP-C02",
		Prices:  map[Product]Price{PracticeExam: 1499, StudyGuide: 699},
		Pitch:   "Our highest-level AWS certification.",
		Domains: []string{"advanced architectural concepts", "migration planning", "cost optimization", "continuous improvement for AWS solutions"},
	},
	{
		Key: "aws.mls", Provider: ProviderAWS,
		Name: "AWS Certified Machine Learning Specialty", ShortName: "Machine Learning Specialty",
		Prices: map[Product]Price{PracticeExam: 1799},
	},

	{Key: "azure.az900", Provider: ProviderAzure, Name: "Microsoft Azure Fundamentals", ShortName: "Fundamentals", Code: "AZ-900",
		Prices: map[Product]Price{PracticeExam: 0}},
	{Key: "azure.az104", Provider: ProviderAzure, Name: "Microsoft Azure Administrator", ShortName: "Administrator", Code: "AZ-104",
		Prices: map[Product]Price{PracticeExam: 0, StudyGuide: 699}},
	{Key: "azure.az500", Provider: ProviderAzure, Name: "Microsoft Azure Security Engineer Associate", ShortName: "Security Engineer", Code: "AZ-500",
		Prices: map[Product]Price{PracticeExam: 0}},
	{Key: "azure.az305", Provider: ProviderAzure, Name: "Designing Microsoft Azure Infrastructure Solutions", ShortName: "Infrastructure Solutions", Code: "AZ-305",
		Prices: map[Product]Price{PracticeExam: 0}},
	{Key: "azure.az400", Provider: ProviderAzure, Name: "Microsoft Azure DevOps Engineer Expert", ShortName: "DevOps Engineer", Code: "AZ-400",
		Prices: map[Product]Price{PracticeExam: 0}},
	{Key: "azure.az204", Provider: ProviderAzure, Name: "Microsoft Azure Developer Associate", ShortName: "Developer", Code: "AZ-204",
		Prices: map[Product]Price{PracticeExam: 0}},
	{Key: "azure.ai900", Provider: ProviderAzure, Name: "Microsoft Azure AI Fundamentals", ShortName: "AI Fundamentals", Code: "AI-900",
		Prices: map[Product]Price{PracticeExam: 0}, Secondary: true},
	{Key: "azure.ai102", Provider: ProviderAzure, Name: "Microsoft Azure AI Engineer Associate", ShortName: "AI Engineer Associate", Code: "AI-102",
		Prices: map[Product]Price{PracticeExam: 0}, Secondary: true},

	{Key: "gcp.ace", Provider: ProviderGoogle, Name: "Google Certified Associate Cloud Engineer", ShortName: "Associate Cloud Engineer",
		Prices: map[Product]Price{PracticeExam: 0}},
	{Key: "gcp.pca", Provider: ProviderGoogle, Name: "Google Certified Professional Cloud Architect", ShortName: "Professional Cloud Architect",
		Prices: map[Product]Price{PracticeExam: 0}},

	{Key: "kubernetes.kcna", Provider: ProviderKubernetes, Name: "Kubernetes and Cloud Native Associate", ShortName: "KCNA", Code: "KCNA", Edition: "2025",
		Prices:  map[Product]Price{PracticeExam: 0},
		Domains: []string{"Kubernetes fundamentals", "container orchestration", "cloud-native application development"}},
}

var catalogFreeCourses = []FreeCourse{
	{Title: "AWS Cloud Practitioner Essentials (Latest Edition)", Short: "AWS Cloud Practitioner Essentials"},
	{Title: "Machine Learning courses", Short: "Machine Learning courses",
		Detail: "AWS Machine Learning Services Overview, Introduction to Machine Learning, etc."},
	{Title: "Database Migration courses", Short: "Database Migration courses",
		Detail: "migrating from SQL Server, MongoDB, MySQL, Oracle, PostgreSQL to AWS", HideInPricing: true},
	{Title: "various AWS service overviews", Short: "various AWS service overviews",
		Detail: "Compute, Storage, Database, Security, Networking, etc."},
}

var catalogBundles = []Bundle{
	{Products: []Product{VideoCourse, PracticeExam}},
	{Products: []Product{PracticeExam, StudyGuide}},
	{Products: []Product{VideoCourse, PracticeExam, StudyGuide}},
}

var catalogFeatures = []string{
	"Practice exams with detailed explanations",
	"Study guides with real-world examples",
	"Video courses with hands-on labs",
	"Regular updates to match latest exam versions",
	"Bundle discounts available",
	"Free practice test samplers",
}
