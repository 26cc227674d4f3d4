package responder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Routing(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		topic     TopicKey
		sub       TopicKey
	}{
		{"aws bare", "AWS", TopicAWS, ""},
		{"amazon", "what does amazon offer?", TopicAWS, ""},
		{"aws beats pricing", "aws pricing", TopicAWS, ""},
		{"bare exam code", "tell me about the SAA exam", TopicAWS, TopicAWSSolutionsArchitect},
		{"exam code with version", "is SAA-C03 still current?", TopicAWS, TopicAWSSolutionsArchitect},
		{"cloud practitioner", "AWS cloud practitioner materials", TopicAWS, TopicAWSCloudPractitioner},
		{"developer", "aws developer associate", TopicAWS, TopicAWSDeveloper},
		{"sysops", "AWS SysOps", TopicAWS, TopicAWSSysOps},
		{"ml shorthand", "aws ml", TopicAWS, TopicAWSMachineLearning},
		{"security", "aws security specialty", TopicAWS, TopicAWSSecurity},
		{"devops", "amazon devops professional", TopicAWS, TopicAWSDevOps},
		{"data engineer", "aws data engineer", TopicAWS, TopicAWSDataEngineer},
		{"ai practitioner", "aws ai practitioner", TopicAWS, TopicAWSAIPractitioner},
		{"networking", "aws networking", TopicAWS, TopicAWSNetworking},
		{"professional", "aws professional", TopicAWS, TopicAWSSolutionsArchitectP},
		{"sub order first wins", "aws solutions architect professional", TopicAWS, TopicAWSSolutionsArchitect},
		{"azure", "Do you have Azure exams?", TopicAzure, ""},
		{"microsoft", "microsoft certs", TopicAzure, ""},
		{"google cloud", "Google Cloud architect", TopicGoogleCloud, ""},
		{"gcp", "gcp", TopicGoogleCloud, ""},
		{"kubernetes beats pricing", "how much is the kubernetes exam", TopicKubernetes, ""},
		{"k8s", "k8s", TopicKubernetes, ""},
		{"pricing", "what does it cost", TopicPricing, ""},
		{"pricing beats bundles", "bundle price", TopicPricing, ""},
		{"free", "any free courses?", TopicFreeCourses, ""},
		{"discount", "is there a discount", TopicBundles, ""},
		{"practice exam", "tell me about practice exams", TopicPracticeExams, ""},
		{"code inside word is not aws", "advanced networking exam", TopicPracticeExams, ""},
		{"ebook", "do you sell an ebook", TopicStudyGuides, ""},
		{"study guide", "study guide formats", TopicStudyGuides, ""},
		{"video", "video lessons", TopicVideoCourses, ""},
		{"contact", "how do I contact you", TopicContact, ""},
		{"help", "I need help", TopicContact, ""},
		{"greeting", "hello", TopicGreeting, ""},
		{"hey", "hey there", TopicGreeting, ""},
		{"weather", "what's the weather today", TopicFallback, ""},
		{"nonsense", "qwzx", TopicFallback, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Classify(tt.utterance)
			assert.Equal(t, tt.topic, m.Topic)
			assert.Equal(t, tt.sub, m.Sub)
		})
	}
}

// Matching is plain substring containment, so "hi" inside "this" counts as
// a greeting. Kept on purpose; see DESIGN.md.
func TestClassify_SubstringQuirkPreserved(t *testing.T) {
	assert.Equal(t, TopicGreeting, Classify("this").Topic)
	assert.Equal(t, TopicAWS, Classify("laws").Topic)
}

// Empty and whitespace-only input classify to fallback rather than a
// dedicated "please ask a question" answer.
func TestClassify_EmptyInputIsFallback(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		m := Classify(in)
		assert.Equal(t, TopicFallback, m.Topic, "%q", in)
		assert.Equal(t, TopicFallback, m.Key())
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Classify("aws"), Classify("AWS"))
	assert.Equal(t, Classify("tell me about the saa exam"), Classify("TELL ME ABOUT THE SAA EXAM"))
}

func TestClassify_RecordsKeyword(t *testing.T) {
	m := Classify("Amazon SysOps")
	assert.Equal(t, "sysops", m.Keyword)
	assert.Equal(t, TopicAWSSysOps, m.Key())

	assert.Equal(t, "k8s", Classify("K8S").Keyword)
	assert.Empty(t, Classify("qwzx").Keyword)
}

func TestTopics_EnumeratesPriorityOrder(t *testing.T) {
	keys := Topics()
	require.Len(t, keys, len(topicRules)+len(awsRules)+1)
	assert.Equal(t, TopicAWS, keys[0])
	assert.Equal(t, TopicAWSCloudPractitioner, keys[1])
	assert.Equal(t, TopicAWSSolutionsArchitectP, keys[len(awsRules)])
	assert.Equal(t, TopicAzure, keys[len(awsRules)+1])
	assert.Equal(t, TopicGreeting, keys[len(keys)-2])
	assert.Equal(t, TopicFallback, keys[len(keys)-1])
}

func TestRules_PriorityOrder(t *testing.T) {
	want := []TopicKey{
		TopicAWS, TopicAzure, TopicGoogleCloud, TopicKubernetes, TopicPricing,
		TopicFreeCourses, TopicBundles, TopicPracticeExams, TopicStudyGuides,
		TopicVideoCourses, TopicContact, TopicGreeting,
	}
	var got []TopicKey
	for _, r := range Rules() {
		got = append(got, r.Topic)
	}
	assert.Equal(t, want, got)
}

func TestRules_ReturnsCopy(t *testing.T) {
	rules := Rules()
	rules[0].Keywords[0] = "mutated"
	assert.Equal(t, "aws", Rules()[0].Keywords[0])

	sub := AWSRules()
	sub[0].Keywords[0] = "mutated"
	assert.Equal(t, "cloud practitioner", AWSRules()[0].Keywords[0])
}

func TestRules_KeywordsAreLowerCase(t *testing.T) {
	all := append(Rules(), AWSRules()...)
	for _, r := range all {
		for _, kw := range append(r.Keywords, r.Codes...) {
			assert.Equal(t, strings.ToLower(kw), kw, "%s keyword %q", r.Topic, kw)
		}
	}
}
