package responder

import (
	"strings"
	"unicode"
)

// TopicKey names one response producer.
type TopicKey string

// Top-level topics, in priority order.
const (
	TopicAWS           TopicKey = "aws"
	TopicAzure         TopicKey = "azure"
	TopicGoogleCloud   TopicKey = "gcp"
	TopicKubernetes    TopicKey = "kubernetes"
	TopicPricing       TopicKey = "pricing"
	TopicFreeCourses   TopicKey = "free_courses"
	TopicBundles       TopicKey = "bundles"
	TopicPracticeExams TopicKey = "practice_exams"
	TopicStudyGuides   TopicKey = "study_guides"
	TopicVideoCourses  TopicKey = "video_courses"
	TopicContact       TopicKey = "contact"
	TopicGreeting      TopicKey = "greeting"
	TopicFallback      TopicKey = "fallback"
)

// AWS certification topics. Keys match knowledge catalog keys.
const (
	TopicAWSCloudPractitioner   TopicKey = "aws.clf"
	TopicAWSSolutionsArchitect  TopicKey = "aws.saa"
	TopicAWSDeveloper           TopicKey = "aws.dva"
	TopicAWSSysOps              TopicKey = "aws.soa"
	TopicAWSMachineLearning     TopicKey = "aws.mla"
	TopicAWSSecurity            TopicKey = "aws.scs"
	TopicAWSDevOps              TopicKey = "aws.dop"
	TopicAWSDataEngineer        TopicKey = "aws.dea"
	TopicAWSAIPractitioner      TopicKey = "aws.aif"
	TopicAWSNetworking          TopicKey = "aws.ans"
	TopicAWSSolutionsArchitectP TopicKey = "aws.sap"
)

// Rule is one entry of a priority table. An utterance matches when its
// lower-cased text contains any Keyword, or when any Code appears as a
// whole word.
type Rule struct {
	Topic    TopicKey
	Keywords []string
	Codes    []string
}

// awsExamCodes route bare exam codes ("the SAA exam") to the AWS branch.
// They are matched as whole words since short codes occur inside ordinary
// words ("advanced" contains "dva").
var awsExamCodes = []string{"clf", "saa", "dva", "soa", "mla", "scs", "dop", "dea", "aif", "ans", "sap"}

var topicRules = []Rule{
	{Topic: TopicAWS, Keywords: []string{"aws", "amazon"}, Codes: awsExamCodes},
	{Topic: TopicAzure, Keywords: []string{"azure", "microsoft"}},
	{Topic: TopicGoogleCloud, Keywords: []string{"google cloud", "gcp"}},
	{Topic: TopicKubernetes, Keywords: []string{"kubernetes", "k8s"}},
	{Topic: TopicPricing, Keywords: []string{"price", "cost", "how much"}},
	{Topic: TopicFreeCourses, Keywords: []string{"free", "free courses"}},
	{Topic: TopicBundles, Keywords: []string{"bundle", "discount"}},
	{Topic: TopicPracticeExams, Keywords: []string{"practice exam", "exam"}},
	{Topic: TopicStudyGuides, Keywords: []string{"ebook", "study guide"}},
	{Topic: TopicVideoCourses, Keywords: []string{"video course", "video"}},
	{Topic: TopicContact, Keywords: []string{"contact", "support", "help"}},
	{Topic: TopicGreeting, Keywords: []string{"hello", "hi", "hey"}},
}

var awsRules = []Rule{
	{Topic: TopicAWSCloudPractitioner, Keywords: []string{"cloud practitioner", "clf"}},
	{Topic: TopicAWSSolutionsArchitect, Keywords: []string{"solutions architect", "saa"}},
	{Topic: TopicAWSDeveloper, Keywords: []string{"developer", "dva"}},
	{Topic: TopicAWSSysOps, Keywords: []string{"sysops", "soa"}},
	{Topic: TopicAWSMachineLearning, Keywords: []string{"machine learning", "ml"}},
	{Topic: TopicAWSSecurity, Keywords: []string{"security", "scs"}},
	{Topic: TopicAWSDevOps, Keywords: []string{"devops", "dop"}},
	{Topic: TopicAWSDataEngineer, Keywords: []string{"data engineer", "dea"}},
	{Topic: TopicAWSAIPractitioner, Keywords: []string{"ai practitioner", "aif"}},
	{Topic: TopicAWSNetworking, Keywords: []string{"networking", "ans"}},
	{Topic: TopicAWSSolutionsArchitectP, Keywords: []string{"professional", "sap"}},
}

// Rules returns the top-level priority table, highest priority first.
// Fallback is implicit and not part of the table.
func Rules() []Rule {
	return cloneRules(topicRules)
}

// AWSRules returns the certification sub-table consulted after the AWS rule.
func AWSRules() []Rule {
	return cloneRules(awsRules)
}

// Topics enumerates every topic key that has a producer, in priority order:
// top-level topics with the AWS certifications following AWS, then fallback.
func Topics() []TopicKey {
	keys := make([]TopicKey, 0, len(topicRules)+len(awsRules)+1)
	for _, r := range topicRules {
		keys = append(keys, r.Topic)
		if r.Topic == TopicAWS {
			for _, sub := range awsRules {
				keys = append(keys, sub.Topic)
			}
		}
	}
	return append(keys, TopicFallback)
}

// Match is the result of classifying one utterance.
type Match struct {
	Topic   TopicKey // top-level topic, TopicFallback when nothing matched
	Sub     TopicKey // AWS certification, empty when none
	Keyword string   // trigger that decided the match
}

// Key is the producer key for the match: the sub-topic when present.
func (m Match) Key() TopicKey {
	if m.Sub != "" {
		return m.Sub
	}
	return m.Topic
}

// Classify maps an utterance to a Match. It lower-cases the text and walks
// the priority table; the first matching rule wins.
func Classify(utterance string) Match {
	text := strings.ToLower(utterance)
	words := wordSet(text)

	for _, r := range topicRules {
		kw, ok := r.match(text, words)
		if !ok {
			continue
		}
		m := Match{Topic: r.Topic, Keyword: kw}
		if r.Topic == TopicAWS {
			for _, sub := range awsRules {
				if subKw, ok := sub.match(text, words); ok {
					m.Sub = sub.Topic
					m.Keyword = subKw
					break
				}
			}
		}
		return m
	}
	return Match{Topic: TopicFallback}
}

func (r Rule) match(text string, words map[string]bool) (string, bool) {
	for _, kw := range r.Keywords {
		if strings.Contains(text, kw) {
			return kw, true
		}
	}
	for _, code := range r.Codes {
		if words[code] {
			return code, true
		}
	}
	return "", false
}

func wordSet(text string) map[string]bool {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}

func cloneRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{
			Topic:    r.Topic,
			Keywords: append([]string(nil), r.Keywords...),
			Codes:    append([]string(nil), r.Codes...),
		}
	}
	return out
}
