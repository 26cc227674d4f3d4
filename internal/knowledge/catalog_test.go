package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_String(t *testing.T) {
	assert.Equal(t, "$14.99", Price(1499).String())
	assert.Equal(t, "$4.99", Price(499).String())
	assert.Equal(t, "$0.05", Price(5).String())
	assert.Equal(t, "$100.00", Price(10000).String())
}

func TestDefault_CertificationLookup(t *testing.T) {
	kb := Default()

	saa, ok := kb.Certification("aws.saa")
	require.True(t, ok)
	assert.Equal(t, "SAA-C03", saa.Code)
	assert.Equal(t, "AWS Certified Solutions Architect Associate SAA-C03", saa.Title())

	price, ok := saa.Price(StudyGuide)
	require.True(t, ok)
	assert.Equal(t, Price(699), price)

	_, ok = kb.Certification("aws.nope")
	assert.False(t, ok)
}

func TestDefault_KeysAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Default().Certifications() {
		assert.False(t, seen[c.Key], "duplicate key %s", c.Key)
		seen[c.Key] = true
		assert.NotEmpty(t, c.Name, c.Key)
		assert.True(t, c.Offers(PracticeExam), "%s should offer practice exams", c.Key)
	}
}

func TestDefault_ByProviderKeepsCatalogOrder(t *testing.T) {
	aws := Default().ByProvider(ProviderAWS)
	require.Len(t, aws, 12)
	assert.Equal(t, "aws.clf", aws[0].Key)
	assert.Equal(t, "aws.sap", aws[10].Key)
	assert.Equal(t, "aws.mls", aws[11].Key)

	assert.Len(t, Default().ByProvider(ProviderAzure), 8)
	assert.Len(t, Default().ByProvider(ProviderGoogle), 2)
	assert.Len(t, Default().ByProvider(ProviderKubernetes), 1)
}

func TestDefault_PriceRanges(t *testing.T) {
	kb := Default()
	tests := []struct {
		product Product
		lo, hi  string
	}{
		{PracticeExam, "$14.99", "$17.99"},
		{StudyGuide, "$4.99", "$6.99"},
		{VideoCourse, "$9.99", "$12.99"},
	}
	for _, tt := range tests {
		t.Run(string(tt.product), func(t *testing.T) {
			lo, hi, ok := kb.PriceRange(tt.product)
			require.True(t, ok)
			assert.Equal(t, tt.lo, lo.String())
			assert.Equal(t, tt.hi, hi.String())
		})
	}
}

func TestUnpricedProductIsOfferedButHasNoPrice(t *testing.T) {
	az900, ok := Default().Certification("azure.az900")
	require.True(t, ok)
	assert.True(t, az900.Offers(PracticeExam))
	_, priced := az900.Price(PracticeExam)
	assert.False(t, priced)
	assert.False(t, az900.Offers(VideoCourse))
}

func TestBundle_Name(t *testing.T) {
	b := Bundle{Products: []Product{VideoCourse, PracticeExam, StudyGuide}}
	assert.Equal(t, "Video Course + Practice Exam + eBook Bundle", b.Name())
}

func TestBase_ReturnsCopies(t *testing.T) {
	kb := Default()
	courses := kb.FreeCourses()
	courses[0].Title = "mutated"
	assert.NotEqual(t, "mutated", kb.FreeCourses()[0].Title)

	certs := kb.Certifications()
	certs[0].Name = "mutated"
	first, _ := kb.Certification(certs[0].Key)
	assert.NotEqual(t, "mutated", first.Name)
}

func TestBase_RecordsAreDeepCopies(t *testing.T) {
	kb := Default()

	saa, ok := kb.Certification("aws.saa")
	require.True(t, ok)
	saa.Prices[PracticeExam] = 1
	saa.Domains[0] = "edited"

	mla, ok := kb.Certification("aws.mla")
	require.True(t, ok)
	mla.Related[0] = "edited"

	for _, c := range kb.ByProvider(ProviderAWS) {
		c.Prices[StudyGuide] = 1
	}
	for _, c := range kb.Certifications() {
		c.Prices[VideoCourse] = 1
	}
	kb.Bundles()[0].Products[0] = StudyGuide

	saa, _ = kb.Certification("aws.saa")
	price, _ := saa.Price(PracticeExam)
	assert.Equal(t, Price(1499), price)
	assert.Equal(t, "design resilient architectures", saa.Domains[0])

	mla, _ = kb.Certification("aws.mla")
	assert.Equal(t, []string{"aws.mls"}, mla.Related)

	lo, hi, ok := kb.PriceRange(StudyGuide)
	require.True(t, ok)
	assert.Equal(t, Price(499), lo)
	assert.Equal(t, Price(699), hi)
	assert.False(t, Default().ByProvider(ProviderAzure)[0].Offers(VideoCourse))

	assert.Equal(t, "Video Course + Practice Exam Bundle", kb.Bundles()[0].Name())
}

func TestNew_CopiesInput(t *testing.T) {
	certs := []Certification{{Key: "x.one", Prices: map[Product]Price{PracticeExam: 100}, Domains: []string{"a"}}}
	kb := New(certs, nil, nil, Discount{}, Contact{}, nil)

	certs[0].Prices[PracticeExam] = 5
	certs[0].Domains[0] = "b"

	c, ok := kb.Certification("x.one")
	require.True(t, ok)
	price, _ := c.Price(PracticeExam)
	assert.Equal(t, Price(100), price)
	assert.Equal(t, []string{"a"}, c.Domains)
}

func TestDefault_DiscountAndContact(t *testing.T) {
	kb := Default()
	assert.Equal(t, 10, kb.BundleDiscount().Percent)
	assert.Equal(t, 2, kb.BundleDiscount().MinPracticeExams)
	assert.Equal(t, "support@tutorialsdojo.com", kb.Contact().Email)
	assert.Len(t, kb.Bundles(), 3)
	assert.NotEmpty(t, kb.Features())
}
