package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicesOrderAndCount(t *testing.T) {
	svcs := Services()
	require.Len(t, svcs, 10)

	assert.Equal(t, IDSummarize, svcs[0].ID)
	assert.Equal(t, IDCurrency, svcs[3].ID)
	assert.Equal(t, IDWeatherBusiness, svcs[9].ID)
}

func TestServiceNames(t *testing.T) {
	assert.Equal(t, []string{
		"Text Summarization",
		"IBAN Validation",
		"QR Code Generation",
		"Currency Conversion",
		"Content Moderation",
		"Cryptocurrency Analytics",
		"Email Validation",
		"Sentiment Analysis",
		"PDF Processing",
		"Weather Business Intelligence",
	}, ServiceNames())
}

func TestRouterIDs(t *testing.T) {
	ids := RouterIDs()
	require.Len(t, ids, 10)
	assert.Equal(t, "summarize_api", ids[0])
	assert.Equal(t, "content_moderation_api", ids[4])
	assert.Equal(t, "weather_business_api", ids[9])
}

func TestLookup(t *testing.T) {
	svc, err := Lookup(IDEmailValidation)
	require.NoError(t, err)
	assert.Equal(t, "/email-validation", svc.Prefix)
	assert.True(t, svc.Marketed)

	_, err = Lookup("no-such-service")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown service")
}

func TestMarketedIDs(t *testing.T) {
	ids := MarketedIDs()
	require.Len(t, ids, 6)
	assert.Equal(t, []string{
		IDContentModeration,
		IDCryptoAnalytics,
		IDEmailValidation,
		IDPDFProcessing,
		IDSentimentAnalysis,
		IDWeatherBusiness,
	}, ids)
}

func TestGenerateListing(t *testing.T) {
	l, err := GenerateListing(IDContentModeration)
	require.NoError(t, err)

	assert.Equal(t, "Content Moderation API", l.Name)
	assert.Equal(t, "Content Management", l.Category)
	require.Len(t, l.Pricing, 4)

	free := l.Pricing[0]
	assert.Equal(t, "Free", free.Name)
	assert.Equal(t, 0.0, free.PriceUSD)
	assert.Equal(t, 100, free.RequestsPerMonth)
	assert.Equal(t, 10, free.RateLimitPerMinute)

	ultra := l.Pricing[3]
	assert.Equal(t, "Ultra", ultra.Name)
	assert.Equal(t, 99.99, ultra.PriceUSD)
	assert.Equal(t, 1000000, ultra.RequestsPerMonth)

	require.Len(t, l.Examples, 1)
	assert.Equal(t, "Moderate Social Media Post", l.Examples[0].Title)
}

func TestGenerateListingRejectsUnmarketedServices(t *testing.T) {
	_, err := GenerateListing(IDQR)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no marketplace listing")
}

func TestEveryMarketedServiceHasFourTiersAndAnExample(t *testing.T) {
	for _, id := range MarketedIDs() {
		l, err := GenerateListing(id)
		require.NoError(t, err, id)
		assert.Len(t, l.Pricing, 4, id)
		assert.Len(t, l.Examples, 1, id)
		assert.NotEmpty(t, l.Description, id)
		assert.NotEmpty(t, l.DocsURL, id)
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Content Moderation", DisplayName("content-moderation"))
	assert.Equal(t, "Qr", DisplayName("qr"))
}

func TestIndexName(t *testing.T) {
	// Derived from the identifier.
	assert.Equal(t, "Email Validation", IndexName(IDEmailValidation))
	assert.Equal(t, "Sentiment Analysis", IndexName(IDSentimentAnalysis))

	// Overridden where derivation cannot produce the listing name.
	assert.Equal(t, "IBAN Validation", IndexName(IDIBAN))
	assert.Equal(t, "PDF Processing", IndexName(IDPDFProcessing))
}
