// Package catalog holds the static registry of the Niche Business APIs
// Suite: the ten services the daemon fronts and the marketplace listing
// metadata (descriptions, tags, pricing tiers, examples) for the six
// marketed APIs.
//
// Pricing tiers are carried verbatim as listing data for marketplace
// submission; the suite does not gate requests on them.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Service identifiers, in registration order.
const (
	IDSummarize         = "summarize"
	IDIBAN              = "iban"
	IDQR                = "qr"
	IDCurrency          = "currency"
	IDContentModeration = "content-moderation"
	IDCryptoAnalytics   = "crypto-analytics"
	IDEmailValidation   = "email-validation"
	IDSentimentAnalysis = "sentiment-analysis"
	IDPDFProcessing     = "pdf-processing"
	IDWeatherBusiness   = "weather-business"
)

var titleCaser = cases.Title(language.English)

// DisplayName derives a human-readable name from a service identifier,
// e.g. "content-moderation" becomes "Content Moderation".
func DisplayName(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "-", " "))
}

// displayOverrides holds the suite-listing names that cannot be derived
// from the service identifier (acronyms, historical naming). Services
// absent here get DisplayName(id).
var displayOverrides = map[string]string{
	IDSummarize:       "Text Summarization",
	IDIBAN:            "IBAN Validation",
	IDQR:              "QR Code Generation",
	IDCurrency:        "Currency Conversion",
	IDCryptoAnalytics: "Cryptocurrency Analytics",
	IDPDFProcessing:   "PDF Processing",
	IDWeatherBusiness: "Weather Business Intelligence",
}

// IndexName returns the short display name the suite listing uses for a
// service. Marketplace listings use the longer Service.Name instead.
func IndexName(id string) string {
	if name, ok := displayOverrides[id]; ok {
		return name
	}
	return DisplayName(id)
}

// services is the registry, keyed by service ID.
var services = map[string]Service{
	IDSummarize: {
		ID:       IDSummarize,
		Name:     "Text Summarization",
		Prefix:   "/summarize",
		Category: "Text Processing",
		Tags:     []string{"summarization", "text-processing"},
	},
	IDIBAN: {
		ID:       IDIBAN,
		Name:     "IBAN Validation",
		Prefix:   "/iban",
		Category: "Finance",
		Tags:     []string{"iban", "validation", "banking"},
	},
	IDQR: {
		ID:       IDQR,
		Name:     "QR Code Generation",
		Prefix:   "/qr",
		Category: "Utilities",
		Tags:     []string{"qr-code", "generation"},
	},
	IDCurrency: {
		ID:       IDCurrency,
		Name:     "Currency Conversion",
		Prefix:   "/currency",
		Category: "Finance",
		Tags:     []string{"currency", "exchange-rates"},
	},
	IDContentModeration: {
		ID:       IDContentModeration,
		Name:     "Content Moderation API",
		Prefix:   "/content-moderation",
		Category: "Content Management",
		Description: "Advanced content filtering and moderation for social media, forums, " +
			"and user-generated content. Detect hate speech, spam, profanity, and " +
			"inappropriate content with high accuracy.",
		Tags:     []string{"content-moderation", "hate-speech", "spam-detection", "profanity-filter", "social-media"},
		DocsURL:  "https://docs.example.com/content-moderation",
		Marketed: true,
	},
	IDCryptoAnalytics: {
		ID:       IDCryptoAnalytics,
		Name:     "Cryptocurrency Portfolio Analytics API",
		Prefix:   "/crypto-analytics",
		Category: "Finance",
		Description: "Advanced cryptocurrency portfolio analysis and risk assessment. " +
			"Get portfolio performance metrics, diversification analysis, and " +
			"investment recommendations.",
		Tags:     []string{"cryptocurrency", "portfolio-analysis", "risk-assessment", "investment", "crypto-trading"},
		DocsURL:  "https://docs.example.com/crypto-analytics",
		Marketed: true,
	},
	IDEmailValidation: {
		ID:       IDEmailValidation,
		Name:     "Email Validation & Deliverability API",
		Prefix:   "/email-validation",
		Category: "Email Marketing",
		Description: "Comprehensive email validation and deliverability checking. Verify " +
			"email formats, check MX records, detect disposable emails, and assess " +
			"deliverability scores.",
		Tags:     []string{"email-validation", "deliverability", "mx-check", "spam-prevention", "email-marketing"},
		DocsURL:  "https://docs.example.com/email-validation",
		Marketed: true,
	},
	IDSentimentAnalysis: {
		ID:       IDSentimentAnalysis,
		Name:     "Social Media Sentiment Analysis API",
		Prefix:   "/sentiment-analysis",
		Category: "Analytics",
		Description: "Advanced sentiment analysis and emotion detection for social media " +
			"monitoring and brand analysis. Extract insights from text with high accuracy.",
		Tags:     []string{"sentiment-analysis", "emotion-detection", "social-media", "brand-monitoring", "text-analysis"},
		DocsURL:  "https://docs.example.com/sentiment-analysis",
		Marketed: true,
	},
	IDPDFProcessing: {
		ID:       IDPDFProcessing,
		Name:     "PDF Document Processing API",
		Prefix:   "/pdf-processing",
		Category: "Document Processing",
		Description: "Advanced PDF document analysis and data extraction. Extract text, " +
			"tables, metadata, and insights from PDF documents with high accuracy.",
		Tags:     []string{"pdf-processing", "document-analysis", "text-extraction", "table-detection", "data-extraction"},
		DocsURL:  "https://docs.example.com/pdf-processing",
		Marketed: true,
	},
	IDWeatherBusiness: {
		ID:       IDWeatherBusiness,
		Name:     "Weather Business Intelligence API",
		Prefix:   "/weather-business",
		Category: "Business Intelligence",
		Description: "Weather-driven business intelligence and decision support. Analyze " +
			"weather impact on retail, agriculture, logistics, and tourism businesses.",
		Tags:     []string{"weather", "business-intelligence", "retail", "agriculture", "logistics"},
		DocsURL:  "https://docs.example.com/weather-business",
		Marketed: true,
	},
}

// order preserves the original registration order of the suite.
var order = []string{
	IDSummarize,
	IDIBAN,
	IDQR,
	IDCurrency,
	IDContentModeration,
	IDCryptoAnalytics,
	IDEmailValidation,
	IDSentimentAnalysis,
	IDPDFProcessing,
	IDWeatherBusiness,
}

// Services returns all suite services in registration order.
func Services() []Service {
	out := make([]Service, 0, len(order))
	for _, id := range order {
		out = append(out, services[id])
	}
	return out
}

// ServiceNames returns the short display names of all services in
// registration order, as shown by the suite listing on the default route.
func ServiceNames() []string {
	out := make([]string, 0, len(order))
	for _, id := range order {
		out = append(out, IndexName(id))
	}
	return out
}

// RouterIDs returns the per-service router identifiers in registration
// order, e.g. "content_moderation_api". The health endpoint reports these.
func RouterIDs() []string {
	out := make([]string, 0, len(order))
	for _, id := range order {
		out = append(out, strings.ReplaceAll(id, "-", "_")+"_api")
	}
	return out
}

// Lookup returns the service with the given ID.
func Lookup(id string) (Service, error) {
	svc, ok := services[id]
	if !ok {
		return Service{}, fmt.Errorf("unknown service: %q (known: %s)",
			id, strings.Join(knownIDs(), ", "))
	}
	return svc, nil
}

// MarketedIDs returns the IDs of all services with marketplace listings,
// sorted alphabetically.
func MarketedIDs() []string {
	var out []string
	for id, svc := range services {
		if svc.Marketed {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

func knownIDs() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}
