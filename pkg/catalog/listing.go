package catalog

import "fmt"

// pricing holds the marketplace tier tables, keyed by service ID.
var pricing = map[string][]Tier{
	IDContentModeration: {
		{Name: "Free", PriceUSD: 0.0, RequestsPerMonth: 100, Features: []string{"Basic moderation", "Hate speech detection"}, RateLimitPerMinute: 10},
		{Name: "Basic", PriceUSD: 9.99, RequestsPerMonth: 10000, Features: []string{"Full moderation", "Spam detection", "Profanity filter"}, RateLimitPerMinute: 100},
		{Name: "Pro", PriceUSD: 29.99, RequestsPerMonth: 100000, Features: []string{"Advanced features", "Custom rules", "Batch processing"}, RateLimitPerMinute: 500},
		{Name: "Ultra", PriceUSD: 99.99, RequestsPerMonth: 1000000, Features: []string{"Enterprise features", "Priority support", "Custom models"}, RateLimitPerMinute: 2000},
	},
	IDEmailValidation: {
		{Name: "Free", PriceUSD: 0.0, RequestsPerMonth: 1000, Features: []string{"Basic validation", "Format checking"}, RateLimitPerMinute: 50},
		{Name: "Basic", PriceUSD: 4.99, RequestsPerMonth: 50000, Features: []string{"Full validation", "MX checking", "Disposable detection"}, RateLimitPerMinute: 200},
		{Name: "Pro", PriceUSD: 19.99, RequestsPerMonth: 500000, Features: []string{"Advanced features", "Role account detection", "Batch processing"}, RateLimitPerMinute: 1000},
		{Name: "Ultra", PriceUSD: 79.99, RequestsPerMonth: 5000000, Features: []string{"Enterprise features", "Custom rules", "Priority support"}, RateLimitPerMinute: 5000},
	},
	IDCryptoAnalytics: {
		{Name: "Free", PriceUSD: 0.0, RequestsPerMonth: 100, Features: []string{"Basic portfolio analysis", "Performance metrics"}, RateLimitPerMinute: 10},
		{Name: "Basic", PriceUSD: 14.99, RequestsPerMonth: 5000, Features: []string{"Full analysis", "Risk assessment", "Diversification scoring"}, RateLimitPerMinute: 100},
		{Name: "Pro", PriceUSD: 49.99, RequestsPerMonth: 50000, Features: []string{"Advanced features", "Market overview", "Custom metrics"}, RateLimitPerMinute: 500},
		{Name: "Ultra", PriceUSD: 199.99, RequestsPerMonth: 500000, Features: []string{"Enterprise features", "Real-time data", "Priority support"}, RateLimitPerMinute: 2000},
	},
	IDSentimentAnalysis: {
		{Name: "Free", PriceUSD: 0.0, RequestsPerMonth: 100, Features: []string{"Basic sentiment analysis", "Positive/negative scoring"}, RateLimitPerMinute: 10},
		{Name: "Basic", PriceUSD: 9.99, RequestsPerMonth: 10000, Features: []string{"Full analysis", "Emotion detection", "Keyword extraction"}, RateLimitPerMinute: 100},
		{Name: "Pro", PriceUSD: 29.99, RequestsPerMonth: 100000, Features: []string{"Advanced features", "Batch processing", "Custom models"}, RateLimitPerMinute: 500},
		{Name: "Ultra", PriceUSD: 99.99, RequestsPerMonth: 1000000, Features: []string{"Enterprise features", "Real-time analysis", "Priority support"}, RateLimitPerMinute: 2000},
	},
	IDPDFProcessing: {
		{Name: "Free", PriceUSD: 0.0, RequestsPerMonth: 10, Features: []string{"Basic text extraction", "Page count"}, RateLimitPerMinute: 5},
		{Name: "Basic", PriceUSD: 19.99, RequestsPerMonth: 1000, Features: []string{"Full extraction", "Table detection", "Metadata analysis"}, RateLimitPerMinute: 50},
		{Name: "Pro", PriceUSD: 49.99, RequestsPerMonth: 10000, Features: []string{"Advanced features", "Keyword extraction", "Entity detection"}, RateLimitPerMinute: 200},
		{Name: "Ultra", PriceUSD: 199.99, RequestsPerMonth: 100000, Features: []string{"Enterprise features", "Custom extraction", "Priority support"}, RateLimitPerMinute: 1000},
	},
	IDWeatherBusiness: {
		{Name: "Free", PriceUSD: 0.0, RequestsPerMonth: 100, Features: []string{"Basic weather analysis", "Current conditions"}, RateLimitPerMinute: 10},
		{Name: "Basic", PriceUSD: 9.99, RequestsPerMonth: 10000, Features: []string{"Full analysis", "Business impact", "Recommendations"}, RateLimitPerMinute: 100},
		{Name: "Pro", PriceUSD: 29.99, RequestsPerMonth: 100000, Features: []string{"Advanced features", "Seasonal analysis", "Risk assessment"}, RateLimitPerMinute: 500},
		{Name: "Ultra", PriceUSD: 99.99, RequestsPerMonth: 1000000, Features: []string{"Enterprise features", "Custom models", "Priority support"}, RateLimitPerMinute: 2000},
	},
}

// examples holds one representative request/response per marketed API.
var examples = map[string]Example{
	IDContentModeration: {
		Title:       "Moderate Social Media Post",
		Description: "Check if a social media post contains inappropriate content",
		Request: map[string]any{
			"text":         "This is a test post that should be checked for inappropriate content.",
			"content_type": "social_media",
			"strictness":   "medium",
		},
		Response: map[string]any{
			"is_appropriate":   true,
			"confidence_score": 0.95,
			"flagged_issues":   []string{},
			"risk_level":       "low",
		},
	},
	IDEmailValidation: {
		Title:       "Validate Email Address",
		Description: "Check if an email address is valid and deliverable",
		Request: map[string]any{
			"email":                "user@example.com",
			"check_deliverability": true,
			"check_disposable":     true,
		},
		Response: map[string]any{
			"is_valid":         true,
			"is_deliverable":   true,
			"confidence_score": 0.95,
			"domain_exists":    true,
		},
	},
	IDCryptoAnalytics: {
		Title:       "Analyze Portfolio",
		Description: "Analyze a cryptocurrency portfolio for performance and risk",
		Request: map[string]any{
			"assets": []map[string]any{
				{"symbol": "BTC", "quantity": 1.5, "purchase_price": 40000, "purchase_date": "2024-01-01"},
				{"symbol": "ETH", "quantity": 10, "purchase_price": 3000, "purchase_date": "2024-01-01"},
			},
		},
		Response: map[string]any{
			"total_value":            67500,
			"total_profit_loss":      1500,
			"profit_loss_percentage": 2.27,
			"risk_level":             "medium",
		},
	},
	IDSentimentAnalysis: {
		Title:       "Analyze Social Media Post",
		Description: "Analyze sentiment and emotions in a social media post",
		Request: map[string]any{
			"text":             "I absolutely love this new product! It's amazing and works perfectly.",
			"include_emotions": true,
			"include_keywords": true,
		},
		Response: map[string]any{
			"sentiment_score": 0.8,
			"sentiment_label": "positive",
			"confidence":      0.95,
			"emotions":        map[string]any{"joy": 0.8, "trust": 0.6},
		},
	},
	IDPDFProcessing: {
		Title:       "Extract Text from PDF",
		Description: "Extract and analyze text content from a PDF document",
		Request: map[string]any{
			"file":             "document.pdf",
			"extract_text":     true,
			"extract_tables":   true,
			"extract_metadata": true,
		},
		Response: map[string]any{
			"page_count":   5,
			"word_count":   1250,
			"tables_found": 2,
			"keywords":     []string{"business", "strategy", "analysis"},
		},
	},
	IDWeatherBusiness: {
		Title:       "Analyze Retail Weather Impact",
		Description: "Analyze weather impact on retail business operations",
		Request: map[string]any{
			"location":      "New York",
			"business_type": "retail",
			"forecast_days": 7,
		},
		Response: map[string]any{
			"sales_forecast":          "high",
			"product_recommendations": []string{"summer clothing", "beverages"},
			"risk_level":              "low",
			"recommendations":         []string{"Increase inventory of weather-appropriate products"},
		},
	},
}

// GenerateListing assembles the marketplace listing document for a marketed
// API. Returns an error for unknown services and for suite utilities that
// are not marketed individually.
func GenerateListing(id string) (*Listing, error) {
	svc, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	if !svc.Marketed {
		return nil, fmt.Errorf("service %q has no marketplace listing", id)
	}

	l := &Listing{
		ID:          svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		Category:    svc.Category,
		Tags:        svc.Tags,
		Pricing:     pricing[svc.ID],
		DocsURL:     svc.DocsURL,
	}
	if ex, ok := examples[svc.ID]; ok {
		l.Examples = []Example{ex}
	}
	return l, nil
}
