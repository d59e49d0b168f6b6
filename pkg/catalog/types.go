package catalog

// Service describes one API in the suite.
type Service struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Prefix      string   `json:"prefix" yaml:"prefix"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	DocsURL     string   `json:"docsUrl,omitempty" yaml:"docsUrl,omitempty"`

	// Marketed reports whether the service has a marketplace listing
	// with pricing tiers.
	Marketed bool `json:"marketed" yaml:"marketed"`
}

// Tier is one pricing level of a marketplace listing. Tier data is static
// listing metadata: nothing in the suite enforces it.
type Tier struct {
	Name               string   `json:"name" yaml:"name"`
	PriceUSD           float64  `json:"priceUsd" yaml:"priceUsd"`
	RequestsPerMonth   int      `json:"requestsPerMonth" yaml:"requestsPerMonth"`
	Features           []string `json:"features" yaml:"features"`
	RateLimitPerMinute int      `json:"rateLimitPerMinute" yaml:"rateLimitPerMinute"`
}

// Example is a request/response pair shown on a marketplace listing.
type Example struct {
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Request     map[string]any `json:"request" yaml:"request"`
	Response    map[string]any `json:"response" yaml:"response"`
}

// Listing is a marketplace listing document for one marketed API.
type Listing struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Category    string    `json:"category" yaml:"category"`
	Tags        []string  `json:"tags" yaml:"tags"`
	Pricing     []Tier    `json:"pricing" yaml:"pricing"`
	DocsURL     string    `json:"documentationUrl" yaml:"documentationUrl"`
	Examples    []Example `json:"examples,omitempty" yaml:"examples,omitempty"`
}
