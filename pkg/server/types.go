package server

import "time"

// ErrorResponse is the JSON error envelope returned by all endpoints.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HealthResponse is the health check response body.
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
	Services  []string  `json:"services,omitempty"`
}

// IndexResponse is the suite listing returned by the default route.
type IndexResponse struct {
	Message       string   `json:"message"`
	Version       string   `json:"version"`
	Ready         bool     `json:"ready"`
	AvailableAPIs []string `json:"available_apis"`
	Routes        []string `json:"routes"`
}
