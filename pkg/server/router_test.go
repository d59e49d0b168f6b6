package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nicheapis/apisuite/pkg/catalog"
)

func TestIndexRoute(t *testing.T) {
	s := New(WithVersion("v1.2.3"))
	srv := httptest.NewServer(s.setupRoutes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body IndexResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode index response: %v", err)
	}

	if body.Version != "v1.2.3" {
		t.Errorf("expected version v1.2.3, got %s", body.Version)
	}
	if len(body.AvailableAPIs) != 10 {
		t.Errorf("expected 10 available APIs, got %d", len(body.AvailableAPIs))
	}
	for _, want := range []string{"Text Summarization", "Content Moderation", "Email Validation"} {
		found := false
		for _, got := range body.AvailableAPIs {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected available API %q, got %v", want, body.AvailableAPIs)
		}
	}
}

func TestIndexRouteUnknownPath(t *testing.T) {
	s := New()
	srv := httptest.NewServer(s.setupRoutes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/no-such-route")
	if err != nil {
		t.Fatalf("GET /no-such-route: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestCatalogRoute(t *testing.T) {
	s := New()
	srv := httptest.NewServer(s.setupRoutes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/catalog")
	if err != nil {
		t.Fatalf("GET /v1/catalog: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var services []catalog.Service
	if err := json.NewDecoder(resp.Body).Decode(&services); err != nil {
		t.Fatalf("failed to decode catalog: %v", err)
	}
	if len(services) != 10 {
		t.Errorf("expected 10 services, got %d", len(services))
	}
}

func TestListingRoute(t *testing.T) {
	s := New()
	srv := httptest.NewServer(s.setupRoutes())
	defer srv.Close()

	t.Run("marketed service", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/catalog/email-validation")
		if err != nil {
			t.Fatalf("GET listing: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		var listing catalog.Listing
		if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
			t.Fatalf("failed to decode listing: %v", err)
		}
		if len(listing.Pricing) != 4 {
			t.Errorf("expected 4 pricing tiers, got %d", len(listing.Pricing))
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/v1/catalog/nope")
		if err != nil {
			t.Fatalf("GET listing: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
	})
}

func TestHealthRouteBypassesRateLimit(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimitPerMinute = 1

	s := New(WithConfig(cfg))
	srv := httptest.NewServer(s.setupRoutes())
	defer srv.Close()

	// Health must stay reachable after the rate limit window is exhausted.
	for i := 0; i < 5; i++ {
		resp, err := http.Get(srv.URL + "/health")
		if err != nil {
			t.Fatalf("GET /health attempt %d: %v", i, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i, resp.StatusCode)
		}
	}
}
